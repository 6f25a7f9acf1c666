package ontology

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
)

// Text is a language-tagged text value: language code to text. Definition
// files may give either a bare string or a per-language object; a bare
// string decodes under the empty language key and is tagged with the
// configured default language when expanded into statements.
type Text map[string]string

// UnmarshalJSON accepts "text" and {"lang": "text"} shapes. An explicit
// null means absent, not an empty default-language text.
func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text{"": s}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return errors.Wrap(err, "text value must be a string or a language map")
	}
	*t = Text(m)
	return nil
}

// MarshalJSON emits the per-language object with keys sorted, so output
// files do not churn between runs.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(t))
}

// Langs returns the language keys in sorted order.
func (t Text) Langs() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// AddText expands a language map into one literal statement per entry on
// subject. A Text decoded from a bare string carries the empty language
// key and is tagged with the configured default language.
func (o *Ontology) AddText(subject quad.Value, predicate quad.IRI, value Text) {
	o.addText(subject, predicate, value)
}

// TextOf reconstitutes the language map for a (subject, predicate) pair
// from the graph. Repeated language keys merge by last-write-wins;
// marshaling the result sorts languages for deterministic output.
func (o *Ontology) TextOf(subject quad.Value, predicate quad.IRI) Text {
	return collapseText(o.graph.Match(subject, predicate, nil))
}

// expandText emits one language-tagged literal statement per entry of
// value, in sorted language order. The empty language key is tagged with
// defaultLang.
func expandText(st *Store, subject quad.Value, predicate quad.IRI, value Text, defaultLang string) {
	for _, lang := range value.Langs() {
		text := value[lang]
		if lang == "" {
			lang = defaultLang
		}
		st.Add(subject, predicate, quad.LangString{Value: quad.String(text), Lang: lang})
	}
}

// collapseText reconstitutes the language map from statements for one
// (subject, predicate) pair. Repeated language keys merge by
// last-write-wins in statement order.
func collapseText(statements []quad.Quad) Text {
	out := make(Text)
	for _, q := range statements {
		ls, ok := q.Object.(quad.LangString)
		if !ok {
			continue
		}
		out[ls.Lang] = string(ls.Value)
	}
	return out
}
