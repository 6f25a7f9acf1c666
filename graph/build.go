package graph

import (
	"encoding/json"
	"io"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/ontology"
	"github.com/exa-atow/ontogen/vocabulary"
)

// Build projects the ontology into a node-link graph. Nodes are the
// entities carrying an rdf:type statement; a link is emitted for every
// statement joining two such nodes. Labels prefer the given language and
// fall back to the entity's local name.
func Build(o *ontology.Ontology, lang string) *Graph {
	st := o.Graph()

	// First pass: every named entity with a named type becomes a node.
	// An entity with several types keeps the first one seen.
	typed := make(map[quad.IRI]string)
	var nodeOrder []quad.IRI
	for _, q := range st.Match(nil, vocabulary.RDFType, nil) {
		subject, ok := q.Subject.(quad.IRI)
		if !ok {
			continue
		}
		typeIRI, ok := q.Object.(quad.IRI)
		if !ok {
			continue
		}
		if _, seen := typed[subject]; seen {
			continue
		}
		typed[subject] = vocabulary.LocalName(typeIRI)
		nodeOrder = append(nodeOrder, subject)
	}

	g := &Graph{}
	for _, iri := range nodeOrder {
		g.Nodes = append(g.Nodes, Node{
			ID:    string(iri),
			Type:  typed[iri],
			Label: displayText(o, iri, vocabulary.SKOSPrefLabel, lang, vocabulary.LocalName(iri)),
			Title: displayText(o, iri, vocabulary.RDFSComment, lang, ""),
		})
	}

	// Second pass: statements whose subject and object are both nodes
	// become links. Type statements never qualify because the OWL type
	// IRIs are not nodes themselves.
	seen := make(map[Link]bool)
	for _, q := range st.All() {
		subject, ok := q.Subject.(quad.IRI)
		if !ok {
			continue
		}
		object, ok := q.Object.(quad.IRI)
		if !ok {
			continue
		}
		if _, ok := typed[subject]; !ok {
			continue
		}
		if _, ok := typed[object]; !ok {
			continue
		}
		pred, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}
		link := Link{
			Source: string(subject),
			Target: string(object),
			Type:   vocabulary.LocalName(pred),
			Label:  displayText(o, pred, vocabulary.SKOSPrefLabel, lang, vocabulary.LocalName(pred)),
		}
		if seen[link] {
			continue
		}
		seen[link] = true
		g.Links = append(g.Links, link)
	}

	namespaces := make(map[string]string)
	for prefix, ns := range st.Namespaces() {
		namespaces[prefix] = string(ns)
	}
	g.Meta = Meta{
		GeneratedAt: time.Now().UTC(),
		Stats:       Stats{TotalNodes: len(g.Nodes), TotalLinks: len(g.Links)},
		Namespaces:  namespaces,
	}
	return g
}

// displayText picks the annotation text for an entity: the requested
// language first, then any language, then the fallback.
func displayText(o *ontology.Ontology, subject quad.IRI, predicate quad.IRI, lang, fallback string) string {
	text := o.TextOf(subject, predicate)
	if s, ok := text[lang]; ok {
		return s
	}
	for _, l := range text.Langs() {
		return text[l]
	}
	return fallback
}

// WriteJSON writes the projection to w, indented and without HTML
// escaping, matching the definition-file conventions.
func (g *Graph) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
