package ontology

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// fieldTranslation maps predicate local names to JSON field names. An
// empty target drops the statement from output entirely: a plain type
// statement is redundant with the entity living in its own JSON file.
var fieldTranslation = map[string]string{
	"prefLabel":  "pref_label",
	"subClassOf": "parent_class",
	"type":       "",
}

// Leading field order for reconstructed records; any remaining fields
// follow in sorted order.
var leadingFields = []string{"parent_class", "pref_label", "comment"}

// Record is the flat per-identifier view of an entity, derived from the
// graph. Field order at marshal time is fixed: id first, then
// parent_class, pref_label, comment when present, then the remaining
// fields sorted by name.
type Record struct {
	ID     string
	Fields map[string]any
}

// MarshalJSON writes the record with its deterministic field order and
// without escaping non-ASCII characters.
func (r Record) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(r.Fields))
	taken := make(map[string]bool, len(leadingFields))
	for _, f := range leadingFields {
		if _, ok := r.Fields[f]; ok {
			names = append(names, f)
			taken[f] = true
		}
	}
	rest := make([]string, 0, len(r.Fields))
	for f := range r.Fields {
		if !taken[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, "id", r.ID); err != nil {
		return nil, err
	}
	for _, name := range names {
		buf.WriteByte(',')
		if err := writeField(&buf, name, r.Fields[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, name string, value any) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	// Encode appends a newline; strip it to stay mid-object.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Records derives the flat record for every non-anonymous subject in the
// graph, keyed by local name. The second result lists the identifiers in
// first-seen statement order, which is the deterministic append order for
// newly added entities at dump time.
func (o *Ontology) Records() (map[string]Record, []string) {
	records := make(map[string]Record)
	var order []string

	for _, q := range o.graph.All() {
		subject, ok := q.Subject.(quad.IRI)
		if !ok {
			// Anonymous scaffolding never reaches JSON output.
			continue
		}
		pred, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}

		field := vocabulary.LocalName(pred)
		if translated, ok := fieldTranslation[field]; ok {
			if translated == "" {
				continue
			}
			field = translated
		}

		var value any
		switch obj := q.Object.(type) {
		case quad.IRI:
			value = vocabulary.LocalName(obj)
		case quad.LangString:
			value = Text{obj.Lang: string(obj.Value)}
		case quad.String:
			value = string(obj)
		case quad.TypedString:
			value = string(obj.Value)
		case quad.Int:
			value = int64(obj)
		case quad.Float:
			value = float64(obj)
		case quad.Bool:
			value = bool(obj)
		default:
			// Blank-node objects are structure already flattened by
			// the builder; nothing to emit.
			continue
		}

		id := vocabulary.LocalName(subject)
		rec, ok := records[id]
		if !ok {
			rec = Record{ID: id, Fields: make(map[string]any)}
			records[id] = rec
			order = append(order, id)
		}

		// Language fragments merge into any mapping already collected
		// for the field; everything else is last-write-wins.
		if fragment, ok := value.(Text); ok {
			if existing, ok := rec.Fields[field].(Text); ok {
				for lang, text := range fragment {
					existing[lang] = text
				}
				continue
			}
		}
		rec.Fields[field] = value
	}

	return records, order
}

// Unmapped returns the identifiers known to the graph that have no owning
// file, in collection order. They are retained in the graph but excluded
// from JSON write-back.
func (o *Ontology) Unmapped() []string {
	_, order := o.Records()
	var out []string
	for _, id := range order {
		if _, ok := o.files.Lookup(id); !ok {
			out = append(out, id)
		}
	}
	return out
}

// DumpToJSON writes every mapped identifier's record back into its owning
// file. Identifiers already present in a file keep their position; new
// identifiers are appended in collection order. Identifiers with no owning
// file are never written and are reported in aggregate as a warning.
//
// A failure while reading or merging a file aborts that file before its
// destination is opened, so no partially merged output is ever produced.
func (o *Ontology) DumpToJSON() error {
	log := o.log.Named("dump")

	records, order := o.Records()
	log.Infow("dumping ontology to json", "records", len(records))

	grouped := make(map[string]map[string]Record)
	var fileOrder []string
	var unmapped []string
	perFileOrder := make(map[string][]string)

	for _, id := range order {
		file, ok := o.files.Lookup(id)
		if !ok {
			unmapped = append(unmapped, id)
			continue
		}
		if _, ok := grouped[file]; !ok {
			grouped[file] = make(map[string]Record)
			fileOrder = append(fileOrder, file)
		}
		grouped[file][id] = records[id]
		perFileOrder[file] = append(perFileOrder[file], id)
	}

	for _, file := range fileOrder {
		if err := o.writeFile(file, grouped[file], perFileOrder[file]); err != nil {
			return errors.Wrapf(err, "dumping ontology file %s", file)
		}
	}

	if len(unmapped) > 0 {
		log.Warnw("entities without an assigned JSON file were not written",
			"count", len(unmapped), "ids", unmapped)
	}
	return nil
}

// writeFile merges the projected records with file's current content and
// overwrites it with the full record list.
func (o *Ontology) writeFile(file string, entries map[string]Record, newOrder []string) error {
	existing, existingOrder, err := readExistingRecords(file)
	if err != nil {
		return err
	}

	out := make([]json.RawMessage, 0, len(existingOrder)+len(entries))

	for _, id := range existingOrder {
		if rec, ok := entries[id]; ok {
			data, err := encodeRecord(rec)
			if err != nil {
				return err
			}
			out = append(out, data)
			delete(entries, id)
			continue
		}
		// Present on disk but absent from the graph: keep the record
		// as it was rather than dropping data.
		out = append(out, existing[id])
	}

	for _, id := range newOrder {
		rec, ok := entries[id]
		if !ok {
			continue // already merged into its existing position
		}
		data, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		out = append(out, data)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	// Encoder already terminates the output with a newline.
	return os.WriteFile(file, buf.Bytes(), 0o644)
}

// encodeRecord marshals a record without the HTML escaping plain
// json.Marshal would apply on top of the record's own encoder settings.
func encodeRecord(rec Record) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// readExistingRecords loads a file's current records and their identifier
// order. A missing file is an empty ordering; a malformed file is a fatal
// error for the dump.
func readExistingRecords(file string) (map[string]json.RawMessage, []string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.Wrap(err, "existing file is not a JSON record array")
	}

	byID := make(map[string]json.RawMessage, len(raw))
	order := make([]string, 0, len(raw))
	for _, msg := range raw {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return nil, nil, errors.Wrap(err, "existing record is not an object")
		}
		if _, seen := byID[head.ID]; seen {
			continue // deduplicate by identifier, first occurrence wins
		}
		byID[head.ID] = msg
		order = append(order, head.ID)
	}
	return byID, order, nil
}
