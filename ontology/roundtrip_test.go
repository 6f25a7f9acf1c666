package ontology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsDropTypeAndTranslateFields(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{
		Name:      "Job",
		Parent:    "Workflow",
		PrefLabel: Text{"en": "Job"},
	}))

	records, order := o.Records()
	require.Contains(t, records, "Job")
	assert.Contains(t, order, "Job")

	rec := records["Job"]
	assert.Equal(t, "Workflow", rec.Fields["parent_class"])
	assert.Equal(t, Text{"en": "Job"}, rec.Fields["pref_label"])
	assert.NotContains(t, rec.Fields, "type")
	assert.NotContains(t, rec.Fields, "subClassOf")
	assert.NotContains(t, rec.Fields, "prefLabel")
}

func TestRecordsSkipAnonymousStructure(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{
		Name:  "Weekday",
		OneOf: []string{"Monday", "Tuesday"},
	}))

	records, _ := o.Records()
	rec := records["Weekday"]
	// The enumeration lives on anonymous nodes and never reaches the
	// flat record.
	assert.NotContains(t, rec.Fields, "equivalentClass")
	assert.NotContains(t, rec.Fields, "oneOf")
}

func TestRecordMarshalFieldOrder(t *testing.T) {
	rec := Record{
		ID: "Job",
		Fields: map[string]any{
			"seeAlso":      "https://example.org/docs?a=1&b=2",
			"comment":      Text{"en": "c"},
			"pref_label":   Text{"en": "Job"},
			"parent_class": "Workflow",
			"alpha":        "x",
		},
	}
	data, err := rec.MarshalJSON()
	require.NoError(t, err)

	want := `{"id":"Job","parent_class":"Workflow","pref_label":{"en":"Job"},` +
		`"comment":{"en":"c"},"alpha":"x","seeAlso":"https://example.org/docs?a=1&b=2"}`
	assert.Equal(t, want, string(data))
}

func TestDumpRoundTripIsByteStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")

	content := `[
  {
    "id": "Job",
    "parent_class": "Workflow",
    "pref_label": {
      "en": "Job",
      "fr": "Tâche"
    },
    "comment": {
      "en": "A scheduled unit of work."
    }
  }
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadClasses("classes.json", ""))
	require.NoError(t, o.DumpToJSON())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestDumpPreservesOrderAndAppendsNew(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")

	content := `[
  {"id": "Alpha", "pref_label": {"en": "Alpha"}},
  {"id": "Gamma", "pref_label": {"en": "Gamma"}},
  {"id": "Beta", "pref_label": {"en": "Beta"}}
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadClasses("classes.json", ""))
	require.NoError(t, o.AddClass(Class{
		Name:       "Delta",
		PrefLabel:  Text{"en": "Delta"},
		SourceFile: path,
	}))
	require.NoError(t, o.DumpToJSON())

	_, order, err := readExistingRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Gamma", "Beta", "Delta"}, order)
}

func TestDumpKeepsOnDiskRecordsAbsentFromGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")

	content := `[
  {"id": "Legacy", "pref_label": {"en": "Legacy"}, "custom_field": 7},
  {"id": "Job", "pref_label": {"en": "Old label"}}
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.AddClass(Class{
		Name:       "Job",
		PrefLabel:  Text{"en": "New label"},
		SourceFile: path,
	}))
	require.NoError(t, o.DumpToJSON())

	byID, order, err := readExistingRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Legacy", "Job"}, order)
	assert.Contains(t, string(byID["Legacy"]), "custom_field")
	assert.Contains(t, string(byID["Job"]), "New label")
	assert.NotContains(t, string(byID["Job"]), "Old label")
}

func TestDumpSkipsUnmappedEntities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.AddClass(Class{
		Name:       "Job",
		PrefLabel:  Text{"en": "Job"},
		SourceFile: path,
	}))
	require.NoError(t, o.AddClass(Class{Name: "Orphan", PrefLabel: Text{"en": "Orphan"}}))

	unmapped := o.Unmapped()
	assert.Contains(t, unmapped, "Orphan")
	assert.NotContains(t, unmapped, "Job")

	require.NoError(t, o.DumpToJSON())
	_, order, err := readExistingRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Job"}, order)
}

func TestDumpFailsOnMalformedExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.AddClass(Class{Name: "Job", SourceFile: path}))
	require.Error(t, o.DumpToJSON())
}
