package ontology

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exa-atow/ontogen/vocabulary"
)

func writeDefinitions(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClassesAppliesDefaultParent(t *testing.T) {
	dir := t.TempDir()
	writeDefinitions(t, dir, "classes.json", `[
  {"id": "Job"},
  {"id": "Step", "parent_class": "Stage"}
]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadClasses("classes.json", "Workflow"))

	assert.True(t, o.Graph().Contains(o.Resolve("Job"), vocabulary.RDFSSubClassOf, o.Resolve("Workflow")))
	assert.True(t, o.Graph().Contains(o.Resolve("Step"), vocabulary.RDFSSubClassOf, o.Resolve("Stage")))
}

func TestLoadClassesAssignsOwningFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDefinitions(t, dir, "classes.json", `[{"id": "Job"}]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadClasses("classes.json", ""))

	file, ok := o.SourceFiles().Lookup("Job")
	require.True(t, ok)
	assert.Equal(t, path, file)
}

func TestLoadClassesNullAnnotationsStayAbsent(t *testing.T) {
	dir := t.TempDir()
	writeDefinitions(t, dir, "classes.json", `[
  {"id": "Job", "pref_label": null, "comment": null}
]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadClasses("classes.json", ""))

	job := o.Resolve("Job")
	assert.Empty(t, o.Graph().Match(job, vocabulary.SKOSPrefLabel, nil))
	assert.Empty(t, o.Graph().Match(job, vocabulary.RDFSComment, nil))
}

func TestLoadClassesMissingFileIsFatal(t *testing.T) {
	o := newTestOntologyIn(t, t.TempDir())
	require.Error(t, o.LoadClasses("classes.json", ""))
}

func TestLoadPropertiesSingleAndListDomain(t *testing.T) {
	dir := t.TempDir()
	writeDefinitions(t, dir, "properties.json", `[
  {"id": "partOf", "domain": "Step", "range": "Job"},
  {"id": "hasDuration", "property_type": "DatatypeProperty", "domain": ["Job", "Step"], "range": "xsd:decimal"}
]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadProperties("properties.json"))

	assert.True(t, o.Graph().Contains(o.Resolve("partOf"), vocabulary.RDFType, vocabulary.OWLObjectProperty))
	assert.True(t, o.Graph().Contains(o.Resolve("partOf"), vocabulary.RDFSDomain, o.Resolve("Step")))
	assert.True(t, o.Graph().Contains(o.Resolve("hasDuration"), vocabulary.RDFType, vocabulary.OWLDatatypeProperty))
	assert.True(t, o.Graph().Contains(o.Resolve("hasDuration"), vocabulary.RDFSDomain, o.Resolve("Job")))
	assert.True(t, o.Graph().Contains(o.Resolve("hasDuration"), vocabulary.RDFSDomain, o.Resolve("Step")))
}

func TestLoadInstancesMissingFileIsSkipped(t *testing.T) {
	o := newTestOntologyIn(t, t.TempDir())
	before := o.Graph().Len()
	require.NoError(t, o.LoadInstances("instances.json"))
	assert.Equal(t, before, o.Graph().Len())
}

func TestLoadInstancesScalarAndListValues(t *testing.T) {
	dir := t.TempDir()
	writeDefinitions(t, dir, "instances.json", `[
  {
    "id": "job42",
    "class_type": "Job",
    "properties": {
      "hasState": "running",
      "hasTag": ["batch", "gpu"],
      "hasRetries": 3
    },
    "json_path": "jobs.json"
  }
]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.LoadInstances("instances.json"))

	inst := o.Resolve("job42")
	assert.True(t, o.Graph().Contains(inst, vocabulary.RDFType, o.Resolve("Job")))
	assert.Len(t, o.Graph().Match(inst, o.Resolve("hasTag"), nil), 2)
	assert.Len(t, o.Graph().Match(inst, o.Resolve("hasRetries"), nil), 1)

	file, ok := o.SourceFiles().Lookup("job42")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "jobs.json"), file)
}

func TestLoadRestrictionsMissingFileIsSkipped(t *testing.T) {
	o := newTestOntologyIn(t, t.TempDir())
	require.NoError(t, o.LoadRestrictions("restrictions.json"))
}

func TestLoadRestrictionsAppliesPerClass(t *testing.T) {
	dir := t.TempDir()
	writeDefinitions(t, dir, "restrictions.json", `[
  {
    "class_name": "Job",
    "restrictions": [
      {"property_name": "hasUnit", "enumeration": ["seconds", "minutes"]},
      {"property_name": "hasValue", "all_values_from": "xsd:decimal"}
    ]
  }
]`)

	o := newTestOntologyIn(t, dir)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.LoadRestrictions("restrictions.json"))

	var anonymousParents int
	for _, q := range o.Graph().Match(o.Resolve("Job"), vocabulary.RDFSSubClassOf, nil) {
		if _, ok := q.Object.(quad.BNode); ok {
			anonymousParents++
		}
	}
	assert.Equal(t, 2, anonymousParents)
}

func TestStringListShapes(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"single"`), &l))
	assert.Equal(t, StringList{"single"}, l)

	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &l))
	assert.Equal(t, StringList{"a", "b"}, l)

	assert.Error(t, json.Unmarshal([]byte(`7`), &l))
}

func TestValueListShapes(t *testing.T) {
	var l ValueList
	require.NoError(t, json.Unmarshal([]byte(`"one"`), &l))
	require.Len(t, l, 1)
	assert.Equal(t, Value{Kind: KindText, Str: "one"}, l[0])

	require.NoError(t, json.Unmarshal([]byte(`["a", 2, true]`), &l))
	require.Len(t, l, 3)
	assert.Equal(t, KindNumber, l[1].Kind)
	assert.Equal(t, KindBool, l[2].Kind)
}
