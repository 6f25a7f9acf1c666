package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

func TestAddPropertyDefaultsToObjectProperty(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddProperty(Property{Name: "hasStep"}))

	assert.True(t, o.Graph().Contains(o.Resolve("hasStep"), vocabulary.RDFType, vocabulary.OWLObjectProperty))
}

func TestAddPropertyKinds(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddProperty(Property{Name: "hasDuration", Kind: DatatypeProperty}))
	require.NoError(t, o.AddProperty(Property{Name: "hasNote", Kind: AnnotationProperty}))

	assert.True(t, o.Graph().Contains(o.Resolve("hasDuration"), vocabulary.RDFType, vocabulary.OWLDatatypeProperty))
	assert.True(t, o.Graph().Contains(o.Resolve("hasNote"), vocabulary.RDFType, vocabulary.OWLAnnotationProperty))
}

func TestAddPropertyUnknownKind(t *testing.T) {
	o := newTestOntology(t)
	err := o.AddProperty(Property{Name: "hasStep", Kind: "FunctionalProperty"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestAddPropertyDomainsAndRange(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddProperty(Property{
		Name:   "hasDuration",
		Kind:   DatatypeProperty,
		Domain: []string{"Job", "Step"},
		Range:  "xsd:decimal",
	}))

	p := o.Resolve("hasDuration")
	assert.True(t, o.Graph().Contains(p, vocabulary.RDFSDomain, o.Resolve("Job")))
	assert.True(t, o.Graph().Contains(p, vocabulary.RDFSDomain, o.Resolve("Step")))
	assert.True(t, o.Graph().Contains(p, vocabulary.RDFSRange, vocabulary.XSDDecimal))
}

func TestAddPropertyDuplicateIdentifier(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddProperty(Property{Name: "hasStep"}))

	err := o.AddProperty(Property{Name: "hasStep"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateIdentifier))

	require.NoError(t, o.AddProperty(Property{Name: "hasStep", Force: true}))
}
