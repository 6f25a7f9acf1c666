package ontology

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

func intp(n int) *int { return &n }

// cardinalityRestriction finds the single restriction node emitted by a
// cardinality declaration on the given class.
func cardinalityRestriction(t *testing.T, o *Ontology, class string) quad.BNode {
	t.Helper()
	restrictions := o.Graph().Match(nil, vocabulary.RDFType, vocabulary.OWLRestriction)
	require.Len(t, restrictions, 1)
	node, ok := restrictions[0].Subject.(quad.BNode)
	require.True(t, ok)
	return node
}

func TestCardinalityExactly(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.AddCardinalityToClass("Job", Cardinality{
		Property: "hasStep",
		Exactly:  intp(3),
	}))

	node := cardinalityRestriction(t, o, "Job")
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLCardinality, nonNegativeInteger(3)))
	assert.Empty(t, o.Graph().Match(node, vocabulary.OWLOnClass, nil))
}

func TestCardinalityExactlyQualified(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.AddCardinalityToClass("Job", Cardinality{
		Property: "hasStep",
		OnClass:  "Step",
		Exactly:  intp(3),
	}))

	node := cardinalityRestriction(t, o, "Job")
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLQualifiedCardinality, nonNegativeInteger(3)))
	assert.Len(t, o.Graph().Match(node, vocabulary.OWLOnClass, nil), 1)
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLOnClass, o.Resolve("Step")))
}

func TestCardinalityMinMaxQualifiedSingleOnClass(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.AddCardinalityToClass("Job", Cardinality{
		Property: "hasStep",
		OnClass:  "Step",
		Min:      intp(1),
		Max:      intp(4),
	}))

	node := cardinalityRestriction(t, o, "Job")
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLMinQualifiedCardinality, nonNegativeInteger(1)))
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLMaxQualifiedCardinality, nonNegativeInteger(4)))
	assert.Len(t, o.Graph().Match(node, vocabulary.OWLOnClass, nil), 1, "onClass asserted once for min and max together")
}

func TestCardinalityMaxOnlyUnqualified(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.AddCardinalityToClass("Job", Cardinality{
		Property: "hasStep",
		Max:      intp(2),
	}))

	node := cardinalityRestriction(t, o, "Job")
	assert.True(t, o.Graph().Contains(node, vocabulary.OWLMaxCardinality, nonNegativeInteger(2)))
	assert.Empty(t, o.Graph().Match(node, vocabulary.OWLOnClass, nil))
}

func TestCardinalityIntersectionScaffolding(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddClass(Class{Name: "Job"}))
	require.NoError(t, o.AddCardinalityToClass("Job", Cardinality{
		Property: "hasStep",
		Exactly:  intp(1),
	}))

	job := o.Resolve("Job")
	equivalents := o.Graph().Match(job, vocabulary.OWLEquivalentClass, nil)
	require.Len(t, equivalents, 1)
	equiv, ok := equivalents[0].Object.(quad.BNode)
	require.True(t, ok)

	assert.True(t, o.Graph().Contains(equiv, vocabulary.RDFType, vocabulary.OWLClass))

	intersections := o.Graph().Match(equiv, vocabulary.OWLIntersectionOf, nil)
	require.Len(t, intersections, 1)

	// Two-member intersection: the class itself then the restriction.
	head, ok := intersections[0].Object.(quad.BNode)
	require.True(t, ok)
	firsts := o.Graph().Match(head, vocabulary.RDFFirst, nil)
	require.Len(t, firsts, 1)
	assert.Equal(t, quad.Value(job), firsts[0].Object)

	rests := o.Graph().Match(head, vocabulary.RDFRest, nil)
	require.Len(t, rests, 1)
	tail, ok := rests[0].Object.(quad.BNode)
	require.True(t, ok)
	assert.True(t, o.Graph().Contains(tail, vocabulary.RDFRest, vocabulary.RDFNil))
}

func TestCardinalityValidation(t *testing.T) {
	cases := []struct {
		name string
		spec Cardinality
	}{
		{"missing property", Cardinality{Exactly: intp(1)}},
		{"exactly with min", Cardinality{Property: "hasStep", Exactly: intp(1), Min: intp(1)}},
		{"exactly with max", Cardinality{Property: "hasStep", Exactly: intp(1), Max: intp(2)}},
		{"no bound", Cardinality{Property: "hasStep"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOntology(t)
			require.NoError(t, o.AddClass(Class{Name: "Job"}))
			err := o.AddCardinalityToClass("Job", tc.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}
}
