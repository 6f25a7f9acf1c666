package ontology

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

func TestAddInstanceRequiresClassType(t *testing.T) {
	o := newTestOntology(t)
	err := o.AddInstance(Instance{Name: "job42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestAddInstanceMultipleTypes(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddInstance(Instance{
		Name:       "job42",
		ClassTypes: []string{"Job", "eurio:Activity"},
	}))

	inst := o.Resolve("job42")
	assert.True(t, o.Graph().Contains(inst, vocabulary.RDFType, o.Resolve("Job")))
	assert.True(t, o.Graph().Contains(inst, vocabulary.RDFType, quad.IRI("http://data.europa.eu/s66#Activity")))
}

func TestAddInstancePropertyValues(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddInstance(Instance{
		Name:       "job42",
		ClassTypes: []string{"Job"},
		Properties: map[string][]Value{
			"hasState":    {Str("running")},
			"hasDuration": {Num(12.5)},
			"hasRetries":  {Num(3)},
			"isActive":    {{Kind: KindBool, Bool: true}},
			"partOf":      {Ref("Workflow")},
		},
	}))

	inst := o.Resolve("job42")
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasState"), quad.String("running")))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasDuration"), quad.Float(12.5)))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasRetries"), quad.Int(3)), "integral numbers become integer literals")
	assert.True(t, o.Graph().Contains(inst, o.Resolve("isActive"), quad.Bool(true)))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("partOf"), o.Resolve("Workflow")))
}

func TestAddInstanceNumbersBeyondInt64StayFloats(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddInstance(Instance{
		Name:       "job42",
		ClassTypes: []string{"Job"},
		Properties: map[string][]Value{
			"hasFlops":  {Num(1e20)},
			"hasOffset": {Num(-1e20)},
			"hasFloor":  {Num(math.MinInt64)},
		},
	}))

	inst := o.Resolve("job42")
	// Whole values outside the int64 range must keep their magnitude as
	// float literals instead of wrapping through an integer conversion.
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasFlops"), quad.Float(1e20)))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasOffset"), quad.Float(-1e20)))
	// -2^63 is exactly representable and still fits.
	assert.True(t, o.Graph().Contains(inst, o.Resolve("hasFloor"), quad.Int(math.MinInt64)))
}

func TestAddInstanceMultiValuedProperty(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddInstance(Instance{
		Name:       "job42",
		ClassTypes: []string{"Job"},
		Properties: map[string][]Value{
			"hasTag": {Str("batch"), Str("gpu")},
		},
	}))

	assert.Len(t, o.Graph().Match(o.Resolve("job42"), o.Resolve("hasTag"), nil), 2)
}

func TestInstanceStringClassification(t *testing.T) {
	o := newTestOntology(t)
	require.NoError(t, o.AddInstance(Instance{
		Name:       "job42",
		ClassTypes: []string{"Job"},
		Properties: map[string][]Value{
			"ref":      {Str("https://example.org/elsewhere#Thing")},
			"anon":     {Str("_:node7")},
			"known":    {Str("eurio:Result")},
			"unknown":  {Str("nope:Thing")},
			"duration": {Str("12:30")},
		},
	}))

	inst := o.Resolve("job42")
	assert.True(t, o.Graph().Contains(inst, o.Resolve("ref"), quad.IRI("https://example.org/elsewhere#Thing")))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("anon"), quad.BNode("node7")))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("known"), quad.IRI("http://data.europa.eu/s66#Result")))
	// A colon with no bound prefix keeps the whole token as a plain literal.
	assert.True(t, o.Graph().Contains(inst, o.Resolve("unknown"), quad.String("nope:Thing")))
	assert.True(t, o.Graph().Contains(inst, o.Resolve("duration"), quad.String("12:30")))
}

func TestValueUnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want Value
	}{
		{`"hello"`, Value{Kind: KindText, Str: "hello"}},
		{`42`, Value{Kind: KindNumber, Number: 42}},
		{`2.5`, Value{Kind: KindNumber, Number: 2.5}},
		{`true`, Value{Kind: KindBool, Bool: true}},
	}
	for _, tc := range cases {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &v))
		assert.Equal(t, tc.want, v, tc.raw)
	}

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"nested": true}`), &v))
}
