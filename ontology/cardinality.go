package ontology

import (
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// Cardinality constrains how many values Property takes on a class.
// Exactly is mutually exclusive with Min and Max. When OnClass is set the
// qualified-cardinality predicates are used and onClass is asserted
// exactly once, even when both Min and Max are given.
type Cardinality struct {
	Property string `json:"property"`
	OnClass  string `json:"on_class,omitempty"`
	Exactly  *int   `json:"exactly,omitempty"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
}

func (c Cardinality) validate() error {
	if c.Property == "" {
		return invalidConfiguration(errors.New("cardinality needs a property"))
	}
	if c.Exactly != nil && (c.Min != nil || c.Max != nil) {
		return invalidConfiguration(errors.Newf(
			"cardinality on %q mixes exactly with min/max", c.Property))
	}
	if c.Exactly == nil && c.Min == nil && c.Max == nil {
		return invalidConfiguration(errors.Newf(
			"cardinality on %q needs exactly, min, or max", c.Property))
	}
	return nil
}

// AddCardinalityToClass declares the class equivalent to the intersection
// of itself and an anonymous cardinality restriction.
func (o *Ontology) AddCardinalityToClass(className string, spec Cardinality) error {
	if err := spec.validate(); err != nil {
		return err
	}
	o.applyCardinality(o.Resolve(className), spec)
	return nil
}

// applyCardinality emits the equivalent-class intersection scaffolding and
// the restriction chosen by the spec. The spec must already be validated.
func (o *Ontology) applyCardinality(classIRI quad.IRI, spec Cardinality) {
	equiv := newBlankNode()
	restriction := newBlankNode()

	o.graph.Add(classIRI, vocabulary.OWLEquivalentClass, equiv)
	o.graph.Add(equiv, vocabulary.RDFType, vocabulary.OWLClass)

	// The intersection list has exactly two members: the class itself
	// and the restriction node.
	o.graph.Add(equiv, vocabulary.OWLIntersectionOf, o.newList([]quad.Value{classIRI, restriction}))

	o.graph.Add(restriction, vocabulary.RDFType, vocabulary.OWLRestriction)
	o.graph.Add(restriction, vocabulary.OWLOnProperty, o.Resolve(spec.Property))

	qualified := spec.OnClass != ""

	switch {
	case spec.Exactly != nil:
		if qualified {
			o.graph.Add(restriction, vocabulary.OWLQualifiedCardinality, nonNegativeInteger(*spec.Exactly))
			o.graph.Add(restriction, vocabulary.OWLOnClass, o.Resolve(spec.OnClass))
		} else {
			o.graph.Add(restriction, vocabulary.OWLCardinality, nonNegativeInteger(*spec.Exactly))
		}
	default:
		if spec.Min != nil {
			if qualified {
				o.graph.Add(restriction, vocabulary.OWLMinQualifiedCardinality, nonNegativeInteger(*spec.Min))
				o.graph.Add(restriction, vocabulary.OWLOnClass, o.Resolve(spec.OnClass))
			} else {
				o.graph.Add(restriction, vocabulary.OWLMinCardinality, nonNegativeInteger(*spec.Min))
			}
		}
		if spec.Max != nil {
			if qualified {
				o.graph.Add(restriction, vocabulary.OWLMaxQualifiedCardinality, nonNegativeInteger(*spec.Max))
				if spec.Min == nil {
					// onClass is asserted once; min already added it.
					o.graph.Add(restriction, vocabulary.OWLOnClass, o.Resolve(spec.OnClass))
				}
			} else {
				o.graph.Add(restriction, vocabulary.OWLMaxCardinality, nonNegativeInteger(*spec.Max))
			}
		}
	}
}

// nonNegativeInteger encodes a cardinality bound as an
// xsd:nonNegativeInteger typed literal.
func nonNegativeInteger(n int) quad.TypedString {
	return quad.TypedString{Value: quad.String(strconv.Itoa(n)), Type: vocabulary.XSDNonNegativeInteger}
}
