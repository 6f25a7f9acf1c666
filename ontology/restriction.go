package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// Restriction constrains a property's values on a class. Exactly one of
// SomeValuesFrom, AllValuesFrom, HasValue, or Enumeration must be set.
type Restriction struct {
	// Property is the restricted property.
	Property string `json:"property"`

	// SomeValuesFrom requires at least one value from the given class.
	SomeValuesFrom string `json:"some_values_from,omitempty"`

	// AllValuesFrom requires every value to come from the given class or
	// datatype.
	AllValuesFrom string `json:"all_values_from,omitempty"`

	// HasValue requires the given specific value.
	HasValue string `json:"has_value,omitempty"`

	// Enumeration requires every value to come from this closed set of
	// strings, modeled as an anonymous datatype.
	Enumeration []string `json:"enumeration,omitempty"`

	// Comment annotates the restriction node itself.
	Comment Text `json:"comment,omitempty"`
}

func (r Restriction) validate() error {
	if r.Property == "" {
		return invalidConfiguration(errors.New("restriction needs a property"))
	}
	set := 0
	if r.SomeValuesFrom != "" {
		set++
	}
	if r.AllValuesFrom != "" {
		set++
	}
	if r.HasValue != "" {
		set++
	}
	if len(r.Enumeration) > 0 {
		set++
	}
	if set != 1 {
		return invalidConfiguration(errors.Newf(
			"restriction on %q needs exactly one of some_values_from, all_values_from, has_value, enumeration",
			r.Property))
	}
	return nil
}

// AddRestrictionToClass attaches a property restriction to an existing
// class without redefining it. Each call adds an independent anonymous
// restriction node; restrictions stack rather than merge.
func (o *Ontology) AddRestrictionToClass(className string, r Restriction) error {
	if err := r.validate(); err != nil {
		return err
	}
	o.applyRestriction(o.Resolve(className), r)
	return nil
}

// applyRestriction emits the restriction body and links it to the class
// via a subClassOf statement. The restriction must already be validated.
func (o *Ontology) applyRestriction(classIRI quad.IRI, r Restriction) {
	node := newBlankNode()
	o.graph.Add(node, vocabulary.RDFType, vocabulary.OWLRestriction)
	o.graph.Add(node, vocabulary.OWLOnProperty, o.Resolve(r.Property))

	switch {
	case len(r.Enumeration) > 0:
		// A closed set of string values: an anonymous datatype whose
		// oneOf list carries one xsd:string literal per entry.
		members := make([]quad.Value, len(r.Enumeration))
		for i, v := range r.Enumeration {
			members[i] = quad.TypedString{Value: quad.String(v), Type: vocabulary.XSDString}
		}
		datatype := newBlankNode()
		o.graph.Add(datatype, vocabulary.RDFType, vocabulary.RDFSDatatype)
		o.graph.Add(datatype, vocabulary.OWLOneOf, o.newList(members))
		o.graph.Add(node, vocabulary.OWLAllValuesFrom, datatype)

	case r.SomeValuesFrom != "":
		o.graph.Add(node, vocabulary.OWLSomeValuesFrom, o.Resolve(r.SomeValuesFrom))

	case r.AllValuesFrom != "":
		o.graph.Add(node, vocabulary.OWLAllValuesFrom, o.Resolve(r.AllValuesFrom))

	case r.HasValue != "":
		o.graph.Add(node, vocabulary.OWLHasValue, o.Resolve(r.HasValue))
	}

	if len(r.Comment) > 0 {
		// The comment annotates the restriction node, not the class.
		o.addText(node, vocabulary.RDFSComment, r.Comment)
	}

	o.graph.Add(classIRI, vocabulary.RDFSSubClassOf, node)
}
