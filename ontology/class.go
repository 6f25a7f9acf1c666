package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/vocabulary"
)

// Class describes a class to add to the ontology. Name is required; every
// other field is optional.
type Class struct {
	// Name is the class identifier: a bare local name, a prefixed name,
	// or an absolute URI.
	Name string

	// Parent links the class to its superclass.
	Parent string

	// Equivalent asserts an equivalent class.
	Equivalent string

	// PrefLabel and Comment are language-tagged annotations.
	PrefLabel Text
	Comment   Text

	// LinkHTML attaches an external documentation link via rdfs:seeAlso.
	LinkHTML string

	// OneOf enumerates the individuals the class consists of exactly.
	OneOf []string

	// Restrictions are property restrictions applied to the class, each
	// as an independent anonymous restriction node.
	Restrictions []Restriction

	// Cardinality constrains a property's occurrence on the class.
	Cardinality *Cardinality

	// SourceFile is the JSON file owning this class for write-back.
	SourceFile string

	// Force allows redefining an existing identifier.
	Force bool
}

// AddClass adds a class declaration and its optional axioms to the graph.
//
// The identifier must not already exist unless Force is set. Restriction
// and cardinality specs are validated before any statement is emitted, so
// an invalid spec leaves the graph untouched.
func (o *Ontology) AddClass(c Class) error {
	for i := range c.Restrictions {
		if err := c.Restrictions[i].validate(); err != nil {
			return err
		}
	}
	if c.Cardinality != nil {
		if err := c.Cardinality.validate(); err != nil {
			return err
		}
	}

	classIRI := o.Resolve(c.Name)
	if err := o.register(classIRI, KindClass, c.Force); err != nil {
		return err
	}
	o.files.Assign(vocabulary.LocalName(classIRI), c.SourceFile)

	o.graph.Add(classIRI, vocabulary.RDFType, vocabulary.OWLClass)

	if c.Parent != "" {
		o.graph.Add(classIRI, vocabulary.RDFSSubClassOf, o.Resolve(c.Parent))
	}
	if c.Equivalent != "" {
		o.graph.Add(classIRI, vocabulary.OWLEquivalentClass, o.Resolve(c.Equivalent))
	}

	if len(c.OneOf) > 0 {
		o.addOneOf(classIRI, c.OneOf)
	}

	for i := range c.Restrictions {
		o.applyRestriction(classIRI, c.Restrictions[i])
	}
	if c.Cardinality != nil {
		o.applyCardinality(classIRI, *c.Cardinality)
	}

	if c.LinkHTML != "" {
		o.graph.Add(classIRI, vocabulary.RDFSSeeAlso, quad.IRI(c.LinkHTML))
	}

	if len(c.PrefLabel) > 0 {
		o.addText(classIRI, vocabulary.SKOSPrefLabel, c.PrefLabel)
	}
	if len(c.Comment) > 0 {
		o.addText(classIRI, vocabulary.RDFSComment, c.Comment)
	}
	return nil
}

// addOneOf declares the class equivalent to an anonymous enumeration class
// whose owl:oneOf list holds the given individuals.
func (o *Ontology) addOneOf(classIRI quad.IRI, individuals []string) {
	members := make([]quad.Value, len(individuals))
	for i, name := range individuals {
		members[i] = o.Resolve(name)
	}

	enum := newBlankNode()
	o.graph.Add(classIRI, vocabulary.OWLEquivalentClass, enum)
	o.graph.Add(enum, vocabulary.RDFType, vocabulary.OWLClass)
	o.graph.Add(enum, vocabulary.OWLOneOf, o.newList(members))
}
