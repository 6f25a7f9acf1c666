package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// PropertyKind selects the OWL property type.
type PropertyKind string

// Recognized property kinds.
const (
	ObjectProperty     PropertyKind = "ObjectProperty"
	DatatypeProperty   PropertyKind = "DatatypeProperty"
	AnnotationProperty PropertyKind = "AnnotationProperty"
)

// typeIRI maps the kind to its OWL type. Unknown kinds are a configuration
// error, never silently defaulted.
func (k PropertyKind) typeIRI() (quad.IRI, error) {
	switch k {
	case ObjectProperty:
		return vocabulary.OWLObjectProperty, nil
	case DatatypeProperty:
		return vocabulary.OWLDatatypeProperty, nil
	case AnnotationProperty:
		return vocabulary.OWLAnnotationProperty, nil
	default:
		return "", invalidConfiguration(errors.Newf(
			"invalid property type %q: must be one of %q, %q, %q",
			string(k), ObjectProperty, DatatypeProperty, AnnotationProperty))
	}
}

// Property describes a property to add to the ontology.
type Property struct {
	// Name is the property identifier.
	Name string

	// Kind is the OWL property type. Empty defaults to ObjectProperty.
	Kind PropertyKind

	// Domain lists the classes the property applies to; each entry gets
	// its own domain statement.
	Domain []string

	// Range is the class or datatype of the property's values.
	Range string

	// PrefLabel and Comment are language-tagged annotations.
	PrefLabel Text
	Comment   Text

	// SourceFile is the JSON file owning this property for write-back.
	SourceFile string

	// Force allows redefining an existing identifier.
	Force bool
}

// AddProperty adds a property declaration with optional domain, range, and
// annotations.
func (o *Ontology) AddProperty(p Property) error {
	kind := p.Kind
	if kind == "" {
		kind = ObjectProperty
	}
	typeIRI, err := kind.typeIRI()
	if err != nil {
		return err
	}

	propIRI := o.Resolve(p.Name)
	if err := o.register(propIRI, KindProperty, p.Force); err != nil {
		return err
	}
	o.files.Assign(vocabulary.LocalName(propIRI), p.SourceFile)

	o.graph.Add(propIRI, vocabulary.RDFType, typeIRI)

	for _, domain := range p.Domain {
		o.graph.Add(propIRI, vocabulary.RDFSDomain, o.Resolve(domain))
	}
	if p.Range != "" {
		o.graph.Add(propIRI, vocabulary.RDFSRange, o.Resolve(p.Range))
	}

	if len(p.PrefLabel) > 0 {
		o.addText(propIRI, vocabulary.SKOSPrefLabel, p.PrefLabel)
	}
	if len(p.Comment) > 0 {
		o.addText(propIRI, vocabulary.RDFSComment, p.Comment)
	}
	return nil
}
