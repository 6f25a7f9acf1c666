package ontology

import (
	"sort"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// Instance describes an individual to add to the ontology.
type Instance struct {
	// Name is the instance identifier.
	Name string

	// ClassTypes lists the classes the individual belongs to; one type
	// statement is emitted per entry.
	ClassTypes []string

	// Properties maps property names to one or more values.
	Properties map[string][]Value

	// PrefLabel and Comment are language-tagged annotations.
	PrefLabel Text
	Comment   Text

	// SourceFile is the JSON file owning this instance for write-back.
	SourceFile string

	// Force allows redefining an existing identifier.
	Force bool
}

// AddInstance adds an individual with its class memberships and property
// values. Each value is converted by the tagged-value policy: references
// and literals pass through, strings are classified (URI, blank-node
// marker, tentative prefixed name, plain text), numbers and booleans
// become typed literals.
func (o *Ontology) AddInstance(inst Instance) error {
	if len(inst.ClassTypes) == 0 {
		return invalidConfiguration(errors.Newf("instance %q needs at least one class type", inst.Name))
	}

	instIRI := o.Resolve(inst.Name)
	if err := o.register(instIRI, KindInstance, inst.Force); err != nil {
		return err
	}
	o.files.Assign(vocabulary.LocalName(instIRI), inst.SourceFile)

	for _, class := range inst.ClassTypes {
		o.graph.Add(instIRI, vocabulary.RDFType, o.Resolve(class))
	}

	if len(inst.PrefLabel) > 0 {
		o.addText(instIRI, vocabulary.SKOSPrefLabel, inst.PrefLabel)
	}
	if len(inst.Comment) > 0 {
		o.addText(instIRI, vocabulary.RDFSComment, inst.Comment)
	}

	for _, name := range sortedKeys(inst.Properties) {
		propIRI := o.Resolve(name)
		for _, value := range inst.Properties[name] {
			o.graph.Add(instIRI, propIRI, value.term(o))
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
