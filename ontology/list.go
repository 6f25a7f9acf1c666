package ontology

import (
	"github.com/cayleygraph/quad"
	"github.com/google/uuid"

	"github.com/exa-atow/ontogen/vocabulary"
)

// newBlankNode allocates an anonymous node. The generated id never leaves
// the graph: anonymous nodes are structural scaffolding for restrictions
// and list cells, are never entries in the source-file map, and never
// appear in reconstructed JSON records.
func newBlankNode() quad.BNode {
	return quad.BNode(uuid.NewString())
}

// newList builds an RDF collection of the given values: one anonymous cell
// per value chained by rdf:rest links, each value attached via rdf:first,
// the last cell terminated with rdf:nil. An empty sequence is rdf:nil
// itself. For N values this emits exactly N first statements and N rest
// statements.
func (o *Ontology) newList(values []quad.Value) quad.Value {
	if len(values) == 0 {
		return vocabulary.RDFNil
	}

	head := newBlankNode()
	cell := head
	for i, v := range values {
		o.graph.Add(cell, vocabulary.RDFFirst, v)
		if i == len(values)-1 {
			o.graph.Add(cell, vocabulary.RDFRest, vocabulary.RDFNil)
			break
		}
		next := newBlankNode()
		o.graph.Add(cell, vocabulary.RDFRest, next)
		cell = next
	}
	return head
}
