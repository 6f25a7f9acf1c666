// Package vocabulary provides the IRI constants and namespace helpers used
// when building ontology statements.
package vocabulary

import (
	"strings"

	"github.com/cayleygraph/quad"
)

// Namespace is a base IRI under which local names are minted.
type Namespace string

// Term returns the fully-qualified IRI for a local name in this namespace.
func (ns Namespace) Term(local string) quad.IRI {
	return quad.IRI(string(ns) + local)
}

// Base IRIs for the standard vocabularies.
const (
	RDFBase  Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSBase Namespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLBase  Namespace = "http://www.w3.org/2002/07/owl#"
	XSDBase  Namespace = "http://www.w3.org/2001/XMLSchema#"
	SKOSBase Namespace = "http://www.w3.org/2004/02/skos/core#"
)

// RDF terms.
const (
	RDFType  = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	RDFFirst = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#first")
	RDFRest  = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#rest")
	// RDFNil terminates every well-formed RDF collection.
	RDFNil = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#nil")
)

// RDFS terms.
const (
	RDFSSubClassOf = quad.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")
	RDFSComment    = quad.IRI("http://www.w3.org/2000/01/rdf-schema#comment")
	RDFSLabel      = quad.IRI("http://www.w3.org/2000/01/rdf-schema#label")
	RDFSSeeAlso    = quad.IRI("http://www.w3.org/2000/01/rdf-schema#seeAlso")
	RDFSDomain     = quad.IRI("http://www.w3.org/2000/01/rdf-schema#domain")
	RDFSRange      = quad.IRI("http://www.w3.org/2000/01/rdf-schema#range")
	RDFSDatatype   = quad.IRI("http://www.w3.org/2000/01/rdf-schema#Datatype")
)

// OWL class and property terms.
const (
	OWLClass              = quad.IRI("http://www.w3.org/2002/07/owl#Class")
	OWLObjectProperty     = quad.IRI("http://www.w3.org/2002/07/owl#ObjectProperty")
	OWLDatatypeProperty   = quad.IRI("http://www.w3.org/2002/07/owl#DatatypeProperty")
	OWLAnnotationProperty = quad.IRI("http://www.w3.org/2002/07/owl#AnnotationProperty")
	OWLEquivalentClass    = quad.IRI("http://www.w3.org/2002/07/owl#equivalentClass")
	OWLIntersectionOf     = quad.IRI("http://www.w3.org/2002/07/owl#intersectionOf")
	OWLOneOf              = quad.IRI("http://www.w3.org/2002/07/owl#oneOf")
)

// OWL restriction terms.
const (
	OWLRestriction    = quad.IRI("http://www.w3.org/2002/07/owl#Restriction")
	OWLOnProperty     = quad.IRI("http://www.w3.org/2002/07/owl#onProperty")
	OWLOnClass        = quad.IRI("http://www.w3.org/2002/07/owl#onClass")
	OWLSomeValuesFrom = quad.IRI("http://www.w3.org/2002/07/owl#someValuesFrom")
	OWLAllValuesFrom  = quad.IRI("http://www.w3.org/2002/07/owl#allValuesFrom")
	OWLHasValue       = quad.IRI("http://www.w3.org/2002/07/owl#hasValue")
)

// OWL cardinality terms.
const (
	OWLCardinality             = quad.IRI("http://www.w3.org/2002/07/owl#cardinality")
	OWLQualifiedCardinality    = quad.IRI("http://www.w3.org/2002/07/owl#qualifiedCardinality")
	OWLMinCardinality          = quad.IRI("http://www.w3.org/2002/07/owl#minCardinality")
	OWLMinQualifiedCardinality = quad.IRI("http://www.w3.org/2002/07/owl#minQualifiedCardinality")
	OWLMaxCardinality          = quad.IRI("http://www.w3.org/2002/07/owl#maxCardinality")
	OWLMaxQualifiedCardinality = quad.IRI("http://www.w3.org/2002/07/owl#maxQualifiedCardinality")
)

// SKOS terms.
const (
	SKOSPrefLabel = quad.IRI("http://www.w3.org/2004/02/skos/core#prefLabel")
)

// XSD datatypes.
const (
	XSDString             = quad.IRI("http://www.w3.org/2001/XMLSchema#string")
	XSDDecimal            = quad.IRI("http://www.w3.org/2001/XMLSchema#decimal")
	XSDNonNegativeInteger = quad.IRI("http://www.w3.org/2001/XMLSchema#nonNegativeInteger")
)

// LocalName extracts the display form of an IRI: everything after the last
// "#", or the full IRI when it carries no fragment.
func LocalName(iri quad.IRI) string {
	s := string(iri)
	if i := strings.LastIndex(s, "#"); i >= 0 {
		return s[i+1:]
	}
	return s
}
