// Package ontology implements the semantic graph engine: axiom
// construction over an append-only statement store, deterministic
// identifier resolution, and bidirectional synchronization with the JSON
// definition files the graph was built from.
//
// The Store is the single source of truth. No entity object is kept in
// sync with it; the flat per-identifier records written back to JSON are a
// pure projection recomputed at every dump.
package ontology

import (
	"os"
	"strings"

	"github.com/cayleygraph/quad"
	"go.uber.org/zap"

	"github.com/exa-atow/ontogen/config"
	"github.com/exa-atow/ontogen/logger"
	"github.com/exa-atow/ontogen/vocabulary"
)

// EntityKind classifies a registered identifier.
type EntityKind string

// Entity kinds tracked for duplicate detection.
const (
	KindClass    EntityKind = "class"
	KindProperty EntityKind = "property"
	KindInstance EntityKind = "instance"
)

// Ontology is the manager tying the statement store, namespace bindings,
// and source-file tracking together. State is process-wide mutable and
// scoped to one instance; it is not safe for use from more than one
// goroutine without external synchronization.
type Ontology struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	graph *Store
	files *SourceFileMap

	// onto is the ontology's own namespace, the default for bare local
	// names and the fallback for unknown prefixes.
	onto vocabulary.Namespace

	filesDir string
	kinds    map[quad.IRI]EntityKind
}

// New creates an ontology manager for the given configuration. The
// standard namespaces are bound, extra bindings from the configuration
// applied, and the built-in measurement properties declared.
func New(cfg *config.Config) (*Ontology, error) {
	base := strings.TrimRight(cfg.BaseURI, " ")
	if !strings.HasSuffix(base, "#") {
		base += "#"
	}

	// Use the files directory only when it actually exists, so a bare
	// checkout still allows absolute definition paths.
	filesDir := ""
	if _, err := os.Stat(cfg.FilesDir); err == nil {
		filesDir = cfg.FilesDir
	}

	o := &Ontology{
		cfg:      cfg,
		log:      logger.Logger.Named("ontology"),
		graph:    NewStore(),
		onto:     vocabulary.Namespace(base),
		filesDir: filesDir,
		files:    NewSourceFileMap(filesDir),
		kinds:    make(map[quad.IRI]EntityKind),
	}

	o.bindNamespaces()

	if err := o.initBasicStructure(); err != nil {
		return nil, err
	}
	return o, nil
}

// bindNamespaces installs the standard prefix table plus any extra
// bindings from the configuration.
func (o *Ontology) bindNamespaces() {
	o.graph.Bind("onto", o.onto)
	o.graph.Bind("skos", vocabulary.SKOSBase)
	o.graph.Bind("owl", vocabulary.OWLBase)
	o.graph.Bind("rdf", vocabulary.RDFBase)
	o.graph.Bind("rdfs", vocabulary.RDFSBase)
	o.graph.Bind("xsd", vocabulary.XSDBase)
	o.graph.Bind("eurio", "http://data.europa.eu/s66#")
	o.graph.Bind("hpc_onto", "https://hpc-fair.github.io/ontology/#")

	for prefix, uri := range o.cfg.Namespaces {
		o.graph.Bind(prefix, vocabulary.Namespace(uri))
	}
}

// initBasicStructure declares the measurement properties every ontology
// built by this engine carries.
func (o *Ontology) initBasicStructure() error {
	if err := o.AddProperty(Property{
		Name:      "hasValue",
		Kind:      DatatypeProperty,
		Range:     "xsd:decimal",
		PrefLabel: Text{"en": "has numeric value", "fr": "a valeur numérique"},
		Comment:   Text{"en": "Numeric value.", "fr": "Valeur numérique"},
	}); err != nil {
		return err
	}
	return o.AddProperty(Property{
		Name:      "hasUnit",
		Kind:      DatatypeProperty,
		Range:     "xsd:string",
		PrefLabel: Text{"en": "has unit", "fr": "a unité"},
		Comment:   Text{"en": "Unit of measurement.", "fr": "Unité de mesure"},
	})
}

// Graph returns the underlying statement store.
func (o *Ontology) Graph() *Store {
	return o.graph
}

// Namespace returns the ontology's own namespace.
func (o *Ontology) Namespace() vocabulary.Namespace {
	return o.onto
}

// SourceFiles returns the identifier-to-file ownership map.
func (o *Ontology) SourceFiles() *SourceFileMap {
	return o.files
}

// register records an identifier for duplicate detection. Without force, a
// second registration of the same identifier is a hard failure.
func (o *Ontology) register(id quad.IRI, kind EntityKind, force bool) error {
	if existing, ok := o.kinds[id]; ok && !force {
		return duplicateIdentifier(existing, id)
	}
	o.kinds[id] = kind
	return nil
}

// addText expands a language map into literal statements on subject.
func (o *Ontology) addText(subject quad.Value, predicate quad.IRI, value Text) {
	expandText(o.graph, subject, predicate, value, o.cfg.DefaultLang)
}

// Stats summarizes the graph for reporting.
type Stats struct {
	Statements int `json:"statements"`
	Namespaces int `json:"namespaces"`
	Classes    int `json:"classes"`
	Properties int `json:"properties"`
	Instances  int `json:"instances"`
}

// Stats returns current graph counts.
func (o *Ontology) Stats() Stats {
	st := Stats{
		Statements: o.graph.Len(),
		Namespaces: len(o.graph.Namespaces()),
	}
	for _, kind := range o.kinds {
		switch kind {
		case KindClass:
			st.Classes++
		case KindProperty:
			st.Properties++
		case KindInstance:
			st.Instances++
		}
	}
	return st
}
