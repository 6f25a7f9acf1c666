package ontology

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/vocabulary"
)

// Resolve turns a bare name, prefixed name, or absolute URI into a
// fully-qualified IRI using the ontology's own namespace for bare names.
//
// Resolution is a pure function of the current namespace bindings and the
// token: absolute URIs pass through verbatim, "prefix:local" tokens are
// expanded through the binding table (case-insensitive on the prefix), and
// anything else is a local name in the default namespace. An unknown prefix
// is recovered by treating the whole token as a local name in the
// ontology's namespace; this is surfaced as a warning, never an error.
func (o *Ontology) Resolve(token string) quad.IRI {
	return o.ResolveIn(token, o.onto)
}

// ResolveIn is Resolve with an explicit default namespace for bare names.
func (o *Ontology) ResolveIn(token string, def vocabulary.Namespace) quad.IRI {
	if isAbsoluteURI(token) {
		return quad.IRI(token)
	}

	if i := strings.Index(token, ":"); i >= 0 {
		prefix := token[:i]
		if ns, ok := o.graph.Namespace(prefix); ok {
			return ns.Term(token[i+1:])
		}
		o.log.Warnw("unknown namespace prefix, falling back to ontology namespace",
			"prefix", prefix, "token", token)
		return o.onto.Term(token)
	}

	return def.Term(token)
}

// resolveStrict expands a prefixed name only when its prefix is bound. It
// backs the value-typing policy for instance properties, where an
// unresolvable token degrades to a plain string literal instead of being
// forced into the ontology namespace.
func (o *Ontology) resolveStrict(token string) (quad.IRI, bool) {
	if isAbsoluteURI(token) {
		return quad.IRI(token), true
	}
	i := strings.Index(token, ":")
	if i < 0 {
		return o.onto.Term(token), true
	}
	ns, ok := o.graph.Namespace(token[:i])
	if !ok {
		return "", false
	}
	return ns.Term(token[i+1:]), true
}

func isAbsoluteURI(token string) bool {
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}
