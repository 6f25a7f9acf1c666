package ontology

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/vocabulary"
)

// Store is the append-only statement graph every other component writes to
// and reads from. Statements are kept in insertion order with duplicates
// collapsed; nothing is ever removed through the public contract, so a
// correction is a superseding statement that JSON reconstruction
// deduplicates per key at dump time.
//
// A Store is not safe for concurrent use.
type Store struct {
	quads []quad.Quad
	seen  map[quad.Quad]struct{}

	bindings []binding
	byPrefix map[string]int
}

type binding struct {
	prefix string
	ns     vocabulary.Namespace
}

// NewStore returns an empty statement graph with no namespace bindings.
func NewStore() *Store {
	return &Store{
		seen:     make(map[quad.Quad]struct{}),
		byPrefix: make(map[string]int),
	}
}

// Add appends the statement (subject, predicate, object). Adding a
// statement that is already present is a no-op, not an error.
func (s *Store) Add(subject, predicate, object quad.Value) {
	q := quad.Quad{Subject: subject, Predicate: predicate, Object: object}
	if _, ok := s.seen[q]; ok {
		return
	}
	s.seen[q] = struct{}{}
	s.quads = append(s.quads, q)
}

// Contains reports whether the exact statement is present.
func (s *Store) Contains(subject, predicate, object quad.Value) bool {
	_, ok := s.seen[quad.Quad{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Len returns the number of distinct statements.
func (s *Store) Len() int {
	return len(s.quads)
}

// All returns every statement in insertion order. The slice is a copy;
// callers may not mutate the store through it.
func (s *Store) All() []quad.Quad {
	out := make([]quad.Quad, len(s.quads))
	copy(out, s.quads)
	return out
}

// Match returns the statements matching the given filters in insertion
// order. A nil filter matches anything.
func (s *Store) Match(subject, predicate, object quad.Value) []quad.Quad {
	var out []quad.Quad
	for _, q := range s.quads {
		if subject != nil && q.Subject != subject {
			continue
		}
		if predicate != nil && q.Predicate != predicate {
			continue
		}
		if object != nil && q.Object != object {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Bind associates a prefix with a namespace. Prefixes are unique
// case-insensitively; binding an existing prefix replaces it.
func (s *Store) Bind(prefix string, ns vocabulary.Namespace) {
	key := strings.ToLower(prefix)
	if i, ok := s.byPrefix[key]; ok {
		s.bindings[i] = binding{prefix: prefix, ns: ns}
		return
	}
	s.byPrefix[key] = len(s.bindings)
	s.bindings = append(s.bindings, binding{prefix: prefix, ns: ns})
}

// Namespace looks up a bound namespace by prefix, case-insensitively.
func (s *Store) Namespace(prefix string) (vocabulary.Namespace, bool) {
	i, ok := s.byPrefix[strings.ToLower(prefix)]
	if !ok {
		return "", false
	}
	return s.bindings[i].ns, true
}

// Namespaces returns all bound prefixes and their namespaces.
func (s *Store) Namespaces() map[string]vocabulary.Namespace {
	out := make(map[string]vocabulary.Namespace, len(s.bindings))
	for _, b := range s.bindings {
		out[b.prefix] = b.ns
	}
	return out
}
