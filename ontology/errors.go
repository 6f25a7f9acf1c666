package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/exa-atow/ontogen/errors"
	"github.com/exa-atow/ontogen/vocabulary"
)

// Sentinel errors for the engine's failure taxonomy. Callers test them with
// errors.Is; the functions raising them attach context via errors.Mark.
var (
	// ErrDuplicateIdentifier reports an add operation for an identifier
	// that already exists, without Force set. Identifier uniqueness is a
	// core invariant, so this is a hard failure rather than a warning.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrInvalidConfiguration reports an unknown property kind, a
	// contradictory cardinality spec, or an unusable serialization
	// format. Fatal for the single call; statements already committed
	// are unaffected.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func duplicateIdentifier(kind EntityKind, id quad.IRI) error {
	err := errors.Newf("%s %q already exists", kind, vocabulary.LocalName(id))
	return errors.Mark(errors.WithHint(err, "set Force to overwrite"), ErrDuplicateIdentifier)
}

func invalidConfiguration(err error) error {
	return errors.Mark(err, ErrInvalidConfiguration)
}
