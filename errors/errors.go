// Package errors provides error handling for ontogen.
//
// This package re-exports github.com/cockroachdb/errors so call sites have a
// single import for error creation, wrapping, and inspection:
//
//	// Create new error
//	err := errors.New("unknown serialization format")
//
//	// Wrap with context
//	if err := onto.DumpToJSON(); err != nil {
//	    return errors.Wrap(err, "writing ontology files")
//	}
//
//	// Check sentinel errors
//	if errors.Is(err, ontology.ErrDuplicateIdentifier) {
//	    // caller forgot Force
//	}
//
// Sentinel errors for the engine's failure taxonomy live next to the code
// that raises them (see the ontology and items packages); Mark and Is are
// the intended way to attach and test them.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Errorf       = crdb.Errorf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// Hints shown to users alongside the error chain
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	Cause         = crdb.Cause
	Mark          = crdb.Mark
	CombineErrors = crdb.CombineErrors
)
