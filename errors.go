package tradetrackr

import "errors"

// Sentinel errors returned by Book mutators and the import gateway.
// Callers discriminate with errors.Is; the wrapped message carries the context.
var (
	// ErrNotFound reports a reference to an id unknown to the relevant collection.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports malformed input to a mutator.
	ErrValidation = errors.New("invalid input")

	// ErrNoCurrentWeek reports a trade recorded without a target week while no
	// current week is set.
	ErrNoCurrentWeek = errors.New("no current week")

	// ErrSerialization reports a malformed backup document on import.
	ErrSerialization = errors.New("malformed document")
)
