package said

import "errors"

var (
	// ErrMissingLabel is returned when a target SAID label is not present
	// on the document, violating the Saidify precondition (spec §4.2).
	ErrMissingLabel = errors.New("said: target label missing from document")
	// ErrSizeMismatch indicates the canonical byte length measured after
	// the placeholder pass does not match the value later re-derived,
	// which should never happen for a pure placeholder of fixed width.
	ErrSizeMismatch = errors.New("said: canonical size changed after placeholder substitution")
)
