package acdc

import "errors"

var (
	ErrInvalidInput         = errors.New("acdc: invalid input")
	ErrSAIDMismatch         = errors.New("acdc: re-derived SAID does not match the stored d field")
	ErrSubjectSAIDMismatch  = errors.New("acdc: re-derived subject SAID does not match the stored a.d field")
	ErrMissingTimestamp     = errors.New("acdc: subject is missing its dt field")
	ErrVersionMismatch      = errors.New("acdc: version string protocol/kind does not match ACDC/JSON")
)
