package tholder

import "errors"

var (
	ErrInvalidNumeric     = errors.New("tholder: threshold is not a valid non-negative integer")
	ErrInvalidWeight      = errors.New("tholder: weight is not a valid non-negative rational in [0,1]")
	ErrLengthMismatch     = errors.New("tholder: weighted threshold length does not match the key vector length")
	ErrThresholdExceedsN  = errors.New("tholder: numeric threshold exceeds the number of keys")
	ErrThresholdNegative  = errors.New("tholder: threshold must be non-negative")
)
