package receipt

import "errors"

var (
	ErrInvalidInput    = errors.New("receipt: invalid input")
	ErrPayloadMismatch = errors.New("receipt: signed payload does not match the given event bytes")
	ErrSAIDMismatch    = errors.New("receipt: receipt's feed claim does not match the given event SAID")
)
