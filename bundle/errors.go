package bundle

import "errors"

var (
	ErrUnknownType = errors.New("bundle: unrecognized bundle type")
	ErrEmptyBundle = errors.New("bundle: no events to export")
)
