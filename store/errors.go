package store

import "errors"

var (
	ErrParse           = errors.New("store: raw bytes do not parse as canonical JSON")
	ErrDigestMismatch  = errors.New("store: re-derived SAID does not match the event's d field")
	ErrVersionMismatch = errors.New("store: version string protocol/kind is not recognized")
	ErrSequenceGap     = errors.New("store: event sequence is not the expected successor of the current head")
	ErrPriorMismatch   = errors.New("store: event prior field does not match the current head's SAID")
	ErrNotFound        = errors.New("store: no object at that key")
	ErrAlreadyExists   = errors.New("store: a different object already exists at that SAID")
	ErrAliasCollision  = errors.New("store: alias already bound to a different SAID in this scope")
)
