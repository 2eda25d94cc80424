package group

import "errors"

var (
	ErrInvalidInput   = errors.New("group: invalid input")
	ErrNotFound       = errors.New("group: no escrowed event at that SAID")
	ErrWrongEscrow    = errors.New("group: event is not in the escrow this operation targets")
	ErrAlreadySigned  = errors.New("group: signer index has already signed this event")
	ErrNoSigners      = errors.New("group: election requires at least one signing member")
)
