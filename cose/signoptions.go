package cose

import "github.com/fxamacker/cbor/v2"

// SignOptions configures the CBOR encode/decode modes CoseSign1Message uses
// to (de)serialize. The zero value is never used directly; callers start
// from newDefaultSignOptions and apply SignOption overrides.
type SignOptions struct {
	encOpts *cbor.EncOptions
	decOpts *cbor.DecOptions
}

// SignOption mutates a SignOptions before it is resolved into encode/decode
// modes.
type SignOption func(*SignOptions)

// WithEncOptions overrides the CBOR encode options.
func WithEncOptions(opts cbor.EncOptions) SignOption {
	return func(o *SignOptions) { *o.encOpts = opts }
}

// WithDecOptions overrides the CBOR decode options.
func WithDecOptions(opts cbor.DecOptions) SignOption {
	return func(o *SignOptions) { *o.decOpts = opts }
}
