package said

import "github.com/aaronp/kerits-sub005/codec"

type options struct {
	labels       []string
	code         codec.DerivationCode
	versionField string
}

// Option configures Saidify. Mirrors the module's generic functional-option
// convention: Option is a func over the private options record, and each
// package's Option type is distinct so callers never mix them up.
type Option func(*options)

// WithLabel adds an additional placeholder-labelled field beyond the
// default "d" (e.g. "i" for self-addressing inception/registry events).
func WithLabel(label string) Option {
	return func(o *options) { o.labels = append(o.labels, label) }
}

// WithLabels replaces the default label set entirely, for documents whose
// SAID lives under a field other than "d" (e.g. a schema's "$id").
func WithLabels(labels ...string) Option {
	return func(o *options) { o.labels = labels }
}

// WithDigestCode overrides the digest family used for the computed SAID.
func WithDigestCode(code codec.DerivationCode) Option {
	return func(o *options) { o.code = code }
}

// WithVersionField names the field (default "v") whose size component must
// be fixed up before the digest is taken, for objects that carry a version
// string.
func WithVersionField(field string) Option {
	return func(o *options) { o.versionField = field }
}

func newOptions(withOpts ...Option) *options {
	o := &options{labels: []string{"d"}, code: codec.DefaultDigestCode, versionField: "v"}
	for _, apply := range withOpts {
		apply(o)
	}
	return o
}
