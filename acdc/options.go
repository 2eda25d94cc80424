package acdc

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
)

// Options carries the fields both BuildSubject and BuildCredential accept
// beyond their positional arguments.
type Options struct {
	Version config.Version
	Code    codec.DerivationCode
}

type Option func(*Options)

func WithDigestCode(code codec.DerivationCode) Option {
	return func(o *Options) { o.Code = code }
}
func WithVersion(v config.Version) Option { return func(o *Options) { o.Version = v } }

func newOptions(withOpts ...Option) *Options {
	o := &Options{Version: config.DefaultVersion, Code: codec.DefaultDigestCode}
	for _, apply := range withOpts {
		apply(o)
	}
	return o
}
