package ipex

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
)

type Options struct {
	Protocol config.Protocol
	Version  config.Version
	Kind     config.Kind
	Code     codec.DerivationCode
	Datetime string
}

type Option func(*Options)

func WithVersion(v config.Version) Option { return func(o *Options) { o.Version = v } }
func WithDigestCode(code codec.DerivationCode) Option {
	return func(o *Options) { o.Code = code }
}

// WithDatetime sets the exn's `dt` field. Callers supply this explicitly
// so builders stay deterministic and testable.
func WithDatetime(dt string) Option { return func(o *Options) { o.Datetime = dt } }

func newOptions(withOpts ...Option) *Options {
	o := &Options{
		Protocol: config.ProtocolKERI,
		Version:  config.DefaultVersion,
		Kind:     config.KindJSON,
		Code:     codec.DefaultDigestCode,
	}
	for _, apply := range withOpts {
		apply(o)
	}
	return o
}
