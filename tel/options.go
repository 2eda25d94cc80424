package tel

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/tholder"
)

// Options carries every field a TEL builder reads beyond its required
// positional arguments.
type Options struct {
	Protocol config.Protocol
	Version  config.Version
	Kind     config.Kind
	Code     codec.DerivationCode

	Baks []string
	Toad *tholder.Tholder

	ConfigTraits []string
	Nonce        string
}

// Option is this package's functional-option type.
type Option func(*Options)

func WithBackers(baks []string, toad *tholder.Tholder) Option {
	return func(o *Options) {
		o.Baks = baks
		o.Toad = toad
	}
}
func WithConfigTraits(traits []string) Option { return func(o *Options) { o.ConfigTraits = traits } }
func WithNonce(nonce string) Option           { return func(o *Options) { o.Nonce = nonce } }
func WithDigestCode(code codec.DerivationCode) Option {
	return func(o *Options) { o.Code = code }
}

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
