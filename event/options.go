package event

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/tholder"
)

// Options carries every field spec §6 enumerates that a KEL builder reads.
// newOptions fills in the protocol, version, kind and digest-code defaults;
// callers configure the fields with Option.
type Options struct {
	Protocol config.Protocol
	Version  config.Version
	Kind     config.Kind
	Code     codec.DerivationCode

	Isith      *tholder.Tholder
	IsithSet   bool
	Nsith      *tholder.Tholder
	NsithSet   bool

	Baks []string
	Toad *tholder.Tholder

	ConfigTraits []string
	Anchors      []Seal

	Delpre string
}

// Option is this package's functional-option type: a func over the
// Options record. tel and acdc each define their own.
type Option func(*Options)

func WithIsith(t *tholder.Tholder) Option {
	return func(o *Options) { o.Isith, o.IsithSet = t, true }
}
func WithNsith(t *tholder.Tholder) Option {
	return func(o *Options) { o.Nsith, o.NsithSet = t, true }
}
func WithConfigTraits(traits []string) Option {
	return func(o *Options) { o.ConfigTraits = traits }
}
func WithAnchors(seals []Seal) Option {
	return func(o *Options) { o.Anchors = seals }
}
func WithBackers(baks []string, toad *tholder.Tholder) Option {
	return func(o *Options) {
		o.Baks = baks
		o.Toad = toad
	}
}
func WithDelegator(delpre string) Option { return func(o *Options) { o.Delpre = delpre } }
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
