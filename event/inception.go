package event

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
	"github.com/aaronp/kerits-sub005/tholder"
)

// Inception is an icp or dip event.
type Inception struct {
	doc      *said.Doc
	said_    string
	aid      string
	delegated bool
}

func (e *Inception) EventType() Type {
	if e.delegated {
		return TypeDelegatedInception
	}
	return TypeInception
}
func (e *Inception) SAID() string      { return e.said_ }
func (e *Inception) AID() string       { return e.aid }
func (e *Inception) Seq() uint64       { return 0 }
func (e *Inception) Doc() *said.Doc    { return e.doc }
func (e *Inception) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

func thresholdDocValue(t *tholder.Tholder) any {
	if t.IsWeighted() {
		ws := t.WeightStrings()
		out := make([]any, len(ws))
		for i, w := range ws {
			out[i] = w
		}
		return out
	}
	return t.Hex()
}

func stringSliceToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func sealSliceToAny(seals []Seal) []any {
	out := make([]any, len(seals))
	for i, s := range seals {
		d := said.NewDoc()
		d.Set("i", s.I)
		if s.S != "" {
			d.Set("s", s.S)
		}
		d.Set("d", s.D)
		out[i] = d
	}
	return out
}

// Incept builds an icp (or, with WithDelegator, a dip) event from a set of
// current keys and next-key digests, following spec §4.4 construction
// steps 1-5.
func Incept(keys []string, ndigs []string, withOpts ...Option) (*Inception, error) {
	if len(keys) == 0 {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	isith := o.Isith
	if isith == nil {
		isith = tholder.DefaultCurrent(len(keys))
	}
	if err := isith.Validate(len(keys)); err != nil {
		return nil, err
	}

	nsith := o.Nsith
	if nsith == nil {
		nsith = tholder.DefaultNext(len(ndigs))
	}
	if err := nsith.Validate(len(ndigs)); err != nil {
		return nil, err
	}

	toad := o.Toad
	if toad == nil {
		toad = tholder.NewNumeric(uint64(config.AmpleThreshold(len(o.Baks))))
	}

	typ := TypeInception
	if o.Delpre != "" {
		typ = TypeDelegatedInception
	}

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(typ))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", config.SAIDPlaceholder)
	d.Set("s", "0")
	d.Set("kt", thresholdDocValue(isith))
	d.Set("k", stringSliceToAny(keys))
	d.Set("nt", thresholdDocValue(nsith))
	d.Set("n", stringSliceToAny(ndigs))
	d.Set("bt", toad.Hex())
	d.Set("b", stringSliceToAny(o.Baks))
	d.Set("c", stringSliceToAny(o.ConfigTraits))
	d.Set("a", sealSliceToAny(o.Anchors))
	if typ == TypeDelegatedInception {
		if o.Delpre == "" {
			return nil, ErrInvalidInput
		}
		d.Set("di", o.Delpre)
	}

	basic := len(keys) == 1 && !o.IsithSet && !o.NsithSet && typ == TypeInception
	var saidVal string
	var err error
	if basic {
		d.Set("i", keys[0])
		saidVal, err = said.Saidify(d)
	} else {
		saidVal, err = said.Saidify(d, said.WithLabel("i"))
	}
	if err != nil {
		return nil, err
	}

	aid, _ := d.Get("i")
	return &Inception{doc: d, said_: saidVal, aid: aid.(string), delegated: typ == TypeDelegatedInception}, nil
}

// ValidateInception checks the single-event invariants of spec §4.4: s==0,
// kt satisfies isith against k, nt satisfies against n if n is non-empty,
// and dip carries a non-empty di.
func ValidateInception(e *Inception) error {
	d := e.doc
	s, err := d.GetString("s")
	if err != nil || s != "0" {
		return ErrSequenceGap
	}
	keys, err := d.GetStringSlice("k")
	if err != nil {
		return ErrInvalidInput
	}
	kt, err := thresholdFromDoc(d, "kt", len(keys))
	if err != nil {
		return err
	}
	if err := kt.Validate(len(keys)); err != nil {
		return ErrThresholdUnsatisfied
	}
	ndigs, err := d.GetStringSlice("n")
	if err != nil {
		return ErrInvalidInput
	}
	if len(ndigs) > 0 {
		nt, err := thresholdFromDoc(d, "nt", len(ndigs))
		if err != nil {
			return err
		}
		if err := nt.Validate(len(ndigs)); err != nil {
			return ErrThresholdUnsatisfied
		}
	}
	if e.EventType() == TypeDelegatedInception && d.OptString("di") == "" {
		return ErrDelegationContinuityBroken
	}
	return nil
}

// thresholdFromDoc reads a threshold field (kt/nt/bt) that may be stored as
// a hex string or a vector of fraction strings, accepting both wire forms.
func thresholdFromDoc(d *said.Doc, key string, n int) (*tholder.Tholder, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, ErrInvalidInput
	}
	switch t := v.(type) {
	case string:
		return tholder.ParseNumeric(t)
	case []string:
		return tholder.ParseWeighted(t)
	case []any:
		ss := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, ErrInvalidInput
			}
			ss = append(ss, s)
		}
		return tholder.ParseWeighted(ss)
	default:
		return nil, ErrInvalidInput
	}
}
