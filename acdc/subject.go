package acdc

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Subject is the `a` block of a credential: its own self-addressed
// document, computed before the enclosing credential is built.
type Subject struct {
	doc   *said.Doc
	said_ string
}

func (s *Subject) SAID() string    { return s.said_ }
func (s *Subject) Doc() *said.Doc  { return s.doc }

// BuildSubject constructs the subject block in spec §4.6 step 1's order:
// {d: placeholder, [i: recipient,] dt, ...data...}. recipient may be "" for
// an unaddressed credential. data carries the caller's additional claims in
// the order they must appear on the wire; it must not set d, i, or dt.
func BuildSubject(recipient, dt string, data *said.Doc, withOpts ...Option) (*Subject, error) {
	if dt == "" {
		return nil, ErrMissingTimestamp
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("d", config.SAIDPlaceholder)
	if recipient != "" {
		d.Set("i", recipient)
	}
	d.Set("dt", dt)
	if data != nil {
		for _, k := range data.Keys() {
			v, _ := data.Get(k)
			d.Set(k, v)
		}
	}

	saidVal, err := said.Saidify(d, said.WithDigestCode(o.Code))
	if err != nil {
		return nil, err
	}
	return &Subject{doc: d, said_: saidVal}, nil
}

// ValidateSubject re-derives the subject SAID and checks it against the
// stored `d` field, and that `dt` is present.
func ValidateSubject(s *Subject, code codec.DerivationCode) error {
	if s.doc.OptString("dt") == "" {
		return ErrMissingTimestamp
	}
	clone := s.doc.Clone()
	recomputed, err := said.Saidify(clone, said.WithDigestCode(code))
	if err != nil {
		return err
	}
	if recomputed != s.said_ {
		return ErrSubjectSAIDMismatch
	}
	return nil
}
