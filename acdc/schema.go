package acdc

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/said"
)

// Schema is a self-addressing JSON-Schema object: its SAID, computed over
// the `$id`-style label, is what ACDCs reference as their `s` field.
type Schema struct {
	doc   *said.Doc
	said_ string
}

func (s *Schema) SAID() string   { return s.said_ }
func (s *Schema) Doc() *said.Doc { return s.doc }

// BuildSchema saidifies body under the `$id` label (spec §4.6 glossary
// entry for Schema), leaving every other field as given. body must not set
// $id itself.
func BuildSchema(body *said.Doc, withOpts ...Option) (*Schema, error) {
	if body == nil {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := body.Clone()
	if !d.Has("$id") {
		d.Set("$id", "")
	}
	saidVal, err := said.Saidify(d, said.WithLabels("$id"), said.WithDigestCode(o.Code))
	if err != nil {
		return nil, err
	}
	return &Schema{doc: d, said_: saidVal}, nil
}

// ValidateSchema re-derives the schema SAID over $id and checks it matches.
func ValidateSchema(s *Schema, code codec.DerivationCode) error {
	clone := s.doc.Clone()
	recomputed, err := said.Saidify(clone, said.WithLabels("$id"), said.WithDigestCode(code))
	if err != nil {
		return err
	}
	if recomputed != s.said_ {
		return ErrSAIDMismatch
	}
	return nil
}
