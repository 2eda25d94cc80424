package tel

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
	"github.com/aaronp/kerits-sub005/tholder"
)

// RegistryInception is a vcp event: the self-addressing genesis of a TEL.
type RegistryInception struct {
	doc   *said.Doc
	said_ string
}

func (e *RegistryInception) EventType() Type      { return TypeRegistryInception }
func (e *RegistryInception) SAID() string         { return e.said_ }
func (e *RegistryInception) AID() string          { return e.said_ } // vcp is self-addressing: i == d
func (e *RegistryInception) Seq() uint64          { return 0 }
func (e *RegistryInception) Doc() *said.Doc       { return e.doc }
func (e *RegistryInception) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// IssuerAID returns the `ii` field: the KEL identifier that controls this
// registry.
func (e *RegistryInception) IssuerAID() string { return e.doc.OptString("ii") }

func stringSliceToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// Incept builds a vcp event. issuerAID is the controlling KEL identifier
// (spec §4.5's `ii`); a nonce is generated if none is supplied via
// WithNonce, making each otherwise-identical registry unique.
func Incept(issuerAID string, withOpts ...Option) (*RegistryInception, error) {
	if issuerAID == "" {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	toad := o.Toad
	if toad == nil {
		toad = tholder.NewNumeric(uint64(config.AmpleThreshold(len(o.Baks))))
	}

	nonce := o.Nonce
	if nonce == "" {
		var err error
		nonce, err = codec.GenerateNonce()
		if err != nil {
			return nil, err
		}
	}

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeRegistryInception))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", config.SAIDPlaceholder)
	d.Set("ii", issuerAID)
	d.Set("s", "0")
	d.Set("c", stringSliceToAny(o.ConfigTraits))
	d.Set("bt", toad.Hex())
	d.Set("b", stringSliceToAny(o.Baks))
	d.Set("n", nonce)

	saidVal, err := said.Saidify(d, said.WithLabel("i"))
	if err != nil {
		return nil, err
	}
	return &RegistryInception{doc: d, said_: saidVal}, nil
}

// ValidateRegistryInception checks spec §4.5's single-event invariants for
// vcp: s == 0 and i == d (self-addressing).
func ValidateRegistryInception(e *RegistryInception) error {
	if e.doc.OptString("s") != "0" {
		return ErrSequenceGap
	}
	if e.doc.OptString("i") != e.doc.OptString("d") {
		return ErrSAIDMismatch
	}
	if e.doc.OptString("ii") == "" {
		return ErrInvalidInput
	}
	return nil
}
