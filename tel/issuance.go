package tel

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Issuance is an iss event: the credential's s=0 entry in its registry's
// TEL.
type Issuance struct {
	doc   *said.Doc
	said_ string
	acdc  string
}

func (e *Issuance) EventType() Type      { return TypeIssuance }
func (e *Issuance) SAID() string         { return e.said_ }
func (e *Issuance) AID() string          { return e.acdc }
func (e *Issuance) Seq() uint64          { return 0 }
func (e *Issuance) Doc() *said.Doc       { return e.doc }
func (e *Issuance) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// RegistryID returns the `ri` field.
func (e *Issuance) RegistryID() string { return e.doc.OptString("ri") }

// IssuedAt returns the `dt` field (ISO-8601, microsecond precision).
func (e *Issuance) IssuedAt() string { return e.doc.OptString("dt") }

// Issue builds an iss event for acdcSAID against registry registryID, dated
// dt (caller-supplied so the builder stays deterministic and testable; spec
// §4.5 requires ISO-8601 with microsecond precision but does not mandate a
// particular clock source).
func Issue(acdcSAID, registryID, dt string, withOpts ...Option) (*Issuance, error) {
	if acdcSAID == "" || registryID == "" || dt == "" {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeIssuance))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", acdcSAID)
	d.Set("s", "0")
	d.Set("ri", registryID)
	d.Set("dt", dt)

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}
	return &Issuance{doc: d, said_: saidVal, acdc: acdcSAID}, nil
}

// Revocation is a rev event: the credential's s=1 entry, terminal for that
// credential.
type Revocation struct {
	doc   *said.Doc
	said_ string
	acdc  string
}

func (e *Revocation) EventType() Type      { return TypeRevocation }
func (e *Revocation) SAID() string         { return e.said_ }
func (e *Revocation) AID() string          { return e.acdc }
func (e *Revocation) Seq() uint64          { return 1 }
func (e *Revocation) Doc() *said.Doc       { return e.doc }
func (e *Revocation) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// RegistryID returns the `ri` field.
func (e *Revocation) RegistryID() string { return e.doc.OptString("ri") }

// Prior returns the `p` field: the credential's iss event SAID.
func (e *Revocation) Prior() string { return e.doc.OptString("p") }

// Revoke builds a rev event for acdcSAID, whose prior field must equal the
// SAID of that credential's iss event.
func Revoke(acdcSAID, registryID, priorIssSAID, dt string, withOpts ...Option) (*Revocation, error) {
	if acdcSAID == "" || registryID == "" || priorIssSAID == "" || dt == "" {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeRevocation))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", acdcSAID)
	d.Set("s", "1")
	d.Set("ri", registryID)
	d.Set("p", priorIssSAID)
	d.Set("dt", dt)

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}
	return &Revocation{doc: d, said_: saidVal, acdc: acdcSAID}, nil
}

// ValidateRevocation checks that rev's prior field matches the SAID of the
// iss event it terminates.
func ValidateRevocation(rev *Revocation, iss *Issuance) error {
	if rev.AID() != iss.AID() {
		return ErrInvalidInput
	}
	if rev.Prior() != iss.SAID() {
		return ErrPriorMismatch
	}
	return nil
}
