package acdc

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Credential is an ACDC: issuer, optional registry anchor, schema
// reference, and an already-SAIDified subject block.
type Credential struct {
	doc     *said.Doc
	said_   string
	subject *Subject
}

func (c *Credential) SAID() string         { return c.said_ }
func (c *Credential) Doc() *said.Doc       { return c.doc }
func (c *Credential) Raw() ([]byte, error) { return said.Canonicalize(c.doc) }
func (c *Credential) Subject() *Subject    { return c.subject }

// Issuer returns the `i` field.
func (c *Credential) Issuer() string { return c.doc.OptString("i") }

// RegistryID returns the `ri` field, or "" if the credential is not
// TEL-anchored.
func (c *Credential) RegistryID() string { return c.doc.OptString("ri") }

// SchemaSAID returns the `s` field.
func (c *Credential) SchemaSAID() string { return c.doc.OptString("s") }

// BuildCredential constructs a credential in spec §4.6 step 2's order:
// {v, d: placeholder, i: issuer, [ri: registry,] s: schemaSaid, a: subject}.
// registryID may be "" for an unanchored credential. subject must already
// be built via BuildSubject.
func BuildCredential(issuer, registryID, schemaSAID string, subject *Subject, withOpts ...Option) (*Credential, error) {
	if issuer == "" || schemaSAID == "" || subject == nil {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(config.ProtocolACDC, o.Version, config.KindJSON))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", issuer)
	if registryID != "" {
		d.Set("ri", registryID)
	}
	d.Set("s", schemaSAID)
	d.Set("a", subject.doc)

	saidVal, err := said.Saidify(d, said.WithDigestCode(o.Code))
	if err != nil {
		return nil, err
	}
	return &Credential{doc: d, said_: saidVal, subject: subject}, nil
}

// Validate checks that the issuer, schema reference and subject `dt` are
// present, then re-derives the subject SAID and the credential SAID and
// compares each with its stored value (spec §4.6). Whether `ri` is present
// is not checked.
func Validate(c *Credential, code codec.DerivationCode) error {
	if c.Issuer() == "" || c.SchemaSAID() == "" {
		return ErrInvalidInput
	}
	a, err := c.doc.GetDoc("a")
	if err != nil {
		return ErrInvalidInput
	}
	if a.OptString("dt") == "" {
		return ErrMissingTimestamp
	}

	subjectSAID, err := said.Saidify(a.Clone(), said.WithDigestCode(code))
	if err != nil {
		return err
	}
	if subjectSAID != a.OptString("d") {
		return ErrSubjectSAIDMismatch
	}

	clone := c.doc.Clone()
	recomputed, err := said.Saidify(clone, said.WithDigestCode(code))
	if err != nil {
		return err
	}
	if recomputed != c.said_ {
		return ErrSAIDMismatch
	}
	return nil
}
