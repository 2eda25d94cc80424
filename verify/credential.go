package verify

import (
	"github.com/aaronp/kerits-sub005/acdc"
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
)

// CredentialReport carries the per-check results spec §4.8 requires
// verify_credential to report granularly, rather than collapsing them into
// a single pass/fail.
type CredentialReport struct {
	SAIDValid        bool
	SubjectSAIDValid bool
	VersionValid     bool
	StructureValid   bool
}

// OK reports whether every individual check passed.
func (r CredentialReport) OK() bool {
	return r.SAIDValid && r.SubjectSAIDValid && r.VersionValid && r.StructureValid
}

// Credential re-derives a credential's and its subject's SAIDs, checks the
// ACDC version-string protocol, and validates structural invariants (issuer
// and schema reference present, subject has `dt`), reporting each
// independently (spec §4.8). Whether `ri` is present is not checked.
func Credential(c *acdc.Credential, code codec.DerivationCode) CredentialReport {
	var report CredentialReport

	v := c.Doc().OptString("v")
	if proto, _, _, _, err := config.ParseVersionString(v); err == nil && proto == config.ProtocolACDC {
		report.VersionValid = true
	}

	if err := acdc.ValidateSubject(c.Subject(), code); err == nil {
		report.SubjectSAIDValid = true
	}

	a, err := c.Doc().GetDoc("a")
	report.StructureValid = c.Issuer() != "" && c.SchemaSAID() != "" && err == nil && a.OptString("dt") != ""

	report.SAIDValid = Event(mustCredentialRaw(c)) == nil

	return report
}

func mustCredentialRaw(c *acdc.Credential) []byte {
	raw, err := c.Raw()
	if err != nil {
		return nil
	}
	return raw
}
