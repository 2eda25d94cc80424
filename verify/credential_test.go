package verify

import (
	"testing"

	"github.com/aaronp/kerits-sub005/acdc"
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/said"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCredential(t *testing.T) *acdc.Credential {
	t.Helper()
	data := said.NewDoc()
	data.Set("role", "admin")

	subj, err := acdc.BuildSubject("DRecipientAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "2026-07-31T00:00:00.000000+00:00", data)
	require.NoError(t, err)

	schema, err := acdc.BuildSchema(said.NewDoc().Set("title", "role-schema"))
	require.NoError(t, err)

	cred, err := acdc.BuildCredential(
		"DIssuerAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		"ERegistrySAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		schema.SAID(),
		subj,
	)
	require.NoError(t, err)
	return cred
}

func TestCredentialReportAllPass(t *testing.T) {
	cred := buildTestCredential(t)
	report := Credential(cred, codec.DefaultDigestCode)
	assert.True(t, report.OK())
}

func TestCredentialReportDetectsSAIDTamper(t *testing.T) {
	cred := buildTestCredential(t)
	cred.Doc().Set("i", "DTamperedIssuerxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	report := Credential(cred, codec.DefaultDigestCode)
	assert.False(t, report.SAIDValid)
	assert.True(t, report.StructureValid)
	assert.True(t, report.VersionValid)
}
