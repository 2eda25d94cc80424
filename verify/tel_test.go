package verify

import (
	"testing"

	"github.com/aaronp/kerits-sub005/event"
	"github.com/aaronp/kerits-sub005/tel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuerAID() string {
	return "DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"
}

func TestRegistryAcceptsGenesisOnly(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)

	assert.NoError(t, Registry([]tel.Event{vcp}))
}

func TestRegistryWalksIxnChain(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)

	ixn, err := tel.Interact(vcp.SAID(), 1, vcp.SAID(), nil)
	require.NoError(t, err)

	assert.NoError(t, Registry([]tel.Event{vcp, ixn}))
}

func TestRegistryRejectsSequenceGap(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)

	ixn, err := tel.Interact(vcp.SAID(), 2, vcp.SAID(), nil)
	require.NoError(t, err)

	err = Registry([]tel.Event{vcp, ixn})
	assert.ErrorIs(t, err, ErrSequenceGap)
}

func TestCredentialStatusIssuedOnly(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)
	acdcSAID := "EAcdcSAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

	iss, err := tel.Issue(acdcSAID, vcp.SAID(), "2026-07-31T00:00:00.000000+00:00")
	require.NoError(t, err)

	assert.NoError(t, CredentialStatus([]tel.Event{iss}))
}

func TestCredentialStatusRevoked(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)
	acdcSAID := "EAcdcSAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

	iss, err := tel.Issue(acdcSAID, vcp.SAID(), "2026-07-31T00:00:00.000000+00:00")
	require.NoError(t, err)
	rev, err := tel.Revoke(acdcSAID, vcp.SAID(), iss.SAID(), "2026-07-31T01:00:00.000000+00:00")
	require.NoError(t, err)

	assert.NoError(t, CredentialStatus([]tel.Event{iss, rev}))
}

func TestCredentialStatusRejectsPriorMismatch(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)
	acdcSAID := "EAcdcSAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

	iss, err := tel.Issue(acdcSAID, vcp.SAID(), "2026-07-31T00:00:00.000000+00:00")
	require.NoError(t, err)
	rev, err := tel.Revoke(acdcSAID, vcp.SAID(), "EWrongPriorxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "2026-07-31T01:00:00.000000+00:00")
	require.NoError(t, err)

	err = CredentialStatus([]tel.Event{iss, rev})
	assert.ErrorIs(t, err, ErrPriorMismatch)
}

func TestAnchoredInIssuerKEL(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)

	seal := event.RegistrySeal(vcp.SAID(), vcp.SAID())
	ixn, err := event.Interact(issuerAID(), 1, "Eprior", []event.Seal{seal})
	require.NoError(t, err)

	assert.NoError(t, AnchoredInIssuerKEL(vcp, []event.Event{ixn}))
}

func TestAnchoredInIssuerKELMissing(t *testing.T) {
	vcp, err := tel.Incept(issuerAID())
	require.NoError(t, err)

	ixn, err := event.Interact(issuerAID(), 1, "Eprior", nil)
	require.NoError(t, err)

	err = AnchoredInIssuerKEL(vcp, []event.Event{ixn})
	assert.ErrorIs(t, err, ErrAnchorMissing)
}
