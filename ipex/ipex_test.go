package ipex

import (
	"testing"

	"github.com/aaronp/kerits-sub005/said"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApplyNoPrior(t *testing.T) {
	payload := said.NewDoc().Set("m", "please issue")
	apply, err := Build(RouteApply, "DApplicantxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "", payload, WithDatetime("2026-07-31T00:00:00.000000+00:00"))
	require.NoError(t, err)
	assert.Equal(t, RouteApply, apply.Route())
	assert.Equal(t, "", apply.Prior())
}

func TestBuildAgreeRequiresPrior(t *testing.T) {
	_, err := Build(RouteAgree, "DSenderxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "", nil)
	assert.ErrorIs(t, err, ErrRequiresPrior)
}

func TestBuildApplyRejectsUnexpectedPrior(t *testing.T) {
	_, err := Build(RouteApply, "DSenderxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "Esomeprior", nil)
	assert.ErrorIs(t, err, ErrUnexpectedPrior)
}

func buildFullExchange(t *testing.T) []*Message {
	t.Helper()
	dt := "2026-07-31T00:00:00.000000+00:00"
	applicant := "DApplicantxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	issuer := "DIssuerAIDxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"

	apply, err := Build(RouteApply, applicant, "", nil, WithDatetime(dt))
	require.NoError(t, err)

	offer, err := Build(RouteOffer, issuer, apply.SAID(), nil, WithDatetime(dt))
	require.NoError(t, err)

	agree, err := Build(RouteAgree, applicant, offer.SAID(), nil, WithDatetime(dt))
	require.NoError(t, err)

	block, err := BuildGrantBlock(
		said.NewDoc().Set("d", "Eacdcxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"),
		said.NewDoc().Set("d", "Eissxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"),
		nil,
	)
	require.NoError(t, err)
	grant, err := BuildGrant(issuer, agree.SAID(), block, WithDatetime(dt))
	require.NoError(t, err)

	admit, err := Build(RouteAdmit, applicant, grant.SAID(), nil, WithDatetime(dt))
	require.NoError(t, err)

	return []*Message{apply, offer, agree, grant, admit}
}

func TestValidateExchangeFullChain(t *testing.T) {
	assert.NoError(t, ValidateExchange(buildFullExchange(t)))
}

func TestValidateExchangeRejectsIllegalTransition(t *testing.T) {
	msgs := buildFullExchange(t)
	// Replace admit (index 4) with a fresh apply: illegal response to grant.
	badApply, err := Build(RouteApply, msgs[4].Sender(), "", nil)
	require.NoError(t, err)
	badApply.prior = msgs[3].SAID()
	badApply.doc.Set("p", msgs[3].SAID())

	err = ValidateChain(msgs[3], badApply)
	assert.ErrorIs(t, err, ErrChainRuleViolated)
}

func TestValidateChainRejectsPriorMismatch(t *testing.T) {
	msgs := buildFullExchange(t)
	err := ValidateChain(msgs[0], msgs[2]) // agree doesn't point at apply
	assert.ErrorIs(t, err, ErrPriorMismatch)
}

func TestGrantEmbedRoundTrip(t *testing.T) {
	msgs := buildFullExchange(t)
	grant := msgs[3]
	embed, err := GrantEmbed(grant)
	require.NoError(t, err)
	assert.True(t, embed.Has("acdc"))
	assert.True(t, embed.Has("iss"))
}
