package group

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAndAddSignatureReachesCompleted(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	e := &PartiallySignedEvent{SAID: "Eevent1", RequiredSigners: 2}
	require.NoError(t, c.Submit(e, time.Now()))

	stage, err := c.AddSignature("Eevent1", 0, "sig0")
	require.NoError(t, err)
	assert.Equal(t, EscrowGPSE, stage)

	stage, err = c.AddSignature("Eevent1", 1, "sig1")
	require.NoError(t, err)
	assert.Equal(t, EscrowCompleted, stage)

	got, escrow, ok := c.Get("Eevent1")
	require.True(t, ok)
	assert.Equal(t, EscrowCompleted, escrow)
	assert.Len(t, got.Sigs, 2)
}

func TestAddSignatureRejectsDuplicateSigner(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	e := &PartiallySignedEvent{SAID: "Eevent1", RequiredSigners: 2}
	require.NoError(t, c.Submit(e, time.Now()))
	_, err := c.AddSignature("Eevent1", 0, "sig0")
	require.NoError(t, err)

	_, err = c.AddSignature("Eevent1", 0, "sig0-again")
	assert.ErrorIs(t, err, ErrAlreadySigned)
}

func TestDelegatedFlowRoutesThroughGDEE(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	e := &PartiallySignedEvent{SAID: "Edeleg", RequiredSigners: 1, Delegated: true}
	require.NoError(t, c.Submit(e, time.Now()))

	stage, err := c.AddSignature("Edeleg", 0, "sig0")
	require.NoError(t, err)
	assert.Equal(t, EscrowGDEE, stage)

	stage, err = c.ApproveDelegation("Edeleg", "token")
	require.NoError(t, err)
	assert.Equal(t, EscrowCompleted, stage)
}

func TestWitnessedFlowRoutesThroughGPWE(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	e := &PartiallySignedEvent{SAID: "Ewit", RequiredSigners: 1, Witnessed: true, RequiredReceipts: 2}
	require.NoError(t, c.Submit(e, time.Now()))

	stage, err := c.AddSignature("Ewit", 0, "sig0")
	require.NoError(t, err)
	assert.Equal(t, EscrowGPWE, stage)

	stage, err = c.AddReceipt("Ewit", "Bwit1", "receipt1")
	require.NoError(t, err)
	assert.Equal(t, EscrowGPWE, stage)

	stage, err = c.AddReceipt("Ewit", "Bwit2", "receipt2")
	require.NoError(t, err)
	assert.Equal(t, EscrowCompleted, stage)
}

func TestDelegatedAndWitnessedRoutesThroughBoth(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	e := &PartiallySignedEvent{SAID: "Eboth", RequiredSigners: 1, Delegated: true, Witnessed: true, RequiredReceipts: 1}
	require.NoError(t, c.Submit(e, time.Now()))

	stage, err := c.AddSignature("Eboth", 0, "sig0")
	require.NoError(t, err)
	assert.Equal(t, EscrowGDEE, stage)

	stage, err = c.ApproveDelegation("Eboth", "token")
	require.NoError(t, err)
	assert.Equal(t, EscrowGPWE, stage)

	stage, err = c.AddReceipt("Eboth", "Bwit1", "receipt1")
	require.NoError(t, err)
	assert.Equal(t, EscrowCompleted, stage)
}

func TestSweepRemovesExpiredButNotCompleted(t *testing.T) {
	c := NewCoordinator(time.Minute, nil)
	old := &PartiallySignedEvent{SAID: "Eold", RequiredSigners: 2}
	require.NoError(t, c.Submit(old, time.Now().Add(-time.Hour)))

	fresh := &PartiallySignedEvent{SAID: "Efresh", RequiredSigners: 2}
	require.NoError(t, c.Submit(fresh, time.Now()))

	completed := &PartiallySignedEvent{SAID: "Edone", RequiredSigners: 1}
	require.NoError(t, c.Submit(completed, time.Now().Add(-time.Hour)))
	_, err := c.AddSignature("Edone", 0, "sig0")
	require.NoError(t, err)

	removed := c.Sweep(time.Now())
	assert.Contains(t, removed, "Eold")
	assert.NotContains(t, removed, "Efresh")
	assert.NotContains(t, removed, "Edone")

	_, _, ok := c.Get("Eold")
	assert.False(t, ok)
	_, stage, ok := c.Get("Edone")
	require.True(t, ok)
	assert.Equal(t, EscrowCompleted, stage)
}

func TestElectSmallestIndex(t *testing.T) {
	idx, err := Elect([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestElectRejectsEmpty(t *testing.T) {
	_, err := Elect(nil)
	assert.ErrorIs(t, err, ErrNoSigners)
}
