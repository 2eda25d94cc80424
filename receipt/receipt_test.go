package receipt

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func TestBuildAndVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, "BWitnessAID", r.WitnessAID)
	assert.Equal(t, "EEventSaid", r.SAID)

	verified, err := Verify(r.Raw(), "EEventSaid", eventRaw, &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "BWitnessAID", verified.WitnessAID)
}

func TestVerifyRejectsWrongPublicKey(t *testing.T) {
	key := testKey(t)
	other := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)

	_, err = Verify(r.Raw(), "EEventSaid", eventRaw, &other.PublicKey)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	key := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)

	tampered := []byte(`{"v":"KERI10JSON0000a0_","t":"rot"}`)
	_, err = Verify(r.Raw(), "EEventSaid", tampered, &key.PublicKey)
	assert.ErrorIs(t, err, ErrPayloadMismatch)
}

func TestVerifyRejectsMismatchedSAID(t *testing.T) {
	key := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)

	_, err = Verify(r.Raw(), "EOtherSaid", eventRaw, &key.PublicKey)
	assert.ErrorIs(t, err, ErrSAIDMismatch)
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	key := testKey(t)
	_, err := Build("", "EEventSaid", []byte("x"), key, rand.Reader)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
