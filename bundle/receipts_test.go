package bundle

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/aaronp/kerits-sub005/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyReceiptsRoundTrip(t *testing.T) {
	b := buildKELBundle(t)

	witnessKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	icpSAID := declaredSAID(b.Events[0])
	r, err := receipt.Build("BWitnessAID", icpSAID, b.Events[0], witnessKey, rand.Reader)
	require.NoError(t, err)

	encoded, err := r.ToAttachmentGroup().Encode()
	require.NoError(t, err)

	b.Receipts = [][]byte{encoded, nil}

	keyLookup := func(witnessAID string) (crypto.PublicKey, bool) {
		if witnessAID != "BWitnessAID" {
			return nil, false
		}
		return &witnessKey.PublicKey, true
	}

	out, err := VerifyReceipts(b, keyLookup)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out[0], 1)
	assert.Equal(t, "BWitnessAID", out[0][0].WitnessAID)
	assert.Nil(t, out[1])
}

func TestVerifyReceiptsRejectsUnknownWitness(t *testing.T) {
	b := buildKELBundle(t)

	witnessKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	icpSAID := declaredSAID(b.Events[0])
	r, err := receipt.Build("BWitnessAID", icpSAID, b.Events[0], witnessKey, rand.Reader)
	require.NoError(t, err)

	encoded, err := r.ToAttachmentGroup().Encode()
	require.NoError(t, err)
	b.Receipts = [][]byte{encoded}

	_, err = VerifyReceipts(b, func(string) (crypto.PublicKey, bool) { return nil, false })
	assert.Error(t, err)
}
