package receipt

import (
	"crypto/rand"
	"testing"

	"github.com/aaronp/kerits-sub005/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentGroupRoundTrip(t *testing.T) {
	key := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)

	group := r.ToAttachmentGroup()
	assert.Equal(t, codec.AttachmentReceipt, group.Code)
	assert.Len(t, group.Payload, 1)

	encoded, err := group.Encode()
	require.NoError(t, err)

	decoded, err := codec.DecodeAttachmentGroup(codec.AttachmentReceipt, encoded)
	require.NoError(t, err)

	recovered, err := FromAttachmentGroup(decoded, "EEventSaid", eventRaw, &key.PublicKey)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.Equal(t, "BWitnessAID", recovered[0].WitnessAID)
}

func TestFromAttachmentGroupRejectsWrongCode(t *testing.T) {
	group := codec.AttachmentGroup{Code: codec.AttachmentWitnessSig, Payload: [][]byte{[]byte("x")}}
	_, err := FromAttachmentGroup(group, "EEventSaid", []byte("x"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPeekWitnessAID(t *testing.T) {
	key := testKey(t)
	eventRaw := []byte(`{"v":"KERI10JSON0000a0_","t":"icp"}`)

	r, err := Build("BWitnessAID", "EEventSaid", eventRaw, key, rand.Reader)
	require.NoError(t, err)

	aid, err := PeekWitnessAID(r.Raw())
	require.NoError(t, err)
	assert.Equal(t, "BWitnessAID", aid)
}
