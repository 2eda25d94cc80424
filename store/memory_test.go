package store

import (
	"testing"

	"github.com/aaronp/kerits-sub005/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetKELEvent(t *testing.T) {
	s := NewMemory()

	icp, err := event.Incept(
		[]string{"DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"},
		[]string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"},
	)
	require.NoError(t, err)
	raw, err := icp.Raw()
	require.NoError(t, err)

	saidVal, meta, err := s.PutKELEvent(raw, EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, icp.SAID(), saidVal)
	assert.Equal(t, "icp", meta.Type)
	assert.Equal(t, uint64(0), meta.Seq)

	got, gotMeta, ok := s.GetEvent(saidVal)
	require.True(t, ok)
	assert.Equal(t, raw, got)
	assert.Equal(t, meta, gotMeta)

	head, ok := s.GetKELHead(icp.AID())
	require.True(t, ok)
	assert.Equal(t, icp.SAID(), head)
}

func TestPutKELEventRejectsSequenceGap(t *testing.T) {
	s := NewMemory()
	icp, err := event.Incept(
		[]string{"DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"},
		[]string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"},
	)
	require.NoError(t, err)
	raw, err := icp.Raw()
	require.NoError(t, err)
	_, _, err = s.PutKELEvent(raw, EncodingJSON)
	require.NoError(t, err)

	rot, err := event.Rotate(event.RotateArgs{
		Pre:  icp.AID(),
		Keys: []string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"},
		Dig:  icp.SAID(),
		Seq:  2, // should be 1
	})
	require.NoError(t, err)
	rotRaw, err := rot.Raw()
	require.NoError(t, err)

	_, _, err = s.PutKELEvent(rotRaw, EncodingJSON)
	assert.ErrorIs(t, err, ErrSequenceGap)
}

func TestAliasRoundTrip(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.PutAlias(ScopeKEL, "Eaid1", "alice"))

	got, ok := s.GetAliasSAID(ScopeKEL, "alice")
	require.True(t, ok)
	assert.Equal(t, "Eaid1", got)

	alias, ok := s.GetSAIDAlias(ScopeKEL, "Eaid1")
	require.True(t, ok)
	assert.Equal(t, "alice", alias)

	err := s.PutAlias(ScopeKEL, "Eaid2", "alice")
	assert.ErrorIs(t, err, ErrAliasCollision)

	require.NoError(t, s.DelAlias(ScopeKEL, "alice"))
	_, ok = s.GetAliasSAID(ScopeKEL, "alice")
	assert.False(t, ok)
}

func TestGetByPrior(t *testing.T) {
	s := NewMemory()
	icp, err := event.Incept(
		[]string{"DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"},
		[]string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"},
	)
	require.NoError(t, err)
	raw, err := icp.Raw()
	require.NoError(t, err)
	_, _, err = s.PutKELEvent(raw, EncodingJSON)
	require.NoError(t, err)

	rot, err := event.Rotate(event.RotateArgs{
		Pre:  icp.AID(),
		Keys: []string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"},
		Dig:  icp.SAID(),
		Seq:  1,
	})
	require.NoError(t, err)
	rotRaw, err := rot.Raw()
	require.NoError(t, err)
	_, _, err = s.PutKELEvent(rotRaw, EncodingJSON)
	require.NoError(t, err)

	children := s.GetByPrior(icp.SAID())
	require.Len(t, children, 1)
	assert.Equal(t, rot.SAID(), children[0].SAID)
}
