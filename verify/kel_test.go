package verify

import (
	"testing"

	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKELAcceptsValidInceptionOnly(t *testing.T) {
	keys := []string{"DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"}
	ndigs := []string{"EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"}
	icp, err := event.Incept(keys, ndigs)
	require.NoError(t, err)

	assert.NoError(t, KEL([]event.Event{icp}, codec.DefaultDigestCode))
}

func TestKELRejectsEmptyChain(t *testing.T) {
	assert.ErrorIs(t, KEL(nil, codec.DefaultDigestCode), ErrEmptyChain)
}

func TestKELValidRotationChainWithPreRotation(t *testing.T) {
	key0 := "DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"
	key1 := "DKiNnDmdOkcBjcAqL2FFhMZnBCmepQXu4pWhDQ8rvKzo"

	ndig0, err := event.DigestKey(key1, codec.DefaultDigestCode)
	require.NoError(t, err)

	icp, err := event.Incept([]string{key0}, []string{ndig0})
	require.NoError(t, err)

	rot, err := event.Rotate(event.RotateArgs{
		Pre:  icp.AID(),
		Keys: []string{key1},
		Dig:  icp.SAID(),
		Seq:  1,
	})
	require.NoError(t, err)

	err = KEL([]event.Event{icp, rot}, codec.DefaultDigestCode)
	assert.NoError(t, err)
}

func TestKELRejectsPreRotationViolation(t *testing.T) {
	key0 := "DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"
	wrongKey := "DMzDxkfXNspdPnYXxUEWNSQ_vBPvRiBlq1DRwFVCuUaw"
	ndig0 := "EPiaAesjPkPcUZwuSp9fz6uvPzt7pvBSkLGRs1gANSeA"

	icp, err := event.Incept([]string{key0}, []string{ndig0})
	require.NoError(t, err)

	rot, err := event.Rotate(event.RotateArgs{
		Pre:  icp.AID(),
		Keys: []string{wrongKey},
		Dig:  icp.SAID(),
		Seq:  1,
	})
	require.NoError(t, err)

	err = KEL([]event.Event{icp, rot}, codec.DefaultDigestCode)
	assert.ErrorIs(t, err, ErrPreRotationViolation)
}

func TestKELRejectsSequenceGap(t *testing.T) {
	key0 := "DSuhyBcPZEZLK-fcw5tzHn2N46wRCG_ZOoeKtWTOunRA"
	key1 := "DKiNnDmdOkcBjcAqL2FFhMZnBCmepQXu4pWhDQ8rvKzo"
	ndig0, err := event.DigestKey(key1, codec.DefaultDigestCode)
	require.NoError(t, err)

	icp, err := event.Incept([]string{key0}, []string{ndig0})
	require.NoError(t, err)

	rot, err := event.Rotate(event.RotateArgs{
		Pre:  icp.AID(),
		Keys: []string{key1},
		Dig:  icp.SAID(),
		Seq:  2, // should be 1
	})
	require.NoError(t, err)

	err = KEL([]event.Event{icp, rot}, codec.DefaultDigestCode)
	assert.ErrorIs(t, err, ErrSequenceGap)
}
