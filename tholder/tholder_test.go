package tholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericAcceptsHexAndDecimal(t *testing.T) {
	th, err := ParseNumeric("ff")
	require.NoError(t, err)
	assert.Equal(t, uint64(255), th.Numeric())
	assert.Equal(t, "ff", th.Hex())

	th2, err := ParseNumeric(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), th2.Numeric())
}

func TestNumericSatisfactionMonotone(t *testing.T) {
	th := NewNumeric(2)
	assert.False(t, th.Satisfied([]int{0}))
	assert.True(t, th.Satisfied([]int{0, 1}))
	// Superset of a satisfying set still satisfies (spec §8 law 10).
	assert.True(t, th.Satisfied([]int{0, 1, 2}))
}

func TestWeightedSatisfaction(t *testing.T) {
	th, err := ParseWeighted([]string{"1/2", "1/2", "1/2"})
	require.NoError(t, err)

	require.NoError(t, th.Validate(3))
	assert.False(t, th.Satisfied([]int{0}))
	assert.True(t, th.Satisfied([]int{0, 1}))
	assert.True(t, th.Satisfied([]int{0, 1, 2}))
}

func TestWeightedValidateLengthMismatch(t *testing.T) {
	th, err := ParseWeighted([]string{"1/2", "1/2"})
	require.NoError(t, err)
	assert.ErrorIs(t, th.Validate(3), ErrLengthMismatch)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, uint64(1), DefaultCurrent(1).Numeric())
	assert.Equal(t, uint64(2), DefaultCurrent(3).Numeric())
	assert.Equal(t, uint64(0), DefaultNext(0).Numeric())
	assert.Equal(t, uint64(2), DefaultNext(3).Numeric())
}

func TestValidateNumericBounds(t *testing.T) {
	assert.NoError(t, NewNumeric(0).Validate(0))
	assert.Error(t, NewNumeric(0).Validate(2))
	assert.NoError(t, NewNumeric(2).Validate(2))
	assert.ErrorIs(t, NewNumeric(3).Validate(2), ErrThresholdExceedsN)
}
