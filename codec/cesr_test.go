package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCESRRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code DerivationCode
	}{
		{"blake3-256 digest", CodeBlake3_256},
		{"ed25519 verkey", CodeEd25519Verkey},
		{"ed25519 signature", CodeEd25519Sig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, tt.code.RawLen)
			for i := range raw {
				raw[i] = byte(i + 1)
			}

			text, err := EncodeCESR(tt.code, raw)
			require.NoError(t, err)
			assert.Len(t, text, tt.code.EncodeLen)
			assert.Equal(t, tt.code.Code, text[:len(tt.code.Code)])

			gotCode, gotRaw, err := DecodeCESR(text)
			require.NoError(t, err)
			assert.Equal(t, tt.code, gotCode)
			assert.Equal(t, raw, gotRaw)
		})
	}
}

func TestDecodeCESRRejectsBadLength(t *testing.T) {
	_, _, err := DecodeCESR("E" + "short")
	assert.ErrorIs(t, err, ErrInvalidCESRLength)
}

func TestDigestIsDeterministic(t *testing.T) {
	d1, err := Digest(DefaultDigestCode, []byte("hello world"))
	require.NoError(t, err)
	d2, err := Digest(DefaultDigestCode, []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 44)

	d3, err := Digest(DefaultDigestCode, []byte("hello worlD"))
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}
