package codec

import "crypto/rand"

// GenerateNonce returns a fresh CESR-encoded random seed, the form TEL
// registry inception uses to make otherwise-identical vcp events unique.
func GenerateNonce() (string, error) {
	raw := make([]byte, CodeRandomSeed256.RawLen)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return EncodeCESR(CodeRandomSeed256, raw)
}
