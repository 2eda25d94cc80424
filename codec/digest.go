package codec

import (
	"golang.org/x/crypto/blake2b"

	"github.com/zeebo/blake3"
)

// Digester computes the raw digest bytes backing a derivation code.
type Digester func(data []byte) []byte

var digesters = map[string]Digester{
	CodeBlake3_256.Code: func(data []byte) []byte {
		sum := blake3.Sum256(data)
		return sum[:]
	},
	CodeBlake2b256.Code: func(data []byte) []byte {
		sum := blake2b.Sum256(data)
		return sum[:]
	},
}

// DefaultDigestCode is the digest family used for SAID computation unless a
// builder is explicitly configured otherwise.
var DefaultDigestCode = CodeBlake3_256

// Digest hashes data with the digest family identified by code and returns
// it CESR-encoded.
func Digest(code DerivationCode, data []byte) (string, error) {
	fn, ok := digesters[code.Code]
	if !ok {
		return "", ErrUnknownDerivationCode
	}
	return EncodeCESR(code, fn(data))
}
