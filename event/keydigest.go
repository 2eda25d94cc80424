package event

import "github.com/aaronp/kerits-sub005/codec"

// DigestKey computes the CESR-encoded digest of a CESR-encoded public key,
// the value committed into an establishment event's next-key list. Rotation
// validates that every newly revealed key hashes to one of these digests.
func DigestKey(verkey string, code codec.DerivationCode) (string, error) {
	_, raw, err := codec.DecodeCESR(verkey)
	if err != nil {
		return "", err
	}
	return codec.Digest(code, raw)
}
