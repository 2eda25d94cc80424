package receipt

import "github.com/aaronp/kerits-sub005/cose"

// PeekWitnessAID reads the witness AID a still-unverified receipt claims
// for itself, without checking its signature — callers use this to resolve
// which public key to verify against before calling Verify.
func PeekWitnessAID(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrInvalidInput
	}
	csm, err := cose.NewCoseSign1MessageFromCBOR(raw)
	if err != nil {
		return "", err
	}
	return csm.DidFromProtectedHeader()
}
