package receipt

import (
	"bytes"
	"crypto"

	"github.com/aaronp/kerits-sub005/cose"
)

// Verify decodes raw as a COSE_Sign1 receipt, checks its protected header
// names eventSAID as the receipted event and its payload matches eventRaw
// exactly, then verifies the signature against publicKey. On success it
// returns the parsed Receipt.
func Verify(raw []byte, eventSAID string, eventRaw []byte, publicKey crypto.PublicKey) (*Receipt, error) {
	if len(raw) == 0 || eventSAID == "" {
		return nil, ErrInvalidInput
	}

	csm, err := cose.NewCoseSign1MessageFromCBOR(raw)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(csm.Payload, eventRaw) {
		return nil, ErrPayloadMismatch
	}

	feed, err := csm.FeedFromProtectedHeader()
	if err != nil {
		return nil, err
	}
	if feed != eventSAID {
		return nil, ErrSAIDMismatch
	}

	witnessAID, err := csm.DidFromProtectedHeader()
	if err != nil {
		return nil, err
	}

	if err := csm.VerifyWithPublicKey(publicKey, nil); err != nil {
		return nil, err
	}

	return &Receipt{WitnessAID: witnessAID, SAID: feed, raw: raw}, nil
}
