package receipt

import (
	"crypto/ecdsa"
	"io"

	gocose "github.com/veraison/go-cose"

	"github.com/aaronp/kerits-sub005/cose"
)

// Build signs eventRaw (the receipted event's canonical bytes) as witness
// witnessAID, carrying witnessAID and eventSAID in the COSE_Sign1 protected
// header (DID and Feed respectively) so the resulting receipt is
// self-describing on the wire.
func Build(witnessAID, eventSAID string, eventRaw []byte, privateKey *ecdsa.PrivateKey, rand io.Reader) (*Receipt, error) {
	if witnessAID == "" || eventSAID == "" || len(eventRaw) == 0 || privateKey == nil {
		return nil, ErrInvalidInput
	}

	msg := &gocose.Sign1Message{
		Headers: gocose.Headers{
			Protected: gocose.ProtectedHeader{
				cose.HeaderLabelDID:  witnessAID,
				cose.HeaderLabelFeed: eventSAID,
			},
		},
		Payload: eventRaw,
	}

	csm, err := cose.NewCoseSign1Message(msg)
	if err != nil {
		return nil, err
	}

	if err := csm.SignES256(rand, nil, privateKey); err != nil {
		return nil, err
	}

	raw, err := cose.MarshalCBOR(csm.Sign1Message)
	if err != nil {
		return nil, err
	}

	return &Receipt{WitnessAID: witnessAID, SAID: eventSAID, raw: raw}, nil
}
