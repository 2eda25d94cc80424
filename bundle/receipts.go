package bundle

import (
	"crypto"

	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/receipt"
)

// VerifyReceipts walks b.Events alongside b.Receipts, decoding each
// non-empty entry as a VRC attachment group (codec.DecodeAttachmentGroup)
// and verifying every receipt it carries against the corresponding event
// and the signing witness's public key. It returns one *receipt.Receipt
// slice per event, in Events order; an event with no receipts attached
// gets a nil slice.
//
// witnessKey resolves a witness AID to the public key that should have
// signed its receipt — the core carries no key registry of its own (spec
// §1 Non-goals), so the host supplies this lookup.
func VerifyReceipts(b Bundle, witnessKey func(witnessAID string) (crypto.PublicKey, bool)) ([][]*receipt.Receipt, error) {
	out := make([][]*receipt.Receipt, len(b.Events))
	for i, eventRaw := range b.Events {
		if i >= len(b.Receipts) || len(b.Receipts[i]) == 0 {
			continue
		}

		eventSAID := declaredSAID(eventRaw)
		if eventSAID == "" {
			return nil, ErrUnknownType
		}

		group, err := codec.DecodeAttachmentGroup(codec.AttachmentReceipt, b.Receipts[i])
		if err != nil {
			return nil, err
		}

		receipts := make([]*receipt.Receipt, 0, len(group.Payload))
		for _, raw := range group.Payload {
			witnessAID, err := receipt.PeekWitnessAID(raw)
			if err != nil {
				return nil, err
			}
			key, ok := witnessKey(witnessAID)
			if !ok {
				return nil, receipt.ErrInvalidInput
			}
			r, err := receipt.Verify(raw, eventSAID, eventRaw, key)
			if err != nil {
				return nil, err
			}
			receipts = append(receipts, r)
		}
		out[i] = receipts
	}
	return out, nil
}
