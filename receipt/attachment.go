package receipt

import (
	"crypto"

	"github.com/aaronp/kerits-sub005/codec"
)

// ToAttachmentGroup frames r as a single-item VRC attachment group (spec
// §6), the form a receipt takes once it is attached to a KEL/TEL event
// line rather than handled as a bare COSE_Sign1 message.
func (r *Receipt) ToAttachmentGroup() codec.AttachmentGroup {
	return codec.AttachmentGroup{
		Code:    codec.AttachmentReceipt,
		Payload: [][]byte{r.raw},
	}
}

// FromAttachmentGroup recovers and verifies the receipts framed in a VRC
// group produced by ToAttachmentGroup (or by a peer following the same
// convention). Every item in the group is checked against eventSAID,
// eventRaw and publicKey; the first verification failure aborts the whole
// group, since a group with one bad entry is not a group a caller should
// partially trust.
func FromAttachmentGroup(group codec.AttachmentGroup, eventSAID string, eventRaw []byte, publicKey crypto.PublicKey) ([]*Receipt, error) {
	if group.Code != codec.AttachmentReceipt {
		return nil, ErrInvalidInput
	}

	receipts := make([]*Receipt, 0, len(group.Payload))
	for _, raw := range group.Payload {
		r, err := Verify(raw, eventSAID, eventRaw, publicKey)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, nil
}
