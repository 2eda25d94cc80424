package codec

import "github.com/fxamacker/cbor/v2"

var (
	attachmentEncMode cbor.EncMode
	attachmentDecMode cbor.DecMode
)

func init() {
	encOpts := cbor.CanonicalEncOptions()
	mode, err := encOpts.EncMode()
	if err != nil {
		panic(err)
	}
	attachmentEncMode = mode

	decOpts := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}
	decMode, err := decOpts.DecMode()
	if err != nil {
		panic(err)
	}
	attachmentDecMode = decMode
}

// AttachmentGroup is the internal structure behind a CESR attachment line
// (spec §6): a code identifying the group's kind, the number of items it
// carries, and the items themselves. The wire line is the code token
// followed by a deterministic CBOR encoding of {count, payload}, so two
// groups with identical content always encode identically.
type AttachmentGroup struct {
	Code    string
	Payload [][]byte
}

type attachmentWire struct {
	Count   int      `cbor:"1,keyasint"`
	Payload [][]byte `cbor:"2,keyasint"`
}

// Encode renders the group's payload as deterministic CBOR. The caller is
// responsible for prefixing the result with Code when framing it onto the
// wire alongside a SAD line.
func (g AttachmentGroup) Encode() ([]byte, error) {
	return attachmentEncMode.Marshal(attachmentWire{
		Count:   len(g.Payload),
		Payload: g.Payload,
	})
}

// DecodeAttachmentGroup parses a group previously produced by Encode, given
// the code token that preceded it on the wire.
func DecodeAttachmentGroup(code string, data []byte) (AttachmentGroup, error) {
	var wire attachmentWire
	if err := attachmentDecMode.Unmarshal(data, &wire); err != nil {
		return AttachmentGroup{}, err
	}
	if wire.Count != len(wire.Payload) {
		return AttachmentGroup{}, ErrInvalidCESRLength
	}
	return AttachmentGroup{Code: code, Payload: wire.Payload}, nil
}
