package receipt

// Receipt is a witness's or backer's attestation that it has seen and
// accepted a KEL/TEL event: the witness AID (`i`), the receipted event's
// SAID (`d`), and the raw CBOR-encoded COSE_Sign1 message carrying the
// signature over the event's canonical bytes (spec §6's `VRC` attachment).
type Receipt struct {
	WitnessAID string
	SAID       string

	raw []byte
}

// Raw returns the CBOR-encoded COSE_Sign1 message backing this receipt,
// the bytes that would be framed into a VRC attachment group.
func (r *Receipt) Raw() []byte { return r.raw }
