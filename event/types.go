package event

import "github.com/aaronp/kerits-sub005/said"

// Type is a KEL event's `t` discriminator.
type Type string

const (
	TypeInception          Type = "icp"
	TypeDelegatedInception  Type = "dip"
	TypeRotation            Type = "rot"
	TypeDelegatedRotation   Type = "drt"
	TypeInteraction         Type = "ixn"
)

// IsEstablishment reports whether t sets or rotates signing keys.
func (t Type) IsEstablishment() bool {
	switch t {
	case TypeInception, TypeDelegatedInception, TypeRotation, TypeDelegatedRotation:
		return true
	default:
		return false
	}
}

// Event is the tagged-variant interface every KEL event type implements.
// Unknown `t` values decode to Opaque, preserving forward compatibility
// (spec §9 "Dynamic typing in the source").
type Event interface {
	EventType() Type
	SAID() string
	AID() string
	Seq() uint64
	Doc() *said.Doc
	Raw() ([]byte, error)
}

// hexSeq renders a sequence number as lowercase hex without leading zeros,
// the form the `s` field always takes on the wire.
func hexSeq(v uint64) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789abcdef"
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}

// Opaque wraps an event of an unrecognized type: its raw bytes and parsed
// Doc are kept so the store and import pipeline never drop forward-looking
// event types.
type Opaque struct {
	T   Type
	D   *said.Doc
	raw []byte
}

func (o *Opaque) EventType() Type    { return o.T }
func (o *Opaque) SAID() string       { return o.D.OptString("d") }
func (o *Opaque) AID() string        { return o.D.OptString("i") }
func (o *Opaque) Seq() uint64        { return 0 }
func (o *Opaque) Doc() *said.Doc     { return o.D }
func (o *Opaque) Raw() ([]byte, error) {
	if o.raw != nil {
		return o.raw, nil
	}
	return said.Canonicalize(o.D)
}
