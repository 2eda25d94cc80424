package tel

import "github.com/aaronp/kerits-sub005/said"

// Type is a TEL event's `t` discriminator.
type Type string

const (
	TypeRegistryInception Type = "vcp"
	TypeIssuance          Type = "iss"
	TypeRevocation        Type = "rev"
	TypeInteraction       Type = "ixn"
	TypeRegistryRotation  Type = "vrt"
)

// Event is the tagged-variant interface every TEL event type implements.
type Event interface {
	EventType() Type
	SAID() string
	AID() string
	Seq() uint64
	Doc() *said.Doc
	Raw() ([]byte, error)
}

// hexSeq renders a sequence number as lowercase hex without leading zeros.
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

func parseHexSeq(s string) uint64 {
	var v uint64
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		default:
			return 0
		}
	}
	return v
}

// Opaque wraps an event of an unrecognized type, preserving forward
// compatibility with TEL event types this package does not yet know.
type Opaque struct {
	T   Type
	D   *said.Doc
	raw []byte
}

func (o *Opaque) EventType() Type      { return o.T }
func (o *Opaque) SAID() string         { return o.D.OptString("d") }
func (o *Opaque) AID() string          { return o.D.OptString("i") }
func (o *Opaque) Seq() uint64          { return parseHexSeq(o.D.OptString("s")) }
func (o *Opaque) Doc() *said.Doc       { return o.D }
func (o *Opaque) Raw() ([]byte, error) {
	if o.raw != nil {
		return o.raw, nil
	}
	return said.Canonicalize(o.D)
}
