package event

import "github.com/aaronp/kerits-sub005/said"

// Parse decodes raw canonical event bytes into a typed Event, dispatching
// on the `t` field. Events of an unrecognized type decode to *Opaque so
// the store never drops a forward-looking event shape.
func Parse(raw []byte) (Event, error) {
	d, err := said.DecodeDoc(raw)
	if err != nil {
		return nil, err
	}
	return fromDoc(d, raw)
}

func fromDoc(d *said.Doc, raw []byte) (Event, error) {
	t := Type(d.OptString("t"))
	saidVal := d.OptString("d")
	aid := d.OptString("i")
	seq := parseHexSeq(d.OptString("s"))

	switch t {
	case TypeInception, TypeDelegatedInception:
		return &Inception{doc: d, said_: saidVal, aid: aid, delegated: t == TypeDelegatedInception}, nil
	case TypeRotation, TypeDelegatedRotation:
		return &Rotation{doc: d, said_: saidVal, aid: aid, seq: seq, delegated: t == TypeDelegatedRotation}, nil
	case TypeInteraction:
		return &Interaction{doc: d, said_: saidVal, aid: aid, seq: seq}, nil
	default:
		return &Opaque{T: t, D: d, raw: raw}, nil
	}
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
