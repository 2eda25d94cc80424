package tel

import "github.com/aaronp/kerits-sub005/said"

// Parse decodes raw canonical event bytes into a typed Event, dispatching
// on the `t` field. Unrecognized types decode to *Opaque.
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
	case TypeRegistryInception:
		return &RegistryInception{doc: d, said_: saidVal}, nil
	case TypeIssuance:
		return &Issuance{doc: d, said_: saidVal, acdc: aid}, nil
	case TypeRevocation:
		return &Revocation{doc: d, said_: saidVal, acdc: aid}, nil
	case TypeInteraction:
		return &Interaction{doc: d, said_: saidVal, registry: aid, seq: seq}, nil
	case TypeRegistryRotation:
		return &RegistryRotation{doc: d, said_: saidVal, registry: aid, seq: seq}, nil
	default:
		return &Opaque{T: t, D: d, raw: raw}, nil
	}
}
