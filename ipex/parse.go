package ipex

import "github.com/aaronp/kerits-sub005/said"

// Parse decodes a canonical exn envelope back into a Message, without
// re-deriving or checking its SAID (that is verify's job).
func Parse(raw []byte) (*Message, error) {
	d, err := said.DecodeDoc(raw)
	if err != nil {
		return nil, err
	}
	if d.OptString("t") != "exn" {
		return nil, ErrInvalidInput
	}
	return &Message{
		doc:    d,
		said_:  d.OptString("d"),
		route:  Route(d.OptString("r")),
		sender: d.OptString("i"),
		prior:  d.OptString("p"),
	}, nil
}
