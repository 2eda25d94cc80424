package said

import (
	"bytes"
	"encoding/json"
)

// Canonicalize serializes a Doc to the fixed-shape canonical form: no
// whitespace, insertion-ordered keys, RFC 8259 string escaping, and no HTML
// escaping (the stdlib default, which this disables).
func Canonicalize(d *Doc) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalCompact(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalValue(d.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	switch t := v.(type) {
	case *Doc:
		return Canonicalize(t)
	case Doc:
		return Canonicalize(&t)
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			ib, err := marshalValue(item)
			if err != nil {
				return nil, err
			}
			buf.Write(ib)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return marshalCompact(v)
	}
}

// marshalCompact JSON-encodes a leaf value (string, number, bool, struct,
// []string, ...) with HTML escaping disabled and the trailing newline the
// stdlib Encoder always appends trimmed off.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
