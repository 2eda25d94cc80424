package said

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeDoc parses raw JSON into a Doc, preserving the original field
// order exactly as it appears on the wire. This is what lets the verifier
// re-derive a SAID over externally produced bytes: canonicalizing the
// parsed Doc reproduces the original bytes key-for-key.
func DecodeDoc(raw []byte) (*Doc, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("said: expected a top-level JSON object")
	}
	return decodeObject(dec)
}

func decodeObject(dec *json.Decoder) (*Doc, error) {
	d := NewDoc()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("said: object key is not a string")
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		d.Set(key, val)
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("said: unexpected delimiter %q", t)
		}
	default:
		return tok, nil
	}
}
