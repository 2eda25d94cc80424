package codec

import "fmt"

// EncodeCESR frames raw bytes under the given derivation code following the
// padding rule in spec §4.1:
//
//  1. ps = (3 - len(raw) mod 3) mod 3
//  2. prefix raw with ps zero bytes
//  3. base64url-encode the padded bytes
//  4. drop the first len(code) mod 4 characters of the base64 text and
//     prepend code
func EncodeCESR(dc DerivationCode, raw []byte) (string, error) {
	if len(raw) != dc.RawLen {
		return "", fmt.Errorf("%w: code %s wants %d raw bytes, got %d", ErrInvalidCESRLength, dc.Code, dc.RawLen, len(raw))
	}

	ps := (3 - len(raw)%3) % 3
	padded := make([]byte, ps+len(raw))
	copy(padded[ps:], raw)

	b64 := EncodeBase64(padded)

	drop := len(dc.Code) % 4
	if drop > len(b64) {
		return "", ErrInvalidCESRLength
	}

	text := dc.Code + b64[drop:]
	if len(text) != dc.EncodeLen {
		return "", fmt.Errorf("%w: code %s produced %d chars, want %d", ErrInvalidCESRLength, dc.Code, len(text), dc.EncodeLen)
	}
	return text, nil
}

// DecodeCESR inverts EncodeCESR: it recovers the raw bytes a CESR string
// carries, rejecting text whose length is inconsistent with its code.
func DecodeCESR(text string) (DerivationCode, []byte, error) {
	dc, err := CodeFromText(text)
	if err != nil {
		return DerivationCode{}, nil, err
	}
	if len(text) != dc.EncodeLen {
		return DerivationCode{}, nil, fmt.Errorf("%w: code %s expects %d chars, got %d", ErrInvalidCESRLength, dc.Code, dc.EncodeLen, len(text))
	}

	drop := len(dc.Code) % 4
	b64 := text[len(dc.Code):]

	// Reinstate the characters the encoder dropped. They were always 'A'
	// (zero value) because the dropped prefix covers only the zero
	// padding bytes inserted ahead of the raw material.
	full := make([]byte, 0, drop+len(b64))
	for i := 0; i < drop; i++ {
		full = append(full, 'A')
	}
	full = append(full, b64...)

	padded, err := DecodeBase64(string(full))
	if err != nil {
		return DerivationCode{}, nil, err
	}

	ps := (3 - dc.RawLen%3) % 3
	if len(padded) != ps+dc.RawLen {
		return DerivationCode{}, nil, ErrInvalidCESRLength
	}

	return dc, padded[ps:], nil
}
