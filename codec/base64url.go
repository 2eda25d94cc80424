package codec

import "encoding/base64"

// urlEncoding is the standard URL-safe base64 alphabet with no padding, the
// only alphabet CESR text ever uses.
var urlEncoding = base64.RawURLEncoding

// EncodeBase64 encodes raw bytes as unpadded base64url text.
func EncodeBase64(raw []byte) string {
	return urlEncoding.EncodeToString(raw)
}

// DecodeBase64 decodes unpadded base64url text back to raw bytes.
func DecodeBase64(text string) ([]byte, error) {
	b, err := urlEncoding.DecodeString(text)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	return b, nil
}
