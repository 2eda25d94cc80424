package codec

import "errors"

var (
	ErrUnknownDerivationCode = errors.New("unrecognized CESR derivation code")
	ErrInvalidCESRLength     = errors.New("input length is inconsistent with its claimed derivation code")
	ErrInvalidBase64         = errors.New("input is not valid unpadded base64url")
)
