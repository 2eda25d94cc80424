package codec

// DerivationCode identifies the type and raw byte length of the material a
// CESR-encoded string carries, per the KERI/ACDC code tables.
type DerivationCode struct {
	Code      string // the prefix token, 1-4 characters
	RawLen    int    // length in bytes of the decoded raw material
	EncodeLen int    // length in characters of the full CESR text (code included)
}

// Well-known single and double character derivation codes. The table is
// read-only process-wide state, never mutated after init.
var (
	CodeBlake3_256        = DerivationCode{Code: "E", RawLen: 32, EncodeLen: 44}
	CodeBlake2b256        = DerivationCode{Code: "F", RawLen: 32, EncodeLen: 44}
	CodeEd25519Verkey     = DerivationCode{Code: "D", RawLen: 32, EncodeLen: 44}
	CodeEd25519NonTransVerkey = DerivationCode{Code: "B", RawLen: 32, EncodeLen: 44}
	CodeX25519Verkey      = DerivationCode{Code: "C", RawLen: 32, EncodeLen: 44}
	CodeEd25519Sig        = DerivationCode{Code: "0B", RawLen: 64, EncodeLen: 88}
	CodeECDSA256r1Sig     = DerivationCode{Code: "0I", RawLen: 64, EncodeLen: 88}
	CodeSalt128           = DerivationCode{Code: "0A", RawLen: 16, EncodeLen: 24}
	CodeRandomSeed256     = DerivationCode{Code: "A", RawLen: 32, EncodeLen: 44}
)

// Attachment group codes (spec §6). Unlike the derivation codes above,
// these prefix a framed group of items rather than a single digest/key/sig.
const (
	AttachmentIndexedSig    = "AAB" // indexed signature group
	AttachmentWitnessSig    = "FAB" // witness signature group
	AttachmentReceipt       = "VRC" // receipt (witness/backer) group
	AttachmentSeal          = "SAB" // seal group
)

var codesByToken = map[string]DerivationCode{
	CodeBlake3_256.Code:            CodeBlake3_256,
	CodeBlake2b256.Code:            CodeBlake2b256,
	CodeEd25519Verkey.Code:         CodeEd25519Verkey,
	CodeEd25519NonTransVerkey.Code: CodeEd25519NonTransVerkey,
	CodeX25519Verkey.Code:          CodeX25519Verkey,
	CodeEd25519Sig.Code:            CodeEd25519Sig,
	CodeECDSA256r1Sig.Code:         CodeECDSA256r1Sig,
	CodeSalt128.Code:               CodeSalt128,
	CodeRandomSeed256.Code:         CodeRandomSeed256,
}

// LookupCode returns the registered DerivationCode for a code token.
func LookupCode(code string) (DerivationCode, bool) {
	dc, ok := codesByToken[code]
	return dc, ok
}

// CodeFromText recovers the DerivationCode that a piece of CESR text was
// encoded with, trying 1-char codes before 2-char codes since the table
// currently has no ambiguous prefixes.
func CodeFromText(text string) (DerivationCode, error) {
	for _, n := range []int{1, 2, 4} {
		if len(text) < n {
			continue
		}
		if dc, ok := codesByToken[text[:n]]; ok {
			return dc, nil
		}
	}
	return DerivationCode{}, ErrUnknownDerivationCode
}
