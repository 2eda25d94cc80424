package tel

import "errors"

// The taxonomy named in spec §7, scoped to TEL events.
var (
	ErrInvalidInput        = errors.New("tel: invalid input")
	ErrSAIDMismatch        = errors.New("tel: re-derived SAID does not match the stored d field")
	ErrSequenceGap         = errors.New("tel: sequence number is not the expected successor")
	ErrPriorMismatch       = errors.New("tel: prior field does not match the predecessor event's SAID")
	ErrNotRevocable        = errors.New("tel: credential has already been revoked or was never issued")
	ErrAnchorMissing       = errors.New("tel: registry inception is not anchored in the issuer's KEL")
	ErrDuplicateBacker     = errors.New("tel: backer list contains a duplicate")
	ErrBackerOverlap       = errors.New("tel: a backer appears in both the removal and addition lists")
	ErrVersionMismatch     = errors.New("tel: version string protocol/kind does not match KERI/JSON")
)
