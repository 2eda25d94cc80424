package verify

import "errors"

var (
	ErrSAIDMismatch        = errors.New("verify: re-derived SAID does not match the stored d field")
	ErrSubjectSAIDMismatch = errors.New("verify: re-derived subject SAID does not match a.d")
	ErrVersionMismatch     = errors.New("verify: version string protocol is not ACDC")
	ErrSequenceGap         = errors.New("verify: KEL/TEL sequence is not gap-free")
	ErrPriorMismatch       = errors.New("verify: prior field does not match the predecessor's SAID")
	ErrAIDContinuity       = errors.New("verify: event's AID does not match the KEL's inception AID")
	ErrPreRotationViolation = errors.New("verify: rotation exposes a key not committed by the prior establishment event")
	ErrDelegationStickiness = errors.New("verify: delegated KEL contains a non-drt establishment event or a changed delegator")
	ErrAnchorMissing       = errors.New("verify: registry inception is not anchored in the issuer's KEL")
	ErrEmptyChain          = errors.New("verify: chain has no events")
)
