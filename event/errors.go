package event

import "errors"

// The taxonomy named in spec §7, scoped to KEL events.
var (
	ErrInvalidInput               = errors.New("event: invalid input")
	ErrSAIDMismatch                = errors.New("event: re-derived SAID does not match the stored d field")
	ErrSequenceGap                 = errors.New("event: sequence number is not a gap-free successor of the prior event")
	ErrPriorMismatch               = errors.New("event: prior field does not match the predecessor event's SAID")
	ErrThresholdUnsatisfied        = errors.New("event: signer subset does not satisfy the threshold")
	ErrPreRotationViolation        = errors.New("event: rotation exposes a key not committed in the prior next-key digest list")
	ErrDelegationContinuityBroken  = errors.New("event: delegated KEL's establishment event is not drt, or its delegator changed")
	ErrVersionMismatch              = errors.New("event: version string protocol/kind does not match KERI/JSON")
	ErrIllegalTransition            = errors.New("event: event type is not legal from the current KEL state")
	ErrDuplicateBacker              = errors.New("event: backer list contains a duplicate")
	ErrBackerOverlap                = errors.New("event: a backer appears in both the removal and addition lists")
)
