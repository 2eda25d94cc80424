package kerierr

// Kind is one of the error categories spec §7 names. It never grows
// package-specific variants; packages keep their own sentinel errors for
// that.
type Kind string

const (
	InvalidInput               Kind = "invalid_input"
	SizeMismatch               Kind = "size_mismatch"
	SAIDMismatch               Kind = "said_mismatch"
	SequenceGap                Kind = "sequence_gap"
	PriorMismatch              Kind = "prior_mismatch"
	ThresholdUnsatisfied       Kind = "threshold_unsatisfied"
	PreRotationViolation       Kind = "pre_rotation_violation"
	DelegationContinuityBroken Kind = "delegation_continuity_broken"
	DuplicateBacker            Kind = "duplicate_backer"
	BackerOverlap              Kind = "backer_overlap"
	ChainRuleViolated          Kind = "chain_rule_violated"
	AliasCollision             Kind = "alias_collision"
	StoreError                 Kind = "store_error"
	Internal                   Kind = "internal"
)
