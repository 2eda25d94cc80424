package kerierr

import (
	"errors"

	"github.com/aaronp/kerits-sub005/acdc"
	"github.com/aaronp/kerits-sub005/event"
	"github.com/aaronp/kerits-sub005/group"
	"github.com/aaronp/kerits-sub005/ipex"
	"github.com/aaronp/kerits-sub005/store"
	"github.com/aaronp/kerits-sub005/tel"
)

// classification pairs a sentinel error from some other package with the
// Kind it belongs to. Order matters only in that errors.Is must be able to
// tell them apart, which it always can since each sentinel is its own
// distinct value.
var classification = []struct {
	err  error
	kind Kind
}{
	{event.ErrInvalidInput, InvalidInput},
	{event.ErrSAIDMismatch, SAIDMismatch},
	{event.ErrSequenceGap, SequenceGap},
	{event.ErrPriorMismatch, PriorMismatch},
	{event.ErrThresholdUnsatisfied, ThresholdUnsatisfied},
	{event.ErrPreRotationViolation, PreRotationViolation},
	{event.ErrDelegationContinuityBroken, DelegationContinuityBroken},
	{event.ErrDuplicateBacker, DuplicateBacker},
	{event.ErrBackerOverlap, BackerOverlap},
	{event.ErrVersionMismatch, InvalidInput},
	{event.ErrIllegalTransition, ChainRuleViolated},

	{tel.ErrInvalidInput, InvalidInput},
	{tel.ErrSAIDMismatch, SAIDMismatch},
	{tel.ErrSequenceGap, SequenceGap},
	{tel.ErrPriorMismatch, PriorMismatch},
	{tel.ErrNotRevocable, ChainRuleViolated},
	{tel.ErrAnchorMissing, ChainRuleViolated},
	{tel.ErrDuplicateBacker, DuplicateBacker},
	{tel.ErrBackerOverlap, BackerOverlap},
	{tel.ErrVersionMismatch, InvalidInput},

	{acdc.ErrInvalidInput, InvalidInput},
	{acdc.ErrSAIDMismatch, SAIDMismatch},
	{acdc.ErrSubjectSAIDMismatch, SAIDMismatch},
	{acdc.ErrMissingTimestamp, InvalidInput},
	{acdc.ErrVersionMismatch, InvalidInput},

	{store.ErrParse, InvalidInput},
	{store.ErrDigestMismatch, SAIDMismatch},
	{store.ErrVersionMismatch, InvalidInput},
	{store.ErrSequenceGap, SequenceGap},
	{store.ErrPriorMismatch, PriorMismatch},
	{store.ErrNotFound, StoreError},
	{store.ErrAlreadyExists, StoreError},
	{store.ErrAliasCollision, AliasCollision},

	{ipex.ErrInvalidInput, InvalidInput},
	{ipex.ErrSAIDMismatch, SAIDMismatch},
	{ipex.ErrRequiresPrior, ChainRuleViolated},
	{ipex.ErrUnexpectedPrior, ChainRuleViolated},
	{ipex.ErrPriorMismatch, PriorMismatch},
	{ipex.ErrChainRuleViolated, ChainRuleViolated},
	{ipex.ErrMissingGrantBlock, InvalidInput},

	{group.ErrInvalidInput, InvalidInput},
	{group.ErrNotFound, StoreError},
	{group.ErrWrongEscrow, ChainRuleViolated},
	{group.ErrAlreadySigned, InvalidInput},
	{group.ErrNoSigners, ThresholdUnsatisfied},
}

// Classify maps err to the taxonomy Kind of the first sentinel it matches
// via errors.Is, or Internal if err is non-nil but unrecognized.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Kind
	}
	for _, c := range classification {
		if errors.Is(err, c.err) {
			return c.kind
		}
	}
	return Internal
}
