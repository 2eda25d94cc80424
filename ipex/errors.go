package ipex

import "errors"

var (
	ErrInvalidInput     = errors.New("ipex: invalid input")
	ErrSAIDMismatch     = errors.New("ipex: re-derived SAID does not match the stored d field")
	ErrRequiresPrior    = errors.New("ipex: route requires a prior message")
	ErrUnexpectedPrior  = errors.New("ipex: route does not accept a prior message")
	ErrPriorMismatch    = errors.New("ipex: prior field does not match the referenced message's SAID")
	ErrChainRuleViolated = errors.New("ipex: route transition is not a legal response to the prior route")
	ErrMissingGrantBlock = errors.New("ipex: grant message is missing its e block")
)
