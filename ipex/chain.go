package ipex

// ValidateChain checks that response legally replies to prior: response's
// `p` field must equal prior's SAID, and prior's route must permit
// response's route (spec §4.9's route-transition table). prior may be nil
// only when response's route can initiate an exchange.
func ValidateChain(prior, response *Message) error {
	if response == nil {
		return ErrInvalidInput
	}
	if prior == nil {
		if RequiresPrior(response.Route()) {
			return ErrRequiresPrior
		}
		return nil
	}
	if response.Prior() != prior.SAID() {
		return ErrPriorMismatch
	}
	if !IsLegalResponse(prior.Route(), response.Route()) {
		return ErrChainRuleViolated
	}
	return nil
}

// ValidateExchange walks a full chain of messages in order, checking every
// adjacent pair with ValidateChain.
func ValidateExchange(messages []*Message) error {
	if len(messages) == 0 {
		return ErrInvalidInput
	}
	if err := ValidateChain(nil, messages[0]); err != nil {
		return err
	}
	for i := 1; i < len(messages); i++ {
		if err := ValidateChain(messages[i-1], messages[i]); err != nil {
			return err
		}
	}
	return nil
}
