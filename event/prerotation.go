package event

import "github.com/aaronp/kerits-sub005/codec"

// ValidatePreRotation checks spec §4.4's invariant 4: every key exposed by
// rot must hash to a digest present in the immediately preceding
// establishment event's next-key list.
func ValidatePreRotation(rot *Rotation, priorEstablishment Event, code codec.DerivationCode) error {
	priorNext, err := NextDigests(priorEstablishment)
	if err != nil {
		return err
	}
	committed := make(map[string]bool, len(priorNext))
	for _, dig := range priorNext {
		committed[dig] = true
	}

	keys, err := rot.Doc().GetStringSlice("k")
	if err != nil {
		return ErrInvalidInput
	}
	for _, k := range keys {
		dig, err := DigestKey(k, code)
		if err != nil {
			return err
		}
		if !committed[dig] {
			return ErrPreRotationViolation
		}
	}
	return nil
}
