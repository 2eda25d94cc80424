package event

// Keys returns the `k` (current signing keys) field of an establishment
// event. Non-establishment events return an empty slice.
func Keys(e Event) ([]string, error) {
	if !e.EventType().IsEstablishment() {
		return nil, nil
	}
	return e.Doc().GetStringSlice("k")
}

// NextDigests returns the `n` (next-key digest commitment) field of an
// establishment event.
func NextDigests(e Event) ([]string, error) {
	if !e.EventType().IsEstablishment() {
		return nil, nil
	}
	return e.Doc().GetStringSlice("n")
}

// Backers returns the effective backer list recorded on an establishment
// event: `b` for icp/dip, the post-edit list is not stored by rot/drt
// directly (only the ba/br deltas), so callers computing the *current*
// backer set should track it across Rotate calls (see tel.Backers for
// the analogous TEL rule) rather than re-derive it from a single event.
func Backers(e Event) ([]string, error) {
	if e.EventType() != TypeInception && e.EventType() != TypeDelegatedInception {
		return nil, nil
	}
	return e.Doc().GetStringSlice("b")
}

// Prior returns the `p` field (predecessor SAID) of rot/drt/ixn events.
func Prior(e Event) string {
	switch e.EventType() {
	case TypeRotation, TypeDelegatedRotation, TypeInteraction:
		return e.Doc().OptString("p")
	default:
		return ""
	}
}

// Delegator returns the `di` field of dip/drt events, or "".
func Delegator(e Event) string {
	return e.Doc().OptString("di")
}
