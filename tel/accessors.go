package tel

// Prior returns the `p` field (predecessor SAID) of rev/ixn/vrt events, or
// "" for vcp/iss which have none.
func Prior(e Event) string {
	switch e.EventType() {
	case TypeRevocation, TypeInteraction, TypeRegistryRotation:
		return e.Doc().OptString("p")
	default:
		return ""
	}
}

// Backers returns the `b` field of a vcp event; other event types return
// nil since the current backer set is only ever recorded at genesis and
// must be tracked across Rotate calls afterwards.
func Backers(e Event) ([]string, error) {
	if e.EventType() != TypeRegistryInception {
		return nil, nil
	}
	return e.Doc().GetStringSlice("b")
}

// RegistryOf returns the `ri` field of iss/rev events: the registry this
// credential event belongs to.
func RegistryOf(e Event) string {
	switch e.EventType() {
	case TypeIssuance, TypeRevocation:
		return e.Doc().OptString("ri")
	default:
		return ""
	}
}
