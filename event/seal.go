package event

// Seal anchors an external event into an ixn's `a` field: {i, s?, d}. The
// s (sequence) is only present for some call sites and is never required
// for validity, only for convenience when replaying.
type Seal struct {
	I string `json:"i"`
	S string `json:"s,omitempty"`
	D string `json:"d"`
}

// RegistrySeal builds the canonical seal shape used to anchor a TEL
// registry's vcp into the issuer's KEL: {i: registryId, d: vcpSaid}. Both
// `i` and the legacy `acdcSaid` field name are accepted on parse (spec §9
// Open Question "Nested registry anchoring"); this is always the shape
// emitted.
func RegistrySeal(registryID, vcpSAID string) Seal {
	return Seal{I: registryID, D: vcpSAID}
}
