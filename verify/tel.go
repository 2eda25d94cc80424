package verify

import (
	"github.com/aaronp/kerits-sub005/event"
	"github.com/aaronp/kerits-sub005/tel"
)

// Registry walks a registry's vcp/ixn/vrt chain, enforcing spec §4.5's
// invariants: self-addressing genesis, gap-free sequencing, and prior
// linkage. iss/rev events belong to CredentialStatus, not this chain.
func Registry(events []tel.Event) error {
	if len(events) == 0 {
		return ErrEmptyChain
	}
	vcp, ok := events[0].(*tel.RegistryInception)
	if !ok {
		return ErrAIDContinuity
	}
	if err := tel.ValidateRegistryInception(vcp); err != nil {
		return err
	}
	if err := Event(mustRaw(vcp)); err != nil {
		return err
	}

	registryID := vcp.SAID()
	var lastSAID = vcp.SAID()
	var lastSeq uint64

	for i, e := range events {
		if i == 0 {
			continue
		}
		raw, err := e.Raw()
		if err != nil {
			return ErrSAIDMismatch
		}
		if err := Event(raw); err != nil {
			return err
		}
		if e.AID() != registryID {
			return ErrAIDContinuity
		}
		if e.Seq() != lastSeq+1 {
			return ErrSequenceGap
		}
		if tel.Prior(e) != lastSAID {
			return ErrPriorMismatch
		}
		lastSAID = e.SAID()
		lastSeq = e.Seq()
	}
	return nil
}

// CredentialStatus walks a single credential's iss/rev pair: its own
// sequence space of at most two events (s=0, s=1), independent of the
// registry's own chain and of every other credential under it (spec §4.5).
func CredentialStatus(events []tel.Event) error {
	if len(events) == 0 {
		return ErrEmptyChain
	}
	iss, ok := events[0].(*tel.Issuance)
	if !ok {
		return ErrAIDContinuity
	}
	if err := Event(mustRaw(iss)); err != nil {
		return err
	}
	if iss.Seq() != 0 {
		return ErrSequenceGap
	}
	if len(events) == 1 {
		return nil
	}
	rev, ok := events[1].(*tel.Revocation)
	if !ok {
		return ErrAIDContinuity
	}
	if err := Event(mustRaw(rev)); err != nil {
		return err
	}
	if rev.Seq() != 1 {
		return ErrSequenceGap
	}
	if rev.AID() != iss.AID() {
		return ErrAIDContinuity
	}
	if tel.Prior(rev) != iss.SAID() {
		return ErrPriorMismatch
	}
	if len(events) > 2 {
		return ErrSequenceGap
	}
	return nil
}

// AnchoredInIssuerKEL reports whether issuerEvents (the issuer's KEL ixn
// events) contains a seal anchoring vcp's registry inception, per spec
// §4.5's anchoring contract: an `ixn` whose seal list contains
// {i: registryId, d: vcpSaid}.
func AnchoredInIssuerKEL(vcp *tel.RegistryInception, issuerEvents []event.Event) error {
	for _, e := range issuerEvents {
		ixn, ok := e.(*event.Interaction)
		if !ok {
			continue
		}
		seals, err := ixn.Seals()
		if err != nil {
			continue
		}
		for _, s := range seals {
			if s.I == vcp.SAID() && s.D == vcp.SAID() {
				return nil
			}
		}
	}
	return ErrAnchorMissing
}

func mustRaw(e tel.Event) []byte {
	raw, err := e.Raw()
	if err != nil {
		return nil
	}
	return raw
}
