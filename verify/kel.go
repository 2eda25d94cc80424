package verify

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/event"
)

// KEL walks events from inception to head, enforcing spec §4.4's
// invariants: per-event SAID re-derivation, gap-free sequencing, prior
// linkage, AID continuity, pre-rotation, and delegation stickiness.
func KEL(events []event.Event, code codec.DerivationCode) error {
	if len(events) == 0 {
		return ErrEmptyChain
	}

	icp, ok := events[0].(*event.Inception)
	if !ok {
		return ErrAIDContinuity
	}
	aid := icp.AID()
	delegated := icp.EventType() == event.TypeDelegatedInception
	var delegator string
	if delegated {
		delegator = event.Delegator(icp)
	}

	var priorEstablishment event.Event = icp
	var lastSAID = icp.SAID()
	var lastSeq uint64

	for i, e := range events {
		raw, err := e.Raw()
		if err != nil {
			return ErrSAIDMismatch
		}
		if err := Event(raw); err != nil {
			return err
		}
		if e.AID() != aid {
			return ErrAIDContinuity
		}

		if i == 0 {
			continue
		}
		if e.Seq() != lastSeq+1 {
			return ErrSequenceGap
		}
		if event.Prior(e) != lastSAID {
			return ErrPriorMismatch
		}

		if e.EventType().IsEstablishment() {
			if delegated {
				isDrt := e.EventType() == event.TypeDelegatedRotation
				if !isDrt || event.Delegator(e) != delegator {
					return ErrDelegationStickiness
				}
			}
			rot, ok := e.(*event.Rotation)
			if !ok {
				return ErrAIDContinuity
			}
			if err := event.ValidatePreRotation(rot, priorEstablishment, code); err != nil {
				return ErrPreRotationViolation
			}
			priorEstablishment = e
		}

		lastSAID = e.SAID()
		lastSeq = e.Seq()
	}
	return nil
}
