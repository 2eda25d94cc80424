package group

import (
	"sync"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Coordinator tracks group-signed events through gpse/gdee/gpwe to
// completion. One Coordinator instance serializes access to its own
// escrow maps; independent event SAIDs never block each other beyond that
// single mutex (spec §5: events are scoped by SAID, but the in-memory
// reference coordinator uses one lock for simplicity over its own maps).
type Coordinator struct {
	mu        sync.Mutex
	gpse      map[string]*PartiallySignedEvent
	gdee      map[string]*PartiallySignedEvent
	gpwe      map[string]*PartiallySignedEvent
	completed map[string]*PartiallySignedEvent
	timeout   time.Duration
	log       logger.Logger
}

// NewCoordinator builds a Coordinator whose Sweep evicts gpse/gdee/gpwe
// entries older than timeout. log may be nil.
func NewCoordinator(timeout time.Duration, log logger.Logger) *Coordinator {
	return &Coordinator{
		gpse:      make(map[string]*PartiallySignedEvent),
		gdee:      make(map[string]*PartiallySignedEvent),
		gpwe:      make(map[string]*PartiallySignedEvent),
		completed: make(map[string]*PartiallySignedEvent),
		timeout:   timeout,
		log:       log,
	}
}

func (c *Coordinator) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}

// Submit registers a freshly built group event into gpse, the entry
// escrow for every group event (spec §4.10 step 1).
func (c *Coordinator) Submit(e *PartiallySignedEvent, receivedAt time.Time) error {
	if e == nil || e.SAID == "" {
		return ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.Sigs == nil {
		e.Sigs = make(map[int]string)
	}
	if e.Receipts == nil {
		e.Receipts = make(map[string]string)
	}
	e.ReceivedAt = receivedAt
	e.escrow = EscrowGPSE
	c.gpse[e.SAID] = e
	c.debugf("group: submitted said=%s escrow=gpse", e.SAID)
	return nil
}

// AddSignature records signerIndex's signature against the gpse event
// said, transitioning it onward once the required signer count is met.
func (c *Coordinator) AddSignature(said string, signerIndex int, sig string) (Escrow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.gpse[said]
	if !ok {
		return "", ErrWrongEscrow
	}
	if _, dup := e.Sigs[signerIndex]; dup {
		return "", ErrAlreadySigned
	}
	e.Sigs[signerIndex] = sig

	if uint64(len(e.Sigs)) < e.RequiredSigners {
		return EscrowGPSE, nil
	}

	delete(c.gpse, said)
	next := e.nextAfterSignatures()
	e.escrow = next
	c.placeInto(next, e)
	c.debugf("group: said=%s reached signature threshold, moved to %s", said, next)
	return next, nil
}

// ApproveDelegation marks a gdee event approved by its delegator, moving
// it to gpwe or completed depending on whether it also awaits witnesses.
func (c *Coordinator) ApproveDelegation(said, token string) (Escrow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.gdee[said]
	if !ok {
		return "", ErrWrongEscrow
	}
	e.approvalToken = token

	delete(c.gdee, said)
	next := e.nextAfterDelegation()
	e.escrow = next
	c.placeInto(next, e)
	c.debugf("group: said=%s delegation approved, moved to %s", said, next)
	return next, nil
}

// AddReceipt records a witness receipt against a gpwe event, completing it
// once the required receipt count is met.
func (c *Coordinator) AddReceipt(said, witnessID, receipt string) (Escrow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.gpwe[said]
	if !ok {
		return "", ErrWrongEscrow
	}
	e.Receipts[witnessID] = receipt

	if uint64(len(e.Receipts)) < e.RequiredReceipts {
		return EscrowGPWE, nil
	}

	delete(c.gpwe, said)
	e.escrow = EscrowCompleted
	c.completed[said] = e
	c.debugf("group: said=%s reached receipt threshold, completed", said)
	return EscrowCompleted, nil
}

func (c *Coordinator) placeInto(stage Escrow, e *PartiallySignedEvent) {
	switch stage {
	case EscrowGDEE:
		c.gdee[e.SAID] = e
	case EscrowGPWE:
		c.gpwe[e.SAID] = e
	case EscrowCompleted:
		c.completed[e.SAID] = e
	}
}

// Get returns the escrowed event at said and which escrow holds it,
// searching gpse, gdee, gpwe, then completed in that order.
func (c *Coordinator) Get(said string) (*PartiallySignedEvent, Escrow, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range []map[string]*PartiallySignedEvent{c.gpse, c.gdee, c.gpwe, c.completed} {
		if e, ok := m[said]; ok {
			return e, e.escrow, true
		}
	}
	return nil, "", false
}

// Sweep evicts gpse/gdee/gpwe entries whose ReceivedAt is older than now
// minus the coordinator's timeout. Completed events are never swept (spec
// §4.10). Returns the SAIDs removed.
func (c *Coordinator) Sweep(now time.Time) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []string
	cutoff := now.Add(-c.timeout)
	for _, m := range []map[string]*PartiallySignedEvent{c.gpse, c.gdee, c.gpwe} {
		for said, e := range m {
			if e.ReceivedAt.Before(cutoff) {
				delete(m, said)
				removed = append(removed, said)
			}
		}
	}
	if len(removed) > 0 {
		c.debugf("group: swept %d expired escrow entries", len(removed))
	}
	return removed
}
