// Package group coordinates group multi-signature events through their
// three escrows (spec §4.10): gpse (partial-signed, awaiting enough member
// signatures), gdee (delegated, awaiting the delegator's approval), and
// gpwe (partial-witnessed, awaiting enough witness receipts). The
// coordinator owns the escrow maps in-process; persistence is a separate
// concern left to the host.
package group
