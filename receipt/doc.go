// Package receipt builds and verifies witness/backer receipts: a
// COSE_Sign1 message over an event's canonical bytes, carrying the
// witness's AID and the receipted event's SAID in its protected header.
// It never dials a witness or resolves an OOBI; it only shapes and checks
// the receipt object itself.
package receipt
