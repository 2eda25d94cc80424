package bundle

import "github.com/aaronp/kerits-sub005/kerierr"

// Type names what kind of chain a bundle carries (spec §6).
type Type string

const (
	TypeKEL  Type = "kel"
	TypeTEL  Type = "tel"
	TypeACDC Type = "acdc"
)

// Metadata is a bundle's optional descriptive header.
type Metadata struct {
	Scope     string `json:"scope,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Bundle is the on-wire import/export unit: a typed, ordered list of raw
// canonical-JSON events plus descriptive metadata. Events marshal as
// base64 strings under encoding/json's standard []byte handling (spec §6:
// "serializable as JSON with base64-encoded raw fields").
//
// Receipts, if present, is index-aligned with Events: Receipts[i] is the
// CBOR encoding of a codec.AttachmentGroup (code VRC) carrying every
// witness/backer receipt collected for Events[i], or nil if none were
// collected. It is a slice rather than a map so the alignment survives
// JSON round-tripping without needing event SAIDs as map keys.
type Bundle struct {
	Type     Type     `json:"type"`
	Metadata Metadata `json:"metadata"`
	Events   [][]byte `json:"events"`
	Receipts [][]byte `json:"receipts,omitempty"`
}

// ImportOptions controls how from_bundle treats already-present events and
// whether it re-verifies each SAID before inserting.
type ImportOptions struct {
	SkipExisting bool
	Verify       bool
}

// EventError pairs an event's index in the bundle with the failure
// encountered importing it, so the bundle's own per-event error list (spec
// §4.8 step 3) survives past the aggregate counts.
type EventError struct {
	Index int
	Kind  kerierr.Kind
	Err   error
}

// ImportResult reports the outcome of from_bundle (spec §4.8 step 4),
// plus a RunID a host can use to correlate log lines across a large import
// (the core itself carries no logging surface beyond §0's structured
// logger).
type ImportResult struct {
	RunID        string
	Imported     int
	Skipped      int
	Failed       int
	Errors       []EventError
	AID          string
	RegistryID   string
	CredentialID string
}
