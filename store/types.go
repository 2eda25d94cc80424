package store

// Encoding names the wire framing of bytes passed to PutEvent/PutKELEvent/
// PutTELEvent. The reference encoding is canonical JSON; the abstract
// contract leaves room for a future CESR-native encoding tag.
type Encoding string

const EncodingJSON Encoding = "JSON"

// Scope names an alias namespace. Each scope has an independent alias
// namespace (spec §4.7).
type Scope string

const (
	ScopeKEL    Scope = "kel"
	ScopeTEL    Scope = "tel"
	ScopeSchema Scope = "schema"
	ScopeACDC   Scope = "acdc"
)

// Meta is the canonical metadata the store records for every event, never
// more than what spec §4.7 names: type, SAID, AID or registry, sequence,
// prior, timestamp, and the optional cross-references a KEL/TEL/ACDC event
// may carry.
type Meta struct {
	Type        string
	SAID        string
	AID         string // KEL identifier or TEL registry identifier
	Seq         uint64
	Prior       string
	Timestamp   string
	ACDCRef     string // for iss/rev: the credential SAID
	IssuerRef   string
	HolderRef   string
	RegistryRef string // `ri`, when present
}
