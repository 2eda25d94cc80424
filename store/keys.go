package store

import (
	"fmt"
	"strings"
)

// Key is the structured-key variant spec §6 mentions without specifying: a
// typed (scope, id, sub-path) triple that renders to the same flat string
// layout the reference backend indexes by. A KV-backed Store implementation
// can use Key.Path() directly as its wire key; one that supports real
// hierarchical namespaces can use the three fields separately instead.
type Key struct {
	Scope   string // "event", "kel", "tel", "acdc", "schema", "alias", "head", "prior"
	ID      string // aid, registry id, credential SAID, or alias scope+name
	SubPath string // optional: zero-padded seq + said, or empty
}

// Path renders the key in the flat "scope/id[/subpath]" layout used by the
// in-memory backend's single namespace (spec §4.7).
func (k Key) Path() string {
	if k.SubPath == "" {
		return fmt.Sprintf("%s/%s", k.Scope, k.ID)
	}
	return fmt.Sprintf("%s/%s/%s", k.Scope, k.ID, k.SubPath)
}

// ParseKey recovers a Key from a path built by Path.
func ParseKey(path string) Key {
	parts := strings.SplitN(path, "/", 3)
	k := Key{}
	if len(parts) > 0 {
		k.Scope = parts[0]
	}
	if len(parts) > 1 {
		k.ID = parts[1]
	}
	if len(parts) > 2 {
		k.SubPath = parts[2]
	}
	return k
}

// seqSAIDPath zero-pads the sequence to 16 hex digits so lexical and
// numeric ordering coincide, keeping ordered scans cheap on a flat KV
// store without a secondary sort step.
func seqSAIDPath(seq uint64, said string) string {
	return fmt.Sprintf("%016x/%s", seq, said)
}

func eventKey(said string) string { return Key{Scope: "event", ID: said}.Path() }
func metaKey(said string) string  { return Key{Scope: "meta", ID: said}.Path() }

func kelKey(aid string, seq uint64, said string) string {
	return Key{Scope: "kel", ID: aid, SubPath: seqSAIDPath(seq, said)}.Path()
}
func telKey(ri string, seq uint64, said string) string {
	return Key{Scope: "tel", ID: ri, SubPath: seqSAIDPath(seq, said)}.Path()
}
func priorKey(priorSAID, said string) string {
	return Key{Scope: "prior", ID: priorSAID, SubPath: said}.Path()
}
func aliasKey(scope Scope, alias string) string {
	return Key{Scope: "alias", ID: string(scope), SubPath: alias}.Path()
}
func kelHeadKey(aid string) string { return Key{Scope: "head", ID: "kel", SubPath: aid}.Path() }
func telHeadKey(ri string) string  { return Key{Scope: "head", ID: "tel", SubPath: ri}.Path() }
func acdcKey(said string) string   { return Key{Scope: "acdc", ID: said}.Path() }
func schemaKey(said string) string { return Key{Scope: "schema", ID: said}.Path() }
