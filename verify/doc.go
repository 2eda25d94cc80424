// Package verify re-derives SAIDs and checks chain-continuity invariants
// for KEL, TEL, and ACDC objects passed in by the caller (spec §4.8 first
// half); it does not read from a store.
package verify
