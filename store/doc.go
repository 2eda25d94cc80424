// Package store defines the content-addressed event store contract (spec
// §4.7) and an in-memory reference implementation: SAID-indexed KEL/TEL
// events, ACDCs, schemas, and scoped aliases, plus the secondary indices
// (by-aid sequence order, by-prior lookup, head pointers) that make
// traversal practical without re-parsing every event on every query.
package store
