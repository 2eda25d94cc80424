// Package tel builds and validates Transaction Event Log (TEL) events: vcp,
// iss, rev, ixn, vrt. Builders are pure and synchronous; they never touch a
// store (spec §4.5, §5).
package tel
