// Package event builds and validates Key Event Log (KEL) events: icp, rot,
// ixn, dip, drt. Builders are pure and synchronous; they never touch a
// store (spec §4.4, §5).
package event
