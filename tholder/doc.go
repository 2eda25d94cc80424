// Package tholder implements the signing-threshold algebra: numeric and
// weighted thresholds, their validation against a key count, and whether a
// set of signer indices satisfies them (spec §4.3).
package tholder
