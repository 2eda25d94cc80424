// Package kerierr classifies the sentinel errors every other package
// already raises into the taxonomy named by spec §7 (InvalidInput,
// SAIDMismatch, SequenceGap, ...). Packages keep raising their own local
// sentinel errors for precise handling in-package; kerierr is a reporting
// boundary that a caller not familiar with each package's own error
// values can still classify into one of a small, stable set of Kinds.
package kerierr
