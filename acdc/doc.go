// Package acdc builds Authentic Chained Data Containers: the subject block
// and the enclosing credential, in the load-bearing construction order
// spec §4.6 requires (subject SAID first, then credential SAID over the
// finished subject).
package acdc
