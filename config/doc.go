// Package config holds the process-wide, read-only protocol constants that
// the event, tel, and acdc builders share. Each of those packages defines its
// own functional-option type.
package config
