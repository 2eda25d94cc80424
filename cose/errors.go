package cose

import "fmt"

// ErrNoProtectedHeaderValue reports a missing protected header label.
type ErrNoProtectedHeaderValue struct {
	Label int64
}

func (e *ErrNoProtectedHeaderValue) Error() string {
	return fmt.Sprintf("cose: protected header missing label %d", e.Label)
}

// ErrUnexpectedProtectedHeaderType reports a protected header value decoded
// to an unexpected Go type.
type ErrUnexpectedProtectedHeaderType struct {
	label        int64
	expectedType string
	actualType   string
}

func (e *ErrUnexpectedProtectedHeaderType) Error() string {
	return fmt.Sprintf("cose: protected header label %d expected %s, got %s", e.label, e.expectedType, e.actualType)
}
