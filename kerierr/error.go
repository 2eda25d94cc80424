package kerierr

import "fmt"

// Error wraps an underlying package error with the Kind it belongs to and
// the operation that raised it, for callers that want to branch on Kind
// without importing every package's sentinel error values.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err as a kerierr.Error of the given Kind, recording op (an
// "operation" label such as "verify.KEL" or "bundle.FromBundle") for
// diagnostics. If err is already a *Error, its Kind is kept and only Op is
// overwritten, avoiding double-wrapping.
func New(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	if existing, ok := err.(*Error); ok {
		return &Error{Kind: existing.Kind, Op: op, Err: existing.Err}
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
