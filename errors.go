package cellite

import "github.com/dekarrin/cel-lite/internal/cel"

// file errors.go gives compile- and eval-time failures a single public
// error type, grounded in the cause-chain idiom of the teacher's
// server/serr package: wrap the underlying cause, expose it via Unwrap so
// callers can errors.As into it, and add an Offset accessor for the one
// extra bit of structure both failure kinds carry.

// CompileError is the cause an Error wraps when Compile fails.
type CompileError = cel.CompileError

// EvalError is the cause an Error wraps when Program.Eval or Program.Explain
// fails.
type EvalError = cel.EvalError

// Error is the single error type Compile, Program.Eval, and Program.Explain
// ever return. It always wraps either a *CompileError or an *EvalError;
// callers that need to distinguish the two phases can do so with errors.As
// against those types through Unwrap, but in the common case
// Error()/Offset() are all a host needs.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the wrapped compile- or eval-time cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Offset returns the byte offset within the source the error pertains to,
// and whether one was recorded. Not every error carries one (e.g. "expression
// is too long" has no single offending position).
func (e *Error) Offset() (int, bool) {
	switch c := e.cause.(type) {
	case *cel.CompileError:
		return c.ByteOffset()
	case *cel.EvalError:
		return c.ByteOffset()
	default:
		return 0, false
	}
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{cause: err}
}
