package cel

import "fmt"

// CompileError is raised from lexing/parsing. It carries the byte offset of
// the offending character when one is known, following the teacher's
// SyntaxError (internal/tunascript/error.go), but CEL-lite only tracks a flat
// byte offset rather than line/column since expressions are always
// single-line administrator input.
type CompileError struct {
	Message   string
	Offset    int
	hasOffset bool
}

func (e *CompileError) Error() string {
	if e.hasOffset {
		return fmt.Sprintf("compile error at byte %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("compile error: %s", e.Message)
}

// ByteOffset returns the error's byte offset and whether one was recorded.
func (e *CompileError) ByteOffset() (int, bool) {
	return e.Offset, e.hasOffset
}

func newCompileErrorAt(pos int, format string, args ...any) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...), Offset: pos, hasOffset: true}
}

func newCompileError(format string, args ...any) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...)}
}

// NewExpressionTooLongError builds the compile error Compile raises when
// source exceeds maxLen bytes. Exported because the length check itself
// happens in the facade package, ahead of lexing.
func NewExpressionTooLongError(maxLen int) *CompileError {
	return newCompileError("expression is too long: exceeds %d bytes", maxLen)
}

// EvalError is raised from Eval/Explain. Per spec §7, only a small closed set
// of situations raise one; everything else resolves to Undefined/false/0.
type EvalError struct {
	Message   string
	Offset    int
	hasOffset bool
}

func (e *EvalError) Error() string {
	if e.hasOffset {
		return fmt.Sprintf("eval error at byte %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("eval error: %s", e.Message)
}

// ByteOffset returns the error's byte offset and whether one was recorded.
func (e *EvalError) ByteOffset() (int, bool) {
	return e.Offset, e.hasOffset
}

func newEvalErrorAt(pos int, format string, args ...any) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...), Offset: pos, hasOffset: true}
}
