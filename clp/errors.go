package clp

import (
	"errors"
	"fmt"
)

// Every error returned by this package matches ErrContractViolation under
// errors.Is, together with exactly one of the more specific sentinels below
// or, for a context that was done before the call, the context's error.
// A solve outcome (optimal, infeasible, abandoned) is never an error.
var (
	// ErrContractViolation is the class of every error this package returns.
	ErrContractViolation = errors.New("clp: contract violation")

	// ErrBadShape indicates a negative dimension or a nil problem.
	ErrBadShape = errors.New("clp: invalid shape")

	// ErrLengthMismatch indicates that a slice does not have the length
	// implied by the problem shape or by its sibling slices.
	ErrLengthMismatch = errors.New("clp: length mismatch")

	// ErrIndexOutOfRange indicates a row or column index outside the shape.
	ErrIndexOutOfRange = errors.New("clp: index out of range")

	// ErrOverflow indicates a dimension or index that does not fit in the
	// 32-bit integers of the native calling convention.
	ErrOverflow = errors.New("clp: value overflows int32")

	// ErrInvalidMode indicates a mode other than Primal or Dual.
	ErrInvalidMode = errors.New("clp: invalid optimisation mode")

	// ErrLoad indicates that the shared library or its entry symbol could
	// not be loaded.
	ErrLoad = errors.New("clp: cannot load library")

	// ErrClosed indicates use of a Library after Close.
	ErrClosed = errors.New("clp: library closed")
)

// Error describes a rejected call with the operation and field involved.
type Error struct {
	Op    string // Operation that failed (e.g., "Solve", "Open")
	Field string // Offending input, if any (e.g., "RowLower")
	Msg   string // Additional context
	Err   error  // Specific sentinel
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("clp: %s failed: %s: %s", e.Op, e.Field, msg)
	}
	return fmt.Sprintf("clp: %s failed: %s", e.Op, msg)
}

// Unwrap exposes both the error class and the specific sentinel.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrContractViolation}
	}
	return []error{ErrContractViolation, e.Err}
}

func newError(op, field string, kind error, format string, args ...any) error {
	return &Error{Op: op, Field: field, Msg: fmt.Sprintf(format, args...), Err: kind}
}
