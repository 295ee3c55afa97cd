// Package errors provides structured error handling for pathkit.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindSyntax indicates malformed path text: an unrecognized character,
	// an unsupported command letter, or incomplete command operands.
	KindSyntax
	// KindValidation indicates an empty path where an operation requires
	// at least one segment.
	KindValidation
	// KindIO indicates a collaborator-reported failure (file, clipboard,
	// image decode), surfaced as-is rather than reinterpreted.
	KindIO
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindValidation:
		return "validation"
	case KindIO:
		return "io"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in pathkit.
type Error struct {
	// Op is the operation that failed (e.g., "svg.Parse").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Pos is the byte offset into the input for syntax errors, or -1.
	Pos int
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Kind == KindSyntax && e.Pos >= 0 {
		return fmt.Sprintf("%s [%s] at %d: %v", e.Op, e.Kind, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an *Error with Pos unset.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Pos: -1}
}

// Syntaxf constructs a syntax error at the given input position.
func Syntaxf(op string, pos int, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindSyntax, Err: fmt.Errorf(format, args...), Pos: pos}
}

// Validationf constructs a validation error.
func Validationf(op string, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: fmt.Errorf(format, args...), Pos: -1}
}

// IO wraps a collaborator failure without reinterpreting it.
func IO(op string, err error) *Error {
	return &Error{Op: op, Kind: KindIO, Err: err, Pos: -1}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "editor.BeginDrag").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by pathkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
