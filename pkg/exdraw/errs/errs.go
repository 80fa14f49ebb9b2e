// Package errs defines the error kinds shared by the drawing packages.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a caller contract violation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDuplicateComment indicates a second comment on an already commented cell.
var ErrDuplicateComment = fmt.Errorf("multiple cell comments in one cell are not allowed: %w", ErrInvalidArgument)

// ErrMalformedDocument indicates a loaded part lacks a required node.
var ErrMalformedDocument = errors.New("malformed document")

// ErrUnattached indicates the drawing is not backed by a package part.
var ErrUnattached = errors.New("drawing is not attached to a package part")

// Error represents a failure while operating on a package part.
type Error struct {
	Part string
	Op   string // "load", "commit", "create-picture", ...
	Err  error
}

func (e *Error) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Part, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(part, op string, err error) *Error {
	return &Error{
		Part: part,
		Op:   op,
		Err:  err,
	}
}

// Invalid wraps ErrInvalidArgument with a formatted message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// Malformed wraps ErrMalformedDocument with a formatted message.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedDocument)
}
