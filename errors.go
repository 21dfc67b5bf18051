package acrotex

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound reports an input that does not exist or cannot be read.
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedInput reports a header or row that cannot be converted.
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutputWrite reports a destination that cannot be written.
	ErrOutputWrite = errors.New("output write failed")
)

// FieldError locates a malformed cell. Line is the 1-based CSV line of the
// record, or 0 when the error is not tied to an input row.
type FieldError struct {
	Line   int
	Column string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: column %q: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// malformed tags err so it also matches ErrMalformedInput.
type malformed struct{ err error }

func (m malformed) Error() string { return m.err.Error() }

func (m malformed) Unwrap() []error { return []error{m.err, ErrMalformedInput} }
