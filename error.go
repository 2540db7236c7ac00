package comb

import (
	"fmt"
)

// Error represents a parse failure.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the failure occurred at.
	Position() Position
}

type parseError struct {
	message string
	pos     Position
}

func (p *parseError) Error() string { return FormatError(p.pos, p.message) }

func (p *parseError) Message() string { return p.message }

func (p *parseError) Position() Position { return p.pos }

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) Error {
	return &parseError{message: fmt.Sprintf(format, args...), pos: pos}
}

// FormatError formats an error message in the form "file:line:col: message".
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}

// failf is the engine's internal failure constructor: a zero value, the
// untouched input, and an Error pinned to it.
func failf[T any](in Input, format string, args ...interface{}) (T, Input, error) {
	var zero T
	return zero, in, Errorf(in.Position(), format, args...)
}
