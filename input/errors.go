package input

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel classes for input failures.
var (
	// ErrParse classifies a token that is not a valid integer.
	ErrParse = errors.New("input: invalid number")

	// ErrValidation classifies input that contains no numbers at all.
	ErrValidation = errors.New("input: no numbers provided")
)

// ParseError reports a token that could not be interpreted as an integer.
type ParseError struct {
	// Token is the offending token after whitespace trimming.
	Token string
	// Index is the zero-based position of the token in the input.
	Index int
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid number", e.Token)
}

// Unwrap returns ErrParse so errors.Is(err, ErrParse) holds.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ValidationError reports input that yields no numbers.
type ValidationError struct {
	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap returns ErrValidation so errors.Is(err, ErrValidation) holds.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
