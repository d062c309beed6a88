package alloy

import (
	"errors"
	"fmt"
)

// ErrEmptyComposition is returned when the composition string is empty or
// contains only whitespace.
var ErrEmptyComposition = errors.New("composition string is empty")

// ErrZeroSum is returned when every fraction in the composition is zero,
// which would make normalization divide by zero.
var ErrZeroSum = errors.New("fractions sum to zero")

// ErrNoLatticeData is returned when no element in the composition carries a
// usable lattice parameter.
var ErrNoLatticeData = errors.New("no valid lattice parameter data")

// ErrNoConductivityData is returned when no element in the composition
// carries a usable thermal conductivity.
var ErrNoConductivityData = errors.New("no valid thermal conductivity data")

// ElementNotFoundError indicates a composition references a symbol that is
// absent from the property table. This is always a hard failure for the
// property being computed, never a skip: it signals a mismatch between the
// user's input and the data, not sparse data.
type ElementNotFoundError struct {
	Symbol string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %q not found in property data", e.Symbol)
}

// ParseError indicates the composition string could not be parsed. Token
// identifies the offending fragment when one is known.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid token %q: %s", e.Token, e.Reason)
}
