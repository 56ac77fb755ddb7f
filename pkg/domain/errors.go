package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrTransitionGap is the sentinel wrapped by TransitionGapError.
var ErrTransitionGap = errors.New("transition gap")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// InvalidInputError reports a character outside {a, b} at initialization.
// The machine performs no mutation when returning it.
type InvalidInputError struct {
	Char     rune
	Position int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: character %q at position %d (alphabet is {a, b})", e.Char, e.Position)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// TransitionGapError reports a missing rule for a (state, symbol) pair.
// With a validated {a, b} input this is unreachable under a correct table;
// it signals a table defect, never a data error.
type TransitionGapError struct {
	State  State
	Symbol Symbol
}

func (e *TransitionGapError) Error() string {
	return fmt.Sprintf("no transition for state %s reading %q", e.State, e.Symbol.Rune())
}

func (e *TransitionGapError) Unwrap() error { return ErrTransitionGap }
