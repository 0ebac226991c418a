// SPDX-License-Identifier: MIT
// Package chem: sentinel error set.
// All constructors and parsers return these sentinels (possibly wrapped);
// callers match them with errors.Is.

package chem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCompound is returned when a compound has no atoms or a non-positive count.
	ErrInvalidCompound = errors.New("chem: invalid compound")

	// ErrUnknownElement is returned when a symbol is not in the periodic table.
	ErrUnknownElement = errors.New("chem: unknown element symbol")

	// ErrEmptyFormula is returned for an empty (or whitespace-only) formula.
	ErrEmptyFormula = errors.New("chem: empty formula")

	// ErrUnbalancedBrackets is returned when a bracket group is not closed,
	// closed twice, or closed with the wrong bracket kind.
	ErrUnbalancedBrackets = errors.New("chem: unbalanced brackets")

	// ErrZeroCount is returned when an explicit count or multiplier is zero.
	ErrZeroCount = errors.New("chem: zero atom count")

	// ErrUnexpectedCharacter is returned for characters outside the formula grammar.
	ErrUnexpectedCharacter = errors.New("chem: unexpected character")

	// ErrMalformedEquation is returned when an equation lacks exactly one side separator
	// or contains an empty term.
	ErrMalformedEquation = errors.New("chem: malformed equation")

	// ErrCoefficientInInput is returned when an equation term starts with a coefficient.
	ErrCoefficientInInput = errors.New("chem: equation terms must not carry coefficients")

	// ErrInvalidMass is returned when a sample mass is not finite and positive.
	ErrInvalidMass = errors.New("chem: mass must be finite and positive")

	// ErrNotInReaction is returned when a compound is not on the expected side of a reaction.
	ErrNotInReaction = errors.New("chem: compound not in reaction")
)

// ParseError records where a formula stopped making sense.
// It unwraps to one of the sentinels above.
type ParseError struct {
	Formula string // input as given (after normalisation)
	Pos     int    // rune offset of the failure
	Err     error  // sentinel
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at %d: %v", e.Formula, e.Pos, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// chemErrorf tags err with an operation name, preserving it for errors.Is.
func chemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
