// SPDX-License-Identifier: MIT
// Package balance: sentinel and typed errors.
// Typed errors unwrap to their sentinel, so callers may use either
// errors.Is(err, ErrX) or errors.As(err, &*XError).

package balance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stoich/chem"
)

var (
	// ErrEmptyReaction indicates that a side of the reaction has no compounds.
	ErrEmptyReaction = errors.New("balance: reaction side is empty")

	// ErrInvalidCompound indicates a nil compound in the input.
	ErrInvalidCompound = errors.New("balance: invalid compound")

	// ErrUnbalanceable indicates that the element sets of the two sides differ.
	ErrUnbalanceable = errors.New("balance: element sets differ between sides")

	// ErrSolver indicates that the linear system could not be solved.
	ErrSolver = errors.New("balance: linear solver failed")

	// ErrInconsistentSign indicates a relative coefficient whose sign
	// contradicts the side its compound sits on.
	ErrInconsistentSign = errors.New("balance: coefficient sign inconsistent with side")

	// ErrRationalConversion indicates a relative coefficient with no rational form.
	ErrRationalConversion = errors.New("balance: rational conversion failed")

	// ErrScaling indicates that scaled coefficients are not int64 integers.
	ErrScaling = errors.New("balance: integer scaling failed")

	// ErrVerification indicates that the final coefficients do not conserve atoms.
	ErrVerification = errors.New("balance: verification failed")
)

// staged is implemented by every typed error of this package.
type staged interface {
	Stage() Stage
}

// StageOf reports the pipeline stage a balancing error failed in.
// ok is false for errors that did not come from the pipeline stages.
func StageOf(err error) (s Stage, ok bool) {
	var st staged
	if errors.As(err, &st) {
		return st.Stage(), true
	}

	return StageInput, false
}

// balanceErrorf tags err with an operation name, preserving it for errors.Is.
func balanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// UnbalanceableError lists the elements present on only one side.
type UnbalanceableError struct {
	MissingFromProducts []chem.Element // on the reagent side only
	MissingFromReagents []chem.Element // on the product side only
}

func (e *UnbalanceableError) Error() string {
	var b strings.Builder
	b.WriteString(ErrUnbalanceable.Error())
	if len(e.MissingFromProducts) > 0 {
		fmt.Fprintf(&b, "; missing from products: %s", joinElements(e.MissingFromProducts))
	}
	if len(e.MissingFromReagents) > 0 {
		fmt.Fprintf(&b, "; missing from reagents: %s", joinElements(e.MissingFromReagents))
	}

	return b.String()
}

func (e *UnbalanceableError) Unwrap() error { return ErrUnbalanceable }

// Stage implements staged.
func (e *UnbalanceableError) Stage() Stage { return StageElementsChecked }

// SolverError wraps a matrix failure (matrix.ErrSingular, matrix.ErrSVDFailed, ...).
type SolverError struct {
	At  Stage
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSolver.Error(), e.Err)
}

// Unwrap exposes both ErrSolver and the underlying matrix error.
func (e *SolverError) Unwrap() []error { return []error{ErrSolver, e.Err} }

// Stage implements staged.
func (e *SolverError) Stage() Stage { return e.At }

// SignError names the compound whose relative coefficient has the wrong sign.
type SignError struct {
	Index   int     // column index (reagents first)
	Formula string  // compound formula
	Value   float64 // raw solver value
	Reagent bool    // side of the compound
}

func (e *SignError) Error() string {
	side, want := "product", "negative"
	if e.Reagent {
		side, want = "reagent", "positive"
	}

	return fmt.Sprintf("%s: %s %s (#%d) = %g, want %s",
		ErrInconsistentSign.Error(), side, e.Formula, e.Index, e.Value, want)
}

func (e *SignError) Unwrap() error { return ErrInconsistentSign }

// Stage implements staged.
func (e *SignError) Stage() Stage { return StageSolved }

// RationalConversionError reports a raw value that has no exact rational form.
type RationalConversionError struct {
	Index int
	Value float64
}

func (e *RationalConversionError) Error() string {
	return fmt.Sprintf("%s: coefficient #%d = %g", ErrRationalConversion.Error(), e.Index, e.Value)
}

func (e *RationalConversionError) Unwrap() error { return ErrRationalConversion }

// Stage implements staged.
func (e *RationalConversionError) Stage() Stage { return StageRationalized }

// ScalingError reports a scaled coefficient that is not a representable integer.
type ScalingError struct {
	Index int
	Value string // exact rational value, as big.Rat.RatString
}

func (e *ScalingError) Error() string {
	return fmt.Sprintf("%s: coefficient #%d = %s", ErrScaling.Error(), e.Index, e.Value)
}

func (e *ScalingError) Unwrap() error { return ErrScaling }

// Stage implements staged.
func (e *ScalingError) Stage() Stage { return StageScaled }

// VerificationError carries the rejected candidate and what is wrong with it.
type VerificationError struct {
	Reaction    chem.BalancedReaction
	Imbalanced  []chem.Element // elements whose totals differ, sorted
	NonPositive bool           // some coefficient < 1
}

func (e *VerificationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", ErrVerification.Error(), e.Reaction)
	if len(e.Imbalanced) > 0 {
		fmt.Fprintf(&b, "; imbalanced: %s", joinElements(e.Imbalanced))
	}
	if e.NonPositive {
		b.WriteString("; non-positive coefficient")
	}

	return b.String()
}

func (e *VerificationError) Unwrap() error { return ErrVerification }

// Stage implements staged.
func (e *VerificationError) Stage() Stage { return StageVerified }

func joinElements(elems []chem.Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = string(e)
	}

	return strings.Join(parts, ", ")
}
