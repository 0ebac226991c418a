// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects NaN and ±Inf entries.
// Time: O(n). Space: O(1).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateTolerance accepts finite, non-negative cutoffs.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
