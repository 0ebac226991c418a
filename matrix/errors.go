// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers will still use
// errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numeric failure (SVD/singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MatVec with len(x) != Cols, or LeastSquares with len(b) != Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (ingestion, right-hand sides).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when every singular value is at or below the
	// rank cutoff, so no least-squares solution carries information.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

	// ErrBadTolerance indicates a negative or non-finite rank cutoff.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)
