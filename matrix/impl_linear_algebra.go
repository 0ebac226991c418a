// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels over any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - MatVec: y = A·x with a flat fast-path for *Dense.
//   - LeastSquares: minimum-norm solution of A·x ≈ b through a full SVD
//     (gonum.org/v1/gonum/mat), with an explicit rank cutoff.
//
// Notes:
//   - Kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial sum value for dot products and norms.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opLeastSquares = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LeastSquaresResult is the outcome of LeastSquares.
type LeastSquaresResult struct {
	X              []float64 // solution, len == Cols(A)
	Rank           int       // singular values kept
	SingularValues []float64 // all singular values, descending
	Residual       float64   // ‖A·X − b‖₂
}

// LeastSquares computes the minimum-norm least-squares solution of A·x ≈ b.
//
// Implementation:
//   - Stage 1: validate A (non-nil), b (len == Rows(A), finite) and rcond.
//   - Stage 2: copy A into a gonum *mat.Dense and factorize with mat.SVDFull.
//   - Stage 3: rank = #{σᵢ > rcond·σ₀}; rank 0 ⇒ ErrSingular.
//   - Stage 4: x = V·Σ⁺·Uᵀ·b restricted to the first rank singular triplets.
//   - Stage 5: residual ‖A·x − b‖₂ via MatVec.
//
// Behavior highlights:
//   - rcond = 0 keeps every singular value that is not exactly zero.
//   - Works for over- and under-determined shapes.
//   - Panics raised inside gonum are recovered and reported as ErrSVDFailed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrBadTolerance (validation).
//   - ErrSVDFailed (factorization), ErrSingular (rank 0).
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r² + c²) for the full factors.
func LeastSquares(a Matrix, b []float64, rcond float64) (res LeastSquaresResult, err error) {
	if err = ValidateNotNil(a); err != nil {
		return res, matrixErrorf(opLeastSquares, err)
	}
	if err = ValidateVecLen(b, a.Rows()); err != nil {
		return res, matrixErrorf(opLeastSquares, err)
	}
	if err = ValidateFiniteVec(b); err != nil {
		return res, matrixErrorf(opLeastSquares, err)
	}
	if err = ValidateTolerance(rcond); err != nil {
		return res, matrixErrorf(opLeastSquares, err)
	}

	defer func() {
		if r := recover(); r != nil {
			res = LeastSquaresResult{}
			err = matrixErrorf(opLeastSquares, fmt.Errorf("%w: %v", ErrSVDFailed, r))
		}
	}()

	rows, cols := a.Rows(), a.Cols()
	ga, err := toGonum(a)
	if err != nil {
		return res, matrixErrorf(opLeastSquares, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(ga, mat.SVDFull); !ok {
		return res, matrixErrorf(opLeastSquares, ErrSVDFailed)
	}
	res.SingularValues = svd.Values(nil)
	res.Rank = svd.Rank(rcond)
	if res.Rank == 0 {
		return LeastSquaresResult{SingularValues: res.SingularValues}, matrixErrorf(opLeastSquares, ErrSingular)
	}

	rhs := make([]float64, rows)
	copy(rhs, b)
	var x mat.Dense
	svd.SolveTo(&x, mat.NewDense(rows, 1, rhs), res.Rank)

	res.X = make([]float64, cols)
	for j := 0; j < cols; j++ {
		res.X[j] = x.At(j, 0)
	}

	ax, err := MatVec(a, res.X)
	if err != nil {
		return LeastSquaresResult{}, matrixErrorf(opLeastSquares, err)
	}
	sum := ZeroSum
	for i := range ax {
		d := ax[i] - b[i]
		sum += d * d
	}
	res.Residual = math.Sqrt(sum)

	return res, nil
}

// toGonum copies any Matrix into a gonum dense matrix (row-major).
func toGonum(a Matrix) (*mat.Dense, error) {
	if d, ok := a.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.RawData()), nil
	}
	rows, cols := a.Rows(), a.Cols()
	data := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			data[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, data), nil
}
