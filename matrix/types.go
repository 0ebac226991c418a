// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Errors live in errors.go; validators in validators.go; kernels in
// impl_linear_algebra.go.
package matrix

// Matrix is a read-only two-dimensional array of float64 values. The kernels
// accept any Matrix and take a fast path for *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
