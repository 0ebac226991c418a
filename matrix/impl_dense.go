// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the finite-only numeric policy from a single place (NewDenseFrom).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); SplitLastColumn: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"              // method tag used in error wrappers
	ctxFrom  = "NewDenseFrom"    // ctor tag
	ctxSplit = "SplitLastColumn" // method tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Every stored value is finite; NewDenseFrom rejects NaN/±Inf and nothing
// mutates a Dense after construction.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice.
// The slice is copied; the caller keeps ownership of vals.
//
// Implementation:
//   - Stage 1: validate shape and len(vals) == rows*cols.
//   - Stage 2: validate every value is finite.
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions  when rows<=0 or cols<=0.
//   - ErrDimensionMismatch  when len(vals) != rows*cols.
//   - ErrNaNInf             when a value is NaN or ±Inf (wrapped with its coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrDimensionMismatch)
	}
	for k, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, vals)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// At wraps the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// RawData returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// SplitLastColumn separates the matrix into A (every column but the last)
// and b (the last column), the usual shape of a homogeneous system once one
// unknown has been pinned.
//
// Implementation:
//   - Stage 1: require at least two columns.
//   - Stage 2: copy columns 0..c-2 into a fresh r×(c-1) Dense and column c-1 into b.
//
// Errors:
//   - ErrInvalidDimensions when Cols() < 2 (A would be empty).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) SplitLastColumn() (*Dense, []float64, error) {
	if m.c < 2 {
		return nil, nil, matrixErrorf(ctxSplit, ErrInvalidDimensions)
	}
	a, err := NewDense(m.r, m.c-1)
	if err != nil {
		return nil, nil, matrixErrorf(ctxSplit, err)
	}
	b := make([]float64, m.r)
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		copy(a.data[i*a.c:(i+1)*a.c], m.data[base:base+m.c-1])
		b[i] = m.data[base+m.c-1]
	}

	return a, b, nil
}

// String is a human-readable dump of rows for diagnostics and debug logs.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
