// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stoich/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback results.
type hide struct{ matrix.Matrix }

// MustDenseFrom BUILDS r×c *Dense from a row-major flat slice or fails the test.
// Implementation:
//   - Stage 1: matrix.NewDenseFrom(r, c, vals).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustDenseFrom(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// VecClose FAILS the test when |got[i]-want[i]| > tol for any i.
func VecClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			t.Fatalf("element %d: want %g, got %g (tol %g)", i, want[i], got[i], tol)
		}
	}
}
