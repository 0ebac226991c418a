// Package matrix offers the dense numeric layer used by the balancer.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     finite-only numeric policy (NaN/±Inf are rejected on the way in).
//   - Central validators (ValidateNotNil, ValidateVecLen, ...) returning sentinel errors.
//   - Kernels: MatVec and LeastSquares (SVD-based minimum-norm least squares,
//     backed by gonum.org/v1/gonum/mat).
//
// Matrices here are small (one row per element, one column per compound), so
// every kernel favours clarity and determinism over blocking or parallelism.
//
// See the examples in this package and in balance for usage patterns.
package matrix
