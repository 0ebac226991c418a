// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/stoich/matrix"
)

// relativeSolution holds the N−1 free coefficients of a reaction whose last
// product is pinned at exactly 1. Values are raw: reagents positive and the
// remaining products negative when the reaction balances.
type relativeSolution struct {
	free           []float64
	rank           int
	singularValues []float64
	residual       float64
}

// solveRelative pins the last column at 1 and solves A·x = b in the
// least-squares sense, where A is every other column and b the pinned one.
func solveRelative(st stoichiometry, rcond float64) (relativeSolution, error) {
	a, b, err := st.m.SplitLastColumn()
	if err != nil {
		return relativeSolution{}, &SolverError{At: StageSolved, Err: err}
	}
	res, err := matrix.LeastSquares(a, b, rcond)
	if err != nil {
		return relativeSolution{}, &SolverError{At: StageSolved, Err: err}
	}

	return relativeSolution{
		free:           res.X,
		rank:           res.Rank,
		singularValues: res.SingularValues,
		residual:       res.Residual,
	}, nil
}

// checkSigns rejects the first free value whose sign contradicts its side.
// Columns below st.reagents are reagents and must be > 0; the rest are
// products and must be < 0. Zero is never valid.
func checkSigns(st stoichiometry, free []float64) error {
	for i, v := range free {
		reagent := i < st.reagents
		if (reagent && v > 0) || (!reagent && v < 0) {
			continue
		}

		return &SignError{Index: i, Formula: st.columns[i].Formula(), Value: v, Reagent: reagent}
	}

	return nil
}
