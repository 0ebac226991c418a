// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/matrix"
)

// White-box bridge: exposes unexported pipeline steps to balance_test only.
var (
	CommonScale     = commonScale
	PairwiseScale   = pairwiseScale
	ScaleToIntegers = scaleToIntegers
	Rationalize     = rationalize
)

// SolveRelative runs the solve step on a raw rows×cols count matrix.
func SolveRelative(rows, cols int, counts []float64, rcond float64) ([]float64, error) {
	m, err := matrix.NewDenseFrom(rows, cols, counts)
	if err != nil {
		return nil, err
	}
	sol, err := solveRelative(stoichiometry{m: m, reagents: 1}, rcond)

	return sol.free, err
}

// BuildStoichiometry runs the matrix step and returns its shape.
func BuildStoichiometry(elements []chem.Element, reagents, products []*chem.Compound) (rows, cols int, err error) {
	st, err := buildStoichiometry(elements, reagents, products)
	if err != nil {
		return 0, 0, err
	}

	return st.m.Rows(), st.m.Cols(), nil
}
