// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/matrix"
)

// stoichiometry is the element×compound count matrix of one reaction.
// Column j holds columns[j]; the first reagents columns are the left side.
type stoichiometry struct {
	elements []chem.Element
	columns  []*chem.Compound
	reagents int
	m        *matrix.Dense
}

// buildStoichiometry lays out raw, non-negative atom counts: one row per
// element, one column per compound (reagents first, then products).
// Absent elements contribute 0.
//
// Complexity: O(E·N).
func buildStoichiometry(elements []chem.Element, reagents, products []*chem.Compound) (stoichiometry, error) {
	cols := make([]*chem.Compound, 0, len(reagents)+len(products))
	cols = append(cols, reagents...)
	cols = append(cols, products...)

	vals := make([]float64, 0, len(elements)*len(cols))
	for _, e := range elements {
		for _, c := range cols {
			vals = append(vals, float64(c.Count(e)))
		}
	}
	m, err := matrix.NewDenseFrom(len(elements), len(cols), vals)
	if err != nil {
		return stoichiometry{}, &SolverError{At: StageMatrixBuilt, Err: err}
	}

	return stoichiometry{elements: elements, columns: cols, reagents: len(reagents), m: m}, nil
}
