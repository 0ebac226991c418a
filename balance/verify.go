// SPDX-License-Identifier: MIT

package balance

import (
	"math/big"

	"github.com/katalvlaran/stoich/chem"
)

// sideTotals sums coefficient·count per element over one side.
// ok is false when the side holds a nil compound.
func sideTotals(side []chem.Reactant) (totals map[chem.Element]*big.Int, ok bool) {
	totals = make(map[chem.Element]*big.Int)
	term := new(big.Int)
	for _, r := range side {
		if r.Compound == nil {
			return nil, false
		}
		coef := big.NewInt(r.Coefficient)
		for e, n := range r.Compound.Atoms() {
			acc, seen := totals[e]
			if !seen {
				acc = new(big.Int)
				totals[e] = acc
			}
			acc.Add(acc, term.Mul(coef, big.NewInt(int64(n))))
		}
	}

	return totals, true
}

// Imbalance lists, in chem.SortElements order, every element whose total
// differs between the two sides (including elements present on one side only).
// A reaction with a nil compound reports nil; use Verify for a full check.
func Imbalance(r chem.BalancedReaction) []chem.Element {
	left, okL := sideTotals(r.Reagents)
	right, okR := sideTotals(r.Products)
	if !okL || !okR {
		return nil
	}

	var out []chem.Element
	for e, l := range left {
		if rv, ok := right[e]; !ok || rv.Cmp(l) != 0 {
			out = append(out, e)
		}
	}
	for e := range right {
		if _, ok := left[e]; !ok {
			out = append(out, e)
		}
	}
	chem.SortElements(out)

	return out
}

// nonPositive reports whether any coefficient is below 1.
func nonPositive(r chem.BalancedReaction) bool {
	for _, c := range r.Coefficients() {
		if c < 1 {
			return true
		}
	}

	return false
}

// Verify reports whether r conserves every element with positive coefficients:
// both sides non-empty, no nil compound, every coefficient ≥ 1, and identical
// per-element totals on both sides.
func Verify(r chem.BalancedReaction) bool {
	if len(r.Reagents) == 0 || len(r.Products) == 0 || nonPositive(r) {
		return false
	}
	left, okL := sideTotals(r.Reagents)
	right, okR := sideTotals(r.Products)
	if !okL || !okR || len(left) != len(right) {
		return false
	}
	for e, l := range left {
		rv, ok := right[e]
		if !ok || rv.Cmp(l) != 0 {
			return false
		}
	}

	return true
}
