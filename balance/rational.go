// SPDX-License-Identifier: MIT

package balance

import (
	"math"
	"math/big"
)

// LimitDenominator returns the fraction closest to r whose denominator does
// not exceed maxDen. r itself is returned (as a copy) when its denominator is
// already within bounds or when maxDen < 1.
//
// Implementation:
//   - Stage 1: walk the continued-fraction convergents p/q of r, starting from
//     (p0,q0) = (0,1) and (p1,q1) = (1,0), until the next q would exceed maxDen.
//   - Stage 2: k = ⌊(maxDen−q0)/q1⌋ gives the semiconvergent (p0+k·p1)/(q0+k·q1);
//     the other candidate is p1/q1.
//   - Stage 3: return the candidate nearer to r; ties go to the semiconvergent.
//
// All arithmetic is exact (math/big). r is not modified.
//
// Complexity: O(log maxDen) big-integer steps.
func LimitDenominator(r *big.Rat, maxDen int64) *big.Rat {
	out := new(big.Rat).Set(r)
	limit := big.NewInt(maxDen)
	if maxDen < 1 || r.Denom().Cmp(limit) <= 0 {
		return out
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	for {
		a.Div(n, d) // floor, d > 0
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		tmp.Mul(a, p1).Add(tmp, p0)
		p0.Set(p1)
		q0.Set(q1)
		p1.Set(tmp)
		q1.Set(q2)

		tmp.Mul(a, d)
		tmp.Sub(n, tmp)
		n.Set(d)
		d.Set(tmp)
	}

	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	if ratDistance(semi, r).Cmp(ratDistance(conv, r)) <= 0 {
		return semi
	}

	return conv
}

func ratDistance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)

	return d.Abs(d)
}

// rationalize turns raw solver values into non-negative bounded-denominator
// fractions: exact conversion first, then |x| is approximated with
// LimitDenominator.
func rationalize(free []float64, maxDen int64) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(free))
	for i, x := range free {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &RationalConversionError{Index: i, Value: x}
		}
		exact := new(big.Rat).SetFloat64(x)
		if exact == nil {
			return nil, &RationalConversionError{Index: i, Value: x}
		}
		out[i] = LimitDenominator(exact.Abs(exact), maxDen)
	}

	return out, nil
}
