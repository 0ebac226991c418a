// SPDX-License-Identifier: MIT

package balance

import "math/big"

// lcm returns a·b / gcd(a, b) for positive a, b.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, g)

	return out.Mul(out, b)
}

// commonScale folds lcm over every denominator, starting from 1.
func commonScale(rats []*big.Rat) *big.Int {
	scale := big.NewInt(1)
	for _, r := range rats {
		scale = lcm(scale, r.Denom())
	}

	return scale
}

// pairwiseScale is the largest lcm over all unordered pairs of denominators
// (the lone denominator for one value, 1 for none). It can fall short of
// commonScale, e.g. for denominators 2, 3 and 5.
func pairwiseScale(rats []*big.Rat) *big.Int {
	switch len(rats) {
	case 0:
		return big.NewInt(1)
	case 1:
		return new(big.Int).Set(rats[0].Denom())
	}
	best := big.NewInt(0)
	for i := 0; i < len(rats); i++ {
		for j := i + 1; j < len(rats); j++ {
			if l := lcm(rats[i].Denom(), rats[j].Denom()); l.Cmp(best) > 0 {
				best = l
			}
		}
	}

	return best
}

// scaleToIntegers multiplies every fraction by their common scale and
// appends the scale itself as the pinned coefficient.
func scaleToIntegers(rats []*big.Rat) ([]int64, *big.Int, error) {
	scale := commonScale(rats)
	factor := new(big.Rat).SetInt(scale)

	out := make([]int64, 0, len(rats)+1)
	for i, r := range rats {
		v := new(big.Rat).Mul(r, factor)
		if !v.IsInt() || !v.Num().IsInt64() {
			return nil, nil, &ScalingError{Index: i, Value: v.RatString()}
		}
		out = append(out, v.Num().Int64())
	}
	if !scale.IsInt64() {
		return nil, nil, &ScalingError{Index: len(rats), Value: scale.String()}
	}
	out = append(out, scale.Int64())

	return out, scale, nil
}
