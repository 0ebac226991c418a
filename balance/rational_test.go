// SPDX-License-Identifier: MIT
package balance_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/balance"
)

func ratOf(t *testing.T, x float64) *big.Rat {
	t.Helper()
	r := new(big.Rat).SetFloat64(x)
	require.NotNil(t, r)

	return r
}

// TestLimitDenominator covers convergents, semiconvergents, ties and negatives.
func TestLimitDenominator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     *big.Rat
		maxDen int64
		want   *big.Rat
	}{
		{"pi/100", ratOf(t, math.Pi), 100, big.NewRat(311, 99)},
		{"pi/1000", ratOf(t, math.Pi), 1000, big.NewRat(355, 113)},
		{"third", ratOf(t, 1.0/3), 100, big.NewRat(1, 3)},
		{"seven thirds", ratOf(t, 7.0/3), 100, big.NewRat(7, 3)},
		{"already bounded", big.NewRat(5, 2), 100, big.NewRat(5, 2)},
		{"tie goes to semiconvergent", big.NewRat(5, 12), 3, big.NewRat(1, 3)},
		{"negative", big.NewRat(-7, 10), 3, big.NewRat(-2, 3)},
		{"max below one", big.NewRat(1, 7), 0, big.NewRat(1, 7)},
		{"unit bound", big.NewRat(7, 5), 1, big.NewRat(1, 1)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := balance.LimitDenominator(tc.in, tc.maxDen)
			require.Zerof(t, got.Cmp(tc.want), "got %s, want %s", got.RatString(), tc.want.RatString())
		})
	}
}

// TestLimitDenominatorIdempotentOnIntegers: integers come back unchanged for any bound.
func TestLimitDenominatorIdempotentOnIntegers(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 1, 2, 15, 1 << 40} {
		for _, maxDen := range []int64{1, 2, 100, 1 << 20} {
			in := big.NewRat(n, 1)
			got := balance.LimitDenominator(in, maxDen)
			require.Zero(t, got.Cmp(in))
			require.Zero(t, balance.LimitDenominator(got, maxDen).Cmp(got))
		}
	}
}

// TestLimitDenominatorDoesNotAlias ensures the input is neither modified nor returned.
func TestLimitDenominatorDoesNotAlias(t *testing.T) {
	in := big.NewRat(5, 2)
	out := balance.LimitDenominator(in, 100)
	out.SetInt64(9)

	require.Equal(t, "5/2", in.RatString())
}

// TestRationalize drops signs and rejects non-finite values.
func TestRationalize(t *testing.T) {
	rats, err := balance.Rationalize([]float64{1.0 / 3, -7.0 / 3, 2.5}, 100)
	require.NoError(t, err)
	require.Equal(t, "1/3", rats[0].RatString())
	require.Equal(t, "7/3", rats[1].RatString())
	require.Equal(t, "5/2", rats[2].RatString())

	_, err = balance.Rationalize([]float64{1, math.NaN()}, 100)
	require.ErrorIs(t, err, balance.ErrRationalConversion)
	var rce *balance.RationalConversionError
	require.ErrorAs(t, err, &rce)
	require.Equal(t, 1, rce.Index)

	_, err = balance.Rationalize([]float64{math.Inf(1)}, 100)
	require.ErrorIs(t, err, balance.ErrRationalConversion)
}
