// SPDX-License-Identifier: MIT
package balance_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/balance"
)

func rats(pairs ...int64) []*big.Rat {
	out := make([]*big.Rat, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, big.NewRat(pairs[i], pairs[i+1]))
	}

	return out
}

// TestScaleToIntegers covers the worked reactions and the single-value case.
func TestScaleToIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []*big.Rat
		want []int64
	}{
		{"aluminium chloride", rats(1, 1, 3, 2), []int64{2, 3, 2}},
		{"benzoic acid combustion", rats(1, 3, 5, 2, 7, 3), []int64{2, 15, 14, 6}},
		{"permanganate", rats(2, 5, 16, 5, 2, 5, 2, 5, 8, 5), []int64{2, 16, 2, 2, 8, 5}},
		{"single", rats(3, 4), []int64{3, 4}},
		{"integral", rats(2, 1), []int64{2, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, scale, err := balance.ScaleToIntegers(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want[len(tc.want)-1], scale.Int64())
		})
	}
}

// TestCommonScaleMatchesPairwiseOnWorkedReactions compares the running LCM
// fold with the pairwise maximum on the reactions both handle.
func TestCommonScaleMatchesPairwiseOnWorkedReactions(t *testing.T) {
	for _, in := range [][]*big.Rat{
		rats(1, 1, 3, 2),
		rats(1, 3, 5, 2, 7, 3),
		rats(2, 5, 16, 5, 2, 5, 2, 5, 8, 5),
		rats(3, 4),
	} {
		require.Zero(t, balance.CommonScale(in).Cmp(balance.PairwiseScale(in)))
	}
}

// TestCommonScaleExceedsPairwise: denominators 2, 3, 5 need 30, pairs only reach 15.
func TestCommonScaleExceedsPairwise(t *testing.T) {
	in := rats(1, 2, 1, 3, 1, 5)
	require.Equal(t, int64(30), balance.CommonScale(in).Int64())
	require.Equal(t, int64(15), balance.PairwiseScale(in).Int64())

	got, _, err := balance.ScaleToIntegers(in)
	require.NoError(t, err)
	require.Equal(t, []int64{15, 10, 6, 30}, got)
}

// TestScaleToIntegersOverflow: a scale beyond int64 is a scaling failure.
func TestScaleToIntegersOverflow(t *testing.T) {
	const threePow30 = 205891132094649
	_, _, err := balance.ScaleToIntegers(rats(1, 1<<40, 1, threePow30))
	require.ErrorIs(t, err, balance.ErrScaling)

	var se *balance.ScalingError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 2, se.Index)

	stage, ok := balance.StageOf(err)
	require.True(t, ok)
	require.Equal(t, balance.StageScaled, stage)
}
