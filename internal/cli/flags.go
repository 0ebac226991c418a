// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/store"
)

// balanceFlags are shared by every command that balances reactions.
type balanceFlags struct {
	maxDenominator int64
	lenientSigns   bool
	dbPath         string
}

func (f *balanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.maxDenominator, "max-denominator", balance.DefaultMaxDenominator,
		"largest denominator allowed when reconstructing fractions")
	cmd.Flags().BoolVar(&f.lenientSigns, "lenient-signs", false,
		"ignore coefficient signs instead of rejecting compounds on the wrong side")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "record runs in this SQLite history database")
}

// options validates flag values before they reach the panicking option constructors.
func (f *balanceFlags) options(logger *slog.Logger) ([]balance.Option, error) {
	if f.maxDenominator < 1 {
		return nil, fmt.Errorf("--max-denominator must be >= 1, got %d", f.maxDenominator)
	}
	opts := []balance.Option{
		balance.WithMaxDenominator(f.maxDenominator),
		balance.WithLogger(logger),
	}
	if f.lenientSigns {
		opts = append(opts, balance.WithLenientSigns())
	}
	return opts, nil
}

// recordRuns appends runs to the history database at path.
func recordRuns(ctx context.Context, path string, runs ...store.Run) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, r := range runs {
		if err := s.Record(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
