// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/store"
)

// TermData is one compound of a balanced side. MolarMass is g/mol rounded
// to three decimals.
type TermData struct {
	Formula     string  `json:"formula"`
	Coefficient int64   `json:"coefficient"`
	MolarMass   float64 `json:"molar_mass"`
}

// BalanceData is the payload of a successful balance command.
type BalanceData struct {
	ID       string     `json:"id"`
	Equation string     `json:"equation"`
	Balanced string     `json:"balanced"`
	Reagents []TermData `json:"reagents"`
	Products []TermData `json:"products"`
}

// String renders the balanced reaction for text output.
func (d BalanceData) String() string { return d.Balanced }

func newBalanceData(id, equation string, r chem.BalancedReaction) BalanceData {
	side := func(rs []chem.Reactant) []TermData {
		out := make([]TermData, len(rs))
		for i, x := range rs {
			out[i] = TermData{
				Formula:     x.Compound.Formula(),
				Coefficient: x.Coefficient,
				MolarMass:   roundTo(x.Compound.MolarMass(), 3),
			}
		}
		return out
	}
	return BalanceData{
		ID:       id,
		Equation: equation,
		Balanced: r.String(),
		Reagents: side(r.Reagents),
		Products: side(r.Products),
	}
}

// roundTo rounds v to places decimals for display.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// NewBalanceCommand creates the balance command.
func NewBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &balanceFlags{}
	cmd := &cobra.Command{
		Use:   "balance <equation>",
		Short: "Balance a single chemical equation",
		Long: `Balance a chemical equation such as "Al + Cl2 = AlCl3".

Sides are separated by "=" (or "->"), compounds by "+". Terms must not
carry coefficients. Exit code 1 means the reaction could not be balanced.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(rootOpts, flags, args[0], cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func runBalance(opts *RootOptions, flags *balanceFlags, equation string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	balOpts, err := flags.options(opts.logger(formatter.GetErrWriter()))
	if err != nil {
		formatter.Error(ErrCodeInvalidOptions, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid options", err)
	}

	reagents, products, err := chem.ParseEquation(equation)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse failed", err)
	}

	id := opts.newID()
	canonical := chem.Equation(reagents, products)
	reaction, balErr := balance.Balance(reagents, products, balOpts...)

	if flags.dbPath != "" {
		run := store.NewRun(id, canonical, reaction, balErr, opts.now())
		if err := recordRuns(cmd.Context(), flags.dbPath, run); err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "record failed", err)
		}
	}

	if balErr != nil {
		formatter.Error(errorCode(balErr), balErr.Error(), errorDetails(balErr))
		code := ExitFailure
		if !isBalanceFailure(balErr) {
			code = ExitCommandError
		}
		return WrapExitError(code, "balance failed", balErr)
	}

	return formatter.Success(newBalanceData(id, canonical, reaction))
}
