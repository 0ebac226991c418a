// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/store"
)

// SampleData is one weighed compound in a yield report.
type SampleData struct {
	Formula   string  `json:"formula"`
	Grams     float64 `json:"grams"`
	MolarMass float64 `json:"molar_mass"`
	Moles     float64 `json:"moles"`
}

// YieldData is the payload of a successful yield command.
type YieldData struct {
	Equation         string     `json:"equation"`
	Balanced         string     `json:"balanced"`
	Reagent          SampleData `json:"reagent"`
	Product          SampleData `json:"product"`
	TheoreticalGrams float64    `json:"theoretical_grams"`
	PercentYield     float64    `json:"percent_yield"`
}

// String renders the yield report for text output.
func (d YieldData) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, d.Balanced)
	fmt.Fprintf(&b, "reagent  %s: %g g, %g g/mol, %g mol\n",
		d.Reagent.Formula, d.Reagent.Grams, d.Reagent.MolarMass, d.Reagent.Moles)
	fmt.Fprintf(&b, "product  %s: %g g, %g g/mol, %g mol\n",
		d.Product.Formula, d.Product.Grams, d.Product.MolarMass, d.Product.Moles)
	fmt.Fprintf(&b, "theoretical %g g, yield %g%%", d.TheoreticalGrams, d.PercentYield)

	return b.String()
}

type yieldFlags struct {
	balanceFlags
	reagent string
	product string
}

// NewYieldCommand creates the yield command.
func NewYieldCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &yieldFlags{}
	cmd := &cobra.Command{
		Use:   "yield <equation> --reagent FORMULA=GRAMS --product FORMULA=GRAMS",
		Short: "Balance an equation and compute the percent yield of a product",
		Long: `Balance the equation, then compare the product mass actually obtained
against the mass expected when the reagent is fully consumed.

  stoich yield "Al + Cl2 = AlCl3" --reagent Al=26.982 --product AlCl3=66.666`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runYield(rootOpts, flags, args[0], cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.reagent, "reagent", "", "limiting reagent and its mass, as FORMULA=GRAMS")
	cmd.Flags().StringVar(&flags.product, "product", "", "product and the mass obtained, as FORMULA=GRAMS")
	_ = cmd.MarkFlagRequired("reagent")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func runYield(opts *RootOptions, flags *yieldFlags, equation string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	balOpts, err := flags.options(opts.logger(formatter.GetErrWriter()))
	if err != nil {
		formatter.Error(ErrCodeInvalidOptions, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid options", err)
	}
	reagent, err := parseSample("--reagent", flags.reagent)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid sample", err)
	}
	product, err := parseSample("--product", flags.product)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid sample", err)
	}

	reagents, products, err := chem.ParseEquation(equation)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "parse failed", err)
	}
	canonical := chem.Equation(reagents, products)
	reaction, balErr := balance.Balance(reagents, products, balOpts...)

	if flags.dbPath != "" {
		run := store.NewRun(opts.newID(), canonical, reaction, balErr, opts.now())
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

	percent, err := chem.PercentYield(reaction, reagent, product)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "yield failed", err)
	}
	theoretical, err := chem.TheoreticalYield(reaction, reagent, product.Compound)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "yield failed", err)
	}

	return formatter.Success(YieldData{
		Equation:         canonical,
		Balanced:         reaction.String(),
		Reagent:          newSampleData(reagent),
		Product:          newSampleData(product),
		TheoreticalGrams: roundTo(theoretical, 3),
		PercentYield:     roundTo(percent, 2),
	})
}

// parseSample reads "FORMULA=GRAMS".
func parseSample(flag, v string) (chem.Sample, error) {
	formula, grams, ok := strings.Cut(v, "=")
	if !ok {
		return chem.Sample{}, fmt.Errorf("%s must be FORMULA=GRAMS, got %q: %w", flag, v, chem.ErrInvalidMass)
	}
	c, err := chem.ParseFormula(formula)
	if err != nil {
		return chem.Sample{}, fmt.Errorf("%s: %w", flag, err)
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(grams), 64)
	if err != nil {
		return chem.Sample{}, fmt.Errorf("%s: %w: %q", flag, chem.ErrInvalidMass, grams)
	}
	s := chem.Sample{Compound: c, Grams: g}
	if _, err := s.Moles(); err != nil {
		return chem.Sample{}, fmt.Errorf("%s: %w", flag, err)
	}

	return s, nil
}

func newSampleData(s chem.Sample) SampleData {
	moles, _ := s.Moles()

	return SampleData{
		Formula:   s.Compound.Formula(),
		Grams:     s.Grams,
		MolarMass: roundTo(s.Compound.MolarMass(), 3),
		Moles:     roundTo(moles, 4),
	}
}
