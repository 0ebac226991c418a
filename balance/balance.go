// SPDX-License-Identifier: MIT

package balance

import (
	"log/slog"

	"github.com/katalvlaran/stoich/chem"
)

const opBalance = "Balance"

// Balance returns the smallest positive integer coefficients that conserve
// every element between reagents and products. Compound order is preserved
// on both sides of the result.
//
// Errors:
//   - ErrEmptyReaction, ErrInvalidCompound for malformed input.
//   - *UnbalanceableError, *SolverError, *SignError, *RationalConversionError,
//     *ScalingError, *VerificationError from the pipeline stages.
//
// Complexity: dominated by the SVD, O(E·N·min(E, N)).
func Balance(reagents, products []*chem.Compound, opts ...Option) (chem.BalancedReaction, error) {
	o := gatherOptions(opts)
	log := o.logger

	if err := validateInput(reagents, products); err != nil {
		return chem.BalancedReaction{}, err
	}

	elements, err := resolveElements(reagents, products)
	if err != nil {
		return fail(log, err)
	}
	trace(log, StageElementsChecked, slog.Int("elements", len(elements)))

	st, err := buildStoichiometry(elements, reagents, products)
	if err != nil {
		return fail(log, err)
	}
	trace(log, StageMatrixBuilt,
		slog.Int("rows", st.m.Rows()),
		slog.Int("cols", st.m.Cols()),
		slog.Any("matrix", st.m))

	sol, err := solveRelative(st, o.rankTolerance)
	if err != nil {
		return fail(log, err)
	}
	trace(log, StageSolved,
		slog.Int("rank", sol.rank),
		slog.Any("singular_values", sol.singularValues),
		slog.Float64("residual", sol.residual),
		slog.Any("free", sol.free))
	if !o.lenientSigns {
		if err = checkSigns(st, sol.free); err != nil {
			return fail(log, err)
		}
	}

	rats, err := rationalize(sol.free, o.maxDenominator)
	if err != nil {
		return fail(log, err)
	}
	trace(log, StageRationalized, slog.Int64("max_denominator", o.maxDenominator))

	coeffs, scale, err := scaleToIntegers(rats)
	if err != nil {
		return fail(log, err)
	}
	trace(log, StageScaled, slog.String("scale", scale.String()))

	reaction := assemble(reagents, products, coeffs)
	if !Verify(reaction) {
		return fail(log, &VerificationError{
			Reaction:    reaction,
			Imbalanced:  Imbalance(reaction),
			NonPositive: nonPositive(reaction),
		})
	}
	trace(log, StageVerified, slog.String("reaction", reaction.String()))

	return reaction, nil
}

// validateInput rejects empty sides and nil compounds.
func validateInput(reagents, products []*chem.Compound) error {
	if len(reagents) == 0 || len(products) == 0 {
		return balanceErrorf(opBalance, ErrEmptyReaction)
	}
	for _, side := range [][]*chem.Compound{reagents, products} {
		for _, c := range side {
			if c == nil {
				return balanceErrorf(opBalance, ErrInvalidCompound)
			}
		}
	}

	return nil
}

// assemble pairs each compound with its coefficient, reagents first.
func assemble(reagents, products []*chem.Compound, coeffs []int64) chem.BalancedReaction {
	out := chem.BalancedReaction{
		Reagents: make([]chem.Reactant, len(reagents)),
		Products: make([]chem.Reactant, len(products)),
	}
	for i, c := range reagents {
		out.Reagents[i] = chem.Reactant{Compound: c, Coefficient: coeffs[i]}
	}
	for i, c := range products {
		out.Products[i] = chem.Reactant{Compound: c, Coefficient: coeffs[len(reagents)+i]}
	}

	return out
}

func trace(log *slog.Logger, s Stage, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("stage", s.String()))
	for _, a := range attrs {
		args = append(args, a)
	}
	log.Debug("balance stage", args...)
}

func fail(log *slog.Logger, err error) (chem.BalancedReaction, error) {
	stage, _ := StageOf(err)
	log.Debug("balance failed", slog.String("stage", stage.String()), slog.Any("error", err))

	return chem.BalancedReaction{}, err
}
