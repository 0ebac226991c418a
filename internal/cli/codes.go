// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/batch"
	"github.com/katalvlaran/stoich/chem"
	"github.com/katalvlaran/stoich/store"
)

// Error codes reported in CLIError.Code and text output.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeParse          = "E002" // Equation or formula syntax
	ErrCodeUnbalanceable  = "E003" // Element sets differ
	ErrCodeSolver         = "E004" // Linear solver failure
	ErrCodeSign           = "E005" // Coefficient on the wrong side
	ErrCodeRational       = "E006" // Rational reconstruction failure
	ErrCodeScaling        = "E007" // Integer scaling failure
	ErrCodeVerification   = "E008" // Coefficients do not conserve atoms
	ErrCodeNotFound       = "E009" // File or run not found
	ErrCodeInvalidBatch   = "E010" // Malformed batch file
	ErrCodeStore          = "E011" // History database failure
	ErrCodeInvalidOptions = "E012" // Flag value out of range
	ErrCodeYield          = "E013" // Bad sample mass or compound not in reaction
)

// isBalanceFailure reports whether err came out of the balancing pipeline
// (as opposed to bad input or infrastructure).
func isBalanceFailure(err error) bool {
	_, ok := balance.StageOf(err)
	return ok
}

// errorCode maps a domain error onto its CLI code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, balance.ErrUnbalanceable):
		return ErrCodeUnbalanceable
	case errors.Is(err, balance.ErrSolver):
		return ErrCodeSolver
	case errors.Is(err, balance.ErrInconsistentSign):
		return ErrCodeSign
	case errors.Is(err, balance.ErrRationalConversion):
		return ErrCodeRational
	case errors.Is(err, balance.ErrScaling):
		return ErrCodeScaling
	case errors.Is(err, balance.ErrVerification):
		return ErrCodeVerification
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, batch.ErrInvalidEntry), errors.Is(err, batch.ErrNoReactions):
		return ErrCodeInvalidBatch
	case errors.Is(err, chem.ErrInvalidMass), errors.Is(err, chem.ErrNotInReaction):
		return ErrCodeYield
	case isParseError(err):
		return ErrCodeParse
	}
	return ErrCodeGeneric
}

func isParseError(err error) bool {
	for _, target := range []error{
		chem.ErrInvalidCompound,
		chem.ErrUnknownElement,
		chem.ErrEmptyFormula,
		chem.ErrUnbalancedBrackets,
		chem.ErrZeroCount,
		chem.ErrUnexpectedCharacter,
		chem.ErrMalformedEquation,
		chem.ErrCoefficientInInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// errorDetails exposes the typed fields of a balancing error for JSON output.
// It is nil (not a nil map) for errors outside the pipeline.
func errorDetails(err error) any {
	stage, ok := balance.StageOf(err)
	if !ok {
		return nil
	}
	d := map[string]any{"stage": stage.String()}

	var (
		ue *balance.UnbalanceableError
		se *balance.SignError
		ve *balance.VerificationError
	)
	switch {
	case errors.As(err, &ue):
		d["missing_from_products"] = elementNames(ue.MissingFromProducts)
		d["missing_from_reagents"] = elementNames(ue.MissingFromReagents)
	case errors.As(err, &se):
		d["formula"] = se.Formula
		d["value"] = se.Value
	case errors.As(err, &ve):
		d["imbalanced"] = elementNames(ve.Imbalanced)
		d["candidate"] = ve.Reaction.String()
	}
	return d
}

func elementNames(elems []chem.Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = string(e)
	}
	return out
}
