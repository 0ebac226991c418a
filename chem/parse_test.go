// Package chem_test contains unit tests for formula and equation parsing.
package chem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/chem"
)

func atoms(kv ...any) map[chem.Element]int {
	out := make(map[chem.Element]int, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out[chem.MustElement(kv[i].(string))] = kv[i+1].(int)
	}

	return out
}

func TestParseFormula_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		formula string
		want    map[chem.Element]int
	}{
		{"single atom", "Al", atoms("Al", 1)},
		{"diatomic", "Cl2", atoms("Cl", 2)},
		{"two letter symbols", "NaCl", atoms("Na", 1, "Cl", 1)},
		{"repeated element", "C6H5COOH", atoms("C", 7, "H", 6, "O", 2)},
		{"permanganate", "KMnO4", atoms("K", 1, "Mn", 1, "O", 4)},
		{"group", "Ca(OH)2", atoms("Ca", 1, "O", 2, "H", 2)},
		{"nested groups", "K4[Fe(CN)6]", atoms("K", 4, "Fe", 1, "C", 6, "N", 6)},
		{"braces", "{CH3}2O", atoms("C", 2, "H", 6, "O", 1)},
		{"hydrate dot", "CuSO4·5H2O", atoms("Cu", 1, "S", 1, "O", 9, "H", 10)},
		{"hydrate ascii", "CuSO4.5H2O", atoms("Cu", 1, "S", 1, "O", 9, "H", 10)},
		{"hydrate no multiplier", "CaSO4*H2O", atoms("Ca", 1, "S", 1, "O", 5, "H", 2)},
		{"unicode subscripts", "H₂O", atoms("H", 2, "O", 1)},
		{"surrounding space", "  Fe3  ", atoms("Fe", 3)},
		{"large nested multiplier", "(H1000000)2000", atoms("H", 2_000_000_000)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := chem.ParseFormula(tc.formula)
			require.NoError(t, err)
			require.Equal(t, tc.want, c.Atoms())
		})
	}
}

func TestParseFormula_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		formula string
		wantErr error
	}{
		{"empty", "", chem.ErrEmptyFormula},
		{"blank", "   ", chem.ErrEmptyFormula},
		{"unknown symbol", "Xx2", chem.ErrUnknownElement},
		{"unknown single letter", "J", chem.ErrUnknownElement},
		{"zero count", "H0", chem.ErrZeroCount},
		{"zero group multiplier", "(OH)0", chem.ErrZeroCount},
		{"unclosed group", "Ca(OH2", chem.ErrUnbalancedBrackets},
		{"stray closer", "CaOH)2", chem.ErrUnbalancedBrackets},
		{"mismatched closer", "Ca(OH]2", chem.ErrUnbalancedBrackets},
		{"leading digit", "2H2O", chem.ErrUnexpectedCharacter},
		{"lowercase start", "h2o", chem.ErrUnexpectedCharacter},
		{"empty group", "Ca()", chem.ErrUnexpectedCharacter},
		{"inner whitespace", "H2 O", chem.ErrUnexpectedCharacter},
		{"trailing separator", "CuSO4·", chem.ErrUnexpectedCharacter},
		{"separator in group", "(H2O·H2O)", chem.ErrUnbalancedBrackets},
		{"huge count", "H99999999", chem.ErrInvalidCompound},
		{"nested multiplier overflow", "((((H1000000)1000000)1000000)1000000)", chem.ErrInvalidCompound},
		{"deep nested overflow", "(((((H2)1000000)1000000)1000000)1000000)", chem.ErrInvalidCompound},
		{"group sum overflow", "(H1000000)2000(H1000000)200", chem.ErrInvalidCompound},
		{"hydrate multiplier overflow", "H2O·3000(H1000000)1000", chem.ErrInvalidCompound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := chem.ParseFormula(tc.formula)
			require.Nil(t, c)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestParseFormula_ParseErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := chem.ParseFormula("NaXx")
	var pe *chem.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Pos)
	require.Equal(t, "NaXx", pe.Formula)
}

func TestParseFormula_KeepsNormalisedText(t *testing.T) {
	t.Parallel()

	c, err := chem.ParseFormula("CO₂")
	require.NoError(t, err)
	require.Equal(t, "CO2", c.Formula())
}

func TestParseEquation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		equation     string
		wantReagents []string
		wantProducts []string
	}{
		{"equals", "Al + Cl2 = AlCl3", []string{"Al", "Cl2"}, []string{"AlCl3"}},
		{"ascii arrow", "H2 + O2 -> H2O", []string{"H2", "O2"}, []string{"H2O"}},
		{"unicode arrow", "C6H5COOH + O2 → CO2 + H2O", []string{"C6H5COOH", "O2"}, []string{"CO2", "H2O"}},
		{"tight spacing", "KMnO4+HCl=KCl+MnCl2+H2O+Cl2", []string{"KMnO4", "HCl"}, []string{"KCl", "MnCl2", "H2O", "Cl2"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reagents, products, err := chem.ParseEquation(tc.equation)
			require.NoError(t, err)
			require.Equal(t, tc.wantReagents, formulas(reagents))
			require.Equal(t, tc.wantProducts, formulas(products))
		})
	}
}

func TestParseEquation_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		equation string
		wantErr  error
	}{
		{"no separator", "Al + Cl2", chem.ErrMalformedEquation},
		{"two separators", "A = B = C", chem.ErrMalformedEquation},
		{"empty term", "Al + = AlCl3", chem.ErrMalformedEquation},
		{"empty side", " = AlCl3", chem.ErrMalformedEquation},
		{"coefficient", "2 Al + 3 Cl2 = 2 AlCl3", chem.ErrCoefficientInInput},
		{"bad formula", "Al + Qq = AlCl3", chem.ErrUnknownElement},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := chem.ParseEquation(tc.equation)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func formulas(cs []*chem.Compound) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Formula()
	}

	return out
}
