package chem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/chem"
)

func TestLookupAndRegistry(t *testing.T) {
	t.Parallel()

	fe, ok := chem.Lookup("Fe")
	require.True(t, ok)
	assert.Equal(t, 26, fe.AtomicNumber())
	assert.Equal(t, "Iron", fe.Name())
	assert.Equal(t, 118, chem.MustElement("Og").AtomicNumber())

	_, ok = chem.Lookup("CO")
	assert.False(t, ok, "symbols are case-sensitive")
	assert.False(t, chem.Element("Zz").Valid())
	assert.Equal(t, 0, chem.Element("Zz").AtomicNumber())

	require.Panics(t, func() { chem.MustElement("Zz") })
}

func TestSortElements(t *testing.T) {
	t.Parallel()

	elems := []chem.Element{"O", "Fe", "H", "C", "Cl"}
	chem.SortElements(elems)
	assert.Equal(t, []chem.Element{"H", "C", "O", "Cl", "Fe"}, elems)
}

func TestNewCompound_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		atoms   map[chem.Element]int
		wantErr error
	}{
		{"empty", map[chem.Element]int{}, chem.ErrInvalidCompound},
		{"zero count", map[chem.Element]int{"H": 0}, chem.ErrInvalidCompound},
		{"negative count", map[chem.Element]int{"H": -2}, chem.ErrInvalidCompound},
		{"unknown element", map[chem.Element]int{"Zz": 1}, chem.ErrUnknownElement},
		{"ok", map[chem.Element]int{"H": 2, "O": 1}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := chem.NewCompound("X", tc.atoms)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, c)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestCompound_Immutable(t *testing.T) {
	t.Parallel()

	src := atoms("H", 2, "O", 1)
	c, err := chem.NewCompound("H2O", src)
	require.NoError(t, err)

	src[chem.MustElement("H")] = 99
	assert.Equal(t, 2, c.Count("H"))

	got := c.Atoms()
	got[chem.MustElement("O")] = 7
	assert.Equal(t, 1, c.Count("O"))
	assert.Equal(t, 0, c.Count("Fe"))
	assert.True(t, c.Has("O"))
	assert.False(t, c.Has("Fe"))
	assert.Equal(t, []chem.Element{"H", "O"}, c.Elements())
}

func TestBalancedReaction_StringAndEqual(t *testing.T) {
	t.Parallel()

	al := chem.MustParseFormula("Al")
	cl2 := chem.MustParseFormula("Cl2")
	alcl3 := chem.MustParseFormula("AlCl3")

	r := chem.BalancedReaction{
		Reagents: []chem.Reactant{{Compound: al, Coefficient: 2}, {Compound: cl2, Coefficient: 3}},
		Products: []chem.Reactant{{Compound: alcl3, Coefficient: 2}},
	}
	assert.Equal(t, "2 Al + 3 Cl2 = 2 AlCl3", r.String())
	assert.Equal(t, []int64{2, 3, 2}, r.Coefficients())

	// Distinct handles with the same composition compare equal.
	same := chem.BalancedReaction{
		Reagents: []chem.Reactant{
			{Compound: chem.MustParseFormula("Al"), Coefficient: 2},
			{Compound: chem.MustParseFormula("Cl2"), Coefficient: 3},
		},
		Products: []chem.Reactant{{Compound: chem.MustParseFormula("AlCl3"), Coefficient: 2}},
	}
	assert.True(t, r.Equal(same))

	// Order matters.
	swapped := chem.BalancedReaction{
		Reagents: []chem.Reactant{same.Reagents[1], same.Reagents[0]},
		Products: same.Products,
	}
	assert.False(t, r.Equal(swapped))

	// Coefficient matters.
	other := chem.BalancedReaction{
		Reagents: same.Reagents,
		Products: []chem.Reactant{{Compound: alcl3, Coefficient: 3}},
	}
	assert.False(t, r.Equal(other))
}

func TestReactant_OmitsUnitCoefficient(t *testing.T) {
	t.Parallel()

	r := chem.BalancedReaction{
		Reagents: []chem.Reactant{{Compound: chem.MustParseFormula("C"), Coefficient: 1}, {Compound: chem.MustParseFormula("O2"), Coefficient: 1}},
		Products: []chem.Reactant{{Compound: chem.MustParseFormula("CO2"), Coefficient: 1}},
	}
	assert.Equal(t, "C + O2 = CO2", r.String())
	assert.Equal(t, "C + O2 = CO2", chem.Equation(
		[]*chem.Compound{r.Reagents[0].Compound, r.Reagents[1].Compound},
		[]*chem.Compound{r.Products[0].Compound},
	))
}
