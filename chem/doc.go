// Package chem provides the chemistry-side vocabulary of stoich.
//
// Overview:
//
//   - Element is a chemical symbol backed by a 118-entry periodic-table registry
//     (atomic number, name and standard atomic weight), used as a stable,
//     orderable map key.
//   - Compound is an immutable formula plus element→count composition.
//   - Reactant and BalancedReaction describe the output of balancing and render
//     as "2 Al + 3 Cl2 = 2 AlCl3".
//   - Compound.MolarMass, Moles, TheoreticalYield and PercentYield do the
//     gram/mole arithmetic around a balanced reaction.
//   - ParseFormula / ParseEquation turn text into compounds; Unicode subscripts
//     and full-width characters are normalised (NFKC) before parsing.
//
// Errors (sentinel):
//
//   - ErrInvalidCompound, ErrUnknownElement: composition problems.
//   - ErrEmptyFormula, ErrUnbalancedBrackets, ErrZeroCount,
//     ErrUnexpectedCharacter: formula syntax (wrapped in *ParseError).
//   - ErrMalformedEquation, ErrCoefficientInInput: equation syntax.
//   - ErrInvalidMass, ErrNotInReaction: mass and yield arithmetic.
//
// Example:
//
//	reagents, products, err := chem.ParseEquation("KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(reagents), len(products)) // 2 4
package chem
