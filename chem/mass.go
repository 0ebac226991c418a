// SPDX-License-Identifier: MIT

// Package chem: molar mass, moles and yield.
//
// All masses are grams and all molar masses g/mol, computed from the
// registry's standard atomic weights in float64.

package chem

import "math"

// Operation tags for chemErrorf.
const (
	opMoles            = "Moles"
	opTheoreticalYield = "TheoreticalYield"
	opPercentYield     = "PercentYield"
)

// MolarMass returns Σ count·AtomicWeight over the composition, in g/mol.
// Elements are summed in SortElements order so the result is reproducible.
// Complexity: O(k log k) for k distinct elements.
func (c *Compound) MolarMass() float64 {
	total := 0.0
	for _, e := range c.Elements() {
		total += float64(c.atoms[e]) * e.AtomicWeight()
	}

	return total
}

// Moles converts a mass of c to an amount of substance.
//
// Errors:
//   - ErrInvalidCompound if c is nil.
//   - ErrInvalidMass     if grams is not finite and positive.
func Moles(c *Compound, grams float64) (float64, error) {
	if c == nil {
		return 0, chemErrorf(opMoles, ErrInvalidCompound)
	}
	if err := validateGrams(grams); err != nil {
		return 0, chemErrorf(opMoles, err)
	}

	return grams / c.MolarMass(), nil
}

// Sample is a weighed quantity of one compound.
type Sample struct {
	Compound *Compound
	Grams    float64
}

// Moles is Moles(s.Compound, s.Grams).
func (s Sample) Moles() (float64, error) { return Moles(s.Compound, s.Grams) }

// TheoreticalYield returns the grams of product formed when reagent is fully
// consumed, scaled by the coefficients of r:
//
//	moles(reagent) · coef(product) / coef(reagent) · MolarMass(product)
//
// Compounds are matched against r by SameComposition, so independently
// parsed compounds with the same formula are found.
//
// Errors:
//   - ErrInvalidCompound, ErrInvalidMass from Moles.
//   - ErrNotInReaction if reagent is not a reagent of r or product is not a product.
func TheoreticalYield(r BalancedReaction, reagent Sample, product *Compound) (float64, error) {
	rm, err := reagent.Moles()
	if err != nil {
		return 0, chemErrorf(opTheoreticalYield, err)
	}
	if product == nil {
		return 0, chemErrorf(opTheoreticalYield, ErrInvalidCompound)
	}
	rc, ok := coefficientOf(r.Reagents, reagent.Compound)
	if !ok {
		return 0, chemErrorf(opTheoreticalYield, ErrNotInReaction)
	}
	pc, ok := coefficientOf(r.Products, product)
	if !ok {
		return 0, chemErrorf(opTheoreticalYield, ErrNotInReaction)
	}

	return rm * float64(pc) / float64(rc) * product.MolarMass(), nil
}

// PercentYield returns 100 · actual / theoretical, where actual is the
// product sample's mass and theoretical is TheoreticalYield for the reagent
// sample. Values above 100 are returned as is.
func PercentYield(r BalancedReaction, reagent, product Sample) (float64, error) {
	if err := validateGrams(product.Grams); err != nil {
		return 0, chemErrorf(opPercentYield, err)
	}
	theoretical, err := TheoreticalYield(r, reagent, product.Compound)
	if err != nil {
		return 0, chemErrorf(opPercentYield, err)
	}

	return 100 * product.Grams / theoretical, nil
}

func validateGrams(g float64) error {
	if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
		return ErrInvalidMass
	}

	return nil
}

func coefficientOf(side []Reactant, c *Compound) (int64, bool) {
	for _, x := range side {
		if x.Compound.SameComposition(c) {
			return x.Coefficient, true
		}
	}

	return 0, false
}
