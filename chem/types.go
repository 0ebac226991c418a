// SPDX-License-Identifier: MIT

// Package chem: domain types shared by the parser, the balancer and the CLI.
//
// Compound is immutable once constructed; Reactant and BalancedReaction are
// plain values produced by balancing (or built directly in fixtures).

package chem

import (
	"strconv"
	"strings"
)

// Compound is a formula plus its element→count composition.
// Zero value is not usable; build with NewCompound or ParseFormula.
// Two *Compound handles are distinct entities even when their formulas match.
type Compound struct {
	formula string
	atoms   map[Element]int
}

// NewCompound validates atoms and returns an immutable Compound.
// The map is copied; later mutation by the caller has no effect.
//
// Errors:
//   - ErrInvalidCompound if atoms is empty or any count is ≤ 0.
//   - ErrUnknownElement  if a key is not a registered element.
//
// Complexity: O(len(atoms)).
func NewCompound(formula string, atoms map[Element]int) (*Compound, error) {
	if len(atoms) == 0 {
		return nil, chemErrorf("NewCompound", ErrInvalidCompound)
	}
	cp := make(map[Element]int, len(atoms))
	for e, n := range atoms {
		if !e.Valid() {
			return nil, chemErrorf("NewCompound", ErrUnknownElement)
		}
		if n <= 0 {
			return nil, chemErrorf("NewCompound", ErrInvalidCompound)
		}
		cp[e] = n
	}

	return &Compound{formula: formula, atoms: cp}, nil
}

// MustCompound is NewCompound that panics on error; for fixtures only.
func MustCompound(formula string, atoms map[Element]int) *Compound {
	c, err := NewCompound(formula, atoms)
	if err != nil {
		panic(err)
	}

	return c
}

// Formula returns the formula string the compound was built from.
func (c *Compound) Formula() string { return c.formula }

// Count returns the number of atoms of e, 0 if absent.
func (c *Compound) Count(e Element) int { return c.atoms[e] }

// Has reports whether e occurs in the compound.
func (c *Compound) Has(e Element) bool {
	_, ok := c.atoms[e]

	return ok
}

// Atoms returns a copy of the composition.
func (c *Compound) Atoms() map[Element]int {
	out := make(map[Element]int, len(c.atoms))
	for e, n := range c.atoms {
		out[e] = n
	}

	return out
}

// Elements returns the compound's elements in SortElements order.
func (c *Compound) Elements() []Element {
	out := make([]Element, 0, len(c.atoms))
	for e := range c.atoms {
		out = append(out, e)
	}
	SortElements(out)

	return out
}

// SameComposition reports whether both compounds have identical formulas and counts.
func (c *Compound) SameComposition(o *Compound) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil || c.formula != o.formula || len(c.atoms) != len(o.atoms) {
		return false
	}
	for e, n := range c.atoms {
		if o.atoms[e] != n {
			return false
		}
	}

	return true
}

// String returns the formula.
func (c *Compound) String() string { return c.formula }

// Reactant pairs a compound with its molar coefficient (≥ 1) in one equation.
type Reactant struct {
	Compound    *Compound
	Coefficient int64
}

// String renders "3 Cl2"; a coefficient of 1 is omitted.
func (r Reactant) String() string {
	if r.Coefficient == 1 {
		return r.Compound.Formula()
	}

	return strconv.FormatInt(r.Coefficient, 10) + " " + r.Compound.Formula()
}

// BalancedReaction holds both sides of a balanced equation in input order.
type BalancedReaction struct {
	Reagents []Reactant
	Products []Reactant
}

// Equal is structural and order-sensitive: same length per side and, per
// position, same composition and same coefficient.
func (r BalancedReaction) Equal(o BalancedReaction) bool {
	return sideEqual(r.Reagents, o.Reagents) && sideEqual(r.Products, o.Products)
}

func sideEqual(a, b []Reactant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Coefficient != b[i].Coefficient || !a[i].Compound.SameComposition(b[i].Compound) {
			return false
		}
	}

	return true
}

// Coefficients returns reagent coefficients followed by product coefficients.
func (r BalancedReaction) Coefficients() []int64 {
	out := make([]int64, 0, len(r.Reagents)+len(r.Products))
	for _, x := range r.Reagents {
		out = append(out, x.Coefficient)
	}
	for _, x := range r.Products {
		out = append(out, x.Coefficient)
	}

	return out
}

// String renders "2 Al + 3 Cl2 = 2 AlCl3".
func (r BalancedReaction) String() string {
	return joinSide(r.Reagents) + " = " + joinSide(r.Products)
}

func joinSide(side []Reactant) string {
	parts := make([]string, len(side))
	for i, x := range side {
		parts[i] = x.String()
	}

	return strings.Join(parts, " + ")
}

// Equation renders the unbalanced equation "Al + Cl2 = AlCl3" for a pair of compound lists.
func Equation(reagents, products []*Compound) string {
	return joinFormulas(reagents) + " = " + joinFormulas(products)
}

func joinFormulas(cs []*Compound) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Formula()
	}

	return strings.Join(parts, " + ")
}
