// SPDX-License-Identifier: MIT

package balance

import "github.com/katalvlaran/stoich/chem"

// elementSet is the union of element keys over one side of a reaction.
func elementSet(side []*chem.Compound) map[chem.Element]struct{} {
	set := make(map[chem.Element]struct{})
	for _, c := range side {
		for _, e := range c.Elements() {
			set[e] = struct{}{}
		}
	}

	return set
}

// resolveElements returns the shared element list of both sides in
// chem.SortElements order, or *UnbalanceableError when the sides disagree.
//
// Complexity: O(total atoms + E log E).
func resolveElements(reagents, products []*chem.Compound) ([]chem.Element, error) {
	left, right := elementSet(reagents), elementSet(products)

	var onlyLeft, onlyRight []chem.Element
	for e := range left {
		if _, ok := right[e]; !ok {
			onlyLeft = append(onlyLeft, e)
		}
	}
	for e := range right {
		if _, ok := left[e]; !ok {
			onlyRight = append(onlyRight, e)
		}
	}
	if len(onlyLeft) > 0 || len(onlyRight) > 0 {
		chem.SortElements(onlyLeft)
		chem.SortElements(onlyRight)

		return nil, &UnbalanceableError{MissingFromProducts: onlyLeft, MissingFromReagents: onlyRight}
	}

	elements := make([]chem.Element, 0, len(left))
	for e := range left {
		elements = append(elements, e)
	}
	chem.SortElements(elements)

	return elements, nil
}
