// SPDX-License-Identifier: MIT

// Package chem: periodic-table registry.
//
// Purpose:
//   - Give every chemical symbol a stable identity (Element) and an ordering key
//     (atomic number) so that callers can iterate elements deterministically.
//   - Reject unknown symbols at construction time instead of deep inside algorithms.
//
// Determinism:
//   - The registry is a read-only package-level table built once at init.

package chem

import "sort"

// Element is a chemical symbol ("H", "Fe", "Uue" is not one).
// It is a comparable, hashable key; identity is the symbol itself.
type Element string

// elementInfo is one registry row.
type elementInfo struct {
	number int     // atomic number Z
	name   string  // IUPAC name
	weight float64 // standard atomic weight, g/mol
}

// periodicTable lists symbols in order of atomic number (index+1 == Z).
// Weights are IUPAC abridged standard atomic weights in g/mol; elements with
// no stable isotope carry the mass number of their longest-lived isotope.
var periodicTable = [...]struct {
	symbol string
	name   string
	weight float64
}{
	{"H", "Hydrogen", 1.008}, {"He", "Helium", 4.0026}, {"Li", "Lithium", 6.94}, {"Be", "Beryllium", 9.0122},
	{"B", "Boron", 10.81}, {"C", "Carbon", 12.011}, {"N", "Nitrogen", 14.007}, {"O", "Oxygen", 15.999},
	{"F", "Fluorine", 18.998}, {"Ne", "Neon", 20.180}, {"Na", "Sodium", 22.990}, {"Mg", "Magnesium", 24.305},
	{"Al", "Aluminium", 26.982}, {"Si", "Silicon", 28.085}, {"P", "Phosphorus", 30.974}, {"S", "Sulfur", 32.06},
	{"Cl", "Chlorine", 35.45}, {"Ar", "Argon", 39.95}, {"K", "Potassium", 39.098}, {"Ca", "Calcium", 40.078},
	{"Sc", "Scandium", 44.956}, {"Ti", "Titanium", 47.867}, {"V", "Vanadium", 50.942}, {"Cr", "Chromium", 51.996},
	{"Mn", "Manganese", 54.938}, {"Fe", "Iron", 55.845}, {"Co", "Cobalt", 58.933}, {"Ni", "Nickel", 58.693},
	{"Cu", "Copper", 63.546}, {"Zn", "Zinc", 65.38}, {"Ga", "Gallium", 69.723}, {"Ge", "Germanium", 72.630},
	{"As", "Arsenic", 74.922}, {"Se", "Selenium", 78.971}, {"Br", "Bromine", 79.904}, {"Kr", "Krypton", 83.798},
	{"Rb", "Rubidium", 85.468}, {"Sr", "Strontium", 87.62}, {"Y", "Yttrium", 88.906}, {"Zr", "Zirconium", 91.224},
	{"Nb", "Niobium", 92.906}, {"Mo", "Molybdenum", 95.95}, {"Tc", "Technetium", 98}, {"Ru", "Ruthenium", 101.07},
	{"Rh", "Rhodium", 102.91}, {"Pd", "Palladium", 106.42}, {"Ag", "Silver", 107.87}, {"Cd", "Cadmium", 112.41},
	{"In", "Indium", 114.82}, {"Sn", "Tin", 118.71}, {"Sb", "Antimony", 121.76}, {"Te", "Tellurium", 127.60},
	{"I", "Iodine", 126.90}, {"Xe", "Xenon", 131.29}, {"Cs", "Caesium", 132.91}, {"Ba", "Barium", 137.33},
	{"La", "Lanthanum", 138.91}, {"Ce", "Cerium", 140.12}, {"Pr", "Praseodymium", 140.91}, {"Nd", "Neodymium", 144.24},
	{"Pm", "Promethium", 145}, {"Sm", "Samarium", 150.36}, {"Eu", "Europium", 151.96}, {"Gd", "Gadolinium", 157.25},
	{"Tb", "Terbium", 158.93}, {"Dy", "Dysprosium", 162.50}, {"Ho", "Holmium", 164.93}, {"Er", "Erbium", 167.26},
	{"Tm", "Thulium", 168.93}, {"Yb", "Ytterbium", 173.05}, {"Lu", "Lutetium", 174.97}, {"Hf", "Hafnium", 178.49},
	{"Ta", "Tantalum", 180.95}, {"W", "Tungsten", 183.84}, {"Re", "Rhenium", 186.21}, {"Os", "Osmium", 190.23},
	{"Ir", "Iridium", 192.22}, {"Pt", "Platinum", 195.08}, {"Au", "Gold", 196.97}, {"Hg", "Mercury", 200.59},
	{"Tl", "Thallium", 204.38}, {"Pb", "Lead", 207.2}, {"Bi", "Bismuth", 208.98}, {"Po", "Polonium", 209},
	{"At", "Astatine", 210}, {"Rn", "Radon", 222}, {"Fr", "Francium", 223}, {"Ra", "Radium", 226},
	{"Ac", "Actinium", 227}, {"Th", "Thorium", 232.04}, {"Pa", "Protactinium", 231.04}, {"U", "Uranium", 238.03},
	{"Np", "Neptunium", 237}, {"Pu", "Plutonium", 244}, {"Am", "Americium", 243}, {"Cm", "Curium", 247},
	{"Bk", "Berkelium", 247}, {"Cf", "Californium", 251}, {"Es", "Einsteinium", 252}, {"Fm", "Fermium", 257},
	{"Md", "Mendelevium", 258}, {"No", "Nobelium", 259}, {"Lr", "Lawrencium", 266}, {"Rf", "Rutherfordium", 267},
	{"Db", "Dubnium", 268}, {"Sg", "Seaborgium", 269}, {"Bh", "Bohrium", 270}, {"Hs", "Hassium", 269},
	{"Mt", "Meitnerium", 278}, {"Ds", "Darmstadtium", 281}, {"Rg", "Roentgenium", 282}, {"Cn", "Copernicium", 285},
	{"Nh", "Nihonium", 286}, {"Fl", "Flerovium", 289}, {"Mc", "Moscovium", 290}, {"Lv", "Livermorium", 293},
	{"Ts", "Tennessine", 294}, {"Og", "Oganesson", 294},
}

// registry maps a symbol to its row; built once in init.
var registry map[Element]elementInfo

func init() {
	registry = make(map[Element]elementInfo, len(periodicTable))
	for i, row := range periodicTable {
		registry[Element(row.symbol)] = elementInfo{number: i + 1, name: row.name, weight: row.weight}
	}
}

// Lookup resolves a symbol against the registry.
// Symbols are case-sensitive ("Co" is cobalt, "CO" is not a symbol).
// Complexity: O(1).
func Lookup(symbol string) (Element, bool) {
	e := Element(symbol)
	_, ok := registry[e]

	return e, ok
}

// MustElement returns the Element for symbol or panics if it is unknown.
// Intended for fixtures and package-level tables, never for user input.
func MustElement(symbol string) Element {
	e, ok := Lookup(symbol)
	if !ok {
		panic("chem: unknown element symbol " + symbol)
	}

	return e
}

// Valid reports whether e is a registered element.
func (e Element) Valid() bool {
	_, ok := registry[e]

	return ok
}

// AtomicNumber returns Z for e, or 0 when e is not registered.
func (e Element) AtomicNumber() int { return registry[e].number }

// Name returns the element name, or "" when e is not registered.
func (e Element) Name() string { return registry[e].name }

// AtomicWeight returns the standard atomic weight in g/mol, or 0 when e is
// not registered.
func (e Element) AtomicWeight() float64 { return registry[e].weight }

// String returns the symbol.
func (e Element) String() string { return string(e) }

// SortElements sorts in place by atomic number, then by symbol.
// Unregistered elements (Z == 0) sort first, by symbol.
// Complexity: O(n log n).
func SortElements(elems []Element) {
	sort.Slice(elems, func(i, j int) bool {
		zi, zj := elems[i].AtomicNumber(), elems[j].AtomicNumber()
		if zi != zj {
			return zi < zj
		}

		return elems[i] < elems[j]
	})
}
