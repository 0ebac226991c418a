// SPDX-License-Identifier: MIT

// Package chem: formula and equation parsing.
//
// Grammar (after NFKC normalisation, so "H₂O" reads as "H2O"):
//
//	formula  := segment { sep [count] segment }
//	sep      := "·" | "." | "*"               (hydrate / adduct separator)
//	segment  := item { item }
//	item     := element [count] | open segment close [count]
//	element  := Upper [lower]
//	open     := "(" | "[" | "{"                 close must match its opener
//	count    := digit { digit }                 > 0
//
// Equations are "<terms> = <terms>" where the separator may also be "->",
// "→" or "⇒" and terms are joined with "+".

package chem

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxCount bounds a single count or multiplier written in the formula.
const maxCount = 1_000_000

// maxAtoms bounds the total count of one element after group multipliers are
// applied. It fits int on every platform and is exact as a float64.
const maxAtoms = math.MaxInt32

// Operation tags for chemErrorf.
const (
	opParseFormula  = "ParseFormula"
	opParseEquation = "ParseEquation"
)

// closers maps each opening bracket to its closing partner.
var closers = map[rune]rune{'(': ')', '[': ']', '{': '}'}

func isCloser(r rune) bool { return r == ')' || r == ']' || r == '}' }

func isSeparator(r rune) bool { return r == '·' || r == '.' || r == '*' }

// ParseFormula turns a formula string into a Compound.
// The Compound keeps the normalised formula text.
//
// Errors (wrapped in *ParseError): ErrEmptyFormula, ErrUnbalancedBrackets,
// ErrUnknownElement, ErrZeroCount, ErrUnexpectedCharacter, ErrInvalidCompound.
//
// Complexity: O(len(s) · depth) for nested groups.
func ParseFormula(s string) (*Compound, error) {
	src := norm.NFKC.String(strings.TrimSpace(s))
	if src == "" {
		return nil, chemErrorf(opParseFormula, ErrEmptyFormula)
	}
	p := &parser{formula: src, src: []rune(src)}
	atoms, err := p.parse()
	if err != nil {
		return nil, chemErrorf(opParseFormula, err)
	}

	return NewCompound(src, atoms)
}

// MustParseFormula is ParseFormula that panics on error; for fixtures only.
func MustParseFormula(s string) *Compound {
	c, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}

	return c
}

// parser is a single-use recursive-descent reader over runes.
type parser struct {
	formula string
	src     []rune
	pos     int
}

func (p *parser) fail(err error) error {
	return &ParseError{Formula: p.formula, Pos: p.pos, Err: err}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

// parse reads the whole input: hydrate segments joined by separators.
func (p *parser) parse() (map[Element]int, error) {
	total := make(map[Element]int)
	first := true
	for {
		mult := 1
		if !first && !p.eof() && unicode.IsDigit(p.peek()) {
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			mult = n
		}
		start := p.pos
		seg, err := p.sequence(0)
		if err != nil {
			return nil, err
		}
		if len(seg) == 0 {
			p.pos = start
			return nil, p.fail(ErrUnexpectedCharacter)
		}
		if !addScaled(total, seg, mult) {
			return nil, p.fail(ErrInvalidCompound)
		}

		if p.eof() {
			return total, nil
		}
		if isSeparator(p.peek()) {
			p.pos++
			first = false
			continue
		}

		// sequence(0) only stops early on a stray closing bracket.
		return nil, p.fail(ErrUnbalancedBrackets)
	}
}

// sequence reads items until EOF, a separator (top level only) or a closing
// bracket. closer is the bracket that legally ends this group (0 at top level);
// the caller consumes it.
func (p *parser) sequence(closer rune) (map[Element]int, error) {
	out := make(map[Element]int)
	for !p.eof() {
		r := p.peek()
		switch {
		case unicode.IsUpper(r):
			e, err := p.element()
			if err != nil {
				return nil, err
			}
			n, err := p.optionalCount()
			if err != nil {
				return nil, err
			}
			if !addAtoms(out, e, n) {
				return nil, p.fail(ErrInvalidCompound)
			}

		case closers[r] != 0:
			p.pos++
			inner, err := p.sequence(closers[r])
			if err != nil {
				return nil, err
			}
			if p.eof() || p.peek() != closers[r] {
				return nil, p.fail(ErrUnbalancedBrackets)
			}
			if len(inner) == 0 {
				return nil, p.fail(ErrUnexpectedCharacter)
			}
			p.pos++ // consume closer
			n, err := p.optionalCount()
			if err != nil {
				return nil, err
			}
			if !addScaled(out, inner, n) {
				return nil, p.fail(ErrInvalidCompound)
			}

		case isCloser(r):
			return out, nil

		case isSeparator(r):
			if closer != 0 {
				return nil, p.fail(ErrUnbalancedBrackets)
			}
			return out, nil

		default:
			return nil, p.fail(ErrUnexpectedCharacter)
		}
	}

	return out, nil
}

// element reads an uppercase letter plus an optional lowercase one and
// resolves it. A lowercase rune always belongs to the preceding symbol.
func (p *parser) element() (Element, error) {
	start := p.pos
	p.pos++
	if !p.eof() && unicode.IsLower(p.peek()) {
		if e, ok := Lookup(string(p.src[start : p.pos+1])); ok {
			p.pos++
			return e, nil
		}
		p.pos = start
		return "", p.fail(ErrUnknownElement)
	}
	if e, ok := Lookup(string(p.src[start:p.pos])); ok {
		return e, nil
	}
	p.pos = start

	return "", p.fail(ErrUnknownElement)
}

// optionalCount returns the following count, or 1 when no digit follows.
func (p *parser) optionalCount() (int, error) {
	if p.eof() || !unicode.IsDigit(p.peek()) {
		return 1, nil
	}

	return p.count()
}

// count reads a run of ASCII digits; zero and oversized values are rejected.
func (p *parser) count() (int, error) {
	start := p.pos
	n := 0
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		n = n*10 + int(p.peek()-'0')
		if n > maxCount {
			p.pos = start
			return 0, p.fail(ErrInvalidCompound)
		}
		p.pos++
	}
	if p.pos == start {
		return 0, p.fail(ErrUnexpectedCharacter)
	}
	if n == 0 {
		p.pos = start
		return 0, p.fail(ErrZeroCount)
	}

	return n, nil
}

// addAtoms adds n atoms of e to dst; false when the total would pass maxAtoms.
func addAtoms(dst map[Element]int, e Element, n int) bool {
	if n > maxAtoms-dst[e] {
		return false
	}
	dst[e] += n

	return true
}

// addScaled adds src·mult into dst; false (dst partially updated) on overflow.
func addScaled(dst, src map[Element]int, mult int) bool {
	for e, n := range src {
		if n > maxAtoms/mult || !addAtoms(dst, e, n*mult) {
			return false
		}
	}

	return true
}

// ParseEquation splits "Al + Cl2 = AlCl3" into reagent and product compounds.
//
// Errors:
//   - ErrMalformedEquation   if there is not exactly one side separator or a term is empty.
//   - ErrCoefficientInInput  if a term begins with a digit.
//   - any ParseFormula error for an individual term.
func ParseEquation(s string) (reagents, products []*Compound, err error) {
	src := norm.NFKC.String(s)
	for _, arrow := range []string{"->", "→", "⇒"} {
		src = strings.ReplaceAll(src, arrow, "=")
	}
	sides := strings.Split(src, "=")
	if len(sides) != 2 {
		return nil, nil, chemErrorf(opParseEquation, ErrMalformedEquation)
	}
	if reagents, err = parseSide(sides[0]); err != nil {
		return nil, nil, chemErrorf(opParseEquation, err)
	}
	if products, err = parseSide(sides[1]); err != nil {
		return nil, nil, chemErrorf(opParseEquation, err)
	}

	return reagents, products, nil
}

// ParseTerms parses a list of formulas (one compound per entry).
func ParseTerms(terms []string) ([]*Compound, error) {
	out := make([]*Compound, 0, len(terms))
	for _, t := range terms {
		c, err := parseTerm(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func parseSide(side string) ([]*Compound, error) {
	return ParseTerms(strings.Split(side, "+"))
}

func parseTerm(term string) (*Compound, error) {
	t := strings.TrimSpace(term)
	if t == "" {
		return nil, ErrMalformedEquation
	}
	if unicode.IsDigit([]rune(t)[0]) {
		return nil, ErrCoefficientInInput
	}

	return ParseFormula(t)
}
