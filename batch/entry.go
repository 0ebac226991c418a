// SPDX-License-Identifier: MIT

package batch

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stoich/chem"
)

// File is the top-level document of a batch file.
type File struct {
	Reactions []Entry `yaml:"reactions"`
}

// Entry is one reaction to balance.
type Entry struct {
	// Name labels the reaction in reports. Optional.
	Name string `yaml:"name,omitempty"`

	// Equation is a full unbalanced equation ("Al + Cl2 = AlCl3").
	Equation string `yaml:"equation,omitempty"`

	// Reagents and Products list formulas when Equation is not used.
	Reagents []string `yaml:"reagents,omitempty"`
	Products []string `yaml:"products,omitempty"`
}

// Validate checks that exactly one of Equation or Reagents+Products is set.
func (e Entry) Validate() error {
	hasEq := strings.TrimSpace(e.Equation) != ""
	hasLists := len(e.Reagents) > 0 || len(e.Products) > 0
	switch {
	case hasEq && hasLists:
		return errors.New("equation and reagents/products are mutually exclusive")
	case !hasEq && !hasLists:
		return errors.New("one of equation or reagents/products is required")
	case hasLists && (len(e.Reagents) == 0 || len(e.Products) == 0):
		return errors.New("reagents and products must both be non-empty")
	}

	return nil
}

// Text renders the entry as an unbalanced equation.
func (e Entry) Text() string {
	if strings.TrimSpace(e.Equation) != "" {
		return strings.TrimSpace(e.Equation)
	}

	return strings.Join(e.Reagents, " + ") + " = " + strings.Join(e.Products, " + ")
}

// Compounds parses the entry into both sides of a reaction.
func (e Entry) Compounds() (reagents, products []*chem.Compound, err error) {
	if strings.TrimSpace(e.Equation) != "" {
		return chem.ParseEquation(e.Equation)
	}
	if reagents, err = chem.ParseTerms(e.Reagents); err != nil {
		return nil, nil, err
	}
	if products, err = chem.ParseTerms(e.Products); err != nil {
		return nil, nil, err
	}

	return reagents, products, nil
}

// Load decodes a batch document, rejecting unknown keys, and validates every entry.
func Load(r io.Reader) ([]Entry, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, batchErrorf("Load", ErrNoReactions)
		}

		return nil, batchErrorf("Load", err)
	}
	if len(f.Reactions) == 0 {
		return nil, batchErrorf("Load", ErrNoReactions)
	}
	for i, e := range f.Reactions {
		if err := e.Validate(); err != nil {
			return nil, &EntryError{Index: i, Name: e.Name, Reason: err.Error()}
		}
	}

	return f.Reactions, nil
}

// LoadFile reads and decodes the batch file at path.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, batchErrorf("LoadFile", err)
	}

	return Load(bytes.NewReader(data))
}
