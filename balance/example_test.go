// SPDX-License-Identifier: MIT
package balance_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/chem"
)

// ExampleBalance balances a combustion reaction.
func ExampleBalance() {
	reagents, products, err := chem.ParseEquation("C6H5COOH + O2 = CO2 + H2O")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	r, err := balance.Balance(reagents, products)
	if err != nil {
		fmt.Println("balance:", err)
		return
	}
	fmt.Println(r)
	// Output: 2 C6H5COOH + 15 O2 = 14 CO2 + 6 H2O
}

// ExampleBalance_unbalanceable shows the element-set report.
func ExampleBalance_unbalanceable() {
	reagents, products, _ := chem.ParseEquation("Fe3 + Cl5 = Cl2Fe5H2O")
	_, err := balance.Balance(reagents, products)

	var ue *balance.UnbalanceableError
	if errors.As(err, &ue) {
		fmt.Println(ue.MissingFromReagents)
	}
	// Output: [H O]
}
