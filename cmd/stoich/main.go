// SPDX-License-Identifier: MIT

// Command stoich balances chemical equations.
//
//	stoich balance "KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2"
//	stoich batch reactions.yaml --workers 4 --db stoich.db
//	stoich history --db stoich.db --limit 10
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/stoich/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	// Commands report their own failures; anything else came from cobra.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
