// Package stoich balances chemical equations.
//
// Given the reagents and products of a reaction, stoich finds the smallest
// positive integer coefficients that conserve every element:
//
//	Al + Cl2 = AlCl3                        ⇒ 2 Al + 3 Cl2 = 2 AlCl3
//	C6H5COOH + O2 = CO2 + H2O               ⇒ 2 C6H5COOH + 15 O2 = 14 CO2 + 6 H2O
//	KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2   ⇒ 2 KMnO4 + 16 HCl = 2 KCl + 2 MnCl2 + 8 H2O + 5 Cl2
//
// Layout:
//
//	chem/      elements, compounds, molar mass and yield, formula parsing
//	matrix/    dense matrices and the SVD least-squares kernel (gonum)
//	balance/   the balancing pipeline and its verifier
//	batch/     YAML batch files and a worker pool over balance.Balance
//	store/     SQLite history of balancing runs
//	internal/cli, cmd/stoich/   the stoich command-line tool
//
// Quick start:
//
//	reagents, products, err := chem.ParseEquation("Al + Cl2 = AlCl3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := balance.Balance(reagents, products)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r) // 2 Al + 3 Cl2 = 2 AlCl3
package stoich
