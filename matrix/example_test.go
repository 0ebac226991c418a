package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stoich/matrix"
)

// ExampleLeastSquares pins the last unknown of a homogeneous system and
// solves for the rest.
func ExampleLeastSquares() {
	// Columns: Al, Cl2, AlCl3. Rows: Al, Cl.
	m, _ := matrix.NewDenseFrom(2, 3, []float64{
		1, 0, 1,
		0, 2, 3,
	})
	a, b, _ := m.SplitLastColumn()

	res, err := matrix.LeastSquares(a, b, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rank=%d x=[%.2f %.2f]\n", res.Rank, res.X[0], res.X[1])
	// Output: rank=2 x=[1.00 1.50]
}
