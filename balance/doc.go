// SPDX-License-Identifier: MIT

// Package balance finds the smallest positive integer coefficients that
// conserve every element across a chemical reaction.
//
// Pipeline:
//
//  1. Element check: both sides must contain exactly the same elements.
//  2. Stoichiometry: rows = elements, columns = reagents then products,
//     entries = raw atom counts.
//  3. Solve: the last product is pinned at 1 and the remaining N−1
//     coefficients are the minimum-norm least-squares solution of A·x = b
//     (full SVD, see matrix.LeastSquares).
//  4. Sign check: reagents must come out positive and the other products
//     negative (WithLenientSigns discards signs instead).
//  5. Rationalize: each value becomes the nearest fraction with a bounded
//     denominator (LimitDenominator, DefaultMaxDenominator = 100).
//  6. Scale: every fraction is multiplied by the LCM of the denominators,
//     which also becomes the pinned coefficient.
//  7. Verify: per-element totals must match on both sides (Verify).
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrEmptyReaction, ErrInvalidCompound   input shape.
//	ErrUnbalanceable                       *UnbalanceableError.
//	ErrSolver                              *SolverError.
//	ErrInconsistentSign                    *SignError.
//	ErrRationalConversion                  *RationalConversionError.
//	ErrScaling                             *ScalingError.
//	ErrVerification                        *VerificationError.
//
// Every typed error reports the Stage it failed in through StageOf.
//
// Example:
//
//	reagents, products, _ := chem.ParseEquation("Al + Cl2 = AlCl3")
//	r, err := balance.Balance(reagents, products)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r) // 2 Al + 3 Cl2 = 2 AlCl3
//
// Balance is pure and safe for concurrent use.
package balance
