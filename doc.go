// Package lvnum is a small numeric toolkit: dense real matrices with a
// Gaussian-elimination solver, exact integer fractions and complex numbers.
//
// Everything lives in three independent subpackages:
//
//	matrix/     — Dense M×N matrices, Add/Sub/Mul/Transpose, Equal, Solve
//	fraction/   — Fraction, reduced rational arithmetic on int64 terms
//	complexnum/ — Complex, arithmetic plus exp, sin, cos, tan
//
// and one command:
//
//	cmd/linsolve — solve A·x = b from the command line
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
//	b, _ := matrix.NewDenseFrom([][]float64{{3}, {5}})
//	x, err := matrix.Solve(a, b) // x ≈ [0.8, 1.4]
//
// All operations return fresh values; only Dense.Set, Dense.SwapRows and
// Dense.SwapCols mutate their receiver. Errors are package sentinels matched
// with errors.Is.
//
//	go get github.com/katalvlaran/lvnum
package lvnum
