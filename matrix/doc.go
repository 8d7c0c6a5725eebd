// Package matrix offers dense real matrices and a Gaussian-elimination solver.
//
// The matrix package provides:
//
//   - Dense, a row-major M×N float64 buffer with bounds-checked At/Set and
//     in-place SwapRows/SwapCols.
//   - Factories: NewDense (zeros), NewDenseFrom (deep copy of [][]float64),
//     Identity and Random.
//   - Operations returning fresh matrices: Add, Sub, Mul, Transpose, Scale,
//     SwappedRows, SwappedCols.
//   - Vector helpers: MatVec (m·x for a plain slice) and MaxAbs (max-norm).
//   - Comparison: Equal (exact, shape mismatch is an error) and AllClose.
//   - Solve, which solves A·x = b by Gaussian elimination with partial
//     pivoting and back substitution.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped
// with the operation name; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
