// SPDX-License-Identifier: MIT

// Package matrix: dense linear-system solver.
//
// Solve runs Gaussian elimination with partial pivoting followed by back
// substitution on private scratch copies of its operands. It is the only
// routine in the package whose failure depends on the values, not just the
// shapes, of its inputs.
package matrix

import (
	"fmt"
	"math"
)

const opSolve = "Solve"

// Solve returns x such that a·x ≈ rhs, where a is n×n and rhs is n×1.
// Implementation:
//   - Stage 1: ValidateSystem (square a, rhs n×1); copy a and rhs into scratch *Dense.
//   - Stage 2: forward elimination. For each column i:
//     pick the row r ≥ i with the largest |A[r,i]| (first one on ties),
//     swap it with row i in A and b, fail with ErrSingular if |A[i,i]| ≤ tol,
//     then for each row j > i subtract m = A[j,i]/A[i,i] times row i from
//     row j (columns i+1..n-1 and b[j]) and store an exact 0 in A[j,i].
//   - Stage 3: back substitution from the last row upwards into a fresh n×1 x.
//
// Behavior highlights:
//   - a and rhs are never mutated; concurrent Solve calls on shared inputs are safe
//     as long as nothing writes to those inputs meanwhile.
//   - NaN/Inf inputs are not rejected and flow through the arithmetic.
//
// Inputs:
//   - a  : coefficient matrix, n×n.
//   - rhs: right-hand side column vector, n×1.
//   - opts: WithPivotTolerance(eps) raises the singularity threshold above 0.
//
// Returns:
//   - *Dense: solution column vector x, n×1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//   - ErrSingular (Stage 2), wrapped with the failing column index.
//
// Determinism:
//   - Fixed loop orders and tie-breaking: identical inputs give bit-identical x.
//
// Complexity:
//   - Time O(n³) elimination + O(n²) substitution, Space O(n²) for the scratch copy.
//
// Notes:
//   - The default singularity test is exact (pivot == 0.0). A nearly singular
//     matrix passes it and yields large or non-finite components; use
//     WithPivotTolerance to reject such systems instead.
func Solve(a, rhs Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSystem(a, rhs); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	A, err := denseCopy(a, opSolve)
	if err != nil {
		return nil, err
	}
	b, err := denseCopy(rhs, opSolve)
	if err != nil {
		return nil, err
	}
	n := A.r

	if err = eliminate(A, b, o.pivotTol); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	x, err := NewDense(n, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	backSubstitute(A, b, x)

	return x, nil
}

// eliminate reduces A to upper-triangular form in place, applying the same
// row operations to the single-column b.
func eliminate(A, b *Dense, tol float64) error {
	n := A.r
	var (
		i, j, k, pivotRow int
		rowI, rowJ        int // flat offsets of rows i and j
		pivot, m          float64
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: strict > keeps the first maximum on ties.
		pivotRow = i
		for j = i + 1; j < n; j++ {
			if math.Abs(A.data[j*n+i]) > math.Abs(A.data[pivotRow*n+i]) {
				pivotRow = j
			}
		}
		_ = A.SwapRows(i, pivotRow) // indices are in range by construction
		_ = b.SwapRows(i, pivotRow)

		rowI = i * n
		pivot = A.data[rowI+i]
		if math.Abs(pivot) <= tol {
			return fmt.Errorf("column %d: %w", i, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			rowJ = j * n
			m = A.data[rowJ+i] / pivot
			for k = i + 1; k < n; k++ {
				A.data[rowJ+k] -= m * A.data[rowI+k]
			}
			b.data[j] -= m * b.data[i]
			A.data[rowJ+i] = 0.0 // exact zero, not left to cancellation
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system A·x = b into x.
func backSubstitute(A, b, x *Dense) {
	n := A.r
	var (
		j, k, rowJ int
		sum        float64
	)
	for j = n - 1; j >= 0; j-- {
		rowJ = j * n
		sum = ZeroSum
		for k = j + 1; k < n; k++ {
			sum += A.data[rowJ+k] * x.data[k]
		}
		x.data[j] = (b.data[j] - sum) / A.data[rowJ+j]
	}
}
