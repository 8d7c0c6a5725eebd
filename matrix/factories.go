// SPDX-License-Identifier: MIT

// Package matrix: factories for common matrices and copy-returning variants
// of the in-place structural operations.
package matrix

import "fmt"

// Operation tags for factories.
const (
	opIdentity    = "Identity"
	opRandom      = "Random"
	opSwappedRows = "SwappedRows"
	opSwappedCols = "SwappedCols"
)

// Identity returns the n×n identity matrix (1 on the main diagonal, 0 elsewhere).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0 // diagonal offset i*(n+1)
	}

	return m, nil
}

// Random returns a rows×cols matrix whose entries are independent uniform
// draws from [0, 1).
// Implementation:
//   - Stage 1: resolve options (WithRandSource, numeric policy) and allocate.
//   - Stage 2: fill the flat buffer in row-major order from the source.
//
// Determinism:
//   - Without WithRandSource the process-global generator is used and the
//     output is not reproducible. With a seeded *rand.Rand it is.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := NewDenseWith(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	for k := range m.data {
		m.data[k] = o.draw()
	}

	return m, nil
}

// SwappedRows returns a copy of m with rows i and j exchanged; m is untouched.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r*c), Space O(r*c).
func SwappedRows(m Matrix, i, j int) (Matrix, error) {
	out, err := denseCopy(m, opSwappedRows)
	if err != nil {
		return nil, err
	}
	if err = out.SwapRows(i, j); err != nil {
		return nil, matrixErrorf(opSwappedRows, err)
	}

	return out, nil
}

// SwappedCols returns a copy of m with columns i and j exchanged; m is untouched.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r*c), Space O(r*c).
func SwappedCols(m Matrix, i, j int) (Matrix, error) {
	out, err := denseCopy(m, opSwappedCols)
	if err != nil {
		return nil, err
	}
	if err = out.SwapCols(i, j); err != nil {
		return nil, matrixErrorf(opSwappedCols, err)
	}

	return out, nil
}

// denseCopy materializes any Matrix as a fresh *Dense scratch copy.
// The *Dense path is a single buffer copy; other implementations go through At.
func denseCopy(m Matrix, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
