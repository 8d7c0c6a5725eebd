// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Swap* return errors instead of panicking.
//   - Own storage exclusively: every constructor and Clone allocates a fresh buffer.
//
// Mutability:
//   - Dense is a mutable buffer with a single owner. Set, Apply, SwapRows and
//     SwapCols write in place and need external synchronization when the same
//     *Dense is shared across goroutines. Every other operation in this package
//     only reads its operands and returns a new matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows: O(c); SwapCols: O(r).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxApply    = "Apply"
	ctxRow      = "Row"
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,1): ValidateIndex: matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWith(rows, cols)
}

// NewDenseWith is NewDense with a numeric policy taken from opts
// (WithValidateNaNInf / WithNoValidateNaNInf). Other options are ignored.
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds a matrix from a two-dimensional array by deep copy.
// Rows come from len(src), columns from len(src[0]).
//
// Errors:
//   - ErrInvalidDimensions when src or its first row is empty.
//   - ErrRaggedRows when any row length differs from len(src[0]).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Later writes to src never show up in the returned matrix.
func NewDenseFrom(src [][]float64) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(src), len(src[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row) // one row-sized copy per source row
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(row, m.r); err != nil {
		return 0, err
	}
	if err := ValidateIndex(col, m.c); err != nil {
		return 0, err
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the
// matrix was created with WithValidateNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is Clone without the interface conversion, for internal scratch copies.
func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if err := ValidateIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns the contents as a freshly allocated [][]float64.
// NewDenseFrom(m.RawRows()) reproduces m exactly.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// SwapRows exchanges rows i and j in place.
// Errors: ErrOutOfRange when either index is outside [0, Rows()).
// Complexity: Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := validatePair(i, j, m.r); err != nil {
		return denseErrorf(ctxSwapRows, i, j, err)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// SwapCols exchanges columns i and j across every row, in place.
// Errors: ErrOutOfRange when either index is outside [0, Cols()).
// Complexity: Time O(r), Space O(1).
func (m *Dense) SwapCols(i, j int) error {
	if err := validatePair(i, j, m.c); err != nil {
		return denseErrorf(ctxSwapCols, i, j, err)
	}
	if i == j {
		return nil
	}
	var base int
	for r := 0; r < m.r; r++ {
		base = r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Errors: ErrNaNInf when f produced a non-finite value and the numeric policy
// is on; elements written before the error keep their new values.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String renders one line per row, each value as "%9.4f " (fixed width,
// four fractional digits, trailing space), every row newline-terminated.
func (m *Dense) String() string {
	s, _ := Format(m, DefaultFormatWidth, DefaultFormatPrecision) // m is non-nil here; Format cannot fail

	return s
}
