// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for invalid Option
// arguments (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap with matrixErrorf("Op", err) so the final text reads
// "Solve: ValidateSquare: matrix: dimension mismatch" while errors.Is still
// matches the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension mismatch -> index -> numeric (NaN/Inf) -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a source array is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that a source array has rows of different lengths.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/SwapRows/SwapCols) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub/Equal with different shapes, Mul with a.Cols != b.Rows, or Solve
	// with a non-square coefficient matrix or a wrong-shape right-hand side.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Solve when the pivot selected for a column is
	// zero (or within the configured pivot tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadFormat indicates a negative width or precision passed to Format.
	ErrBadFormat = errors.New("matrix: invalid format width or precision")
)
