// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, nil and index checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with an operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem checks the shape contract of a linear system A·x = b:
// A square, b a single column with as many rows as A.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSystem(a, rhs Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateNotNil(rhs); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if rhs.Rows() != a.Rows() {
		return validatorErrorf("ValidateSystem: Rows", ErrDimensionMismatch)
	}
	if rhs.Cols() != 1 {
		return validatorErrorf("ValidateSystem: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that x is non-nil with exactly n entries.
//
// Errors: ErrNilMatrix for a nil slice, ErrDimensionMismatch on length.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// validatePair checks both indices of a swap against the same bound.
func validatePair(i, j, n int) error {
	if err := ValidateIndex(i, n); err != nil {
		return err
	}

	return ValidateIndex(j, n)
}
