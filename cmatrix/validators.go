// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape/nil checks.
//   - Return plain sentinel errors tagged with the validator name so call
//     sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.

package cmatrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference (and its storage) is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(d *Dense) error {
	if d == nil || d.m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Use for Add/Sub and elementwise comparisons.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a.Cols == b.Rows so that a·b is defined.
func ValidateMulShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that d is non-nil and square (Rows == Cols).
func ValidateSquare(d *Dense) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if !d.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVector checks that d is a single row or a single column.
func ValidateVector(d *Dense) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if d.Rows() != 1 && d.Cols() != 1 {
		return validatorErrorf("ValidateVector", ErrBadShape)
	}

	return nil
}
