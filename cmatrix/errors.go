// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cmatrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag via %w) and tests match them with errors.Is. No kernel panics on
// user-triggered conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for grep-ability. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX) so callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// or when flat data does not fill rows*cols exactly.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrRaggedRows indicates nested input whose rows have different lengths.
	ErrRaggedRows = errors.New("cmatrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrDivisionByZero is returned when an elementwise division by a zero scalar is requested.
	ErrDivisionByZero = errors.New("cmatrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)
