// SPDX-License-Identifier: MIT
// Package quantum: sentinel error set.
// Every failure of the algebra is one of the sentinels below (or a cmatrix
// sentinel re-exported here), wrapped with the operation and operand kinds,
// e.g. "Apply(Ket, Ket): quantum: unsupported operation". Match with errors.Is.

package quantum

import (
	"errors"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

var (
	// ErrTypeMismatch is returned when a scalar-only operation (Mul, Div) receives
	// a non-scalar operand, or Pow receives a non-real exponent. The wrapping
	// context names the operation to use instead.
	ErrTypeMismatch = errors.New("quantum: type mismatch")

	// ErrUnsupportedOperation is returned when an operation receives an operand
	// combination outside its table (e.g. Apply(Ket, Ket), Apply(Operator, 2)).
	ErrUnsupportedOperation = errors.New("quantum: unsupported operation")

	// ErrEmpty is returned when a zero-value Ket/Bra/Operator is used, or when a
	// constructor receives no data.
	ErrEmpty = errors.New("quantum: empty value")
)

// Sentinels propagated unchanged from the dense primitive.
var (
	// ErrDimensionMismatch reports incompatible operand shapes.
	ErrDimensionMismatch = cmatrix.ErrDimensionMismatch

	// ErrDivisionByZero reports division of a vector by a zero scalar.
	ErrDivisionByZero = cmatrix.ErrDivisionByZero

	// ErrOutOfRange reports an index outside the value's bounds.
	ErrOutOfRange = cmatrix.ErrOutOfRange
)
