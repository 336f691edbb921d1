// SPDX-License-Identifier: MIT

// Package quantum - the algebra tables.
//
// Every binary operation of the algebra is resolved by a lookup in a table
// keyed by the operand kinds (see Kind). A missing entry is an error, never a
// silent no-op:
//
//	Apply     Ket       Bra       Operator
//	Ket       -         Operator  -
//	Bra       Scalar    -         -
//	Operator  Ket       Bra       Operator
//
//	Mul/Div/Pow take the value on the left and a number on the right.
//	Mul:  Ket, Bra, Operator.  Div: Ket, Bra.  Pow: Ket, Bra (real exponent).
//
// Table entries call cmatrix kernels directly; they never recurse into the
// public dispatchers.
package quantum

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Operation names used in error contexts.
const (
	opApply = "Apply"
	opMul   = "Mul"
	opDiv   = "Div"
	opPow   = "Pow"
)

// Hints attached to ErrTypeMismatch.
const (
	hintMul = "use Apply for linear-algebra multiplication, Mul is scalar only"
	hintDiv = "Div accepts a scalar divisor only"
	hintPow = "Pow accepts an integer or real exponent only"
)

// pair keys a binary table.
type pair struct{ left, right Kind }

// entry computes one cell of a table on already-classified operands.
type entry func(x, y any) (any, error)

// scalarEntry computes one cell of a scalar table; s is the coerced scalar.
type scalarEntry func(x Value, s complex128) (any, error)

var applyTable = map[pair]entry{
	{KindKet, KindBra}:           applyKetBra,
	{KindBra, KindKet}:           applyBraKet,
	{KindOperator, KindKet}:      applyOperatorKet,
	{KindOperator, KindBra}:      applyOperatorBra,
	{KindOperator, KindOperator}: applyOperatorOperator,
}

var mulTable = map[Kind]scalarEntry{
	KindKet:      scaleEntry,
	KindBra:      scaleEntry,
	KindOperator: scaleEntry,
}

var divTable = map[Kind]scalarEntry{
	KindKet: divEntry,
	KindBra: divEntry,
}

var powTable = map[Kind]func(x Value, p float64) (any, error){
	KindKet: powEntry,
	KindBra: powEntry,
}

// Apply composes x with y following the apply table. The result is a Ket,
// Bra, Operator or complex128 depending on the operand kinds; pointers to
// values are accepted.
//
// Errors:
//   - ErrUnsupportedOperation for combinations outside the table.
//   - ErrEmpty for zero-value operands.
//   - ErrDimensionMismatch for non-conformable shapes.
//
// Complexity: that of the underlying product, O(n·m·p) for matrices.
func Apply(x, y any) (any, error) {
	x, y = operand(x), operand(y)
	kx, ky := KindOf(x), KindOf(y)
	fn, ok := applyTable[pair{kx, ky}]
	if !ok {
		return nil, fmt.Errorf("%s(%s, %s): %w", opApply, kx, ky, ErrUnsupportedOperation)
	}
	out, err := fn(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", opApply, kx, ky, err)
	}

	return out, nil
}

// Mul scales the value x by the number s. Mul never performs a matrix
// product; a non-numeric s is rejected with ErrTypeMismatch.
//
// Errors:
//   - ErrTypeMismatch when s is not a number.
//   - ErrUnsupportedOperation when x is not a Ket, Bra or Operator.
//   - ErrEmpty for a zero-value x.
func Mul(x, s any) (any, error) {
	return scalarDispatch(opMul, hintMul, mulTable, x, s)
}

// Div divides the vector x by the number s.
//
// Errors:
//   - ErrTypeMismatch when s is not a number.
//   - ErrDivisionByZero when s == 0.
//   - ErrUnsupportedOperation when x is not a Ket or Bra.
//   - ErrEmpty for a zero-value x.
func Div(x, s any) (any, error) {
	return scalarDispatch(opDiv, hintDiv, divTable, x, s)
}

// Pow raises every amplitude of the vector x to the power p. Integral
// exponents of moderate size are computed by exact repeated squaring.
//
// Errors:
//   - ErrTypeMismatch when p is complex or not a number.
//   - ErrUnsupportedOperation when x is not a Ket or Bra.
//   - ErrEmpty for a zero-value x.
func Pow(x, p any) (any, error) {
	x = operand(x)
	kx, kp := KindOf(x), KindOf(p)
	fn, ok := powTable[kx]
	if !ok {
		return nil, fmt.Errorf("%s(%s, %s): %w", opPow, kx, kp, ErrUnsupportedOperation)
	}
	exp, ok := cmatrix.IsReal(p)
	if !ok {
		return nil, fmt.Errorf("%s(%s, %T): %s: %w", opPow, kx, p, hintPow, ErrTypeMismatch)
	}
	out, err := fn(x.(Value), exp)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", opPow, kx, kp, err)
	}

	return out, nil
}

// scalarDispatch resolves the (value, number) tables shared by Mul and Div.
func scalarDispatch(op, hint string, table map[Kind]scalarEntry, x, s any) (any, error) {
	x = operand(x)
	kx, ks := KindOf(x), KindOf(s)
	fn, ok := table[kx]
	if !ok {
		return nil, fmt.Errorf("%s(%s, %s): %w", op, kx, ks, ErrUnsupportedOperation)
	}
	c, ok := cmatrix.Coerce(s)
	if !ok {
		return nil, fmt.Errorf("%s(%s, %s): %s: %w", op, kx, ks, hint, ErrTypeMismatch)
	}
	out, err := fn(x.(Value), c)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", op, kx, ks, err)
	}

	return out, nil
}

// ---------- apply entries ----------

// applyKetBra is the outer product |k⟩⟨b|.
func applyKetBra(x, y any) (any, error) {
	dk, db, err := operands(x.(Value), y.(Value))
	if err != nil {
		return nil, err
	}
	d, err := cmatrix.Outer(dk, db)
	if err != nil {
		return nil, err
	}

	return Operator{d: d}, nil
}

// applyBraKet is the bilinear form Σ b_i·k_i (no conjugation).
func applyBraKet(x, y any) (any, error) {
	db, dk, err := operands(x.(Value), y.(Value))
	if err != nil {
		return nil, err
	}
	s, err := cmatrix.Dotu(db, dk)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// applyOperatorKet is A·k.
func applyOperatorKet(x, y any) (any, error) {
	da, dk, err := operands(x.(Value), y.(Value))
	if err != nil {
		return nil, err
	}
	d, err := cmatrix.Mul(da, dk)
	if err != nil {
		return nil, err
	}

	return Ket{d: d}, nil
}

// applyOperatorBra is b·A: the Bra multiplies the matrix from the left.
func applyOperatorBra(x, y any) (any, error) {
	da, db, err := operands(x.(Value), y.(Value))
	if err != nil {
		return nil, err
	}
	d, err := cmatrix.Mul(db, da)
	if err != nil {
		return nil, err
	}

	return Bra{d: d}, nil
}

// applyOperatorOperator is the matrix product A·B.
func applyOperatorOperator(x, y any) (any, error) {
	da, db, err := operands(x.(Value), y.(Value))
	if err != nil {
		return nil, err
	}
	d, err := cmatrix.Mul(da, db)
	if err != nil {
		return nil, err
	}

	return Operator{d: d}, nil
}

// ---------- scalar entries ----------

func scaleEntry(x Value, s complex128) (any, error) {
	d, err := requireDense(x, opMul)
	if err != nil {
		return nil, err
	}
	out, err := cmatrix.Scale(d, s)
	if err != nil {
		return nil, err
	}

	return rewrap(x, out), nil
}

func divEntry(x Value, s complex128) (any, error) {
	d, err := requireDense(x, opDiv)
	if err != nil {
		return nil, err
	}
	out, err := cmatrix.Div(d, s)
	if err != nil {
		return nil, err
	}

	return rewrap(x, out), nil
}

func powEntry(x Value, p float64) (any, error) {
	d, err := requireDense(x, opPow)
	if err != nil {
		return nil, err
	}
	out, err := cmatrix.Pow(d, p)
	if err != nil {
		return nil, err
	}

	return rewrap(x, out), nil
}

// operands unwraps two values, failing with ErrEmpty on a zero value.
func operands(x, y Value) (*cmatrix.Dense, *cmatrix.Dense, error) {
	if x.Matrix() == nil || y.Matrix() == nil {
		return nil, nil, ErrEmpty
	}

	return x.Matrix(), y.Matrix(), nil
}

// rewrap returns a value of x's category around d. Shapes are preserved by
// every scalar kernel, so the orientation is already canonical.
func rewrap(x Value, d *cmatrix.Dense) Value {
	switch x.(type) {
	case Ket:
		return Ket{d: d}
	case Bra:
		return Bra{d: d}
	default:
		return Operator{d: d}
	}
}
