// SPDX-License-Identifier: MIT
// Package cmatrix provides the complex linear-algebra kernels used by the
// quantum layer: element-wise addition and subtraction, scalar scaling and
// division, element-wise power, matrix multiplication, transpose, conjugate,
// conjugate transpose, outer and bilinear inner products.
//
// Purpose:
//   - Delegate the numerics to gonum (cblas128, cmplxs) and keep this file to
//     validation, allocation and error tagging.
//   - All kernels are pure: operands are never mutated, every result is a
//     freshly allocated *Dense.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opDiv           = "Div"
	opPow           = "Pow"
	opTranspose     = "Transpose"
	opConj          = "Conj"
	opConjTranspose = "ConjTranspose"
	opOuter         = "Outer"
	opDotu          = "Dotu"
	opTrace         = "Trace"
	opNorm          = "Norm"
)

// maxRepeatedSquaring bounds the exponent for which Pow uses exact repeated
// multiplication instead of the polar form.
const maxRepeatedSquaring = 1 << 10

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	r, c := a.Dims()
	buf := cmplxs.AddTo(make([]complex128, r*c), a.raw(), b.raw())

	return newFromBuf(r, c, buf), nil
}

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	r, c := a.Dims()
	buf := cmplxs.SubTo(make([]complex128, r*c), a.raw(), b.raw())

	return newFromBuf(r, c, buf), nil
}

// Scale returns alpha·M.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	r, c := m.Dims()
	buf := cmplxs.ScaleTo(make([]complex128, r*c), alpha, m.raw())

	return newFromBuf(r, c, buf), nil
}

// Div returns M / s element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDivisionByZero when s == 0.
func Div(m *Dense, s complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}
	r, c := m.Dims()
	src := m.raw()
	buf := make([]complex128, len(src))
	for i, v := range src {
		buf[i] = v / s
	}

	return newFromBuf(r, c, buf), nil
}

// Pow raises every element to the real power p.
// Integral exponents with |p| ≤ 1024 use exact repeated squaring (so that
// e.g. (-1)² is exactly 1); other exponents use the principal branch of
// cmplx.Pow. Zero raised to a negative power yields an infinite component,
// matching IEEE semantics rather than failing.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf when p is NaN or ±Inf.
func Pow(m *Dense, p float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, matrixErrorf(opPow, ErrNaNInf)
	}
	r, c := m.Dims()
	src := m.raw()
	buf := make([]complex128, len(src))
	if p == math.Trunc(p) && math.Abs(p) <= maxRepeatedSquaring {
		n := int(p)
		for i, v := range src {
			buf[i] = powInt(v, n)
		}
	} else {
		e := complex(p, 0)
		for i, v := range src {
			buf[i] = cmplx.Pow(v, e)
		}
	}

	return newFromBuf(r, c, buf), nil
}

// powInt computes v^n by binary exponentiation; negative n inverts the result.
func powInt(v complex128, n int) complex128 {
	neg := n < 0
	if neg {
		n = -n
	}
	acc := complex(1, 0)
	for base := v; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc *= base
		}
		base *= base
	}
	if neg {
		return 1 / acc
	}

	return acc
}

// Mul computes the matrix product C = A·B using cblas128.Gemm.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when A.Cols != B.Rows.
//
// Complexity: Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, c := a.Rows(), b.Cols()
	out := newFromBuf(r, c, make([]complex128, r*c))
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.m.RawCMatrix(), b.m.RawCMatrix(), 0, out.m.RawCMatrix())

	return out, nil
}

// Transpose returns Mᵀ (no conjugation).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	out.Copy(m.m.T())

	return &Dense{m: out}, nil
}

// Conj returns the element-wise complex conjugate of M.
func Conj(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	var out mat.CDense
	out.Conj(m.m)

	return &Dense{m: &out}, nil
}

// ConjTranspose returns Mᴴ, the conjugate transpose of M.
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	out.Copy(m.m.H())

	return &Dense{m: out}, nil
}

// Outer returns the outer product u_i·v_j of the flattened operands as a
// len(u)×len(v) matrix. No conjugation is applied.
func Outer(u, v *Dense) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	col := newFromBuf(u.Len(), 1, u.Flat())
	row := newFromBuf(1, v.Len(), v.Flat())

	return Mul(col, row)
}

// Dotu returns the bilinear form Σ u_i·v_i over the flattened operands
// (no conjugation; use Conj on one side for the Hermitian inner product).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when element counts differ.
func Dotu(u, v *Dense) (complex128, error) {
	if err := ValidateNotNil(u); err != nil {
		return 0, matrixErrorf(opDotu, err)
	}
	if err := ValidateNotNil(v); err != nil {
		return 0, matrixErrorf(opDotu, err)
	}
	n := u.Len()
	if v.Len() != n {
		return 0, matrixErrorf(opDotu, ErrDimensionMismatch)
	}

	return cblas128.Dotu(
		cblas128.Vector{N: n, Inc: 1, Data: u.raw()},
		cblas128.Vector{N: n, Inc: 1, Data: v.raw()},
	), nil
}

// Trace returns Σ M_ii.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.Rows(); i++ {
		sum += m.m.At(i, i)
	}

	return sum, nil
}

// Norm returns the Frobenius (Euclidean, for vectors) norm of M.
func Norm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return cmplxs.Norm(m.raw(), 2), nil
}
