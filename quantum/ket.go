// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Ket is an immutable column vector |ψ⟩ of complex amplitudes (shape n×1).
// The zero value is empty; every operation on it fails with ErrEmpty.
type Ket struct {
	d *cmatrix.Dense
}

var _ Value = Ket{}

// NewKet builds a Ket from flat amplitudes, e.g. NewKet(1, 0) or NewKet(1+0i, 1i).
// Integers and reals are promoted to complex.
//
// Errors:
//   - ErrEmpty when no amplitudes are given; cmatrix.ErrNaNInf for non-finite input.
func NewKet[T Number](amps ...T) (Ket, error) {
	return newVector[Ket](amps)
}

// KetFromRows builds a Ket from nested data of any shape (e.g. [][]int{{1},{0}}
// or [][]float64{{1, 0}}); the data is flattened row-major into a single column.
//
// Errors:
//   - ErrEmpty, cmatrix.ErrRaggedRows, cmatrix.ErrNaNInf.
func KetFromRows[T Number](rows [][]T, opts ...Option) (Ket, error) {
	return vectorFromRows[Ket](rows, opts...)
}

// MustKet is like NewKet but panics on error.
func MustKet[T Number](amps ...T) Ket {
	k, err := NewKet(amps...)
	if err != nil {
		panic(err)
	}

	return k
}

// Kind returns KindKet.
func (k Ket) Kind() Kind { return KindKet }

// Matrix returns the underlying n×1 data (nil for the zero value).
func (k Ket) Matrix() *cmatrix.Dense { return k.d }

// Len returns the number of amplitudes (0 for the zero value).
func (k Ket) Len() int {
	if k.d == nil {
		return 0
	}

	return k.d.Len()
}

// At returns the i-th amplitude.
func (k Ket) At(i int) (complex128, error) {
	d, err := requireDense(k, "At")
	if err != nil {
		return 0, err
	}

	return d.At(i, 0)
}

// Amplitudes returns a copy of the amplitudes.
func (k Ket) Amplitudes() []complex128 { return amplitudes(k.d) }

// String renders the column, e.g. [[(1+0i)] [(0+0i)]] across lines.
func (k Ket) String() string { return vectorString(KindKet, k.d) }

// Add returns k + o.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func (k Ket) Add(o Ket) (Ket, error) { return combineVectors(k, o, "Add", cmatrix.Add) }

// Sub returns k − o.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func (k Ket) Sub(o Ket) (Ket, error) { return combineVectors(k, o, "Sub", cmatrix.Sub) }

// Mul returns s·k for a scalar s.
//
// Errors:
//   - ErrTypeMismatch when s is not a number (use Apply for linear-algebra products).
func (k Ket) Mul(s any) (Ket, error) { return as[Ket](Mul(k, s)) }

// Div returns k / s for a scalar s.
//
// Errors:
//   - ErrTypeMismatch when s is not a number; ErrDivisionByZero when s == 0.
func (k Ket) Div(s any) (Ket, error) { return as[Ket](Div(k, s)) }

// Pow raises every amplitude to the integer or real power p.
//
// Errors:
//   - ErrTypeMismatch when p is complex or not a number.
func (k Ket) Pow(p any) (Ket, error) { return as[Ket](Pow(k, p)) }

// Equal reports whether every amplitude pair is within tolerance
// (|a−b| ≤ atol + rtol·|b|). Different lengths or empty operands are unequal.
func (k Ket) Equal(o Ket, opts ...Option) bool { return equalVectors(k, o, opts...) }

// Dagger returns the dual Bra ⟨ψ|: conjugated amplitudes laid out as a row.
func (k Ket) Dagger() Bra { return dual[Bra](k.d, true) }

// ConjugateTranspose lays the amplitudes out as a Bra WITHOUT conjugating them.
// This is a plain transpose; use Dagger for the physical dual.
func (k Ket) ConjugateTranspose() Bra { return dual[Bra](k.d, false) }

// Apply composes k with x. Only a Bra is accepted, yielding the rank-1
// Operator |k⟩⟨b| with entries k_i·b_j.
//
// Errors:
//   - ErrUnsupportedOperation for any other operand.
func (k Ket) Apply(x any) (Operator, error) { return as[Operator](Apply(k, x)) }

// Norm returns the Euclidean norm √Σ|k_i|² (0 for the zero value).
func (k Ket) Norm() float64 {
	if k.d == nil {
		return 0
	}
	n, _ := cmatrix.Norm(k.d)

	return n
}

// Normalize returns k/‖k‖.
//
// Errors:
//   - ErrEmpty; ErrDivisionByZero for the zero vector.
func (k Ket) Normalize() (Ket, error) {
	if _, err := requireDense(k, "Normalize"); err != nil {
		return Ket{}, err
	}

	return k.Div(k.Norm())
}

// as unwraps a table result into the expected concrete type.
func as[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected result %T: %w", v, ErrUnsupportedOperation)
	}

	return out, nil
}
