// SPDX-License-Identifier: MIT

package quantum

import "github.com/katalvlaran/qalgebra/cmatrix"

// Bra is an immutable row vector ⟨φ| of complex amplitudes (shape 1×n),
// the dual of a Ket. The zero value is empty.
type Bra struct {
	d *cmatrix.Dense
}

var _ Value = Bra{}

// NewBra builds a Bra from flat amplitudes.
func NewBra[T Number](amps ...T) (Bra, error) {
	return newVector[Bra](amps)
}

// BraFromRows builds a Bra from nested data of any shape, flattened row-major
// into a single row.
func BraFromRows[T Number](rows [][]T, opts ...Option) (Bra, error) {
	return vectorFromRows[Bra](rows, opts...)
}

// MustBra is like NewBra but panics on error.
func MustBra[T Number](amps ...T) Bra {
	b, err := NewBra(amps...)
	if err != nil {
		panic(err)
	}

	return b
}

// Kind returns KindBra.
func (b Bra) Kind() Kind { return KindBra }

// Matrix returns the underlying 1×n data (nil for the zero value).
func (b Bra) Matrix() *cmatrix.Dense { return b.d }

// Len returns the number of amplitudes.
func (b Bra) Len() int {
	if b.d == nil {
		return 0
	}

	return b.d.Len()
}

// At returns the i-th amplitude.
func (b Bra) At(i int) (complex128, error) {
	d, err := requireDense(b, "At")
	if err != nil {
		return 0, err
	}

	return d.At(0, i)
}

// Amplitudes returns a copy of the amplitudes.
func (b Bra) Amplitudes() []complex128 { return amplitudes(b.d) }

func (b Bra) String() string { return vectorString(KindBra, b.d) }

// Add returns b + o.
func (b Bra) Add(o Bra) (Bra, error) { return combineVectors(b, o, "Add", cmatrix.Add) }

// Sub returns b − o.
func (b Bra) Sub(o Bra) (Bra, error) { return combineVectors(b, o, "Sub", cmatrix.Sub) }

// Mul returns s·b for a scalar s.
func (b Bra) Mul(s any) (Bra, error) { return as[Bra](Mul(b, s)) }

// Div returns b / s for a scalar s.
func (b Bra) Div(s any) (Bra, error) { return as[Bra](Div(b, s)) }

// Pow raises every amplitude to the integer or real power p.
func (b Bra) Pow(p any) (Bra, error) { return as[Bra](Pow(b, p)) }

// Equal reports whether every amplitude pair is within tolerance.
func (b Bra) Equal(o Bra, opts ...Option) bool { return equalVectors(b, o, opts...) }

// Dagger returns the dual Ket: conjugated amplitudes laid out as a column.
func (b Bra) Dagger() Ket { return dual[Ket](b.d, true) }

// ConjugateTranspose lays the amplitudes out as a Ket WITHOUT conjugating them.
func (b Bra) ConjugateTranspose() Ket { return dual[Ket](b.d, false) }

// Apply composes b with x. Only a Ket is accepted, yielding the bilinear
// form Σ b_i·k_i. No conjugation is applied: for the physical inner product
// ⟨φ|ψ⟩ obtain b from a Ket via Dagger first.
//
// Errors:
//   - ErrUnsupportedOperation for any other operand; ErrDimensionMismatch.
func (b Bra) Apply(x any) (complex128, error) { return as[complex128](Apply(b, x)) }
