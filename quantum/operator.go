// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Operator is an immutable complex matrix acting on Kets from the left and on
// Bras from the right. The zero value is empty.
type Operator struct {
	d *cmatrix.Dense
}

var _ Value = Operator{}

// NewOperator builds an Operator from nested rows, e.g.
// NewOperator([][]float64{{0, 1}, {1, 0}}).
//
// Errors:
//   - ErrEmpty, cmatrix.ErrRaggedRows, cmatrix.ErrNaNInf.
func NewOperator[T Number](rows [][]T, opts ...Option) (Operator, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Operator{}, fmt.Errorf("NewOperator: %w", ErrEmpty)
	}
	o := gatherOptions(opts...)
	d, err := cmatrix.FromRowsOf(rows, o.ingestion())
	if err != nil {
		return Operator{}, fmt.Errorf("NewOperator: %w", err)
	}

	return Operator{d: d}, nil
}

// MustOperator is like NewOperator but panics on error.
func MustOperator[T Number](rows [][]T) Operator {
	op, err := NewOperator(rows)
	if err != nil {
		panic(err)
	}

	return op
}

// Identity returns the n×n identity Operator.
//
// Errors:
//   - ErrEmpty when n <= 0.
func Identity(n int) (Operator, error) {
	if n <= 0 {
		return Operator{}, fmt.Errorf("Identity(%d): %w", n, ErrEmpty)
	}
	d, err := cmatrix.Identity(n)
	if err != nil {
		return Operator{}, fmt.Errorf("Identity(%d): %w", n, err)
	}

	return Operator{d: d}, nil
}

// Kind returns KindOperator.
func (a Operator) Kind() Kind { return KindOperator }

// Matrix returns the underlying data (nil for the zero value).
func (a Operator) Matrix() *cmatrix.Dense { return a.d }

// Rows returns the row count (0 for the zero value).
func (a Operator) Rows() int {
	if a.d == nil {
		return 0
	}

	return a.d.Rows()
}

// Cols returns the column count (0 for the zero value).
func (a Operator) Cols() int {
	if a.d == nil {
		return 0
	}

	return a.d.Cols()
}

// At returns the element at (i, j).
func (a Operator) At(i, j int) (complex128, error) {
	d, err := requireDense(a, "At")
	if err != nil {
		return 0, err
	}

	return d.At(i, j)
}

// Data returns a copy of the matrix as nested rows (nil for the zero value).
func (a Operator) Data() [][]complex128 {
	if a.d == nil {
		return nil
	}

	return a.d.Data()
}

func (a Operator) String() string {
	if a.d == nil {
		return KindOperator.String() + "(empty)"
	}

	return a.d.String()
}

// Add returns A + B.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func (a Operator) Add(b Operator) (Operator, error) { return a.combine(b, "Add", cmatrix.Add) }

// Sub returns A − B.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func (a Operator) Sub(b Operator) (Operator, error) { return a.combine(b, "Sub", cmatrix.Sub) }

// Mul returns s·A for a scalar s.
//
// Errors:
//   - ErrTypeMismatch when s is not a number (use Apply for operator application).
func (a Operator) Mul(s any) (Operator, error) { return as[Operator](Mul(a, s)) }

// Apply applies A to x following the composition table:
//
//	Ket      → Ket       A·k
//	Bra      → Bra       b·A
//	Operator → Operator  A·B
//
// Errors:
//   - ErrUnsupportedOperation for any other operand; ErrDimensionMismatch.
func (a Operator) Apply(x any) (Value, error) { return as[Value](Apply(a, x)) }

// ApplyKet returns A·k.
func (a Operator) ApplyKet(k Ket) (Ket, error) { return as[Ket](applyOperatorKet(a, k)) }

// ApplyBra returns b·A.
func (a Operator) ApplyBra(b Bra) (Bra, error) { return as[Bra](applyOperatorBra(a, b)) }

// Compose returns the product A·B.
func (a Operator) Compose(b Operator) (Operator, error) {
	return as[Operator](applyOperatorOperator(a, b))
}

// Equal reports whether A and B have the same shape and exactly equal
// elements. No tolerance is applied; see EqualApprox.
func (a Operator) Equal(b Operator) bool {
	if a.d == nil || b.d == nil {
		return false
	}

	return cmatrix.Equal(a.d, b.d)
}

// EqualApprox reports whether A and B agree element-wise within tolerance.
func (a Operator) EqualApprox(b Operator, opts ...Option) bool {
	if a.d == nil || b.d == nil {
		return false
	}

	return cmatrix.AllClose(a.d, b.d, gatherOptions(opts...).tolerance())
}

// Dagger returns the adjoint A†, the conjugate transpose (zero value stays empty).
func (a Operator) Dagger() Operator {
	if a.d == nil {
		return Operator{}
	}
	d, _ := cmatrix.ConjTranspose(a.d) // non-nil: cannot fail

	return Operator{d: d}
}

// IsHermitian reports whether A equals A† within tolerance.
// Non-square and empty operators are never Hermitian.
func (a Operator) IsHermitian(opts ...Option) bool {
	return a.EqualApprox(a.Dagger(), opts...)
}

// IsUnitary reports whether A·A† equals the identity of matching dimension.
// The comparison follows the Equality policy (EqualityApprox by default;
// WithExactEquality demands bit-exact identity).
func (a Operator) IsUnitary(opts ...Option) bool {
	if a.d == nil {
		return false
	}
	prod, err := a.Compose(a.Dagger())
	if err != nil {
		return false
	}
	id, err := Identity(prod.Rows())
	if err != nil {
		return false
	}
	o := gatherOptions(opts...)
	if o.equality == EqualityExact {
		return prod.Equal(id)
	}

	return prod.EqualApprox(id, opts...)
}

// Trace returns Σ A_ii.
//
// Errors:
//   - ErrEmpty; cmatrix.ErrNonSquare.
func (a Operator) Trace() (complex128, error) {
	d, err := requireDense(a, "Trace")
	if err != nil {
		return 0, err
	}
	tr, err := cmatrix.Trace(d)
	if err != nil {
		return 0, fmt.Errorf("Operator.Trace: %w", err)
	}

	return tr, nil
}

// ExpectationValue returns ⟨ψ|A|ψ⟩ = k†·(A·k).
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func (a Operator) ExpectationValue(k Ket) (complex128, error) {
	ak, err := a.ApplyKet(k)
	if err != nil {
		return 0, fmt.Errorf("Operator.ExpectationValue: %w", err)
	}

	return as[complex128](applyBraKet(k.Dagger(), ak))
}

func (a Operator) combine(b Operator, op string, kernel func(x, y *cmatrix.Dense) (*cmatrix.Dense, error)) (Operator, error) {
	da, err := requireDense(a, op)
	if err != nil {
		return Operator{}, err
	}
	db, err := requireDense(b, op)
	if err != nil {
		return Operator{}, err
	}
	d, err := kernel(da, db)
	if err != nil {
		return Operator{}, fmt.Errorf("Operator.%s: %w", op, err)
	}

	return Operator{d: d}, nil
}
