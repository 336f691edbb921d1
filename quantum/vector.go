// SPDX-License-Identifier: MIT

// Package quantum - shared Ket/Bra scaffolding.
//
// Ket and Bra differ only in orientation (n×1 vs 1×n) and in which category
// their duality maps to. Everything else (construction, add/sub, equality,
// scalar kernels) is written once here, parameterized over the vector type.

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Number is the set of Go numeric types accepted as amplitudes.
type Number = cmatrix.Number

// vector is the type set of the two vector categories.
type vector interface {
	Ket | Bra
	Value
}

// wrap builds a V around d (no copy; d must be freshly allocated or immutable).
func wrap[V Ket | Bra](d *cmatrix.Dense) V {
	var v V
	switch p := any(&v).(type) {
	case *Ket:
		p.d = d
	case *Bra:
		p.d = d
	}

	return v
}

// orientation returns the canonical (rows, cols) for n amplitudes of V.
func orientation[V Ket | Bra](n int) (int, int) {
	var v V
	if _, ok := any(v).(Ket); ok {
		return n, 1
	}

	return 1, n
}

// kindName returns "Ket" or "Bra" for error contexts.
func kindName[V Ket | Bra]() string {
	var v V
	if _, ok := any(v).(Ket); ok {
		return KindKet.String()
	}

	return KindBra.String()
}

// newVector copies flat amplitudes into a V of canonical orientation.
func newVector[V Ket | Bra, T Number](flat []T, opts ...Option) (V, error) {
	var zero V
	if len(flat) == 0 {
		return zero, fmt.Errorf("New%s: %w", kindName[V](), ErrEmpty)
	}
	o := gatherOptions(opts...)
	r, c := orientation[V](len(flat))
	d, err := cmatrix.FromFlatOf(r, c, flat, o.ingestion())
	if err != nil {
		return zero, fmt.Errorf("New%s: %w", kindName[V](), err)
	}

	return wrap[V](d), nil
}

// vectorFromRows flattens nested rows (row-major) into a V.
// Rows must be rectangular; an input with no elements is ErrEmpty.
func vectorFromRows[V Ket | Bra, T Number](rows [][]T, opts ...Option) (V, error) {
	var zero V
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if total == 0 {
		return zero, fmt.Errorf("%sFromRows: %w", kindName[V](), ErrEmpty)
	}
	o := gatherOptions(opts...)
	d, err := cmatrix.FromRowsOf(rows, o.ingestion())
	if err != nil {
		return zero, fmt.Errorf("%sFromRows: %w", kindName[V](), err)
	}
	r, c := orientation[V](d.Len())
	if d, err = d.Reshape(r, c); err != nil {
		return zero, fmt.Errorf("%sFromRows: %w", kindName[V](), err)
	}

	return wrap[V](d), nil
}

// requireDense returns v's storage or ErrEmpty for zero values.
func requireDense(v Value, op string) (*cmatrix.Dense, error) {
	d := v.Matrix()
	if d == nil {
		return nil, fmt.Errorf("%s.%s: %w", v.Kind(), op, ErrEmpty)
	}

	return d, nil
}

// combineVectors applies an element-wise binary kernel to two vectors of the same category.
func combineVectors[V vector](a, b V, op string, kernel func(x, y *cmatrix.Dense) (*cmatrix.Dense, error)) (V, error) {
	var zero V
	da, err := requireDense(a, op)
	if err != nil {
		return zero, err
	}
	db, err := requireDense(b, op)
	if err != nil {
		return zero, err
	}
	d, err := kernel(da, db)
	if err != nil {
		return zero, fmt.Errorf("%s.%s: %w", a.Kind(), op, err)
	}

	return wrap[V](d), nil
}

// equalVectors compares within tolerance; empty or mismatched shapes are unequal.
func equalVectors[V vector](a, b V, opts ...Option) bool {
	da, db := a.Matrix(), b.Matrix()
	if da == nil || db == nil {
		return false
	}

	return cmatrix.AllClose(da, db, gatherOptions(opts...).tolerance())
}

// dual reshapes v's data into the opposite orientation, conjugating when asked.
func dual[W Ket | Bra](d *cmatrix.Dense, conjugate bool) W {
	var zero W
	if d == nil {
		return zero
	}
	src := d
	if conjugate {
		src, _ = cmatrix.Conj(d) // d is non-nil: cannot fail
	}
	r, c := orientation[W](src.Len())
	out, err := src.Reshape(r, c)
	if err != nil {
		return zero
	}

	return wrap[W](out)
}

// amplitudes returns a copy of the flat data (nil for zero values).
func amplitudes(d *cmatrix.Dense) []complex128 {
	if d == nil {
		return nil
	}

	return d.Flat()
}

// vectorString renders a vector for debugging.
func vectorString(kind Kind, d *cmatrix.Dense) string {
	if d == nil {
		return kind.String() + "(empty)"
	}

	return d.String()
}
