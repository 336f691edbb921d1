// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Kind is the closed set of operand categories consulted by every dispatch table.
type Kind int

const (
	// KindUnknown is anything that is neither a number nor an algebra value.
	KindUnknown Kind = iota
	// KindScalar is any Go integer, real or complex number.
	KindScalar
	// KindKet is a column vector.
	KindKet
	// KindBra is a row vector.
	KindBra
	// KindOperator is a matrix.
	KindOperator
)

var kindNames = [...]string{
	KindUnknown:  "Unknown",
	KindScalar:   "Scalar",
	KindKet:      "Ket",
	KindBra:      "Bra",
	KindOperator: "Operator",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Value is implemented by Ket, Bra and Operator.
type Value interface {
	fmt.Stringer

	// Kind returns the value's category.
	Kind() Kind

	// Matrix returns the underlying immutable dense data (nil for zero values).
	Matrix() *cmatrix.Dense
}

// KindOf classifies x for dispatch. Pointers to Ket/Bra/Operator are
// classified as their element kind; nil pointers are KindUnknown.
func KindOf(x any) Kind {
	switch v := x.(type) {
	case Ket, Bra, Operator:
		return v.(Value).Kind()
	case *Ket:
		if v != nil {
			return KindKet
		}
	case *Bra:
		if v != nil {
			return KindBra
		}
	case *Operator:
		if v != nil {
			return KindOperator
		}
	default:
		if _, ok := cmatrix.Coerce(x); ok {
			return KindScalar
		}
	}

	return KindUnknown
}

// operand normalizes pointer operands to values so table entries can
// type-assert on the value types only.
func operand(x any) any {
	switch v := x.(type) {
	case *Ket:
		if v != nil {
			return *v
		}
	case *Bra:
		if v != nil {
			return *v
		}
	case *Operator:
		if v != nil {
			return *v
		}
	}

	return x
}
