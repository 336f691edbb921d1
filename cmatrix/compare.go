// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Equal reports whether a and b have the same shape and bit-for-bit equal
// elements (no tolerance). Nil operands are never equal.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return mat.CEqual(a.m, b.m)
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes,
// with rtol/atol taken from the options (DefaultRelTol, DefaultAbsTol).
// Shape mismatch or nil operands yield false. NaN is never close to anything.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b *Dense, opts ...Option) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	o := gatherOptions(opts...)

	return cmplxs.EqualFunc(a.raw(), b.raw(), func(x, y complex128) bool {
		if x == y {
			return true // covers matching infinities
		}
		return cmplx.Abs(x-y) <= o.atol+o.rtol*cmplx.Abs(y)
	})
}

// IsZero reports whether every element is exactly zero.
func IsZero(m *Dense) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	for _, v := range m.raw() {
		if v != 0 {
			return false
		}
	}

	return true
}
