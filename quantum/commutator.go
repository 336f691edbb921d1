// SPDX-License-Identifier: MIT

package quantum

import "fmt"

// Commute reports whether A·B and B·A agree within tolerance.
// Any failure (empty or non-conformable operands) reports false.
//
// Complexity: two matrix products, O(n³) for n×n operands.
func Commute(a, b Operator, opts ...Option) bool {
	ab, err := a.Compose(b)
	if err != nil {
		return false
	}
	ba, err := b.Compose(a)
	if err != nil {
		return false
	}

	return ab.EqualApprox(ba, opts...)
}

// Commutator returns [A, B] = A·B − B·A.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func Commutator(a, b Operator) (Operator, error) {
	return bracket(a, b, "Commutator", Operator.Sub)
}

// AntiCommutator returns {A, B} = A·B + B·A.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch.
func AntiCommutator(a, b Operator) (Operator, error) {
	return bracket(a, b, "AntiCommutator", Operator.Add)
}

func bracket(a, b Operator, op string, combine func(x, y Operator) (Operator, error)) (Operator, error) {
	ab, err := a.Compose(b)
	if err != nil {
		return Operator{}, fmt.Errorf("%s: %w", op, err)
	}
	ba, err := b.Compose(a)
	if err != nil {
		return Operator{}, fmt.Errorf("%s: %w", op, err)
	}
	out, err := combine(ab, ba)
	if err != nil {
		return Operator{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
