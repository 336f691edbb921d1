// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"math"
)

// PauliX returns σx = [[0, 1], [1, 0]].
func PauliX() Operator {
	return MustOperator([][]complex128{{0, 1}, {1, 0}})
}

// PauliY returns σy = [[0, −i], [i, 0]].
func PauliY() Operator {
	return MustOperator([][]complex128{{0, -1i}, {1i, 0}})
}

// PauliZ returns σz = [[1, 0], [0, −1]].
func PauliZ() Operator {
	return MustOperator([][]complex128{{1, 0}, {0, -1}})
}

// Hadamard returns H = 1/√2·[[1, 1], [1, −1]]. H·H† equals the identity only
// within tolerance.
func Hadamard() Operator {
	h := complex(1/math.Sqrt2, 0)

	return MustOperator([][]complex128{{h, h}, {h, -h}})
}

// Basis returns the computational basis Ket |i⟩ of dimension n.
//
// Errors:
//   - ErrEmpty when n <= 0; ErrOutOfRange when i is outside [0, n).
func Basis(n, i int) (Ket, error) {
	if n <= 0 {
		return Ket{}, fmt.Errorf("Basis(%d, %d): %w", n, i, ErrEmpty)
	}
	if i < 0 || i >= n {
		return Ket{}, fmt.Errorf("Basis(%d, %d): %w", n, i, ErrOutOfRange)
	}
	amps := make([]complex128, n)
	amps[i] = 1

	return NewKet(amps...)
}
