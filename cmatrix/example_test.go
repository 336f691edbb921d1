// SPDX-License-Identifier: MIT
package cmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// ExampleConjTranspose shows the adjoint of a small complex matrix.
func ExampleConjTranspose() {
	a, _ := cmatrix.FromRows([][]complex128{{1, 2i}, {3, 4}})
	h, _ := cmatrix.ConjTranspose(a)
	fmt.Println(h)
	// Output:
	// [[(1-0i) (3-0i)]
	//  [(0-2i) (4-0i)]]
}

// ExampleMul applies Pauli-X to the column |0⟩.
func ExampleMul() {
	x, _ := cmatrix.FromRowsOf([][]int{{0, 1}, {1, 0}})
	k, _ := cmatrix.FromRowsOf([][]int{{1}, {0}})
	xk, _ := cmatrix.Mul(x, k)
	fmt.Println(xk.Flat())
	// Output:
	// [(0+0i) (1+0i)]
}
