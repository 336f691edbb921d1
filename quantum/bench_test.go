// SPDX-License-Identifier: MIT
package quantum_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/quantum"
)

var (
	sinkK quantum.Ket
	sinkO quantum.Operator
	sinkB bool
)

func benchOperator(tb testing.TB, n int) quantum.Operator {
	tb.Helper()
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, n)
		for j := range rows[i] {
			rows[i][j] = complex(float64(i+j), float64(i-j))
		}
	}
	op, err := quantum.NewOperator(rows)
	require.NoError(tb, err)

	return op
}

func BenchmarkApplyKet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchOperator(b, n)
			k, err := quantum.Basis(n, 0)
			require.NoError(b, err)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := a.ApplyKet(k)
				if err != nil {
					b.Fatal(err)
				}
				sinkK = out
			}
		})
	}
}

func BenchmarkCommutator(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchOperator(b, n)
			c := a.Dagger()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := quantum.Commutator(a, c)
				if err != nil {
					b.Fatal(err)
				}
				sinkO = out
			}
		})
	}
}

func BenchmarkIsUnitary(b *testing.B) {
	b.ReportAllocs()
	h := quantum.Hadamard()
	for i := 0; i < b.N; i++ {
		sinkB = h.IsUnitary()
	}
}
