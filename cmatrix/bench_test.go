// SPDX-License-Identifier: MIT
// Package cmatrix_test provides benchmarks for the complex kernels,
// using deterministic random fill.
package cmatrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *cmatrix.Dense
	sinkC complex128
	sinkB bool
)

// randDense fills an n×n matrix from a fixed seed.
func randDense(tb testing.TB, n int, seed int64) *cmatrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]complex128, n*n)
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	d, err := cmatrix.FromFlat(n, n, data)
	require.NoError(tb, err)

	return d
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 1337)
			y := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := cmatrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkConjTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := cmatrix.ConjTranspose(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 99)
			y := x.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = cmatrix.AllClose(x, y)
			}
		})
	}
}

func BenchmarkDotu(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 1)
			y := randDense(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := cmatrix.Dotu(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = s
			}
		})
	}
}
