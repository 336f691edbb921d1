// SPDX-License-Identifier: MIT
package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

type amplitude float64

func TestCoerce(t *testing.T) {
	cases := []struct {
		in   any
		want complex128
		ok   bool
	}{
		{in: 2, want: 2, ok: true},
		{in: int8(-3), want: -3, ok: true},
		{in: uint16(7), want: 7, ok: true},
		{in: float32(0.5), want: 0.5, ok: true},
		{in: 1.25, want: 1.25, ok: true},
		{in: complex64(1 + 2i), want: 1 + 2i, ok: true},
		{in: 3i, want: 3i, ok: true},
		{in: amplitude(0.25), want: 0.25, ok: true},
		{in: "1", ok: false},
		{in: nil, ok: false},
		{in: []int{1}, ok: false},
	}
	for _, tc := range cases {
		got, ok := cmatrix.Coerce(tc.in)
		assert.Equal(t, tc.ok, ok, "%#v", tc.in)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

func TestIsReal(t *testing.T) {
	v, ok := cmatrix.IsReal(2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = cmatrix.IsReal(amplitude(0.5))
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = cmatrix.IsReal(1i)
	assert.False(t, ok)
	_, ok = cmatrix.IsReal("2")
	assert.False(t, ok)
}
