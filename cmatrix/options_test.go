// SPDX-License-Identifier: MIT
package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := cmatrix.NewOptions()
	assert.Equal(t, cmatrix.DefaultRelTol, o.RelTol())
	assert.Equal(t, cmatrix.DefaultAbsTol, o.AbsTol())
	assert.Equal(t, cmatrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := cmatrix.NewOptions(cmatrix.WithNoValidateNaNInf(), cmatrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())

	o = cmatrix.NewOptions(cmatrix.WithValidateNaNInf(), cmatrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf())

	o = cmatrix.NewOptions(cmatrix.WithTolerance(1, 2), cmatrix.WithTolerance(0.1, 0.2))
	assert.Equal(t, 0.1, o.RelTol())
	assert.Equal(t, 0.2, o.AbsTol())

	o = cmatrix.NewOptions(nil)
	assert.Equal(t, cmatrix.DefaultRelTol, o.RelTol())
}

func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rtol, atol float64
	}{
		{"negative rtol", -1, 0},
		{"negative atol", 0, -1},
		{"NaN", math.NaN(), 0},
		{"Inf", 0, math.Inf(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { _ = cmatrix.WithTolerance(tc.rtol, tc.atol) })
		})
	}
}
