// SPDX-License-Identifier: MIT
package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/internal/codec"
)

func TestParseJSON_Shapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want [][]complex128
	}{
		{"flat row", `[1, 0]`, [][]complex128{{1, 0}}},
		{"column", `[[1], [0]]`, [][]complex128{{1}, {0}}},
		{"matrix", `[[0, 1], [1, 0]]`, [][]complex128{{0, 1}, {1, 0}}},
		{"strings", `[["1+2i", "-0.5i"], ["(3-1i)", "2j"]]`, [][]complex128{{1 + 2i, -0.5i}, {3 - 1i, 2i}}},
		{"pairs", `[[[0, 1], 0], [0, [0, -1]]]`, [][]complex128{{1i, 0}, {0, -1i}}},
		{"whitespace", " [ [ 1 ] ] ", [][]complex128{{1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.ParseJSON([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseJSON_Errors(t *testing.T) {
	for in, want := range map[string]error{
		`{}`:          codec.ErrSyntax,
		`1`:           codec.ErrSyntax,
		`[]`:          codec.ErrEmpty,
		`[[]]`:        codec.ErrEmpty,
		`[true]`:      codec.ErrScalar,
		`["abc"]`:     codec.ErrScalar,
		`[[[1]]]`:     codec.ErrScalar,
		`[[1], 2]`:    codec.ErrSyntax,
		`[[1, null]]`: codec.ErrScalar,
	} {
		_, err := codec.ParseJSON([]byte(in))
		require.ErrorIs(t, err, want, in)
	}
}

func TestFormatJSON_RoundTrip(t *testing.T) {
	rows := [][]complex128{{1, -1i}, {0.25 + 3i, -2}}
	b, err := codec.FormatJSON(rows)
	require.NoError(t, err)
	assert.Equal(t, `[["(1+0i)","(0-1i)"],["(0.25+3i)","(-2+0i)"]]`, string(b))

	back, err := codec.ParseJSON(b)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestParseScalar(t *testing.T) {
	for in, want := range map[string]complex128{
		"2":      2,
		" -0.5 ": -0.5,
		"1+2i":   1 + 2i,
		"1 - 1j": 1 - 1i,
		"(0+1i)": 1i,
	} {
		got, err := codec.ParseScalar(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := codec.ParseScalar("two")
	require.ErrorIs(t, err, codec.ErrScalar)
	assert.Equal(t, "(1-2i)", codec.FormatScalar(1-2i))
}
