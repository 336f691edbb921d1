// SPDX-License-Identifier: MIT
package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/internal/codec"
)

func TestRecord_MsgpackRoundTrip(t *testing.T) {
	rows := [][]complex128{{0, -1i}, {1i, 0}}
	rec, err := codec.NewRecord("Operator", rows)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Rows)
	assert.Equal(t, 2, rec.Cols)
	assert.Equal(t, []float64{0, 0, 0, 0}, rec.Re)
	assert.Equal(t, []float64{0, -1, 1, 0}, rec.Im)

	b, err := codec.MarshalMsgpack(rec)
	require.NoError(t, err)

	back, err := codec.UnmarshalMsgpack(b)
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	got, err := back.Matrix()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestRecord_Errors(t *testing.T) {
	_, err := codec.NewRecord("Ket", nil)
	require.ErrorIs(t, err, codec.ErrEmpty)

	_, err = codec.NewRecord("Operator", [][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, codec.ErrRecord)

	_, err = codec.Record{Rows: 2, Cols: 1, Re: []float64{1}, Im: []float64{0}}.Matrix()
	require.ErrorIs(t, err, codec.ErrRecord)

	bad, err := codec.MarshalMsgpack(codec.Record{Kind: "Ket", Rows: 3, Cols: 1, Re: []float64{1}, Im: []float64{1}})
	require.NoError(t, err)
	_, err = codec.UnmarshalMsgpack(bad)
	require.ErrorIs(t, err, codec.ErrRecord)

	_, err = codec.UnmarshalMsgpack([]byte{0xc1})
	require.ErrorIs(t, err, codec.ErrSyntax)
}
