// SPDX-License-Identifier: MIT
package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

func TestValidators(t *testing.T) {
	sq := mustRows(t, [][]complex128{{1, 2}, {3, 4}})
	row := mustRows(t, [][]complex128{{1, 2}})
	col := mustRows(t, [][]complex128{{1}, {2}})

	require.ErrorIs(t, cmatrix.ValidateNotNil(nil), cmatrix.ErrNilMatrix)
	require.ErrorIs(t, cmatrix.ValidateNotNil(&cmatrix.Dense{}), cmatrix.ErrNilMatrix)
	require.NoError(t, cmatrix.ValidateNotNil(sq))

	require.NoError(t, cmatrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, cmatrix.ValidateSameShape(row, col), cmatrix.ErrDimensionMismatch)
	require.ErrorIs(t, cmatrix.ValidateSameShape(row, nil), cmatrix.ErrNilMatrix)

	require.NoError(t, cmatrix.ValidateMulShape(row, col))
	require.ErrorIs(t, cmatrix.ValidateMulShape(col, sq), cmatrix.ErrDimensionMismatch)

	require.NoError(t, cmatrix.ValidateSquare(sq))
	require.ErrorIs(t, cmatrix.ValidateSquare(row), cmatrix.ErrNonSquare)

	require.NoError(t, cmatrix.ValidateVector(row))
	require.NoError(t, cmatrix.ValidateVector(col))
	require.ErrorIs(t, cmatrix.ValidateVector(sq), cmatrix.ErrBadShape)
}
