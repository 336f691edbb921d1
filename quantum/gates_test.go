// SPDX-License-Identifier: MIT
package quantum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/quantum"
)

func TestGates_HermitianAndUnitary(t *testing.T) {
	for name, g := range map[string]quantum.Operator{
		"X": quantum.PauliX(),
		"Y": quantum.PauliY(),
		"Z": quantum.PauliZ(),
		"H": quantum.Hadamard(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, g.IsHermitian())
			assert.True(t, g.IsUnitary())
			tr, err := g.Trace()
			require.NoError(t, err)
			assert.InDelta(t, 0.0, real(tr), 1e-12)
		})
	}
}

func TestGates_PauliXFlips(t *testing.T) {
	k, _ := quantum.KetFromRows([][]int{{1}, {0}})
	out, err := quantum.PauliX().ApplyKet(k)
	require.NoError(t, err)
	assert.True(t, out.Equal(quantum.MustKet(0, 1)))
}

func TestGates_HadamardSquaresToIdentity(t *testing.T) {
	h := quantum.Hadamard()
	hh, err := h.Compose(h)
	require.NoError(t, err)
	assert.True(t, hh.EqualApprox(mustIdentity(t, 2)))
}

func TestBasis(t *testing.T) {
	k, err := quantum.Basis(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 1, 0}, k.Amplitudes())

	_, err = quantum.Basis(2, 2)
	require.ErrorIs(t, err, quantum.ErrOutOfRange)
	_, err = quantum.Basis(2, -1)
	require.ErrorIs(t, err, quantum.ErrOutOfRange)
	_, err = quantum.Basis(0, 0)
	require.ErrorIs(t, err, quantum.ErrEmpty)
}
