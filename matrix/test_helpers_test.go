// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and the solver.
//   • Keep randomness seeded so every failure is reproducible.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by approximate checks.
const (
	solveTol = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from rows or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustRandom returns a seeded rows×cols random matrix.
func MustRandom(t *testing.T, rows, cols int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(rows, cols, matrix.WithRandSource(newRand(seed)))
	require.NoError(t, err)

	return m
}

// newRand returns a PCG generator derived from seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// CompareExact asserts m equals want cell by cell with ==.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts m approximates want within tol per cell.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

// RequireEqual asserts matrix.Equal(a, b) succeeds and reports true.
func RequireEqual(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq, "matrices differ:\n%v\nvs\n%v", a, b)
}

// column turns values into an n×1 *Dense.
func column(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(vals))
	for i, v := range vals {
		rows[i] = []float64{v}
	}

	return MustFrom(t, rows)
}
