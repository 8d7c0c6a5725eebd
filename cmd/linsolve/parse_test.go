// SPDX-License-Identifier: MIT
// Tests for matrix literal parsing, residuals and the linsolve command flow.

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix(" 2, 1 ; 1,3 ")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 1}, {1, 3}}, m.RawRows())

	col, err := parseMatrix("3;5")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3}, {5}}, col.RawRows())

	_, err = parseMatrix("   ")
	require.ErrorIs(t, err, errEmptyLiteral)

	_, err = parseMatrix("1,x")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = parseMatrix("1,2;3")
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestResidual(t *testing.T) {
	a, _ := parseMatrix("2,1;1,3")
	b, _ := parseMatrix("3;5")
	x, _ := parseMatrix("1;1")

	r, err := residual(a, x, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r) // A·[1,1] = [3,4]
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-a", "2,1;1,3", "-b", "3;5", "-log-level", "error"}, &out))
	assert.Equal(t, "   0.8000 \n   1.4000 \n", out.String())
}

func TestRun_Random(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-random", "6", "-log-level", "error"}, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[6], "residual: "))
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-a", "0,0;0,1", "-b", "0;1", "-log-level", "error"}, &out)
	require.ErrorIs(t, err, matrix.ErrSingular)

	err = run([]string{"-a", "1,1;1,1.0000001", "-b", "1;2", "-tol", "1e-3", "-log-level", "error"}, &out)
	require.ErrorIs(t, err, matrix.ErrSingular)

	err = run([]string{"-a", "1,2;3,4", "-b", "1;2;3", "-log-level", "error"}, &out)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Error(t, run([]string{"-log-level", "error"}, &out))
	assert.Empty(t, out.String())
}

func TestRun_RejectsBadTolerance(t *testing.T) {
	for _, tol := range []string{"-1", "NaN", "Inf", "-Inf"} {
		var out bytes.Buffer
		var err error
		require.NotPanics(t, func() {
			err = run([]string{"-a", "2,1;1,3", "-b", "3;5", "-tol", tol, "-log-level", "error"}, &out)
		}, "-tol %s", tol)
		require.ErrorIs(t, err, errBadTolerance, "-tol %s", tol)
		assert.Empty(t, out.String())
	}
}
