// Package matrix_test contains unit tests for the Gaussian-elimination solver.
package matrix_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// TestSolve_TwoByTwo solves 2x+y=3, x+3y=5.
func TestSolve_TwoByTwo(t *testing.T) {
	a := MustFrom(t, [][]float64{{2, 1}, {1, 3}})
	b := column(t, 3, 5)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 1, x.Cols())
	CompareClose(t, [][]float64{{0.8}, {1.4}}, x, 1e-12)
}

// TestSolve_RequiresPivoting solves systems whose leading entry is zero or tiny.
func TestSolve_RequiresPivoting(t *testing.T) {
	x, err := matrix.Solve(MustFrom(t, [][]float64{{0, 1}, {1, 0}}), column(t, 2, 3))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3}, {2}}, x)

	x, err = matrix.Solve(MustFrom(t, [][]float64{{1e-20, 1}, {1, 1}}), column(t, 1, 2))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}, {1}}, x)
}

// TestSolve_Singular covers exact-zero pivots.
func TestSolve_Singular(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"zero row":      {{0, 0}, {0, 1}},
		"zero column":   {{0, 1}, {0, 2}},
		"dependent row": {{1, 2}, {2, 4}},
		"all zero":      {{0}},
	} {
		t.Run(name, func(t *testing.T) {
			a := MustFrom(t, rows)
			rhs := make([]float64, len(rows))
			rhs[len(rhs)-1] = 1
			_, err := matrix.Solve(a, column(t, rhs...))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestSolve_PivotTolerance checks the exact-zero default and the opt-in threshold.
func TestSolve_PivotTolerance(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 1}, {1, 1 + 1e-12}})
	b := column(t, 2, 2)

	_, err := matrix.Solve(a, b)
	require.NoError(t, err, "nearly singular systems pass the exact-zero test")

	_, err = matrix.Solve(a, b, matrix.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular)

	require.Panics(t, func() { matrix.WithPivotTolerance(-1) })
	require.Panics(t, func() { matrix.WithPivotTolerance(math.NaN()) })
}

// TestSolve_ShapeErrors covers every precondition.
func TestSolve_ShapeErrors(t *testing.T) {
	square := MustDense(t, 3, 3)
	for name, tc := range map[string]struct{ a, b matrix.Matrix }{
		"non-square A":   {MustDense(t, 2, 3), MustDense(t, 2, 1)},
		"rhs rows":       {square, MustDense(t, 2, 1)},
		"rhs cols":       {square, MustDense(t, 3, 2)},
		"rhs row vector": {square, MustDense(t, 1, 3)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Solve(tc.a, tc.b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}

	_, err := matrix.Solve(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolve_DoesNotMutate checks that A and b are untouched after pivoting swaps.
func TestSolve_DoesNotMutate(t *testing.T) {
	rows := [][]float64{{0, 2, 1}, {4, 1, 0}, {1, 0, 3}}
	a := MustFrom(t, rows)
	b := column(t, 1, 2, 3)

	_, err := matrix.Solve(a, b)
	require.NoError(t, err)
	CompareExact(t, rows, a)
	CompareExact(t, [][]float64{{1}, {2}, {3}}, b)
}

// TestSolve_ResidualRandom checks A·solve(A,b) ≈ b on seeded random systems.
func TestSolve_ResidualRandom(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := MustRandom(t, n, n, uint64(n))
			b := MustRandom(t, n, 1, uint64(n+1000))

			x, err := matrix.Solve(a, b)
			require.NoError(t, err)
			ax, err := matrix.Mul(a, x)
			require.NoError(t, err)

			ok, err := matrix.AllClose(ax, b, solveTol, solveTol)
			require.NoError(t, err)
			require.True(t, ok, "A·x:\n%v\nb:\n%v", ax, b)
		})
	}
}

// TestSolve_Deterministic checks bit-identical results and the hide fallback path.
func TestSolve_Deterministic(t *testing.T) {
	a := MustRandom(t, 6, 6, 42)
	b := MustRandom(t, 6, 1, 43)

	x1, err := matrix.Solve(a, b)
	require.NoError(t, err)
	x2, err := matrix.Solve(hide{a}, hide{b})
	require.NoError(t, err)
	RequireEqual(t, x1, x2)
}

// TestSolve_Concurrent runs Solve on shared inputs from many goroutines.
func TestSolve_Concurrent(t *testing.T) {
	a := MustRandom(t, 8, 8, 5)
	b := MustRandom(t, 8, 1, 6)
	want, err := matrix.Solve(a, b)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]*matrix.Dense, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = matrix.Solve(a, b)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		RequireEqual(t, want, results[w])
	}
}

// TestSolve_NaNPropagates checks that non-finite inputs are not rejected.
func TestSolve_NaNPropagates(t *testing.T) {
	x, err := matrix.Solve(MustFrom(t, [][]float64{{2, 0}, {0, 1}}), column(t, math.NaN(), 1))
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, x, 0, 0)))
	require.True(t, math.IsNaN(MustAt(t, x, 1, 0)), "0·NaN taints the eliminated row")
}

// TestSolve_PivotTieKeepsFirstRow pins the tie-break of partial pivoting:
// with |A[0][0]| == |A[1][0]| the upper row stays the pivot. The two choices
// agree mathematically but round differently, so the bits of x[0] reveal
// which row was used.
func TestSolve_PivotTieKeepsFirstRow(t *testing.T) {
	third := 1.0
	third /= 3

	// Pivot row 0: A11 = 2+1 = 3, x1 = 1/3, x0 = (0 - 1·x1)/1.
	x, err := matrix.Solve(
		MustFrom(t, [][]float64{{1, 1}, {-1, 2}}),
		MustFrom(t, [][]float64{{0}, {1}}),
	)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-third}, {third}}, x.RawRows())

	// Same system with the rows listed the other way round: row 0 is still
	// the pivot, so x0 = (1 - 2·x1)/(-1), which differs from -1/3 in the last bit.
	x, err = matrix.Solve(
		MustFrom(t, [][]float64{{-1, 2}, {1, 1}}),
		MustFrom(t, [][]float64{{1}, {0}}),
	)
	require.NoError(t, err)
	want0 := (1 - 2*third) / -1
	require.NotEqual(t, -third, want0)
	require.Equal(t, [][]float64{{want0}, {third}}, x.RawRows())
}
