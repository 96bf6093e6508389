package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geospan/matrix"
)

// denseOf builds a Dense from literal rows and fails the test on error.
func denseOf(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// unitSquare returns the distance table of the corners (0,0), (1,0), (1,1), (0,1):
// sides weigh 1 and diagonals √2.
func unitSquare(t testing.TB) *matrix.Dense {
	d := math.Sqrt2

	return denseOf(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
}

// randomMetric returns the Euclidean table of n random points in the unit square.
func randomMetric(t testing.TB, n int, r *rand.Rand) *matrix.Dense {
	t.Helper()
	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = r.Float64(), r.Float64()
	}
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
		}
	}

	return m
}

// randomWeights returns a symmetric table with small integer weights, so that
// ties are frequent.
func randomWeights(t testing.TB, n int, r *rand.Rand) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, float64(1+r.Intn(5))))
		}
	}

	return m
}
