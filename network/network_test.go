package network_test

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geospan/distance"
	"github.com/katalvlaran/geospan/geo"
	"github.com/katalvlaran/geospan/matrix"
	"github.com/katalvlaran/geospan/network"
	"github.com/katalvlaran/geospan/prim_kruskal"
)

// squareCities are the corners of a unit square under geo.Euclidean.
var squareCities = []geo.City{
	{ID: 0, Lat: 0, Lon: 0},
	{ID: 1, Lat: 0, Lon: 1},
	{ID: 2, Lat: 1, Lon: 1},
	{ID: 3, Lat: 1, Lon: 0},
}

func randomCities(n int, r *rand.Rand) []geo.City {
	out := make([]geo.City, n)
	for i := range out {
		out[i] = geo.City{ID: i, Lat: r.Float64()*120 - 60, Lon: r.Float64()*360 - 180}
	}

	return out
}

func TestSolve_Empty(t *testing.T) {
	res, err := network.Solve(nil, geo.NewHaversine(), 0)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Total)
	assert.Equal(t, 0, res.Dist.Rows())
}

func TestSolve_SinglePoint(t *testing.T) {
	res, err := network.Solve([]geo.City{{ID: 0, Name: "Hel"}}, geo.NewHaversine(), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, res.Dist.ToRows())
	assert.Empty(t, res.Edges)
}

func TestSolve_TwoPoints(t *testing.T) {
	five := geo.MetricFunc(func(a, b geo.City) float64 { return 5 })
	res, err := network.Solve([]geo.City{{ID: 0}, {ID: 1}}, five, 0)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 5}, {5, 0}}, res.Dist.ToRows())
	assert.Equal(t, []prim_kruskal.Edge{{Child: 1, Parent: 0, Weight: 5}}, res.Edges)
	assert.Equal(t, 5.0, res.Total)
}

func TestSolve_UnitSquare(t *testing.T) {
	res, err := network.Solve(squareCities, geo.Euclidean{}, 0, distance.WithWorkers(2))
	require.NoError(t, err)

	assert.InDelta(t, 3.0, res.Total, 1e-12)
	for _, e := range res.Edges {
		assert.InDelta(t, 1.0, e.Weight, 1e-12, "diagonal edge %v", e)
	}
	assert.NoError(t, res.Check())
}

// TestSolve_RootInvariance: every start vertex yields the same optimal total.
func TestSolve_RootInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pts := randomCities(12, r)

	ref, err := network.Solve(pts, geo.NewHaversine(), 0)
	require.NoError(t, err)
	for start := 1; start < len(pts); start++ {
		res, err := network.Solve(pts, geo.NewHaversine(), start)
		require.NoError(t, err)
		assert.True(t, prim_kruskal.SameWeight(ref.Total, res.Total), "start=%d", start)
		assert.NoError(t, res.Check())
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := network.Solve(squareCities, geo.Euclidean{}, 4)
	assert.ErrorIs(t, err, prim_kruskal.ErrStartOutOfRange)

	_, err = network.Solve(squareCities, nil, 0)
	assert.ErrorIs(t, err, distance.ErrNilMetric)
}

func TestSolve_LogsSummary(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := network.Solve(squareCities, geo.Euclidean{}, 0, distance.WithLogger(logger))
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "network solved", last.Message)
	assert.Equal(t, 4, last.Data["points"])
}

// TestResult_RoundTrip encodes, decodes and re-checks a solved network.
func TestResult_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	res, err := network.Solve(randomCities(9, r), geo.NewHaversine(), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, network.EncodeResult(&buf, res))
	back, err := network.DecodeResult(&buf)
	require.NoError(t, err)

	assert.Equal(t, res.Start, back.Start)
	assert.Equal(t, res.Edges, back.Edges)
	assert.Equal(t, res.Total, back.Total)
	assert.Equal(t, res.Dist.ToRows(), back.Dist.ToRows())
	assert.NoError(t, back.Check())
}

func TestResult_CheckRejects(t *testing.T) {
	res, err := network.Solve(squareCities, geo.Euclidean{}, 0)
	require.NoError(t, err)

	t.Run("heavier tree", func(t *testing.T) {
		bad := *res
		bad.Edges = []prim_kruskal.Edge{
			{Child: 1, Parent: 0, Weight: 1},
			{Child: 2, Parent: 0, Weight: math.Sqrt2},
			{Child: 3, Parent: 0, Weight: 1},
		}
		bad.Total = 2 + math.Sqrt2
		assert.ErrorIs(t, bad.Check(), network.ErrNotMinimal)
	})

	t.Run("wrong total", func(t *testing.T) {
		bad := *res
		bad.Total = 2
		assert.ErrorIs(t, bad.Check(), prim_kruskal.ErrInvalidTree)
	})

	t.Run("missing edge", func(t *testing.T) {
		bad := *res
		bad.Edges = res.Edges[:2]
		assert.ErrorIs(t, bad.Check(), prim_kruskal.ErrInvalidTree)
	})

	t.Run("no matrix", func(t *testing.T) {
		assert.ErrorIs(t, (&network.Result{}).Check(), matrix.ErrNilMatrix)
	})

	tables := []struct {
		name  string
		rows  [][]float64
		edges []prim_kruskal.Edge
		total float64
		want  error
	}{
		{"negative cell", [][]float64{{0, -1}, {-1, 0}}, []prim_kruskal.Edge{{Child: 1, Parent: 0, Weight: -1}}, -1, matrix.ErrNegative},
		{"non-zero diagonal", [][]float64{{1, 5}, {5, 1}}, []prim_kruskal.Edge{{Child: 1, Parent: 0, Weight: 5}}, 5, matrix.ErrNonZeroDiagonal},
		{"infinite cell", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, []prim_kruskal.Edge{{Child: 1, Parent: 0, Weight: math.Inf(1)}}, math.Inf(1), matrix.ErrNaNInf},
		{"asymmetric", [][]float64{{0, 5}, {4, 0}}, []prim_kruskal.Edge{{Child: 1, Parent: 0, Weight: 4}}, 4, matrix.ErrAsymmetry},
	}
	for _, tc := range tables {
		t.Run(tc.name, func(t *testing.T) {
			dist, err := matrix.NewDenseFromRows(tc.rows)
			require.NoError(t, err)
			bad := network.Result{Start: 0, Edges: tc.edges, Total: tc.total, Dist: dist}
			assert.ErrorIs(t, bad.Check(), tc.want)
		})
	}
}

func TestDecodeResult_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"not json", "{", network.ErrDecode},
		{"null", "null", network.ErrDecode},
		{"empty object", "{}", network.ErrDecode},
		{"no matrix", `{"start":0,"total":0,"edges":[]}`, network.ErrDecode},
		{"fractional endpoint", `{"start":0,"total":1,"edges":[[1.5,0,1]],"matrix":[[0,1],[1,0]]}`, network.ErrDecode},
		{"ragged matrix", `{"start":0,"total":0,"edges":[],"matrix":[[0,1],[1]]}`, network.ErrSizeMismatch},
		{"rectangular matrix", `{"start":0,"total":0,"edges":[],"matrix":[[0,1,2],[1,0,2]]}`, network.ErrSizeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.DecodeResult(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeCities(t *testing.T) {
	in := `[{"id":0,"name":"Helsinki","lat":60.1699,"lon":24.9384},{"id":1,"name":"Tallinn","lat":59.437,"lon":24.7536}]`
	cities, err := network.DecodeCities(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Tallinn", cities[1].Name)
	assert.Equal(t, 60.1699, cities[0].Lat)

	_, err = network.DecodeCities(strings.NewReader(`{"id":0}`))
	assert.ErrorIs(t, err, network.ErrDecode)
}
