package network

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geospan/distance"
	"github.com/katalvlaran/geospan/geo"
	"github.com/katalvlaran/geospan/matrix"
	"github.com/katalvlaran/geospan/prim_kruskal"
)

// distTol bounds diagonal and symmetry deviations accepted by Check.
const distTol = 1e-9

// ErrNotMinimal indicates that a tree is structurally valid but heavier than
// the reference minimum.
var ErrNotMinimal = errors.New("network: spanning tree is not minimal")

// Result is the outcome of Solve.
type Result struct {
	Start int                 // root of the tree
	Edges []prim_kruskal.Edge // one edge per non-root point, ascending Child
	Total float64             // sum of edge weights
	Dist  *matrix.Dense       // full distance table, reused for weight reporting
}

// Solve builds the distance table for points under metric and returns its
// minimum spanning tree rooted at start.
//
// Errors come from distance.Build (metric/pool failures) and
// prim_kruskal.Prim (ErrStartOutOfRange). N = 0 yields an empty result.
func Solve(points []geo.City, metric geo.Metric, start int, opts ...distance.Option) (*Result, error) {
	log := loggerFrom(opts)

	began := time.Now()
	dist, err := distance.Build(points, metric, opts...)
	if err != nil {
		return nil, fmt.Errorf("build distance matrix: %w", err)
	}
	built := time.Now()

	edges, total, err := prim_kruskal.Prim(dist, start)
	if err != nil {
		return nil, fmt.Errorf("spanning tree: %w", err)
	}

	log.WithFields(logrus.Fields{
		"points": len(points),
		"start":  start,
		"total":  total,
		"matrix": built.Sub(began),
		"tree":   time.Since(built),
	}).Info("network solved")

	return &Result{Start: start, Edges: edges, Total: total, Dist: dist}, nil
}

// Check verifies r independently: r.Dist must be a finite, non-negative,
// symmetric table with a zero diagonal, the edges must form a spanning tree
// of it rooted at r.Start, r.Total must match the edge weights and the total
// must equal the Kruskal minimum.
func (r *Result) Check() error {
	if err := matrix.ValidateDistances(r.Dist, distTol, false); err != nil {
		return fmt.Errorf("distance table: %w", err)
	}
	if err := prim_kruskal.Verify(r.Dist, r.Edges, r.Start); err != nil {
		return err
	}
	sum, err := prim_kruskal.TotalWeight(r.Dist, r.Edges)
	if err != nil {
		return err
	}
	if !prim_kruskal.SameWeight(sum, r.Total) {
		return fmt.Errorf("recorded total %g, edges sum to %g: %w", r.Total, sum, prim_kruskal.ErrInvalidTree)
	}
	_, best, err := prim_kruskal.Kruskal(r.Dist)
	if err != nil {
		return err
	}
	if !prim_kruskal.SameWeight(sum, best) {
		return fmt.Errorf("total %g, minimum %g: %w", sum, best, ErrNotMinimal)
	}

	return nil
}

// loggerFrom extracts the logger configured through distance.WithLogger.
func loggerFrom(opts []distance.Option) logrus.FieldLogger {
	o := distance.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		return distance.DefaultOptions().Logger
	}

	return o.Logger
}
