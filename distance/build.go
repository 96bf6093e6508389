package distance

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geospan/geo"
	"github.com/katalvlaran/geospan/matrix"
)

// Build returns the N×N distance table for points under metric.
// Cell (i, j) equals metric.Distance(points[i], points[j]); the diagonal is 0
// and the table is symmetric by construction.
//
// Steps:
//  1. Validate metric; allocate the result (0×0 for no points).
//  2. Allocate upper[i] with len N−i−1 for every row i.
//  3. Submit one task per row to the pool; task i fills only upper[i].
//  4. Wait for every task (barrier), then release a private pool.
//  5. Fold upper[i][k] into (i, i+k+1) and (i+k+1, i).
//
// Complexity: O(N²) metric calls, O(N²) memory.
func Build(points []geo.City, metric geo.Metric, opts ...Option) (*matrix.Dense, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	o := gatherOptions(opts...)
	n := len(points)

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	// 0 or 1 point: nothing off the diagonal to compute.
	if n < 2 {
		return dist, nil
	}

	start := time.Now()
	upper, workers, err := computeRows(points, metric, o)
	if err != nil {
		return nil, err
	}

	var i, k int
	for i = 0; i < n; i++ {
		for k = range upper[i] {
			if err = dist.SetSymmetric(i, i+k+1, upper[i][k]); err != nil {
				return nil, err
			}
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"points":  n,
		"workers": workers,
		"elapsed": time.Since(start),
	}).Debug("distance matrix built")

	return dist, nil
}

// rowTask carries the per-row owned output of one pool task.
type rowTask struct {
	row  int
	vals []float64 // upper-triangle cells (row, row+1 .. n-1)
	err  error
}

// run fills t.vals. It touches nothing but t.
func (t *rowTask) run(points []geo.City, metric geo.Metric) {
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("row %d: metric panicked: %v: %w", t.row, r, ErrInvalidDistance)
		}
	}()

	a := points[t.row]
	for k := range t.vals {
		j := t.row + k + 1
		d := metric.Distance(a, points[j])
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			t.err = fmt.Errorf("pair (%d,%d) = %g: %w", t.row, j, d, ErrInvalidDistance)
			return
		}
		t.vals[k] = d
	}
}

// computeRows runs one task per row on the configured pool and waits for all
// of them. The returned slice is indexed by row; the last row is empty. The
// int is the capacity of the pool that ran the tasks.
func computeRows(points []geo.City, metric geo.Metric, o Options) ([][]float64, int, error) {
	n := len(points)

	pool := o.Pool
	if pool == nil {
		size := o.Workers
		if size > n {
			size = n
		}
		p, err := ants.NewPool(size)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrPool, err)
		}
		defer p.Release()
		pool = p
	}

	tasks := make([]rowTask, n)
	var wg sync.WaitGroup
	var submitErr error
	for i := 0; i < n; i++ {
		tasks[i] = rowTask{row: i, vals: make([]float64, n-i-1)}
		if len(tasks[i].vals) == 0 {
			continue
		}
		t := &tasks[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			t.run(points, metric)
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("%w: submit row %d: %w", ErrPool, i, err)
			break
		}
	}
	wg.Wait()

	if submitErr != nil {
		return nil, 0, submitErr
	}
	upper := make([][]float64, n)
	for i := range tasks {
		if tasks[i].err != nil {
			return nil, 0, tasks[i].err
		}
		upper[i] = tasks[i].vals
	}

	return upper, pool.Cap(), nil
}
