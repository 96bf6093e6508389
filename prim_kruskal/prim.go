package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geospan/matrix"
)

// Prim computes the Minimum Spanning Tree of the complete graph described by
// dist, growing it from start.
//
// Steps:
//  1. Validate: dist is square and symmetric; N == 0 → empty tree; start ∈ [0, N).
//  2. Initialize: cheapest[v] = +Inf (cheapest[start] = 0), parent[v] = −1.
//  3. Repeat N times:
//     a. Pick the vertex u outside the tree with the smallest cheapest[u];
//     the scan runs left to right and keeps the first minimum.
//     b. Add u to the tree.
//     c. For every w outside the tree: if dist[u][w] < cheapest[w], set
//     cheapest[w] = dist[u][w] and parent[w] = u.
//  4. Emit (w, parent[w]) for every w with a parent, in ascending w.
//
// Complexity: O(N²) time, O(N) memory besides the output.
func Prim(dist matrix.Matrix, start int) ([]Edge, float64, error) {
	// 1. Validate.
	if err := validateMatrix(dist); err != nil {
		return nil, 0, err
	}
	n := dist.Rows()
	if n == 0 {
		return []Edge{}, 0, nil
	}
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	// 2. Build state, private to this call.
	inTree := make([]bool, n)
	cheapest := make([]float64, n)
	parent := make([]int, n)
	for v := range cheapest {
		cheapest[v] = math.Inf(1)
		parent[v] = -1
	}
	cheapest[start] = 0

	// 3. Grow the tree one vertex at a time.
	var (
		u, v int
		minW float64
		w    float64
		err  error
	)
	for it := 0; it < n; it++ {
		// (a) argmin over vertices outside the tree
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && cheapest[v] < minW {
				minW, u = cheapest[v], v
			}
		}
		if u < 0 {
			return nil, 0, fmt.Errorf("%d of %d vertices reached: %w", it, n, ErrDisconnected)
		}

		// (b) add u
		inTree[u] = true

		// (c) relax through u
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w, err = dist.At(u, v); err != nil {
				return nil, 0, err
			}
			if w < cheapest[v] {
				cheapest[v] = w
				parent[v] = u
			}
		}
	}

	// 4. Collect edges in ascending child order.
	edges := make([]Edge, 0, n-1)
	var total float64
	for v = 0; v < n; v++ {
		if parent[v] < 0 {
			continue
		}
		if w, err = dist.At(v, parent[v]); err != nil {
			return nil, 0, err
		}
		edges = append(edges, Edge{Child: v, Parent: parent[v], Weight: w})
		total += w
	}

	return edges, total, nil
}
