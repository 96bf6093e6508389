package prim_kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/geospan/matrix"
)

// Kruskal computes a Minimum Spanning Tree of the graph described by dist
// using a DisjointSet. It serves as an independent reference for Prim.
//
// Steps:
//  1. Validate: dist is square; N ≤ 1 → empty tree.
//  2. Collect every finite upper-triangle cell (i < j) as a candidate edge.
//  3. Stable-sort candidates by weight; ties keep row-major order.
//  4. Add each candidate whose endpoints are in different components, until
//     N−1 edges are chosen. Fewer than N−1 → ErrDisconnected.
//  5. Orient each edge with the larger index as Child; sort by (Child, Parent).
//     Kruskal's tree is unrooted, so a Child may repeat.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Kruskal(dist matrix.Matrix) ([]Edge, float64, error) {
	// 1. Validate.
	if err := validateMatrix(dist); err != nil {
		return nil, 0, err
	}
	n := dist.Rows()
	if n <= 1 {
		return []Edge{}, 0, nil
	}

	// 2. Candidate edges.
	candidates := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, err := dist.At(i, j)
			if err != nil {
				return nil, 0, err
			}
			if math.IsInf(w, 1) || math.IsNaN(w) {
				continue
			}
			candidates = append(candidates, Edge{Child: j, Parent: i, Weight: w})
		}
	}

	// 3. Stable sort keeps (i, j) row-major order among equal weights.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Weight < candidates[b].Weight
	})

	// 4. Greedy union.
	ds := NewDisjointSet(n)
	mst := make([]Edge, 0, n-1)
	var total float64
	for _, e := range candidates {
		if !ds.Union(e.Child, e.Parent) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("%d components remain: %w", ds.Components(), ErrDisconnected)
	}

	// 5. Present edges the same way Prim does.
	sort.Slice(mst, func(a, b int) bool {
		if mst[a].Child != mst[b].Child {
			return mst[a].Child < mst[b].Child
		}
		return mst[a].Parent < mst[b].Parent
	})

	return mst, total, nil
}
