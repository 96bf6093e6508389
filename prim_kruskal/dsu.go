package prim_kruskal

// DisjointSet is a union-find over the integers [0, n) with path halving and
// union by rank. The zero value is empty; use NewDisjointSet.
type DisjointSet struct {
	parent     []int
	rank       []int
	components int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		// path halving: point x at its grandparent
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	ds.components--

	return true
}

// Connected reports whether x and y share a set.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Components returns the current number of disjoint sets.
func (ds *DisjointSet) Components() int { return ds.components }
