package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geospan/matrix"
)

// weightTol is the relative tolerance used when comparing recorded edge
// weights and tree totals against the matrix.
const weightTol = 1e-9

// closeEnough reports |a−b| ≤ weightTol·max(1, |a|, |b|).
func closeEnough(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= weightTol*scale
}

// TotalWeight sums dist[Child][Parent] over edges, ignoring the recorded
// Edge.Weight. Out-of-range indices return the matrix error.
// Complexity: O(len(edges)).
func TotalWeight(dist matrix.Matrix, edges []Edge) (float64, error) {
	if err := validateMatrix(dist); err != nil {
		return 0, err
	}
	var total float64
	for _, e := range edges {
		w, err := dist.At(e.Child, e.Parent)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

// Verify checks that edges form a spanning tree of dist rooted at start:
//
//   - exactly max(N−1, 0) edges;
//   - indices in range, no self-loops;
//   - every vertex except start is a Child exactly once, start never is;
//   - inserting the edges into a DisjointSet never joins two vertices that
//     are already connected (no cycles);
//   - each Edge.Weight matches dist[Child][Parent].
//
// Violations return ErrInvalidTree; an out-of-range start returns
// ErrStartOutOfRange.
//
// Complexity: O(N·α(N)).
func Verify(dist matrix.Matrix, edges []Edge, start int) error {
	if err := validateMatrix(dist); err != nil {
		return err
	}
	n := dist.Rows()
	if n == 0 {
		if len(edges) != 0 {
			return fmt.Errorf("%d edges for an empty matrix: %w", len(edges), ErrInvalidTree)
		}
		return nil
	}
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}
	if len(edges) != n-1 {
		return fmt.Errorf("got %d edges, want %d: %w", len(edges), n-1, ErrInvalidTree)
	}

	seen := make([]bool, n)
	ds := NewDisjointSet(n)
	for k, e := range edges {
		if e.Child < 0 || e.Child >= n || e.Parent < 0 || e.Parent >= n {
			return fmt.Errorf("edge %d %v out of range: %w", k, e, ErrInvalidTree)
		}
		if e.Child == e.Parent {
			return fmt.Errorf("edge %d %v is a loop: %w", k, e, ErrInvalidTree)
		}
		if e.Child == start {
			return fmt.Errorf("edge %d %v: root %d has a parent: %w", k, e, start, ErrInvalidTree)
		}
		if seen[e.Child] {
			return fmt.Errorf("edge %d %v: vertex %d attached twice: %w", k, e, e.Child, ErrInvalidTree)
		}
		seen[e.Child] = true

		w, err := dist.At(e.Child, e.Parent)
		if err != nil {
			return err
		}
		if !closeEnough(w, e.Weight) {
			return fmt.Errorf("edge %d %v: matrix weight %g: %w", k, e, w, ErrInvalidTree)
		}
		if !ds.Union(e.Child, e.Parent) {
			return fmt.Errorf("edge %d %v closes a cycle: %w", k, e, ErrInvalidTree)
		}
	}

	return nil
}

// SameWeight reports whether two tree totals agree within the verification
// tolerance.
func SameWeight(a, b float64) bool { return closeEnough(a, b) }
