// Package prim_kruskal computes Minimum Spanning Trees over dense distance
// tables: Prim's algorithm (the production path) and Kruskal's algorithm
// (an independent reference used for verification).
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted, undirected graph G = (V, E), an MST is a
//     subset T ⊆ E that spans V with minimum total weight and no cycles.
//
//   - Why matrices?
//     The input here is a complete graph whose weights are already
//     materialized as an N×N matrix.Matrix. With E = N(N−1)/2, the dense
//     O(N²) variant of Prim beats any heap-based version, and edge weights
//     are O(1) lookups.
//
// Algorithms Provided
//
//   - Prim(dist matrix.Matrix, start int) ([]Edge, float64, error)
//
//   - Strategy: keep, for every vertex outside the tree, the cheapest known
//     connection and the tree vertex offering it. N times: pick the outside
//     vertex with the smallest connection (linear scan, lowest index wins
//     ties), add it, then relax every remaining vertex through it.
//
//   - Complexity: O(N²) time, O(N) auxiliary space.
//
//   - Determinism: the left-to-right scan makes the returned tree identical
//     for identical input and start vertex.
//
//   - Kruskal(dist matrix.Matrix) ([]Edge, float64, error)
//
//   - Strategy: stable-sort the upper-triangle edges by weight and add each
//     one whose endpoints sit in different DisjointSet components.
//
//   - Complexity: O(N² log N) time, O(N²) space for the edge list.
//
// Output
//
//	A tree is a []Edge{Child, Parent, Weight}, one edge per non-root vertex,
//	ordered by ascending Child. The start vertex is the implicit root and
//	never appears as a Child.
//
// Error Conditions
//
//   - ErrInvalidMatrix   — nil or non-square input (wraps the matrix sentinel).
//   - ErrStartOutOfRange — Prim's start ∉ [0, N); rejected, never clamped.
//   - ErrDisconnected    — +Inf cells leave some vertex unreachable.
//   - ErrInvalidTree     — Verify found a structural or weight violation.
//   - ErrUnknownMethod   — Compute got an unknown method name.
//
// N = 0 is not an error: both algorithms return an empty tree of weight 0.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
