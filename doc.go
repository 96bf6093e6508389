// Package geospan connects a set of geographic points with a minimum-cost
// spanning network.
//
// 🚀 What is geospan?
//
//	Given N cities, geospan derives every pairwise distance and picks the
//	N−1 links of minimum total length that connect them all:
//		• Pluggable metrics: great-circle (Haversine), planar, or your own
//		• Parallel distance tables on a fixed-size worker pool
//		• Dense O(N²) Prim for complete graphs, Kruskal as a reference
//		• Independent verification of any serialized tree
//
// Data flows strictly one way:
//
//	points ──► distance matrix ──► spanning tree
//	               └────────────────────┘ returned together
//
// Under the hood, everything is organized under small subpackages:
//
//	geo/          — City, Metric, Haversine, Euclidean
//	matrix/       — Matrix interface, Dense storage, distance-table validators
//	distance/     — row-partitioned parallel matrix builder (ants pool)
//	prim_kruskal/ — Prim, Kruskal, DisjointSet, Verify
//	network/      — Solve facade and the JSON result format
//	cmd/geospan/  — solve / verify command-line front end
//
// Quick ASCII example, four corners of a unit square:
//
//	    0───1
//	    │   │
//	    3   2
//
//	the tree keeps three unit sides (total 3) and never a √2 diagonal.
//
//	go get github.com/katalvlaran/geospan
package geospan
