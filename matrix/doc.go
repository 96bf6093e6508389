// Package matrix provides the dense storage and validation helpers behind
// pairwise distance tables.
//
// The package offers:
//
//   - Matrix, a small bounds-checked interface (Rows, Cols, At, Set, Clone)
//     that algorithms consume so they stay independent of the storage layout.
//   - Dense, a row-major implementation backed by one flat slice. A 0×0 Dense
//     is valid and represents the distance table of an empty point set.
//   - Validators for the invariants of a distance table: square shape, zero
//     diagonal, symmetry, finite non-negative entries.
//
// Dense is not synchronized. Concurrent writers must own disjoint cells and
// synchronize before readers observe the result; see package distance for the
// builder that does this with per-row buffers.
package matrix
