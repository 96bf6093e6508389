// Package network wires the pipeline points → distance matrix → spanning tree
// and defines the serialized result handed to downstream verifiers.
//
// Solve builds the full distance table (a hard barrier: the tree is never
// started on a partial table), runs Prim from the caller's start vertex and
// returns the tree together with the table, so callers can report per-edge
// weights without recomputing distances.
//
// The JSON form of a Result is
//
//	{"start":0,"total":3,"edges":[[1,0,1],[2,1,1],[3,0,1]],"matrix":[[0,1,...],...]}
//
// where each edge is [child, parent, weight]. DecodeResult reads it back and
// Result.Check re-validates it independently of the code that produced it.
package network
