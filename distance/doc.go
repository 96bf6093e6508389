// Package distance builds the full pairwise distance table for a list of
// cities under any geo.Metric.
//
// How it works
//
//	Work is partitioned by row. Row i owns a private buffer holding the
//	upper-triangle cells (i, j) for j > i; one task per row runs on a
//	fixed-size ants.Pool. After every task has finished (a WaitGroup barrier)
//	the buffers are folded into a matrix.Dense, writing each value into both
//	(i, j) and (j, i). No two tasks ever share a buffer, so the build needs no
//	locks and no aliasing tricks; symmetry holds by construction and the
//	diagonal is never written.
//
// Complexity
//
//   - Time:  O(N²) metric evaluations, spread across the pool.
//   - Space: O(N²) for the result plus the N(N−1)/2 upper-triangle buffers.
//
// Errors
//
//   - ErrNilMetric       — metric is nil.
//   - ErrInvalidDistance — the metric returned NaN, ±Inf or a negative value,
//     or panicked.
//   - ErrPool            — the worker pool could not be created or refused a task.
package distance
