// Package geo defines the point type and the pluggable distance metrics used
// to weight the complete graph of locations.
//
// What & Why
//
//   - City is an immutable value: an index, a display name and a
//     latitude/longitude pair in degrees.
//   - Metric is a single-method capability. Matrix and tree builders only see
//     the interface, so alternative metrics can be swapped in without touching
//     them.
//
// Metrics Provided
//
//   - Haversine — great-circle distance on a sphere of configurable radius.
//     The zero value uses EarthRadiusKm.
//   - Euclidean — planar distance treating (Lon, Lat) as (x, y). Handy for
//     synthetic fixtures where exact distances are known.
//   - MetricFunc — adapter for ordinary functions.
//
// All metrics are pure and safe for concurrent use.
package geo
