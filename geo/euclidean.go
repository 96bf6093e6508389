package geo

import "math"

// Euclidean is the planar metric over (Lon, Lat) read as (x, y).
type Euclidean struct{}

// Distance returns √((Δlon)² + (Δlat)²).
func (Euclidean) Distance(a, b City) float64 {
	return math.Hypot(b.Lon-a.Lon, b.Lat-a.Lat)
}
