package geo

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Haversine is the great-circle metric on a sphere of the given Radius.
// A zero, negative or non-finite Radius falls back to EarthRadiusKm, so the
// zero value is ready to use.
type Haversine struct {
	Radius float64
}

// NewHaversine returns a Haversine metric on Earth.
func NewHaversine() Haversine {
	return Haversine{Radius: EarthRadiusKm}
}

// radius returns the effective sphere radius.
func (h Haversine) radius() float64 {
	if h.Radius <= 0 || math.IsNaN(h.Radius) || math.IsInf(h.Radius, 0) {
		return EarthRadiusKm
	}

	return h.Radius
}

// Distance returns the great-circle distance between a and b in the units of
// Radius.
//
//	hav(θ) = sin²(Δφ/2) + cos φ₁ · cos φ₂ · sin²(Δλ/2)
//	d      = 2R · asin(√hav)
//
// Complexity: O(1).
func (h Haversine) Distance(a, b City) float64 {
	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dPhi := (b.Lat - a.Lat) * degToRad
	dLambda := (b.Lon - a.Lon) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	hav := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// rounding can push hav a hair outside [0,1] for antipodal points
	hav = math.Min(1, math.Max(0, hav))

	return 2 * h.radius() * math.Asin(math.Sqrt(hav))
}
