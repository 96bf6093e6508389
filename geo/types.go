package geo

// EarthRadiusKm is the default planet radius, in kilometres, used by Haversine.
const EarthRadiusKm = 6378.0

// City is a single location on the map.
// ID is the caller's stable index; builders address cities by slice position.
type City struct {
	ID   int     `json:"id"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"` // degrees, north positive
	Lon  float64 `json:"lon"` // degrees, east positive
}

// Metric computes a non-negative scalar distance between two cities.
// Implementations must be symmetric and safe for concurrent use.
type Metric interface {
	Distance(a, b City) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b City) float64

// Distance calls f(a, b).
func (f MetricFunc) Distance(a, b City) float64 { return f(a, b) }
