package geo_test

import (
	"fmt"

	"github.com/katalvlaran/geospan/geo"
)

// ExampleHaversine measures the Helsinki–Tallinn hop across the Gulf of Finland.
func ExampleHaversine() {
	hel := geo.City{ID: 0, Name: "Helsinki", Lat: 60.1699, Lon: 24.9384}
	tll := geo.City{ID: 1, Name: "Tallinn", Lat: 59.4370, Lon: 24.7536}

	d := geo.NewHaversine().Distance(hel, tll)
	fmt.Printf("%s-%s: %.0f km\n", hel.Name, tll.Name, d)
	// Output: Helsinki-Tallinn: 82 km
}
