package geo

import "math"

// EarthRadius is the mean Earth radius in meters used for every distance.
const EarthRadius = 6371000.0

// HaversineDistance returns the great-circle distance between a and b in meters.
func HaversineDistance(a, b Point) float64 {
	if a.lat == b.lat && a.lon == b.lon {
		return 0
	}

	lat1Rad := a.lat * math.Pi / 180
	lat2Rad := b.lat * math.Pi / 180
	deltaLatRad := (b.lat - a.lat) * math.Pi / 180
	deltaLonRad := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	// rounding can push h a hair outside [0, 1] for antipodal points
	h = math.Min(math.Max(h, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}
