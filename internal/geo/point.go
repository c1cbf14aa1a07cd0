package geo

// Point is a single track sample inside a Route.
// Fields are unexported so a point cannot change once it has been appended.
type Point struct {
	lat       float64
	lon       float64
	elevation float64
	distance  float64 // meters from the previous point, 0 for the first
}

// NewPoint returns a free-standing point with zero distance.
func NewPoint(lat, lon, elevation float64) Point {
	return Point{lat: lat, lon: lon, elevation: elevation}
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.lat }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p.lon }

// Elevation returns the elevation in meters.
func (p Point) Elevation() float64 { return p.elevation }

// Distance returns the full-precision distance in meters from the previous
// point of the route.
func (p Point) Distance() float64 { return p.distance }
