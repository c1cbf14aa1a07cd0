package geo

import "math"

// HillinessScale turns ascent per meter into ascent per kilometer,
// so 1000 m of climbing over 100 km scores 10.
const HillinessScale = 1000.0

// Route accumulates track points and keeps running distance and elevation
// totals. The zero value is an empty route ready for use.
//
// A Route is built by a single goroutine; once loading is finished it is only
// read and may be shared freely.
type Route struct {
	points        []Point
	totalDistance float64
	totalAscent   float64
	totalDescent  float64
}

// Summary is a snapshot of the route statistics
type Summary struct {
	Points          int     `json:"points"`
	StartLat        float64 `json:"start_lat"`
	StartLon        float64 `json:"start_lon"`
	TotalDistance   float64 `json:"total_distance_m"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalAscent     float64 `json:"total_ascent_m"`
	TotalDescent    float64 `json:"total_descent_m"`
	Hilliness       float64 `json:"hilliness"`
}

// NewRoute returns an empty route.
func NewRoute() *Route {
	return &Route{}
}

// AddPoint appends a sample to the route and updates the totals.
//
// The stored point keeps the full-precision distance from its predecessor,
// while the running total accumulates that distance rounded to the nearest
// meter at every step. Coordinates are not validated.
func (r *Route) AddPoint(lat, lon, elevation float64) {
	next := NewPoint(lat, lon, elevation)

	if len(r.points) == 0 {
		r.points = append(r.points, next)
		return
	}

	last := r.points[len(r.points)-1]
	next.distance = HaversineDistance(last, next)
	r.totalDistance += math.Round(next.distance)
	r.points = append(r.points, next)

	r.processElevationDelta(&last, next)
}

// processElevationDelta books the elevation change between two consecutive
// points as ascent or descent. A nil last point is a no-op.
func (r *Route) processElevationDelta(last *Point, next Point) {
	if last == nil {
		return
	}

	delta := next.elevation - last.elevation
	switch {
	case delta > 0:
		r.totalAscent += delta
	case delta < 0:
		r.totalDescent += -delta
	}
}

// StartPoint returns the first point of the route, if any.
func (r *Route) StartPoint() (Point, bool) {
	if len(r.points) == 0 {
		return Point{}, false
	}
	return r.points[0], true
}

// Points returns a copy of the route points in insertion order.
func (r *Route) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// Len returns the number of points in the route.
func (r *Route) Len() int {
	return len(r.points)
}

// TotalDistance returns the accumulated distance in meters.
func (r *Route) TotalDistance() float64 {
	return r.totalDistance
}

// TotalAscent returns the accumulated climb in meters.
func (r *Route) TotalAscent() float64 {
	return r.totalAscent
}

// TotalDescent returns the accumulated drop in meters, as a positive number.
func (r *Route) TotalDescent() float64 {
	return r.totalDescent
}

// Hilliness returns meters of ascent per kilometer of distance,
// or 0 for a route that has not moved.
func (r *Route) Hilliness() float64 {
	if r.totalDistance == 0 {
		return 0
	}
	return r.totalAscent / r.totalDistance * HillinessScale
}

// Summary returns the current statistics of the route.
func (r *Route) Summary() Summary {
	s := Summary{
		Points:          len(r.points),
		TotalDistance:   r.totalDistance,
		TotalDistanceKm: r.totalDistance / 1000,
		TotalAscent:     r.totalAscent,
		TotalDescent:    r.totalDescent,
		Hilliness:       r.Hilliness(),
	}
	if start, ok := r.StartPoint(); ok {
		s.StartLat = start.lat
		s.StartLon = start.lon
	}
	return s
}
