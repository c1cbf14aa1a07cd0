package format

import (
	"errors"
	"io"

	"github.com/planbiir/groute/internal/geo"
	"github.com/planbiir/groute/internal/gpx"
)

// GpxTrack loads the trackpoints of a GPX document.
//
// All <trkpt> elements of all <trkseg> and <trk> elements are added in
// document order. Timestamps and extensions are ignored. A trackpoint
// without <ele> is a ParseError unless AllowMissingElevation is set,
// in which case it is added at elevation 0.
type GpxTrack struct {
	AllowMissingElevation bool
}

// Load parses r and adds every trackpoint to route.
// Nothing is added when the document is rejected.
func (l GpxTrack) Load(r io.Reader, route *geo.Route) error {
	doc, err := gpx.ParseReader(r)
	if err != nil {
		return &ParseError{Format: GpxTrackFormat, Err: err}
	}

	points, err := doc.Trackpoints(l.AllowMissingElevation)
	if err != nil {
		parseErr := &ParseError{Format: GpxTrackFormat, Err: err}
		var pointErr *gpx.PointError
		if errors.As(err, &pointErr) {
			parseErr.Point = pointErr.Index
		}
		return parseErr
	}

	for _, p := range points {
		route.AddPoint(p.Lat, p.Lon, p.Elevation)
	}

	return nil
}
