package format

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tormoder/fit"

	"github.com/planbiir/groute/internal/geo"
)

var (
	errNoPositions     = errors.New("activity has no positioned records")
	errMissingAltitude = errors.New("record is missing altitude")
)

// FitFile loads the record messages of a FIT activity file.
//
// Records without a valid position are skipped, since devices log
// sensor-only records between fixes. Enhanced altitude is preferred over
// altitude. A positioned record with neither is a ParseError unless
// AllowMissingElevation is set.
type FitFile struct {
	AllowMissingElevation bool
}

type fitPoint struct {
	lat, lon, elevation float64
}

// Load decodes r and adds every positioned record to route.
// Nothing is added when the file is rejected.
func (l FitFile) Load(r io.Reader, route *geo.Route) error {
	decoded, err := fit.Decode(r)
	if err != nil {
		return &ParseError{Format: FitFileFormat, Err: fmt.Errorf("failed to decode FIT: %w", err)}
	}

	activity, err := decoded.Activity()
	if err != nil {
		return &ParseError{Format: FitFileFormat, Err: err}
	}

	points, err := fitRecordPoints(activity.Records, l.AllowMissingElevation)
	if err != nil {
		return err
	}

	for _, p := range points {
		route.AddPoint(p.lat, p.lon, p.elevation)
	}

	return nil
}

// fitRecordPoints numbers points like the route does: skipped records do
// not count.
func fitRecordPoints(records []*fit.RecordMsg, allowMissingElevation bool) ([]fitPoint, error) {
	var points []fitPoint

	for _, rec := range records {
		if rec == nil || rec.PositionLat.Invalid() || rec.PositionLong.Invalid() {
			continue
		}

		elevation := rec.GetEnhancedAltitudeScaled()
		if math.IsNaN(elevation) {
			elevation = rec.GetAltitudeScaled()
		}
		if math.IsNaN(elevation) {
			if !allowMissingElevation {
				return nil, &ParseError{Format: FitFileFormat, Point: len(points) + 1, Err: errMissingAltitude}
			}
			elevation = 0
		}

		points = append(points, fitPoint{
			lat:       rec.PositionLat.Degrees(),
			lon:       rec.PositionLong.Degrees(),
			elevation: elevation,
		})
	}

	if len(points) == 0 {
		return nil, &ParseError{Format: FitFileFormat, Err: errNoPositions}
	}

	return points, nil
}
