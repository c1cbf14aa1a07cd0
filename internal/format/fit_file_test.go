package format

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tormoder/fit"
)

func fitRecord(lat, lon, altitude float64) *fit.RecordMsg {
	rec := fit.NewRecordMsg()
	rec.PositionLat = fit.NewLatitudeDegrees(lat)
	rec.PositionLong = fit.NewLongitudeDegrees(lon)
	rec.Altitude = uint16(math.Round((altitude + 500) * 5))
	return rec
}

func TestFitRecordPoints(t *testing.T) {
	sensorOnly := fit.NewRecordMsg()

	enhanced := fitRecord(46.001, 7.001, 0)
	enhanced.EnhancedAltitude = uint32(math.Round((1012.4 + 500) * 5))

	records := []*fit.RecordMsg{
		fitRecord(46.0, 7.0, 1000),
		sensorOnly,
		enhanced,
	}

	points, err := fitRecordPoints(records, false)
	if err != nil {
		t.Fatalf("fitRecordPoints failed: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("Expected 2 positioned points, got %d", len(points))
	}
	if math.Abs(points[0].lat-46.0) > 1e-6 || math.Abs(points[0].lon-7.0) > 1e-6 {
		t.Errorf("Unexpected first position %f,%f", points[0].lat, points[0].lon)
	}
	if math.Abs(points[0].elevation-1000) > 1e-6 {
		t.Errorf("Expected altitude 1000, got %f", points[0].elevation)
	}
	if math.Abs(points[1].elevation-1012.4) > 1e-6 {
		t.Errorf("Expected enhanced altitude 1012.4, got %f", points[1].elevation)
	}
}

func TestFitRecordPointsMissingAltitude(t *testing.T) {
	noAltitude := fit.NewRecordMsg()
	noAltitude.PositionLat = fit.NewLatitudeDegrees(46.0)
	noAltitude.PositionLong = fit.NewLongitudeDegrees(7.0)

	records := []*fit.RecordMsg{fitRecord(46.1, 7.1, 500), noAltitude}

	_, err := fitRecordPoints(records, false)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Point != 2 {
		t.Fatalf("Expected ParseError at record 2, got %v", err)
	}

	points, err := fitRecordPoints(records, true)
	if err != nil {
		t.Fatalf("fitRecordPoints failed: %v", err)
	}
	if points[1].elevation != 0 {
		t.Errorf("Expected defaulted elevation 0, got %f", points[1].elevation)
	}
}

func TestFitRecordPointsErrorSkipsSensorRecords(t *testing.T) {
	noAltitude := fit.NewRecordMsg()
	noAltitude.PositionLat = fit.NewLatitudeDegrees(46.0)
	noAltitude.PositionLong = fit.NewLongitudeDegrees(7.0)

	records := []*fit.RecordMsg{fit.NewRecordMsg(), fitRecord(46.1, 7.1, 500), fit.NewRecordMsg(), noAltitude}

	_, err := fitRecordPoints(records, false)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if parseErr.Point != 2 {
		t.Errorf("Expected point 2, got %d", parseErr.Point)
	}
}

func TestFitRecordPointsNoPositions(t *testing.T) {
	_, err := fitRecordPoints([]*fit.RecordMsg{fit.NewRecordMsg()}, true)
	if !errors.Is(err, errNoPositions) {
		t.Errorf("Expected errNoPositions, got %v", err)
	}
}

func TestFitFileLoadGarbage(t *testing.T) {
	_, err := FromFile(strings.NewReader("definitely not a FIT file"), FitFileFormat)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Format != FitFileFormat {
		t.Errorf("Expected FIT ParseError, got %v", err)
	}
}
