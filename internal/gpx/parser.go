package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads and parses a GPX file
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var gpxData GPX
	if err := decoder.Decode(&gpxData); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return &gpxData, nil
}

// Name returns the first track name, falling back to the metadata name.
func (g *GPX) Name() string {
	for _, track := range g.Tracks {
		if track.Name != "" {
			return track.Name
		}
	}
	return g.Metadata.Name
}

// Trackpoints returns every trackpoint of every segment in document order.
//
// A trackpoint with an absent or empty lat or lon is rejected. A trackpoint
// with an absent or empty ele is rejected unless allowMissingElevation is
// set, in which case its elevation is 0. Values that are not numbers are
// rejected with ErrInvalidNumber. A document without any trackpoint
// returns ErrNoTrackpoints.
func (g *GPX) Trackpoints(allowMissingElevation bool) ([]Trackpoint, error) {
	var points []Trackpoint
	index := 0

	for trackIdx, track := range g.Tracks {
		for segIdx, segment := range track.Segments {
			for ptIdx, trkpt := range segment.Points {
				index++
				pointErr := func(err error) error {
					return &PointError{Index: index, Track: trackIdx, Seg: segIdx, Err: err}
				}

				lat, ok, err := parseNumber(trkpt.Lat)
				if err != nil {
					return nil, pointErr(err)
				}
				if !ok {
					return nil, pointErr(ErrMissingCoordinate)
				}

				lon, ok, err := parseNumber(trkpt.Lon)
				if err != nil {
					return nil, pointErr(err)
				}
				if !ok {
					return nil, pointErr(ErrMissingCoordinate)
				}

				elevation, ok, err := parseNumber(trkpt.Elevation)
				if err != nil {
					return nil, pointErr(err)
				}
				if !ok && !allowMissingElevation {
					return nil, pointErr(ErrMissingElevation)
				}

				points = append(points, Trackpoint{
					Lat:       lat,
					Lon:       lon,
					Elevation: elevation,
					TrackIdx:  trackIdx,
					SegIdx:    segIdx,
					PtIdx:     ptIdx,
				})
			}
		}
	}

	if len(points) == 0 {
		return nil, ErrNoTrackpoints
	}

	return points, nil
}

// parseNumber reports ok=false for a blank value.
func parseNumber(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return v, true, nil
}
