package gpx

import (
	"errors"
	"fmt"
)

var (
	ErrNoTrackpoints     = errors.New("document has no trackpoints")
	ErrMissingCoordinate = errors.New("trackpoint is missing lat or lon")
	ErrMissingElevation  = errors.New("trackpoint is missing ele")
	ErrInvalidNumber     = errors.New("trackpoint has a non-numeric value")
)

// PointError reports which trackpoint of the document was rejected.
type PointError struct {
	Index int // 1-based position across the whole document
	Track int
	Seg   int
	Err   error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("trackpoint %d (trk %d, trkseg %d): %v", e.Index, e.Track, e.Seg, e.Err)
}

func (e *PointError) Unwrap() error {
	return e.Err
}
