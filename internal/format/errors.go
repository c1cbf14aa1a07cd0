package format

import "fmt"

// ParseError is returned when a track document cannot be turned into points.
// A route that was being filled when the error happened should be discarded.
type ParseError struct {
	Format ID
	Point  int // 1-based trackpoint index, 0 when the whole document is bad
	Err    error
}

func (e *ParseError) Error() string {
	if e.Point > 0 {
		return fmt.Sprintf("%s: point %d: %v", e.Format, e.Point, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned for a format identifier with no loader.
type UnsupportedFormatError struct {
	Format ID
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported track format %q", string(e.Format))
}
