package gpx

import "encoding/xml"

// Point is a raw <trkpt> as it appears in the document.
// Numbers are kept as text so an absent or empty value can be told
// apart from a zero one; Trackpoints parses them.
type Point struct {
	Lat       string `xml:"lat,attr"`
	Lon       string `xml:"lon,attr"`
	Elevation string `xml:"ele"`
	Time      string `xml:"time,omitempty"`
}

// Track represents a GPX track with segments
type Track struct {
	Name     string         `xml:"name,omitempty"`
	Segments []TrackSegment `xml:"trkseg"`
}

// TrackSegment represents a track segment
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// GPX represents the parts of a GPX file the loaders read.
// Waypoints, routes and extensions are skipped by the decoder.
type GPX struct {
	XMLName  xml.Name `xml:"gpx"`
	Version  string   `xml:"version,attr"`
	Creator  string   `xml:"creator,attr"`
	Metadata Metadata `xml:"metadata,omitempty"`
	Tracks   []Track  `xml:"trk"`
}

// Metadata represents GPX metadata
type Metadata struct {
	Name string `xml:"name,omitempty"`
}

// Trackpoint is a validated sample ready to be added to a route.
type Trackpoint struct {
	Lat       float64
	Lon       float64
	Elevation float64

	// Position in the document, zero based
	TrackIdx, SegIdx, PtIdx int
}
