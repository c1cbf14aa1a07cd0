// Package format turns recorded track files into routes.
//
// The set of formats is closed: each identifier maps to one loader and
// there is no runtime registration.
package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/planbiir/groute/internal/geo"
)

// ID names a track file format.
type ID string

const (
	GpxTrackFormat ID = "gpx_track"
	FitFileFormat  ID = "fit_file"
)

// Loader reads a track document and adds its points to route, in order.
// The route is filled in place; on error its contents are unspecified.
type Loader interface {
	Load(r io.Reader, route *geo.Route) error
}

// Options tune the loaders built by the dispatcher.
type Options struct {
	// AllowMissingElevation adds points without elevation at 0 m
	// instead of failing the load.
	AllowMissingElevation bool
}

var loaders = map[ID]func(Options) Loader{
	GpxTrackFormat: func(o Options) Loader {
		return GpxTrack{AllowMissingElevation: o.AllowMissingElevation}
	},
	FitFileFormat: func(o Options) Loader {
		return FitFile{AllowMissingElevation: o.AllowMissingElevation}
	},
}

var extensions = map[string]ID{
	".gpx": GpxTrackFormat,
	".xml": GpxTrackFormat,
	".fit": FitFileFormat,
}

// FromFile loads r with the loader registered for id into a new route.
func FromFile(r io.Reader, id ID) (*geo.Route, error) {
	return FromFileWith(r, id, Options{})
}

// FromFileWith is FromFile with loader options.
func FromFileWith(r io.Reader, id ID, opts Options) (*geo.Route, error) {
	newLoader, ok := loaders[id]
	if !ok {
		return nil, &UnsupportedFormatError{Format: id}
	}

	route := geo.NewRoute()
	if err := newLoader(opts).Load(r, route); err != nil {
		return nil, err
	}

	return route, nil
}

// FromPath opens filename and loads it with FromFileWith.
func FromPath(filename string, id ID, opts Options) (*geo.Route, error) {
	if _, ok := loaders[id]; !ok {
		return nil, &UnsupportedFormatError{Format: id}
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return FromFileWith(file, id, opts)
}

// Detect guesses the format of filename from its extension.
func Detect(filename string) (ID, bool) {
	id, ok := extensions[strings.ToLower(filepath.Ext(filename))]
	return id, ok
}

// Supported returns the known format identifiers, sorted.
func Supported() []ID {
	ids := make([]ID, 0, len(loaders))
	for id := range loaders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
