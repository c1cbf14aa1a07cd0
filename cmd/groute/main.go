package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/planbiir/groute/internal/config"
	"github.com/planbiir/groute/internal/format"
	"github.com/planbiir/groute/internal/geo"
	"github.com/planbiir/groute/internal/logging"
	"github.com/planbiir/groute/internal/metrics"
)

const version = "groute v0.3.0 - GPS route statistics"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("groute", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputFile       = fs.String("i", "", "Input track file")
		formatID        = fs.String("f", cfg.Format.Default, "Track format (default: detect from extension)")
		statsJSON       = fs.Bool("stats-json", false, "Output statistics as JSON")
		metricsFile     = fs.String("metrics-file", cfg.Metrics.Textfile, "Write Prometheus textfile metrics to this path")
		allowMissingEle = fs.Bool("allow-missing-ele", cfg.Loader.AllowMissingElevation, "Treat trackpoints without elevation as 0 m")
		logLevel        = fs.String("log-level", cfg.Log.Level, "Log level: debug, info, warn, error")
		showVersion     = fs.Bool("version", false, "Show version information")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "groute - distance, ascent and hilliness of a recorded track\n\n")
		fmt.Fprintf(stderr, "usage: groute -i /path/to/track.gpx\n\n")
		fmt.Fprintf(stderr, "examples:\n")
		fmt.Fprintf(stderr, "  groute -i track.gpx\n")
		fmt.Fprintf(stderr, "  groute -i activity.fit -stats-json\n")
		fmt.Fprintf(stderr, "  groute -i export.xml -f gpx_track -metrics-file /var/lib/node_exporter/groute.prom\n\n")
		fmt.Fprintf(stderr, "formats: %s\n\n", joinIDs(format.Supported()))
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	if *inputFile == "" {
		fs.Usage()
		return 2
	}

	logger := logging.New(stderr, *logLevel, cfg.Log.Format)
	slog.SetDefault(logger)

	id := format.ID(*formatID)
	if id == "" {
		detected, ok := format.Detect(*inputFile)
		if !ok {
			fmt.Fprintf(stderr, "Cannot detect the format of %s, use -f (%s)\n", *inputFile, joinIDs(format.Supported()))
			return 2
		}
		id = detected
	}

	recorder := metrics.NewRecorder()
	opts := format.Options{AllowMissingElevation: *allowMissingEle}

	logger.Info("loading track", "file", *inputFile, "format", id)
	startTime := time.Now()

	route, err := format.FromPath(*inputFile, id, opts)
	took := time.Since(startTime)
	if err != nil {
		recorder.ObserveError(string(id))
		writeMetrics(logger, recorder, *metricsFile)
		fmt.Fprintf(stderr, "Error reading track file: %v\n", err)
		return 1
	}

	recorder.ObserveRoute(string(id), route, took)
	logger.Info("track loaded", "file", *inputFile, "format", id, "points", route.Len(), "duration", took)
	writeMetrics(logger, recorder, *metricsFile)

	if *statsJSON {
		jsonData, err := json.MarshalIndent(route.Summary(), "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error marshaling stats: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(jsonData))
		return 0
	}

	printStats(stdout, route.Summary())
	return 0
}

func writeMetrics(logger *slog.Logger, recorder *metrics.Recorder, path string) {
	if path == "" {
		return
	}
	if err := recorder.WriteTextfile(path); err != nil {
		logger.Warn("failed to write metrics textfile", "path", path, "error", err)
		return
	}
	logger.Debug("metrics written", "path", path)
}

func joinIDs(ids []format.ID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

func printStats(w io.Writer, stats geo.Summary) {
	fmt.Fprintf(w, "\n📊 Route Statistics:\n")
	fmt.Fprintf(w, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(w, "📍 Points: %d\n", stats.Points)
	fmt.Fprintf(w, "🏁 Start: %.7f, %.7f\n", stats.StartLat, stats.StartLon)
	fmt.Fprintf(w, "📏 Distance: %.3f km\n", stats.TotalDistanceKm)
	fmt.Fprintf(w, "⬆️  Ascent: %.0f m\n", stats.TotalAscent)
	fmt.Fprintf(w, "⬇️  Descent: %.0f m\n", stats.TotalDescent)
	fmt.Fprintf(w, "⛰️  Hilliness: %.2f m/km\n", stats.Hilliness)
	fmt.Fprintf(w, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
}
