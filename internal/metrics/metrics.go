package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/planbiir/groute/internal/geo"
)

// Recorder collects the statistics of a groute run on a private registry,
// so a batch invocation can leave them for the node exporter textfile
// collector.
type Recorder struct {
	registry *prometheus.Registry

	pointsLoaded *prometheus.CounterVec
	loadErrors   *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	distance     prometheus.Gauge
	ascent       prometheus.Gauge
	descent      prometheus.Gauge
	hilliness    prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pointsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "groute_points_loaded_total",
			Help: "Track points added to routes.",
		}, []string{"format"}),
		loadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "groute_load_errors_total",
			Help: "Track files that failed to load.",
		}, []string{"format"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "groute_load_duration_seconds",
			Help:    "Time spent parsing and accumulating a track file.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"format"}),
		distance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "groute_route_distance_meters",
			Help: "Total distance of the last loaded route.",
		}),
		ascent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "groute_route_ascent_meters",
			Help: "Total ascent of the last loaded route.",
		}),
		descent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "groute_route_descent_meters",
			Help: "Total descent of the last loaded route.",
		}),
		hilliness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "groute_route_hilliness",
			Help: "Meters of ascent per kilometer of the last loaded route.",
		}),
	}

	r.registry.MustRegister(
		r.pointsLoaded,
		r.loadErrors,
		r.loadDuration,
		r.distance,
		r.ascent,
		r.descent,
		r.hilliness,
	)

	return r
}

// ObserveRoute records a successful load.
func (r *Recorder) ObserveRoute(format string, route *geo.Route, took time.Duration) {
	r.pointsLoaded.WithLabelValues(format).Add(float64(route.Len()))
	r.loadDuration.WithLabelValues(format).Observe(took.Seconds())
	r.distance.Set(route.TotalDistance())
	r.ascent.Set(route.TotalAscent())
	r.descent.Set(route.TotalDescent())
	r.hilliness.Set(route.Hilliness())
}

// ObserveError records a failed load.
func (r *Recorder) ObserveError(format string) {
	r.loadErrors.WithLabelValues(format).Inc()
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
