package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one map rendering run. The run
// is a batch job, so collectors live on a private registry that is written
// out as a node-exporter textfile at the end instead of being scraped.
type Metrics struct {
	Registry *prometheus.Registry

	RastersLoaded     prometheus.Counter
	ReadingsProduced  prometheus.Counter
	WedgesDrawn       prometheus.Counter
	OverlappingWheels prometheus.Gauge
	RunDuration       prometheus.Gauge
	LastSuccess       prometheus.Gauge

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
}

// NewMetrics creates all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RastersLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_map",
			Name:      "rasters_loaded_total",
			Help:      "Raster files read into memory.",
		}),
		ReadingsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_map",
			Name:      "readings_total",
			Help:      "Location-month readings sampled and encoded.",
		}),
		WedgesDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_map",
			Name:      "wedges_drawn_total",
			Help:      "Wedge glyphs drawn onto the map.",
		}),
		OverlappingWheels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_map",
			Name:      "overlapping_wheel_pairs",
			Help:      "Pairs of climate wheels whose footprints intersect.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_map",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last completed run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_map",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time the map was last written successfully.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_map",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_map",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_map",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	m.Registry.MustRegister(
		m.RastersLoaded,
		m.ReadingsProduced,
		m.WedgesDrawn,
		m.OverlappingWheels,
		m.RunDuration,
		m.LastSuccess,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
	)

	return m
}

// WriteTextfile writes the current metric values in the Prometheus text
// format, atomically replacing path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
