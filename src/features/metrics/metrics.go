package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection metrics
var (
	CollectionTracksLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cuebox_collection_tracks_loaded",
			Help: "Number of tracks in the currently loaded collection",
		},
	)

	CollectionReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuebox_collection_reloads_total",
			Help: "Total number of collection reloads",
		},
		[]string{"status"},
	)
)

// Resolver metrics
var (
	ResolveRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuebox_resolve_requests_total",
			Help: "Total number of path resolution requests",
		},
		[]string{"result"},
	)

	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cuebox_resolve_duration_seconds",
			Help:    "Path resolution scan duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)
)

// Export metrics
var (
	SnapshotExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuebox_snapshot_exports_total",
			Help: "Total number of collection snapshot exports",
		},
		[]string{"status"},
	)
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuebox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// InitializeMetrics pre-populates the label combinations so every metric is
// exported from the first scrape.
func InitializeMetrics() {
	for _, status := range []string{"success", "error"} {
		CollectionReloadsTotal.WithLabelValues(status)
		SnapshotExportsTotal.WithLabelValues(status)
	}
	for _, result := range []string{"match", "no_match"} {
		ResolveRequestsTotal.WithLabelValues(result)
	}
}
