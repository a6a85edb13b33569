package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photo_viewer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Viewer session metrics
var (
	SessionOpensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_session_opens_total",
			Help: "Total number of view sessions opened",
		},
		[]string{"class"},
	)

	SessionTerminalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_session_terminal_total",
			Help: "Total number of view sessions reaching a terminal load state",
		},
		[]string{"state", "kind"},
	)

	NoticesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_notices_total",
			Help: "Total number of user-facing notices raised during loading",
		},
		[]string{"kind"},
	)

	DerivedRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_derived_fallback_retries_total",
			Help: "Total number of derived fallback path retry attempts",
		},
	)

	StaleCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_stale_completions_total",
			Help: "Total number of probe completions discarded because the session was gone",
		},
	)

	ViewportGesturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_viewport_gestures_total",
			Help: "Total number of viewport gestures that changed the transform",
		},
		[]string{"gesture"},
	)
)

// Decode probe metrics
var (
	ProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photo_viewer_probe_duration_seconds",
			Help:    "Decode probe duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"tier"},
	)

	ProbeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_probe_errors_total",
			Help: "Total number of failed decode probes",
		},
		[]string{"tier"},
	)
)

// Selection metrics
var (
	SelectionMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_viewer_selection_mutations_total",
			Help: "Total number of selection mutation cycles",
		},
		[]string{"op"},
	)

	SelectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_selection_size",
			Help: "Current number of selected assets",
		},
	)
)

// Catalog metrics
var (
	CatalogAssetsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_catalog_assets_total",
			Help: "Number of assets in the catalog",
		},
	)

	CatalogFallbacksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_catalog_fallbacks_total",
			Help: "Number of catalog assets with a registered fallback rendition",
		},
	)

	IngestRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_ingest_runs_total",
			Help: "Total number of library ingest runs",
		},
	)

	IngestLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_ingest_last_run_duration_seconds",
			Help: "Duration of the last library ingest run in seconds",
		},
	)

	IngestFilesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_ingest_files_processed_total",
			Help: "Total number of files processed by library ingest",
		},
	)

	IngestErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_ingest_errors_total",
			Help: "Total number of library ingest errors",
		},
	)
)

// Memory pressure metrics
var (
	MemoryUsageRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_memory_usage_ratio",
			Help: "Current heap usage as a fraction of the configured memory limit",
		},
	)

	MemoryPaused = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photo_viewer_memory_paused",
			Help: "Whether decode work is paused due to memory pressure (1 = paused)",
		},
	)

	MemoryGCPauses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photo_viewer_memory_gc_pauses_total",
			Help: "Total number of forced GC runs triggered by memory pressure",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photo_viewer_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
