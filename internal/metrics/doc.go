// Package metrics provides Prometheus instrumentation for the photo-viewer application.
//
// This package defines and exposes various metrics that can be scraped by Prometheus
// to monitor the health, performance, and behavior of the application. All metrics
// are prefixed with "photo_viewer_" to avoid naming collisions with other applications.
//
// # Metric Categories
//
// The metrics are organized into the following categories:
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Viewer Session Metrics
//
// Track asset-view sessions and their load outcomes:
//   - SessionOpensTotal: Counter of sessions opened by format class
//   - SessionTerminalTotal: Counter of sessions reaching a terminal load
//     state, by state and fallback kind
//   - NoticesTotal: Counter of user-facing notices by fallback kind
//   - DerivedRetriesTotal: Counter of derived fallback path retries
//   - StaleCompletionsTotal: Counter of probe completions discarded for
//     dead sessions
//   - ViewportGesturesTotal: Counter of viewport gestures by kind
//
// ## Decode Probe Metrics
//
// Monitor source decode probing:
//   - ProbeDuration: Histogram of probe duration by tier (primary/fallback)
//   - ProbeErrorsTotal: Counter of failed probes by tier
//
// ## Selection Metrics
//
// Track selection state:
//   - SelectionMutationsTotal: Counter of mutation cycles by operation
//   - SelectionSize: Gauge of currently selected asset count
//
// ## Catalog Metrics
//
// Track catalog contents and ingest runs:
//   - CatalogAssetsTotal: Gauge of assets in the catalog
//   - CatalogFallbacksTotal: Gauge of assets with a fallback rendition
//   - IngestRunsTotal, IngestLastRunDuration, IngestFilesProcessed,
//     IngestErrors: ingest run counters and gauges
//
// ## Memory Metrics
//
// Monitor Go runtime memory pressure:
//   - MemoryUsageRatio: Gauge of memory usage as ratio of limit (0.0-1.0)
//   - MemoryPaused: Gauge indicating if decode work is paused
//   - MemoryGCPauses: Counter of forced GC runs under pressure
//
// ## Application Info
//
// Expose build information:
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// using promauto. To expose them, mount the promhttp.Handler() on your
// metrics endpoint:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// # Recording Metrics
//
// Packages that must not import metrics directly (to avoid cycles) record
// through small observer interfaces. The constructors in observer.go return
// implementations backed by the collectors in this package:
//
//	viewer.SetObserver(metrics.NewViewerObserver())
//	selection.SetObserver(metrics.NewSelectionObserver())
//	render.SetObserver(metrics.NewProbeObserver())
//	catalog.SetObserver(metrics.NewCatalogObserver())
//
// Other packages import this package and use the exported variables:
//
//	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/assets", "200").Inc()
//
// # Collector
//
// The package provides a [Collector] type that periodically gathers catalog
// statistics from a [StatsProvider] and updates the corresponding gauges:
//
//	collector := metrics.NewCollector(statsProvider, 1*time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// # Prometheus Queries
//
// Example PromQL queries for common use cases:
//
// Fallback rate by format:
//
//	sum(rate(photo_viewer_session_terminal_total{state="fallback_ready"}[5m])) by (kind)
//
// P95 probe time:
//
//	histogram_quantile(0.95, sum(rate(photo_viewer_probe_duration_seconds_bucket[5m])) by (le, tier))
//
// Placeholder rate (assets the viewer could not display at all):
//
//	sum(rate(photo_viewer_session_terminal_total{state=~"fallback_failed|no_fallback_placeholder"}[5m]))
//	/ sum(rate(photo_viewer_session_opens_total[5m]))
//
// Memory pressure events:
//
//	rate(photo_viewer_memory_gc_pauses_total[1h])
package metrics
