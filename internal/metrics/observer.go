package metrics

import (
	"photo-viewer/internal/catalog"
	"photo-viewer/internal/render"
	"photo-viewer/internal/selection"
	"photo-viewer/internal/viewer"
)

// viewerObserver implements viewer.Observer using the Prometheus metrics
// declared in this package.
type viewerObserver struct{}

// NewViewerObserver creates an observer that records viewer session metrics
// into the Prometheus counters declared in metrics.go.
func NewViewerObserver() viewer.Observer {
	return &viewerObserver{}
}

func (o *viewerObserver) ObserveOpen(class string) {
	SessionOpensTotal.WithLabelValues(class).Inc()
}

func (o *viewerObserver) ObserveTerminal(state, kind string) {
	if kind == "" {
		kind = "none"
	}
	SessionTerminalTotal.WithLabelValues(state, kind).Inc()
}

func (o *viewerObserver) ObserveNotice(kind string) {
	if kind == "" {
		kind = "none"
	}
	NoticesTotal.WithLabelValues(kind).Inc()
}

func (o *viewerObserver) ObserveDerivedRetry() {
	DerivedRetriesTotal.Inc()
}

func (o *viewerObserver) ObserveStaleCompletion() {
	StaleCompletionsTotal.Inc()
}

func (o *viewerObserver) ObserveGesture(gesture string) {
	ViewportGesturesTotal.WithLabelValues(gesture).Inc()
}

// selectionObserver implements selection.Observer.
type selectionObserver struct{}

// NewSelectionObserver creates an observer that records selection mutation
// metrics.
func NewSelectionObserver() selection.Observer {
	return &selectionObserver{}
}

func (o *selectionObserver) ObserveMutation(op string, size int) {
	SelectionMutationsTotal.WithLabelValues(op).Inc()
	SelectionSize.Set(float64(size))
}

// catalogObserver implements catalog.Observer.
type catalogObserver struct{}

// NewCatalogObserver creates an observer that records library ingest metrics.
func NewCatalogObserver() catalog.Observer {
	return &catalogObserver{}
}

func (o *catalogObserver) ObserveIngestRun() {
	IngestRunsTotal.Inc()
}

func (o *catalogObserver) ObserveIngestFile() {
	IngestFilesProcessed.Inc()
}

func (o *catalogObserver) ObserveIngestError() {
	IngestErrors.Inc()
}

func (o *catalogObserver) ObserveIngestDone(durationSeconds float64) {
	IngestLastRunDuration.Set(durationSeconds)
}

// probeObserver implements render.Observer.
type probeObserver struct{}

// NewProbeObserver creates an observer that records decode probe metrics.
func NewProbeObserver() render.Observer {
	return &probeObserver{}
}

func (o *probeObserver) ObserveProbe(tier string, durationSeconds float64, err error) {
	ProbeDuration.WithLabelValues(tier).Observe(durationSeconds)
	if err != nil {
		ProbeErrorsTotal.WithLabelValues(tier).Inc()
	}
}
