package catalog

// Observer records catalog ingest metrics. Implementations are provided by
// the metrics package to break the import cycle between catalog and metrics.
type Observer interface {
	// ObserveIngestRun records the start of an ingest run.
	ObserveIngestRun()
	// ObserveIngestFile records one file successfully ingested.
	ObserveIngestFile()
	// ObserveIngestError records a file skipped due to a probe or upsert
	// failure.
	ObserveIngestError()
	// ObserveIngestDone records the wall-clock duration of a completed run
	// in seconds.
	ObserveIngestDone(durationSeconds float64)
}

// defaultObserver is the package-level observer set at startup.
// If nil, metric recording is silently skipped (safe for tests).
var defaultObserver Observer

// SetObserver sets the package-level metrics observer.
// Call this once at startup after creating the observer implementation.
func SetObserver(o Observer) {
	defaultObserver = o
}

type nopObserver struct{}

func (nopObserver) ObserveIngestRun()         {}
func (nopObserver) ObserveIngestFile()        {}
func (nopObserver) ObserveIngestError()       {}
func (nopObserver) ObserveIngestDone(float64) {}

func observer() Observer {
	if defaultObserver == nil {
		return nopObserver{}
	}
	return defaultObserver
}
