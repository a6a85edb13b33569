package selection

// Observer records selection metrics. Implementations are provided by the
// metrics package to break the import cycle between selection and metrics.
type Observer interface {
	// ObserveMutation records one mutation cycle. op is the mutating
	// operation ("toggle", "select_all", "select_none", "clear", "remove")
	// and size the selection size after the mutation.
	ObserveMutation(op string, size int)
}

// defaultObserver is the package-level observer set at startup.
// If nil, metric recording is silently skipped (safe for tests).
var defaultObserver Observer

// SetObserver sets the package-level metrics observer.
// Call this once at startup after creating the observer implementation.
func SetObserver(o Observer) {
	defaultObserver = o
}

func observeMutation(op string, size int) {
	if defaultObserver != nil {
		defaultObserver.ObserveMutation(op, size)
	}
}
