package viewer

// Observer records viewer metrics. Implementations are provided by the
// metrics package to break the import cycle between viewer and metrics.
type Observer interface {
	// ObserveOpen records a session open. class is "native" or
	// "fallback-capable".
	ObserveOpen(class string)
	// ObserveTerminal records the terminal state of a session. kind is the
	// format name for fallback-capable assets, "" otherwise.
	ObserveTerminal(state, kind string)
	// ObserveNotice records a user-facing notice being raised.
	ObserveNotice(kind string)
	// ObserveDerivedRetry records a derived-fallback-path retry attempt.
	ObserveDerivedRetry()
	// ObserveStaleCompletion records a probe completion discarded by the
	// liveness guard.
	ObserveStaleCompletion()
	// ObserveGesture records a viewport gesture that changed state.
	// gesture is "zoom", "drag", or "reset".
	ObserveGesture(gesture string)
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

func (nopObserver) ObserveOpen(string)            {}
func (nopObserver) ObserveTerminal(string, string) {}
func (nopObserver) ObserveNotice(string)          {}
func (nopObserver) ObserveDerivedRetry()          {}
func (nopObserver) ObserveStaleCompletion()       {}
func (nopObserver) ObserveGesture(string)         {}

func observer() Observer {
	if defaultObserver == nil {
		return nopObserver{}
	}
	return defaultObserver
}
