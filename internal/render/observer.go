package render

import (
	"errors"
	"time"
)

// ErrPoolStopped is reported for probes submitted to a stopped pool or
// abandoned during shutdown.
var ErrPoolStopped = errors.New("probe pool stopped")

// Observer records probe metrics. Implementations are provided by the
// metrics package to break the import cycle between render and metrics.
type Observer interface {
	// ObserveProbe records duration and error status for one source probe.
	// tier is "primary" or "fallback".
	ObserveProbe(tier string, durationSeconds float64, err error)
}

// defaultObserver is the package-level observer set at startup.
// If nil, metric recording is silently skipped (safe for tests).
var defaultObserver Observer

// SetObserver sets the package-level metrics observer.
// Call this once at startup after creating the observer implementation.
func SetObserver(o Observer) {
	defaultObserver = o
}

func observeProbe(tier Tier, duration time.Duration, err error) {
	if defaultObserver != nil {
		defaultObserver.ObserveProbe(string(tier), duration.Seconds(), err)
	}
}
