package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Viewer sessions (per format class) ---
	classes := []string{"native", "fallback-capable"}
	for _, class := range classes {
		SessionOpensTotal.WithLabelValues(class)
	}

	// --- Terminal load states × fallback kind ---
	kinds := []string{"HEIC", "HEIF", "TIFF", "AVIF", "JPEG XL", "RAW", "none"}
	for _, state := range []string{"primary_ready", "fallback_ready", "fallback_failed", "no_fallback_placeholder"} {
		for _, kind := range kinds {
			SessionTerminalTotal.WithLabelValues(state, kind)
		}
	}

	// --- Notices ---
	for _, kind := range kinds {
		NoticesTotal.WithLabelValues(kind)
	}

	// --- Probe tiers ---
	for _, tier := range []string{"primary", "fallback"} {
		ProbeDuration.WithLabelValues(tier)
		ProbeErrorsTotal.WithLabelValues(tier)
	}

	// --- Viewport gestures ---
	for _, gesture := range []string{"zoom", "drag", "reset", "double_activate"} {
		ViewportGesturesTotal.WithLabelValues(gesture)
	}

	// --- Selection mutation cycles ---
	for _, op := range []string{"toggle", "select_all", "select_none", "remove", "clear"} {
		SelectionMutationsTotal.WithLabelValues(op)
	}
}
