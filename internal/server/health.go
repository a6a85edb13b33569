package server

import (
	"net/http"
	"runtime"

	"photo-viewer/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusStarting = "starting"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status           string `json:"status"`
	Ready            bool   `json:"ready"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	Ingesting        bool   `json:"ingesting"`
	LastIngested     string `json:"lastIngested,omitempty"`
	InitialScanError string `json:"initialScanError,omitempty"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`

	// Stats summary
	TotalAssets    int `json:"totalAssets,omitempty"`
	TotalFallbacks int `json:"totalFallbacks,omitempty"`
}

// HealthCheck returns the health status of the service
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	healthStatus := h.ingestor.GetHealthStatus()
	stats := h.stats.GetStats()

	response := HealthResponse{
		Ready:        healthStatus.Ready,
		Version:      startup.Version,
		Uptime:       healthStatus.Uptime,
		Ingesting:    healthStatus.Ingesting,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if healthStatus.Ready {
		response.Status = statusHealthy
	} else {
		response.Status = statusStarting
	}

	if !healthStatus.LastIngested.IsZero() {
		response.LastIngested = healthStatus.LastIngested.Format("2006-01-02T15:04:05Z07:00")
	}

	if healthStatus.InitialScanError != "" {
		response.InitialScanError = healthStatus.InitialScanError
		response.Status = statusDegraded
	}

	if stats.TotalAssets > 0 {
		response.TotalAssets = stats.TotalAssets
		response.TotalFallbacks = stats.TotalFallbacks
	}

	w.Header().Set("Content-Type", "application/json")

	// Return 503 only if not ready at all
	if !healthStatus.Ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 only when the service is ready to accept traffic
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.ingestor.IsReady() {
		w.WriteHeader(http.StatusOK)
		writeJSON(w, map[string]string{
			"status": "ready",
		})
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]string{
			"status": "not ready",
		})
	}
}
