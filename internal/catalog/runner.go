package catalog

import (
	"context"
	"sync"
	"time"

	"photo-viewer/internal/logging"
	"photo-viewer/internal/render"
)

// Ingestor drives the periodic library scan: one initial ingest at startup
// and a full re-scan every interval. Readiness for traffic is gated on the
// initial scan completing, successfully or not.
type Ingestor struct {
	catalog    *Catalog
	libraryDir string
	prober     render.Prober
	interval   time.Duration
	stopChan   chan struct{}
	stopOnce   sync.Once

	mu                  sync.Mutex
	ingesting           bool
	lastIngestTime      time.Time
	lastIngestCount     int
	initialScanComplete bool
	initialScanError    error
	startTime           time.Time
}

// HealthStatus contains health check information.
type HealthStatus struct {
	Ready            bool      `json:"ready"`
	Ingesting        bool      `json:"ingesting"`
	StartTime        time.Time `json:"startTime"`
	Uptime           string    `json:"uptime"`
	LastIngested     time.Time `json:"lastIngested,omitempty"`
	AssetsIngested   int       `json:"assetsIngested"`
	InitialScanError string    `json:"initialScanError,omitempty"`
}

// NewIngestor creates an ingest runner for a catalog and library directory.
func NewIngestor(catalog *Catalog, libraryDir string, prober render.Prober, interval time.Duration) *Ingestor {
	return &Ingestor{
		catalog:    catalog,
		libraryDir: libraryDir,
		prober:     prober,
		interval:   interval,
		stopChan:   make(chan struct{}),
		startTime:  time.Now(),
	}
}

// Start launches the initial scan and the periodic re-scan loop. Both run in
// the background; the server starts accepting traffic immediately and
// reports not-ready until the initial scan finishes.
func (ing *Ingestor) Start() {
	go func() {
		logging.Info("Starting initial library scan in background...")
		if err := ing.runIngest(); err != nil {
			logging.Error("Initial library scan error: %v", err)
			ing.mu.Lock()
			ing.initialScanError = err
			ing.mu.Unlock()
		}
		ing.mu.Lock()
		ing.initialScanComplete = true
		ing.mu.Unlock()
	}()

	go ing.periodicIngest()
}

// Stop halts the periodic loop. Safe to call more than once; an in-flight
// scan finishes on its own.
func (ing *Ingestor) Stop() {
	ing.stopOnce.Do(func() { close(ing.stopChan) })
}

// IsReady reports whether the initial scan has completed.
func (ing *Ingestor) IsReady() bool {
	ing.mu.Lock()
	defer ing.mu.Unlock()
	return ing.initialScanComplete
}

// TriggerIngest starts a re-scan without waiting for the next tick.
func (ing *Ingestor) TriggerIngest() {
	go func() {
		if err := ing.runIngest(); err != nil {
			logging.Error("manually triggered scan failed: %v", err)
		}
	}()
}

// GetHealthStatus returns detailed health information.
func (ing *Ingestor) GetHealthStatus() HealthStatus {
	ing.mu.Lock()
	defer ing.mu.Unlock()

	status := HealthStatus{
		Ready:          ing.initialScanComplete,
		Ingesting:      ing.ingesting,
		StartTime:      ing.startTime,
		Uptime:         time.Since(ing.startTime).String(),
		LastIngested:   ing.lastIngestTime,
		AssetsIngested: ing.lastIngestCount,
	}
	if ing.initialScanError != nil {
		status.InitialScanError = ing.initialScanError.Error()
	}
	return status
}

// runIngest performs one full scan. Overlapping scans are collapsed: a
// trigger arriving while a scan runs is dropped, the periodic tick will
// cover the change soon enough.
func (ing *Ingestor) runIngest() error {
	ing.mu.Lock()
	if ing.ingesting {
		ing.mu.Unlock()
		logging.Debug("Library scan already in progress, skipping")
		return nil
	}
	ing.ingesting = true
	ing.mu.Unlock()

	defer func() {
		ing.mu.Lock()
		ing.ingesting = false
		ing.mu.Unlock()
	}()

	count, err := ing.catalog.Ingest(context.Background(), ing.libraryDir, ing.prober)
	if err != nil {
		return err
	}

	ing.mu.Lock()
	ing.lastIngestTime = time.Now()
	ing.lastIngestCount = count
	ing.mu.Unlock()
	return nil
}

func (ing *Ingestor) periodicIngest() {
	ticker := time.NewTicker(ing.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logging.Debug("Periodic library re-scan triggered")
			if err := ing.runIngest(); err != nil {
				logging.Error("periodic re-scan failed: %v", err)
			}
		case <-ing.stopChan:
			return
		}
	}
}
