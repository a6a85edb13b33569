package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/logging"
	"photo-viewer/internal/memory"
	"photo-viewer/internal/metrics"
	"photo-viewer/internal/middleware"
	"photo-viewer/internal/render"
	"photo-viewer/internal/selection"
	"photo-viewer/internal/server"
	"photo-viewer/internal/startup"
	"photo-viewer/internal/viewer"
	"photo-viewer/internal/workers"

	"github.com/gorilla/mux"
)

const maxProbeWorkers = 8

func main() {
	startTime := time.Now()

	// Set GOMEMLIMIT from container limits before any large allocations
	memory.ConfigureFromEnv()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Initialize catalog
	catalogStart := time.Now()
	cat, err := catalog.Open(context.Background(), config.DatabasePath)
	if err != nil {
		startup.LogFatal("Failed to initialize catalog: %v", err)
	}
	defer cat.Close()
	startup.LogCatalogInit(time.Since(catalogStart))

	// Initialize decoders and the probe pool
	if err := render.InitVips(); err != nil {
		logging.Warn("libvips unavailable, extended format probing degraded: %v", err)
	}
	defer render.ShutdownVips()

	monitor := memory.NewMonitor(memory.DefaultConfig())
	monitor.Start()
	defer monitor.Stop()

	workerCount := workers.ForCPU(maxProbeWorkers)
	pool := render.NewPool(workerCount, render.FileProber{}, monitor)
	startup.LogDecoderInit(render.IsVipsAvailable(), workerCount)

	// Initialize the viewing engine on its dispatch loop
	loop := viewer.NewLoop()
	engine := viewer.NewEngine(viewer.Options{
		Dispatcher:      loop,
		Probes:          pool,
		ContainerWidth:  config.ContainerWidth,
		ContainerHeight: config.ContainerHeight,
	})

	// Selection state and batch actions
	store := selection.NewStore()
	actions := catalog.NewActions(cat, store)

	// Wire metric observers
	metrics.InitializeMetrics()
	buildInfo := startup.GetBuildInfo()
	metrics.SetAppInfo(buildInfo.Version, buildInfo.Commit, buildInfo.GoVersion)
	viewer.SetObserver(metrics.NewViewerObserver())
	selection.SetObserver(metrics.NewSelectionObserver())
	render.SetObserver(metrics.NewProbeObserver())
	catalog.SetObserver(metrics.NewCatalogObserver())

	collector := metrics.NewCollector(catalog.NewStatsSource(cat), 30*time.Second)
	collector.Start()

	// Initialize the library ingestor
	startup.LogIngestInit(config.IngestInterval)
	ing := catalog.NewIngestor(cat, config.LibraryDir, render.FileProber{}, config.IngestInterval)
	ing.Start()
	startup.LogIngestStarted()

	// Initialize handlers
	h := server.New(cat, ing, store, actions, engine)

	// Setup router
	router := setupRouter(h, config.MetricsEnabled)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	// Apply metrics middleware
	handler := http.Handler(router)
	if config.MetricsEnabled {
		handler = middleware.Metrics(middleware.DefaultMetricsConfig())(handler)
	}

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler = middleware.Logger(loggingConfig)(handler)

	// Apply compression middleware
	handler = middleware.Compression(middleware.DefaultCompressionConfig())(handler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, ing, collector, loop, pool)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *server.Handlers, metricsEnabled bool) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	if metricsEnabled {
		r.Handle("/metrics", h.MetricsHandler()).Methods("GET")
	}

	// Catalog routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/assets", h.ListAssets).Methods("GET")
	api.HandleFunc("/assets/{id}", h.GetAsset).Methods("GET")
	api.HandleFunc("/stats", h.GetStats).Methods("GET")
	api.HandleFunc("/rescan", h.TriggerRescan).Methods("POST")

	// Selection
	api.HandleFunc("/selection", h.GetSelection).Methods("GET")
	api.HandleFunc("/selection", h.DeleteSelected).Methods("DELETE")
	api.HandleFunc("/selection/toggle/{id}", h.ToggleSelection).Methods("POST")
	api.HandleFunc("/selection/all", h.SelectAll).Methods("POST")
	api.HandleFunc("/selection/clear", h.ClearSelection).Methods("POST")

	// Viewing session
	api.HandleFunc("/session", h.GetSession).Methods("GET")
	api.HandleFunc("/session", h.CloseSession).Methods("DELETE")
	api.HandleFunc("/session/zoom", h.Zoom).Methods("POST")
	api.HandleFunc("/session/drag/begin", h.BeginDrag).Methods("POST")
	api.HandleFunc("/session/drag/move", h.ContinueDrag).Methods("POST")
	api.HandleFunc("/session/drag/end", h.EndDrag).Methods("POST")
	api.HandleFunc("/session/reset", h.ResetViewport).Methods("POST")
	api.HandleFunc("/session/double-activate", h.DoubleActivate).Methods("POST")
	api.HandleFunc("/session/{id}", h.OpenSession).Methods("POST")

	return r
}

func handleShutdown(srv *http.Server, ing *catalog.Ingestor, collector *metrics.Collector, loop *viewer.Loop, pool *render.Pool) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Stopping library ingestor")
	ing.Stop()
	startup.LogShutdownStepComplete("Ingestor stopped")

	startup.LogShutdownStep("Stopping stats collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Stats collector stopped")

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownStep("Stopping dispatch loop and probe pool")
	loop.Stop()
	pool.Stop()
	startup.LogShutdownStepComplete("Dispatch loop and probe pool stopped")

	startup.LogShutdownComplete()
}
