// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// This package centralizes all application configuration and provides consistent
// logging throughout the application lifecycle.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - LIBRARY_DIR: Path to the photo library root (default: /photos). The
//     originals tree lives under LIBRARY_DIR/originals and pre-generated
//     fallback renditions under LIBRARY_DIR/fallback.
//   - DATABASE_DIR: Path to database directory (default: /database)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_ENABLED: Enable or disable the /metrics endpoint (default: true)
//   - INGEST_INTERVAL: Periodic library re-ingest interval as Go duration (default: 30m)
//   - CONTAINER_WIDTH: Viewport container width in pixels (default: 1280)
//   - CONTAINER_HEIGHT: Viewport container height in pixels (default: 800)
//   - DECODE_WORKERS: Probe worker pool size (handled by the workers package)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - MEMORY_LIMIT: Container memory limit for automatic GOMEMLIMIT configuration
//   - GOMEMLIMIT: Direct override for Go's memory limit
//
// # Directory Setup
//
// The package validates and creates required directories:
//   - Database directory: Required, must be writable
//   - Library directory: Checked but not created (should be mounted)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
// The package provides structured logging functions for consistent output:
//   - [LogCatalogInit]: Catalog initialization timing
//   - [LogDecoderInit]: libvips availability and probe pool size
//   - [LogIngestInit]: Ingest configuration and interval
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	// Initialize components...
//	startup.LogCatalogInit(catalogInitDuration)
//	startup.LogIngestInit(config.IngestInterval)
//
//	// Start server...
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
//
//	// On shutdown...
//	startup.LogShutdownInitiated("SIGTERM")
//	// ... cleanup ...
//	startup.LogShutdownComplete()
package startup
