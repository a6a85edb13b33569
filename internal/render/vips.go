package render

import (
	"fmt"
	"sync"

	"photo-viewer/internal/logging"

	"github.com/davidbyttow/govips/v2/vips"
)

var (
	vipsInitialized bool
	vipsInitMutex   sync.Mutex
	vipsAvailable   bool
)

// InitVips initializes the libvips library, which extends the prober to
// formats the standard registry cannot decode (HEIC, AVIF, many RAW
// derivatives). Call once at startup; the prober degrades gracefully when
// vips is never initialized.
func InitVips() error {
	vipsInitMutex.Lock()
	defer vipsInitMutex.Unlock()

	if vipsInitialized {
		return nil
	}

	// Route vips messages into our logger, keeping its volume in line with
	// the configured application level.
	vipsLogLevel := vips.LogLevelWarning
	if logging.IsDebugEnabled() {
		vipsLogLevel = vips.LogLevelInfo
	}
	vips.LoggingSettings(func(domain string, level vips.LogLevel, msg string) {
		switch {
		case level <= vips.LogLevelCritical:
			logging.Error("[%s] %s", domain, msg)
		case level == vips.LogLevelWarning:
			logging.Warn("[%s] %s", domain, msg)
		default:
			logging.Debug("[%s] %s", domain, msg)
		}
	}, vipsLogLevel)

	// Conservative memory settings: probes are header-oriented and never
	// need a large operation cache.
	vips.Startup(&vips.Config{
		ConcurrencyLevel: 1,
		MaxCacheMem:      50 * 1024 * 1024,
		MaxCacheSize:     100,
		ReportLeaks:      false,
	})

	vipsInitialized = true
	vipsAvailable = true
	logging.Info("libvips initialized successfully (version: %s)", vips.Version)
	return nil
}

// ShutdownVips cleans up libvips resources.
func ShutdownVips() {
	vipsInitMutex.Lock()
	defer vipsInitMutex.Unlock()

	if vipsInitialized {
		vips.Shutdown()
		vipsInitialized = false
		vipsAvailable = false
		logging.Info("libvips shutdown complete")
	}
}

// IsVipsAvailable returns whether libvips is initialized and available.
func IsVipsAvailable() bool {
	vipsInitMutex.Lock()
	defer vipsInitMutex.Unlock()
	return vipsAvailable
}

// probeWithVips loads a source with libvips and reports its dimensions.
func probeWithVips(source string) (Dimensions, error) {
	if !IsVipsAvailable() {
		return Dimensions{}, fmt.Errorf("libvips not available")
	}

	ref, err := vips.LoadImageFromFile(source, vips.NewImportParams())
	if err != nil {
		return Dimensions{}, fmt.Errorf("vips failed to load image: %w", err)
	}
	defer ref.Close()

	return Dimensions{Width: ref.Width(), Height: ref.Height()}, nil
}
