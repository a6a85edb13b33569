package render

import (
	"fmt"
	"image"
	"os"

	"photo-viewer/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// Dimensions holds the pixel size reported by a successful probe.
type Dimensions struct {
	Width  int
	Height int
}

// Prober decides whether a source reference can be rendered and, on success,
// reports its pixel size. A probe error means the source would fail to
// display in the target environment.
type Prober interface {
	Probe(source string) (Dimensions, error)
}

// FileProber probes file-backed source references by decoding them. The
// header is inspected first; formats the standard registry cannot handle are
// handed to libvips when it is available, then to a full decode through the
// imaging library as a last attempt.
type FileProber struct{}

// Probe implements Prober.
func (FileProber) Probe(source string) (Dimensions, error) {
	if _, err := os.Stat(source); err != nil {
		return Dimensions{}, fmt.Errorf("source not accessible: %w", err)
	}

	if dims, err := decodeConfig(source); err == nil {
		return dims, nil
	} else {
		logging.Debug("Header decode failed for %s: %v, trying fallback decoders", source, err)
	}

	if IsVipsAvailable() {
		if dims, err := probeWithVips(source); err == nil {
			return dims, nil
		} else {
			logging.Debug("Vips decode failed for %s: %v", source, err)
		}
	}

	img, err := imaging.Open(source, imaging.AutoOrientation(true))
	if err != nil {
		return Dimensions{}, fmt.Errorf("all decode methods failed for %s: %w", source, err)
	}

	bounds := img.Bounds()
	return Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// decodeConfig reads image dimensions from the header without a full decode.
func decodeConfig(source string) (Dimensions, error) {
	file, err := os.Open(source)
	if err != nil {
		return Dimensions{}, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", source, err)
		}
	}()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{Width: config.Width, Height: config.Height}, nil
}
