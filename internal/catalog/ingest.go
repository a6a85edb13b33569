package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photo-viewer/internal/formats"
	"photo-viewer/internal/logging"
	"photo-viewer/internal/render"
)

// isImageExt reports whether the extension belongs to a known image format,
// native or fallback-capable.
func isImageExt(ext string) bool {
	if formats.NativeExtensions[ext] {
		return true
	}
	_, ok := formats.FallbackKinds[ext]
	return ok
}

// Ingest walks the originals tree under libraryDir and upserts one asset per
// image file found. Intrinsic dimensions come from the prober; a fallback
// reference is recorded when the substituted fallback path exists on disk.
// Files that cannot be probed are skipped with a warning rather than
// aborting the walk. Returns the number of assets ingested.
func (c *Catalog) Ingest(ctx context.Context, libraryDir string, prober render.Prober) (int, error) {
	root := filepath.Join(libraryDir, OriginalsSegment)
	logging.Info("Ingesting assets from %s", root)

	start := time.Now()
	observer().ObserveIngestRun()

	ingested := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !isImageExt(ext) {
			return nil
		}

		dims, probeErr := prober.Probe(path)
		if probeErr != nil {
			logging.Warn("Skipping %s: %v", path, probeErr)
			observer().ObserveIngestError()
			return nil
		}

		asset := Asset{
			Filename:   d.Name(),
			Width:      dims.Width,
			Height:     dims.Height,
			PrimaryRef: path,
		}

		if derived, ok := DeriveFallbackRef(path); ok {
			if _, statErr := os.Stat(derived); statErr == nil {
				asset.FallbackRef = derived
			}
		}

		if upsertErr := c.Upsert(ctx, &asset); upsertErr != nil {
			logging.Warn("Failed to ingest %s: %v", path, upsertErr)
			observer().ObserveIngestError()
			return nil
		}

		ingested++
		observer().ObserveIngestFile()
		return nil
	})

	observer().ObserveIngestDone(time.Since(start).Seconds())
	if err != nil {
		return ingested, err
	}

	logging.Info("Ingest complete: %d assets in %v", ingested, time.Since(start).Round(time.Millisecond))
	return ingested, nil
}
