package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photo-viewer/internal/render"
)

// stubProber avoids real decodes during ingest tests. Sources whose names
// contain "broken" fail to probe.
type stubProber struct{}

func (stubProber) Probe(source string) (render.Dimensions, error) {
	if strings.Contains(source, "broken") {
		return render.Dimensions{}, errors.New("decode failed")
	}
	return render.Dimensions{Width: 4000, Height: 3000}, nil
}

func writeLibraryFile(t *testing.T, libraryDir, rel string) {
	t.Helper()

	path := filepath.Join(libraryDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create library dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("image bytes"), 0o644); err != nil {
		t.Fatalf("failed to write library file: %v", err)
	}
}

func TestIngestWalksOriginals(t *testing.T) {
	c := openTestCatalog(t)
	libraryDir := t.TempDir()

	writeLibraryFile(t, libraryDir, "originals/a.jpg")
	writeLibraryFile(t, libraryDir, "originals/2024/b.heic")
	writeLibraryFile(t, libraryDir, "originals/notes.txt") // not an image

	ingested, err := c.Ingest(context.Background(), libraryDir, stubProber{})
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if ingested != 2 {
		t.Errorf("Ingest() = %d, want 2", ingested)
	}

	assets, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, asset := range assets {
		if asset.Width != 4000 || asset.Height != 3000 {
			t.Errorf("%s dimensions = %dx%d, want probed 4000x3000", asset.Filename, asset.Width, asset.Height)
		}
	}
}

func TestIngestRecordsExistingFallback(t *testing.T) {
	c := openTestCatalog(t)
	libraryDir := t.TempDir()

	writeLibraryFile(t, libraryDir, "originals/with.heic")
	writeLibraryFile(t, libraryDir, "fallback/with.heic")
	writeLibraryFile(t, libraryDir, "originals/without.heic")

	if _, err := c.Ingest(context.Background(), libraryDir, stubProber{}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	assets, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	byName := make(map[string]Asset)
	for _, asset := range assets {
		byName[asset.Filename] = asset
	}

	if !byName["with.heic"].HasFallback() {
		t.Error("asset with on-disk fallback rendition should record a fallback ref")
	}
	if byName["without.heic"].HasFallback() {
		t.Error("asset without on-disk fallback rendition should not record a fallback ref")
	}
}

func TestIngestSkipsUnprobeableFiles(t *testing.T) {
	c := openTestCatalog(t)
	libraryDir := t.TempDir()

	writeLibraryFile(t, libraryDir, "originals/good.jpg")
	writeLibraryFile(t, libraryDir, "originals/broken.jpg")

	ingested, err := c.Ingest(context.Background(), libraryDir, stubProber{})
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if ingested != 1 {
		t.Errorf("Ingest() = %d, want 1 (unprobeable file skipped)", ingested)
	}
}

func TestIngestIsIdempotent(t *testing.T) {
	c := openTestCatalog(t)
	libraryDir := t.TempDir()

	writeLibraryFile(t, libraryDir, "originals/a.jpg")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.Ingest(ctx, libraryDir, stubProber{}); err != nil {
			t.Fatalf("Ingest run %d failed: %v", i+1, err)
		}
	}

	count, err := c.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count after repeated ingest = %d, want 1", count)
	}
}

func TestIngestMissingOriginalsDir(t *testing.T) {
	c := openTestCatalog(t)

	if _, err := c.Ingest(context.Background(), t.TempDir(), stubProber{}); err == nil {
		t.Error("Ingest with no originals directory should return error")
	}
}

// recordingObserver counts observer callbacks during a test ingest.
type recordingObserver struct {
	runs, files, errors int
	lastDuration        float64
}

func (o *recordingObserver) ObserveIngestRun()           { o.runs++ }
func (o *recordingObserver) ObserveIngestFile()          { o.files++ }
func (o *recordingObserver) ObserveIngestError()         { o.errors++ }
func (o *recordingObserver) ObserveIngestDone(d float64) { o.lastDuration = d }

func TestIngestReportsToObserver(t *testing.T) {
	recorder := &recordingObserver{}
	SetObserver(recorder)
	t.Cleanup(func() { SetObserver(nil) })

	c := openTestCatalog(t)
	libraryDir := t.TempDir()

	writeLibraryFile(t, libraryDir, "originals/a.jpg")
	writeLibraryFile(t, libraryDir, "originals/b.heic")
	writeLibraryFile(t, libraryDir, "originals/broken.jpg")

	if _, err := c.Ingest(context.Background(), libraryDir, stubProber{}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if recorder.runs != 1 {
		t.Errorf("observed runs = %d, want 1", recorder.runs)
	}
	if recorder.files != 2 {
		t.Errorf("observed files = %d, want 2", recorder.files)
	}
	if recorder.errors != 1 {
		t.Errorf("observed errors = %d, want 1", recorder.errors)
	}
	if recorder.lastDuration < 0 {
		t.Errorf("observed duration = %v, want >= 0", recorder.lastDuration)
	}
}

func TestIngestWithoutObserver(t *testing.T) {
	SetObserver(nil)

	c := openTestCatalog(t)
	libraryDir := t.TempDir()
	writeLibraryFile(t, libraryDir, "originals/a.jpg")

	// Must not panic with no observer installed.
	if _, err := c.Ingest(context.Background(), libraryDir, stubProber{}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
}

func TestIsImageExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".jpg", true},
		{".png", true},
		{".heic", true},
		{".cr2", true},
		{".txt", false},
		{".mp4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := isImageExt(tt.ext); got != tt.want {
				t.Errorf("isImageExt(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}
