package render

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
}

func writeTestJPEG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("failed to encode test JPEG: %v", err)
	}
}

func TestFileProberPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	writeTestPNG(t, path, 640, 480)

	dims, err := FileProber{}.Probe(path)
	if err != nil {
		t.Fatalf("Probe() failed: %v", err)
	}
	if dims.Width != 640 || dims.Height != 480 {
		t.Errorf("Probe() = %dx%d, want 640x480", dims.Width, dims.Height)
	}
}

func TestFileProberJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jpg")
	writeTestJPEG(t, path, 320, 240)

	dims, err := FileProber{}.Probe(path)
	if err != nil {
		t.Fatalf("Probe() failed: %v", err)
	}
	if dims.Width != 320 || dims.Height != 240 {
		t.Errorf("Probe() = %dx%d, want 320x240", dims.Width, dims.Height)
	}
}

func TestFileProberMissingFile(t *testing.T) {
	_, err := FileProber{}.Probe("/nonexistent/missing.jpg")
	if err == nil {
		t.Error("Probe() on missing file should return error")
	}
}

func TestFileProberCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.jpg")

	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := (FileProber{}).Probe(path); err == nil {
		t.Error("Probe() on corrupt file should return error")
	}
}

func TestFileProberEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write empty file: %v", err)
	}

	if _, err := (FileProber{}).Probe(path); err == nil {
		t.Error("Probe() on empty file should return error")
	}
}
