package formats

import (
	"path/filepath"
	"strings"
)

// Class identifies how the viewing environment is expected to handle an
// asset's encoding.
type Class string

const (
	// ClassNative means the environment is assumed to decode the format directly.
	ClassNative Class = "native"
	// ClassFallbackCapable means the environment may not decode the format and
	// a pre-generated fallback rendition should be kept at hand.
	ClassFallbackCapable Class = "fallback-capable"
)

// FallbackClass is the classification result for a single filename.
// Kind carries the human-readable format name ("HEIC", "TIFF", ...) and is
// only set for fallback-capable formats; it is used verbatim in user notices.
type FallbackClass struct {
	Class Class
	Kind  string
}

// NeedsFallback reports whether the classified format requires the two-tier
// rendering strategy.
func (c FallbackClass) NeedsFallback() bool {
	return c.Class == ClassFallbackCapable
}

// FallbackKinds maps file extensions whose in-environment decoding cannot be
// assumed to the format name shown in notices.
var FallbackKinds = map[string]string{
	".heic": "HEIC",
	".heif": "HEIF",
	".tiff": "TIFF",
	".tif":  "TIFF",
	".avif": "AVIF",
	".jxl":  "JPEG XL",
	".raw":  "RAW",
	".cr2":  "RAW",
	".nef":  "RAW",
	".arw":  "RAW",
	".dng":  "RAW",
}

// NativeExtensions maps file extensions that every supported viewing
// environment decodes directly.
var NativeExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
}

// Classify maps a filename to its fallback class. It is pure and total:
// the same filename always yields the same class, and unknown extensions
// classify as native rather than assuming every unfamiliar format needs a
// fallback.
func Classify(filename string) FallbackClass {
	ext := strings.ToLower(filepath.Ext(filename))
	if kind, ok := FallbackKinds[ext]; ok {
		return FallbackClass{Class: ClassFallbackCapable, Kind: kind}
	}
	return FallbackClass{Class: ClassNative}
}
