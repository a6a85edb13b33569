package catalog

import (
	"fmt"
	"path"
	"strings"
)

// Asset is a fixed-shape photo record supplied by the data-fetch
// collaborator. The record is immutable once handed to the viewer for a
// viewing session; presence of FallbackRef is what tags an asset as having
// a pre-generated lower-fidelity rendition.
type Asset struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	PrimaryRef  string `json:"primaryRef"`
	FallbackRef string `json:"fallbackRef,omitempty"`
}

// HasFallback reports whether a pre-generated fallback rendition exists.
func (a Asset) HasFallback() bool {
	return a.FallbackRef != ""
}

// Validate checks the record shape at the ingestion boundary. Records from
// the data-fetch collaborator are loosely shaped; everything downstream
// assumes a validated Asset.
func (a Asset) Validate() error {
	if a.Filename == "" {
		return fmt.Errorf("asset %d: filename is required", a.ID)
	}
	if a.PrimaryRef == "" {
		return fmt.Errorf("asset %d (%s): primary source reference is required", a.ID, a.Filename)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("asset %d (%s): intrinsic dimensions %dx%d are invalid",
			a.ID, a.Filename, a.Width, a.Height)
	}
	return nil
}

// Path segments used to derive a fallback reference from a primary one when
// no explicit fallback reference was supplied.
const (
	OriginalsSegment = "originals"
	FallbackSegment  = "fallback"
)

// DeriveFallbackRef applies the known substitution rule: the OriginalsSegment
// path segment of the primary reference is replaced with FallbackSegment.
// Returns false when the primary reference contains no originals segment, in
// which case no derived fallback exists.
func DeriveFallbackRef(primaryRef string) (string, bool) {
	segments := strings.Split(path.Clean(primaryRef), "/")
	replaced := false
	for i, segment := range segments {
		if segment == OriginalsSegment {
			segments[i] = FallbackSegment
			replaced = true
			break
		}
	}
	if !replaced {
		return "", false
	}
	return strings.Join(segments, "/"), true
}
