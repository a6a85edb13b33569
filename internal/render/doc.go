// Package render provides the primary/fallback render targets used by the
// viewer's two-tier load strategy.
//
// A Layer is an in-memory render target: it tracks the attached source
// reference, visibility (opacity 0/1), the rendered pixel size, and the
// affine transform applied by the viewport. Two layers are stacked while a
// fallback-capable asset loads so that the fallback rendition is visible
// immediately while the primary decode is still being attempted.
//
// Whether a source can actually be rendered is decided by a Prober. The
// FileProber decodes image headers with the standard image registry (plus
// WebP), falling back to a full decode via the imaging library and to
// libvips for formats such as HEIC when available. Probes run on a bounded
// worker Pool so decode work never blocks the viewer's dispatch loop.
package render
