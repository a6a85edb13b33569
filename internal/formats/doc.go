// Package formats classifies media filenames by how the viewing environment
// is expected to handle their encoding.
//
// Formats fall into two classes: native formats the environment decodes
// directly, and fallback-capable formats (HEIC, TIFF, RAW derivatives and
// friends) for which a pre-generated lower-fidelity rendition should be kept
// ready in case the primary decode fails.
package formats
