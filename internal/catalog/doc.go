// Package catalog stores the photo library's asset records and acts as the
// data-fetch collaborator for the viewer.
//
// An Asset is a fixed-shape record: identifier, filename, intrinsic pixel
// dimensions, a primary (full-resolution) source reference and an optional
// pre-generated fallback reference. Records are validated at the ingestion
// boundary; everything downstream assumes a valid Asset.
//
// The catalog is backed by SQLite. Ingest walks a library's originals tree,
// probes dimensions through the render package, and pairs each original
// with its fallback rendition when one exists under the substituted
// fallback path. Actions implements the batch-action collaborator that
// keeps the selection store consistent with destructive operations.
package catalog
