// Package server provides HTTP request handlers for the photo viewer API.
//
// It includes handlers for:
//   - Catalog listing and per-asset lookup
//   - Viewing sessions and viewport gestures
//   - Selection state and batch actions
//   - Health checks, version, and application stats
package server
