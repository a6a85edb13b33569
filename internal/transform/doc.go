// Package transform provides the pure math behind the interactive viewport:
// zoom clamping, translation bounds, and fit-to-container sizing. It holds
// no state; the viewer package drives it from pointer and wheel input.
package transform
