// Package viewer implements the adaptive media viewer: the format-fallback
// loader and the interactive viewport, bound together by per-asset view
// sessions.
//
// The engine runs a single-threaded, cooperative model. Every state
// transition happens on the dispatch loop, whether it originates from user
// input or from a decode probe completing on a worker goroutine. A probe
// completion may arrive at any time relative to user actions, so every
// completion is guarded by a liveness check: a stale completion for a
// closed or replaced session is a no-op.
//
// Load states for one session move strictly forward:
//
//	Idle → LoadingPrimary → {PrimaryReady | PrimaryFailed}
//	PrimaryFailed → LoadingFallback → {FallbackReady | FallbackFailed}
//
// with NoFallbackPlaceholder as the terminal state for a failed native
// asset. Exactly one terminal state holds per session, and reaching it
// raises at most one user-facing notice.
package viewer
