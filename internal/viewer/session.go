package viewer

import (
	"github.com/google/uuid"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/formats"
	"photo-viewer/internal/notify"
	"photo-viewer/internal/render"
)

// LoadState is the per-session position in the fallback load protocol.
type LoadState string

const (
	// StateIdle is the state before the first load is dispatched.
	StateIdle LoadState = "idle"
	// StateLoadingPrimary means the primary source probe is in flight.
	StateLoadingPrimary LoadState = "loading_primary"
	// StatePrimaryReady is terminal: the primary source is displayed.
	StatePrimaryReady LoadState = "primary_ready"
	// StatePrimaryFailed means the primary probe failed; a fallback tier may follow.
	StatePrimaryFailed LoadState = "primary_failed"
	// StateLoadingFallback means the derived fallback probe is in flight.
	StateLoadingFallback LoadState = "loading_fallback"
	// StateFallbackReady is terminal: the fallback rendition is displayed.
	StateFallbackReady LoadState = "fallback_ready"
	// StateFallbackFailed is terminal: no rendition could be shown.
	StateFallbackFailed LoadState = "fallback_failed"
	// StateNoFallbackPlaceholder is terminal: a native asset's single load failed.
	StateNoFallbackPlaceholder LoadState = "no_fallback_placeholder"
)

// Terminal reports whether no further automatic transition occurs from s.
func (s LoadState) Terminal() bool {
	switch s {
	case StatePrimaryReady, StateFallbackReady, StateFallbackFailed, StateNoFallbackPlaceholder:
		return true
	}
	return false
}

// Session is one asset-view session: the load state, the two stacked render
// layers, and the viewport. Sessions are created by Engine.Open, invalidated
// by the next Open or by Close, and must only be touched on the dispatch
// loop.
type Session struct {
	id    uuid.UUID
	gen   uint64
	asset catalog.Asset
	class formats.FallbackClass

	state        LoadState
	handled      bool // terminal transition already applied
	derivedTried bool
	placeholder  bool
	notice       *notify.Notice
	closed       bool

	primary  *render.Layer
	fallback *render.Layer
	viewport Viewport
}

func newSession(gen uint64, asset catalog.Asset, class formats.FallbackClass, containerW, containerH int) *Session {
	return &Session{
		id:       uuid.New(),
		gen:      gen,
		asset:    asset,
		class:    class,
		state:    StateIdle,
		primary:  render.NewLayer(render.TierPrimary),
		fallback: render.NewLayer(render.TierFallback),
		viewport: newViewport(asset.Width, asset.Height, containerW, containerH),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Asset returns the immutable asset record this session displays.
func (s *Session) Asset() catalog.Asset {
	return s.asset
}

// applyTransform pushes the viewport transform to both layers so they stay
// pixel-aligned while stacked.
func (s *Session) applyTransform() {
	tf := s.viewport.Transform()
	s.primary.ApplyTransform(tf)
	s.fallback.ApplyTransform(tf)
}

// Snapshot is an atomic, read-only view of a session, safe to hand outside
// the dispatch loop.
type Snapshot struct {
	SessionID       uuid.UUID      `json:"sessionId"`
	AssetID         int64          `json:"assetId"`
	State           LoadState      `json:"state"`
	Notice          *notify.Notice `json:"notice,omitempty"`
	Placeholder     bool           `json:"placeholder"`
	PrimaryVisible  bool           `json:"primaryVisible"`
	FallbackVisible bool           `json:"fallbackVisible"`
	Viewport        ViewportState  `json:"viewport"`
}

func (s *Session) snapshot() Snapshot {
	var notice *notify.Notice
	if s.notice != nil {
		copied := *s.notice
		notice = &copied
	}
	return Snapshot{
		SessionID:       s.id,
		AssetID:         s.asset.ID,
		State:           s.state,
		Notice:          notice,
		Placeholder:     s.placeholder,
		PrimaryVisible:  s.primary.Visible(),
		FallbackVisible: s.fallback.Visible(),
		Viewport:        s.viewport.State(),
	}
}
