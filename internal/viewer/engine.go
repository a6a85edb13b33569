package viewer

import (
	"photo-viewer/internal/catalog"
	"photo-viewer/internal/formats"
	"photo-viewer/internal/logging"
	"photo-viewer/internal/notify"
	"photo-viewer/internal/render"
)

// ProbeRunner starts asynchronous source probes. The done callback runs on
// an arbitrary goroutine; the engine posts it back onto the dispatch loop.
// render.Pool is the production implementation.
type ProbeRunner interface {
	Submit(source string, tier render.Tier, done func(render.Dimensions, error))
}

// Options configures an Engine.
type Options struct {
	// Dispatcher serializes engine events. Required.
	Dispatcher Dispatcher
	// Probes runs decode probes. Required.
	Probes ProbeRunner
	// Notifier receives user-facing notices. Defaults to notify.LogNotifier.
	Notifier notify.Notifier
	// ContainerWidth and ContainerHeight are the visible frame dimensions
	// used for viewport clamping. Default 1280x800.
	ContainerWidth  int
	ContainerHeight int
}

// Engine owns the asset-view lifecycle: it opens sessions, drives the
// two-tier fallback load protocol, and routes pointer/wheel input to the
// session viewport. At most one session is live at a time; opening a new
// asset implicitly cancels interest in the previous session's in-flight
// probes.
type Engine struct {
	disp       Dispatcher
	probes     ProbeRunner
	notifier   notify.Notifier
	containerW int
	containerH int

	// gen and current are only touched on the dispatch loop.
	gen     uint64
	current *Session
}

// NewEngine creates an engine from options.
func NewEngine(opts Options) *Engine {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	containerW, containerH := opts.ContainerWidth, opts.ContainerHeight
	if containerW <= 0 {
		containerW = 1280
	}
	if containerH <= 0 {
		containerH = 800
	}
	return &Engine{
		disp:       opts.Dispatcher,
		probes:     opts.Probes,
		notifier:   notifier,
		containerW: containerW,
		containerH: containerH,
	}
}

// Open creates a view session for the asset and starts the load protocol.
// Any previous session is invalidated, and the viewport starts from the
// identity transform unconditionally.
func (e *Engine) Open(asset catalog.Asset) *Session {
	class := formats.Classify(asset.Filename)
	var s *Session

	e.run(func() {
		e.gen++
		if e.current != nil {
			e.current.closed = true
		}

		s = newSession(e.gen, asset, class, e.containerW, e.containerH)
		e.current = s
		observer().ObserveOpen(string(class.Class))
		logging.Debug("Session %s opened for asset %d (%s, class %s)",
			s.id, asset.ID, asset.Filename, class.Class)

		e.begin(s)
	})
	return s
}

// Close invalidates the session. Probe completions arriving afterwards are
// discarded by the liveness guard; closing a session that was already
// replaced is a no-op.
func (e *Engine) Close(s *Session) {
	e.run(func() {
		s.closed = true
		if e.current == s {
			e.current = nil
			e.gen++
			logging.Debug("Session %s closed", s.id)
		}
	})
}

// Snapshot returns an atomic view of the session, taken on the dispatch
// loop. Do not call from within a dispatched event.
func (e *Engine) Snapshot(s *Session) Snapshot {
	var snap Snapshot
	done := make(chan struct{})
	e.disp.Post(func() {
		snap = s.snapshot()
		close(done)
	})
	<-done
	return snap
}

// Current returns a snapshot of the live session, or false when no session
// is open.
func (e *Engine) Current() (Snapshot, bool) {
	var snap Snapshot
	var ok bool
	done := make(chan struct{})
	e.disp.Post(func() {
		if e.current != nil {
			snap = e.current.snapshot()
			ok = true
		}
		close(done)
	})
	<-done
	return snap, ok
}

// run posts fn and waits for it to execute, keeping Open/Close synchronous
// for callers while still serialized on the loop.
func (e *Engine) run(fn func()) {
	done := make(chan struct{})
	e.disp.Post(func() {
		fn()
		close(done)
	})
	<-done
}

// live reports whether a completion or input event still belongs to the
// active session. Runs on the dispatch loop.
func (e *Engine) live(s *Session) bool {
	return !s.closed && e.current == s && s.gen == e.gen
}

// begin dispatches the initial probes for a fresh session. Runs on the
// dispatch loop.
func (e *Engine) begin(s *Session) {
	switch {
	case s.class.NeedsFallback() && s.asset.HasFallback():
		// Dual-layer strategy: the fallback rendition is shown immediately
		// underneath while the primary decode is attempted on the hidden
		// top layer. No flash, and the viewport transform applies to both.
		s.fallback.Attach(s.asset.FallbackRef)
		s.fallback.SetVisible(true)
		s.primary.Attach(s.asset.PrimaryRef)

		s.state = StateLoadingPrimary
		e.probes.Submit(s.asset.FallbackRef, render.TierFallback, e.completion(s, e.onFallbackLayerSized))
		e.probes.Submit(s.asset.PrimaryRef, render.TierPrimary, e.completion(s, e.onPrimaryDone))

	default:
		// Native assets and fallback-capable assets without a pre-generated
		// rendition attempt the primary source alone.
		s.primary.Attach(s.asset.PrimaryRef)
		s.state = StateLoadingPrimary
		e.probes.Submit(s.asset.PrimaryRef, render.TierPrimary, e.completion(s, e.onPrimaryDone))
	}
}

// completion wraps a probe handler with the post-to-loop hop and the
// liveness guard.
func (e *Engine) completion(s *Session, handler func(*Session, render.Dimensions, error)) func(render.Dimensions, error) {
	return func(dims render.Dimensions, err error) {
		e.disp.Post(func() {
			if !e.live(s) {
				observer().ObserveStaleCompletion()
				logging.Debug("Discarding stale probe completion for session %s", s.id)
				return
			}
			handler(s, dims, err)
		})
	}
}

// onFallbackLayerSized records the rendered size of the visible bottom
// layer in the dual-layer case. It never drives the state machine; the
// bottom layer is presentation only.
func (e *Engine) onFallbackLayerSized(s *Session, dims render.Dimensions, err error) {
	if err != nil {
		logging.Warn("Fallback rendition failed to render for asset %d: %v", s.asset.ID, err)
		return
	}
	s.fallback.Complete(dims.Width, dims.Height)
}

// onPrimaryDone handles the primary source probe outcome.
func (e *Engine) onPrimaryDone(s *Session, dims render.Dimensions, err error) {
	if s.handled {
		// Duplicate failure signal; a terminal transition already ran.
		return
	}

	if err == nil {
		s.primary.Complete(dims.Width, dims.Height)
		s.primary.SetVisible(true)
		// Hiding the bottom layer is implicit: the opaque top layer covers it.
		e.terminal(s, StatePrimaryReady, nil)
		return
	}

	logging.Debug("Primary probe failed for asset %d (%s): %v", s.asset.ID, s.asset.Filename, err)
	s.state = StatePrimaryFailed

	switch {
	case s.class.NeedsFallback() && s.asset.HasFallback():
		// The bottom layer is already showing the rendition.
		notice := notify.FormatFallback(s.class.Kind)
		e.terminal(s, StateFallbackReady, &notice)

	case s.class.NeedsFallback():
		e.tryDerivedFallback(s)

	default:
		notice := notify.GenericUnavailable()
		s.placeholder = true
		e.terminal(s, StateNoFallbackPlaceholder, &notice)
	}
}

// tryDerivedFallback is the single automatic retry: substitute the
// originals segment of the primary reference and probe the result. Runs on
// the dispatch loop.
func (e *Engine) tryDerivedFallback(s *Session) {
	derived, ok := catalog.DeriveFallbackRef(s.asset.PrimaryRef)
	if !ok || s.derivedTried {
		notice := notify.GenericUnavailable()
		s.placeholder = true
		e.terminal(s, StateFallbackFailed, &notice)
		return
	}

	s.derivedTried = true
	s.state = StateLoadingFallback
	s.fallback.Attach(derived)
	observer().ObserveDerivedRetry()
	logging.Debug("Attempting derived fallback %s for asset %d", derived, s.asset.ID)
	e.probes.Submit(derived, render.TierFallback, e.completion(s, e.onDerivedDone))
}

// onDerivedDone handles the derived fallback probe outcome.
func (e *Engine) onDerivedDone(s *Session, dims render.Dimensions, err error) {
	if s.handled {
		return
	}

	if err != nil {
		logging.Debug("Derived fallback failed for asset %d: %v", s.asset.ID, err)
		notice := notify.GenericUnavailable()
		s.placeholder = true
		e.terminal(s, StateFallbackFailed, &notice)
		return
	}

	s.fallback.Complete(dims.Width, dims.Height)
	s.fallback.SetVisible(true)
	notice := notify.FormatFallback(s.class.Kind)
	e.terminal(s, StateFallbackReady, &notice)
}

// terminal applies the at-most-one terminal transition for the session and
// raises its notice, if any. Runs on the dispatch loop.
func (e *Engine) terminal(s *Session, state LoadState, notice *notify.Notice) {
	if s.handled {
		return
	}
	s.handled = true
	s.state = state
	observer().ObserveTerminal(string(state), s.class.Kind)
	logging.Debug("Session %s terminal state %s", s.id, state)

	if notice != nil {
		s.notice = notice
		observer().ObserveNotice(notice.Kind)
		e.notifier.Notify(*notice)
	}
}
