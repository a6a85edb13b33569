package viewer

// Pointer and wheel handlers. Each runs on the dispatch loop, is a no-op
// for a session that is no longer live, and only touches the render layers
// when the viewport actually changed.

// ZoomBy adjusts the session zoom by delta (from wheel input).
func (e *Engine) ZoomBy(s *Session, delta float64) {
	e.run(func() {
		if !e.live(s) {
			return
		}
		if s.viewport.ZoomBy(delta) {
			s.applyTransform()
			observer().ObserveGesture("zoom")
		}
	})
}

// BeginDrag records the drag anchor at the pointer position.
func (e *Engine) BeginDrag(s *Session, pointerX, pointerY float64) {
	e.run(func() {
		if !e.live(s) {
			return
		}
		s.viewport.BeginDrag(pointerX, pointerY)
	})
}

// ContinueDrag moves the asset with the pointer, clamped per axis.
func (e *Engine) ContinueDrag(s *Session, pointerX, pointerY float64) {
	e.run(func() {
		if !e.live(s) {
			return
		}
		if s.viewport.ContinueDrag(pointerX, pointerY) {
			s.applyTransform()
			observer().ObserveGesture("drag")
		}
	})
}

// EndDrag ends a drag; the transform persists.
func (e *Engine) EndDrag(s *Session) {
	e.run(func() {
		if !e.live(s) {
			return
		}
		s.viewport.EndDrag()
	})
}

// Reset returns the viewport to the fit transform on both layers.
func (e *Engine) Reset(s *Session) {
	e.run(func() {
		if !e.live(s) {
			return
		}
		if s.viewport.Reset() {
			s.applyTransform()
			observer().ObserveGesture("reset")
		}
	})
}

// DoubleActivate is the double-click/double-tap fast path back to fit.
func (e *Engine) DoubleActivate(s *Session) {
	e.Reset(s)
}
