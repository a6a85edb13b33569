package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/logging"
	"photo-viewer/internal/viewer"
)

// zoomRequest carries a wheel/pinch scale delta.
type zoomRequest struct {
	Delta float64 `json:"delta"`
}

// pointerRequest carries pointer coordinates in container space.
type pointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OpenSession opens a viewing session for the asset. Any previous session
// is closed first; the engine allows one live session at a time.
func (h *Handlers) OpenSession(w http.ResponseWriter, r *http.Request) {
	id, ok := assetID(w, r)
	if !ok {
		return
	}

	asset, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeJSONError(w, "asset not found", http.StatusNotFound)
			return
		}
		logging.Error("failed to get asset %d: %v", id, err)
		writeJSONError(w, "failed to get asset", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	if h.session != nil {
		h.engine.Close(h.session)
	}
	h.session = h.engine.Open(asset)
	snap := h.engine.Snapshot(h.session)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, snap)
}

// GetSession returns a snapshot of the live session.
func (h *Handlers) GetSession(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.engine.Current()
	if !ok {
		writeJSONError(w, "no open session", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, snap)
}

// CloseSession closes the live session. Closing when nothing is open is a
// no-op.
func (h *Handlers) CloseSession(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	if h.session != nil {
		h.engine.Close(h.session)
		h.session = nil
	}
	h.mu.Unlock()

	writeJSONStatus(w, "closed")
}

// Zoom applies a scale delta to the live session's viewport.
func (h *Handlers) Zoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.gesture(w, func(s *viewer.Session) {
		h.engine.ZoomBy(s, req.Delta)
	})
}

// BeginDrag starts a pan gesture at the given pointer position.
func (h *Handlers) BeginDrag(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.gesture(w, func(s *viewer.Session) {
		h.engine.BeginDrag(s, req.X, req.Y)
	})
}

// ContinueDrag moves an active pan gesture.
func (h *Handlers) ContinueDrag(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.gesture(w, func(s *viewer.Session) {
		h.engine.ContinueDrag(s, req.X, req.Y)
	})
}

// EndDrag finishes an active pan gesture.
func (h *Handlers) EndDrag(w http.ResponseWriter, _ *http.Request) {
	h.gesture(w, func(s *viewer.Session) {
		h.engine.EndDrag(s)
	})
}

// ResetViewport restores the identity transform.
func (h *Handlers) ResetViewport(w http.ResponseWriter, _ *http.Request) {
	h.gesture(w, func(s *viewer.Session) {
		h.engine.Reset(s)
	})
}

// DoubleActivate returns the viewport to the fit transform, regardless of
// the current zoom or pan.
func (h *Handlers) DoubleActivate(w http.ResponseWriter, _ *http.Request) {
	h.gesture(w, func(s *viewer.Session) {
		h.engine.DoubleActivate(s)
	})
}

// gesture applies fn to the live session and responds with a fresh
// snapshot, or 404 when no session is open.
func (h *Handlers) gesture(w http.ResponseWriter, fn func(*viewer.Session)) {
	h.mu.Lock()
	s := h.session
	if s == nil {
		h.mu.Unlock()
		writeJSONError(w, "no open session", http.StatusNotFound)
		return
	}
	fn(s)
	snap := h.engine.Snapshot(s)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, snap)
}
