package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/logging"
)

// SelectionResponse reports the selection state after a mutation.
type SelectionResponse struct {
	IDs   []int64 `json:"ids"`
	Count int     `json:"count"`
}

// selectAllRequest optionally narrows select-all to the ids visible on the
// client's current page. An empty or absent body means the whole catalog.
type selectAllRequest struct {
	IDs []int64 `json:"ids"`
}

func (h *Handlers) selectionResponse() SelectionResponse {
	ids := h.store.IDs()
	return SelectionResponse{IDs: ids, Count: len(ids)}
}

// GetSelection returns the current selection.
func (h *Handlers) GetSelection(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	resp := h.selectionResponse()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, resp)
}

// ToggleSelection flips membership for one asset.
func (h *Handlers) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id, ok := assetID(w, r)
	if !ok {
		return
	}

	if _, err := h.catalog.Get(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeJSONError(w, "asset not found", http.StatusNotFound)
			return
		}
		logging.Error("failed to get asset %d: %v", id, err)
		writeJSONError(w, "failed to get asset", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.store.Toggle(id)
	resp := h.selectionResponse()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, resp)
}

// SelectAll toggles between all-visible-selected and none selected. The
// request body may carry the visible id set; without one the whole catalog
// counts as visible.
func (h *Handlers) SelectAll(w http.ResponseWriter, r *http.Request) {
	var req selectAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	visible := req.IDs
	if len(visible) == 0 {
		assets, err := h.catalog.List(r.Context())
		if err != nil {
			logging.Error("failed to list assets: %v", err)
			writeJSONError(w, "failed to list assets", http.StatusInternalServerError)
			return
		}
		visible = make([]int64, 0, len(assets))
		for _, a := range assets {
			visible = append(visible, a.ID)
		}
	}

	h.mu.Lock()
	h.store.SelectAll(visible)
	resp := h.selectionResponse()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, resp)
}

// ClearSelection empties the selection.
func (h *Handlers) ClearSelection(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	h.store.Clear()
	resp := h.selectionResponse()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, resp)
}

// DeleteSelected deletes every selected asset from the catalog and, on
// success, clears the selection in one notification cycle.
func (h *Handlers) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	deleted, err := h.actions.DeleteSelected(r.Context())
	h.mu.Unlock()
	if err != nil {
		logging.Error("batch delete failed: %v", err)
		writeJSONError(w, "batch delete failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]int64{"deleted": deleted})
}
