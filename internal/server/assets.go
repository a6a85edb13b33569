package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/logging"
)

// AssetListResponse is the paginated-free listing of the whole catalog. The
// grid client pages visually; the full record set stays small enough to
// serve in one response.
type AssetListResponse struct {
	Assets []catalog.Asset `json:"assets"`
	Total  int             `json:"total"`
}

// ListAssets returns every catalog record, ordered by filename.
func (h *Handlers) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.catalog.List(r.Context())
	if err != nil {
		logging.Error("failed to list assets: %v", err)
		writeJSONError(w, "failed to list assets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, AssetListResponse{Assets: assets, Total: len(assets)})
}

// GetAsset returns a single catalog record by id.
func (h *Handlers) GetAsset(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, asset)
}

// GetStats returns catalog totals.
func (h *Handlers) GetStats(w http.ResponseWriter, _ *http.Request) {
	stats := h.stats.GetStats()

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]int{
		"totalAssets":    stats.TotalAssets,
		"totalFallbacks": stats.TotalFallbacks,
	})
}

// TriggerRescan starts a library re-scan without waiting for the next
// periodic tick.
func (h *Handlers) TriggerRescan(w http.ResponseWriter, _ *http.Request) {
	h.ingestor.TriggerIngest()
	writeJSONStatus(w, "scan started")
}

// assetID extracts and validates the {id} route variable. On failure it
// writes the error response and reports false.
func assetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSONError(w, "invalid asset id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
