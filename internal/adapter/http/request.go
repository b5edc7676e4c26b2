package httpadapter

import (
	"net/http"

	"newsdesk/internal/core/domain"
)

// handlePlacement resolves the ad for one slot. It reads `position`
// (required), `page_type` (default "global") and `page_id` from the query
// string. It returns the selected ad as JSON, or HTTP 204 No Content when no
// ad qualifies. Missing or unknown positions produce HTTP 400.
func (h *Handler) handlePlacement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.AdQuery{
		Position: domain.Position(q.Get("position")),
		PageType: q.Get("page_type"),
	}
	if id := q.Get("page_id"); id != "" {
		query.PageIdentifier = &id
	}

	ad, err := h.ads.ResolveAd(r.Context(), query)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if ad == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, toPlacementResponse(ad))
}
