package httpadapter

import (
	"net/http"
)

// handleImpression records one display of the ad in the {id} path
// parameter. Unknown ads result in HTTP 404.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.ads.RecordImpression(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClick records a click reported by the page itself.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.ads.RecordClick(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClickRedirect records a click and redirects the reader to the ad's
// target URL. Ads without a target URL answer HTTP 204.
func (h *Handler) handleClickRedirect(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	targetURL, err := h.ads.RecordClick(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if targetURL == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, targetURL, http.StatusFound)
}
