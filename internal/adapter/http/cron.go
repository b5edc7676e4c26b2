package httpadapter

import (
	"log/slog"
	"net/http"
	"time"
)

// handleCronPublish runs one publication sweep at the current time and
// reports what changed. External schedulers call it when the in-process
// publisher is disabled.
func (h *Handler) handleCronPublish(w http.ResponseWriter, r *http.Request) {
	res, err := h.articles.PublishDueArticles(r.Context(), time.Time{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("cron publish", slog.Int("published", res.PublishedCount))
	h.writeJSON(w, http.StatusOK, res)
}
