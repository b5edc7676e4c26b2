package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// parseStatsReq reads optional `from`, `to` (RFC3339 timestamps) and
// `advertisement_id` query parameters. Missing bounds are left zero so the
// use case applies its default period.
func parseStatsReq(r *http.Request) (port.StatsReq, error) {
	var (
		q   = r.URL.Query()
		req port.StatsReq
		err error
	)
	if s := q.Get("from"); s != "" {
		if req.From, err = time.Parse(time.RFC3339, s); err != nil {
			return req, fmt.Errorf("%w: invalid 'from' timestamp", port.ErrValidation)
		}
	}
	if s := q.Get("to"); s != "" {
		if req.To, err = time.Parse(time.RFC3339, s); err != nil {
			return req, fmt.Errorf("%w: invalid 'to' timestamp", port.ErrValidation)
		}
	}
	if s := q.Get("advertisement_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return req, fmt.Errorf("%w: invalid advertisement_id", port.ErrValidation)
		}
		req.AdvertisementID = &id
	}
	return req, nil
}

// handleStatsOverview returns impressions, clicks and CTR over a period,
// by default the last 24 hours.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	req, err := parseStatsReq(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	stats, err := h.ads.GetStats(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleStatsReport streams the per-ad statistics workbook.
func (h *Handler) handleStatsReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseStatsReq(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	name, data, err := h.ads.ExportReport(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
