package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
)

type targetRequest struct {
	PageType       string  `json:"page_type" validate:"required,max=64"`
	PageIdentifier *string `json:"page_identifier" validate:"omitempty,max=255"`
}

// adRequest is the body of create and update calls. Omitted is_active
// defaults to true and omitted start_date to the time of the request.
type adRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	HTMLContent string          `json:"html_content"`
	TargetURL   string          `json:"target_url" validate:"omitempty,url"`
	Position    string          `json:"position" validate:"required,ad_position"`
	Priority    int             `json:"priority" validate:"gte=0"`
	IsActive    *bool           `json:"is_active"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Targets     []targetRequest `json:"targets" validate:"dive"`
	ZoneIDs     []uuid.UUID     `json:"zone_ids"`
}

func (req adRequest) toInput() port.AdInput {
	in := port.AdInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		HTMLContent: req.HTMLContent,
		TargetURL:   req.TargetURL,
		Position:    domain.Position(req.Position),
		Priority:    req.Priority,
		IsActive:    true,
		StartDate:   time.Now().UTC(),
		EndDate:     req.EndDate,
		ZoneIDs:     req.ZoneIDs,
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}
	for _, t := range req.Targets {
		in.Targets = append(in.Targets, port.TargetInput{PageType: t.PageType, PageIdentifier: t.PageIdentifier})
	}
	return in
}

type activeRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type zoneRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f port.AdListFilter
	)
	if s := q.Get("position"); s != "" {
		pos := domain.Position(s)
		f.Position = &pos
	}
	if s := q.Get("active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			h.respondError(w, r, fmt.Errorf("%w: invalid 'active' flag", port.ErrValidation))
			return
		}
		f.Active = &active
	}

	ads, err := h.ads.ListAds(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out := make([]adResponse, 0, len(ads))
	for i := range ads {
		out = append(out, toAdResponse(&ads[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	ad, err := h.ads.CreateAd(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAdResponse(ad))
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	ad, err := h.ads.GetAd(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponse(ad))
}

// handleUpdateAd overwrites an ad. The targets and zone_ids in the body
// replace the stored sets; omitting them clears the ad's targeting.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req adRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	ad, err := h.ads.UpdateAd(r.Context(), id, req.toInput())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponse(ad))
}

func (h *Handler) handleSetAdActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req activeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := h.ads.SetAdActive(r.Context(), id, *req.IsActive); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.ads.DeleteAd(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.ads.ListZones(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out := make([]zoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, zoneResponse{ID: z.ID, Name: z.Name, Description: z.Description, CreatedAt: z.CreatedAt})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateZone(w http.ResponseWriter, r *http.Request) {
	var req zoneRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	z, err := h.ads.CreateZone(r.Context(), port.ZoneInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, zoneResponse{ID: z.ID, Name: z.Name, Description: z.Description, CreatedAt: z.CreatedAt})
}
