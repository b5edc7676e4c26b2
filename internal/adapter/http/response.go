package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, msg string) {
	h.writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

// respondError maps use case errors onto HTTP statuses. Unexpected errors
// are logged and reported without detail.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrValidation):
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, port.ErrConflict):
		h.writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// decodeJSON reads a JSON body into v and runs struct validation on it.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", getValidationErrorMessage(err))
		return false
	}
	return true
}

func (h *Handler) uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

type targetResponse struct {
	ID             uuid.UUID `json:"id"`
	PageType       string    `json:"page_type"`
	PageIdentifier *string   `json:"page_identifier"`
}

type adResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	HTMLContent string           `json:"html_content"`
	TargetURL   string           `json:"target_url"`
	Position    domain.Position  `json:"position"`
	Priority    int              `json:"priority"`
	IsActive    bool             `json:"is_active"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Impressions int64            `json:"impressions"`
	Clicks      int64            `json:"clicks"`
	Targets     []targetResponse `json:"targets"`
	ZoneIDs     []uuid.UUID      `json:"zone_ids"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toAdResponse(ad *domain.Advertisement) adResponse {
	targets := make([]targetResponse, 0, len(ad.Targets))
	for _, t := range ad.Targets {
		targets = append(targets, targetResponse{ID: t.ID, PageType: t.PageType, PageIdentifier: t.PageIdentifier})
	}
	zones := ad.ZoneIDs
	if zones == nil {
		zones = []uuid.UUID{}
	}
	return adResponse{
		ID:          ad.ID,
		Name:        ad.Name,
		Description: ad.Description,
		ImageURL:    ad.ImageURL,
		HTMLContent: ad.HTMLContent,
		TargetURL:   ad.TargetURL,
		Position:    ad.Position,
		Priority:    ad.Priority,
		IsActive:    ad.IsActive,
		StartDate:   ad.StartDate,
		EndDate:     ad.EndDate,
		Impressions: ad.Impressions,
		Clicks:      ad.Clicks,
		Targets:     targets,
		ZoneIDs:     zones,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}
}

// placementResponse is the public view of a served ad.
type placementResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	ImageURL      string          `json:"image_url"`
	HTMLContent   string          `json:"html_content"`
	TargetURL     string          `json:"target_url"`
	Position      domain.Position `json:"position"`
	ClickURL      string          `json:"click_url"`
	ImpressionURL string          `json:"impression_url"`
}

func toPlacementResponse(ad *domain.Advertisement) placementResponse {
	return placementResponse{
		ID:            ad.ID,
		Name:          ad.Name,
		ImageURL:      ad.ImageURL,
		HTMLContent:   ad.HTMLContent,
		TargetURL:     ad.TargetURL,
		Position:      ad.Position,
		ClickURL:      "/api/v1/ads/" + ad.ID.String() + "/click",
		ImpressionURL: "/api/v1/ads/" + ad.ID.String() + "/impression",
	}
}

type zoneResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type articleResponse struct {
	ID              uuid.UUID            `json:"id"`
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Content         string               `json:"content"`
	Excerpt         string               `json:"excerpt"`
	Status          domain.ArticleStatus `json:"status"`
	PublishedAt     *time.Time           `json:"published_at"`
	ScheduledAt     *time.Time           `json:"scheduled_at"`
	AuthorName      string               `json:"author_name"`
	MetaTitle       string               `json:"meta_title"`
	MetaDescription string               `json:"meta_description"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		Content:         a.Content,
		Excerpt:         a.Excerpt,
		Status:          a.Status,
		PublishedAt:     a.PublishedAt,
		ScheduledAt:     a.ScheduledAt,
		AuthorName:      a.AuthorName,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toArticleResponses(list []domain.Article) []articleResponse {
	out := make([]articleResponse, 0, len(list))
	for i := range list {
		out = append(out, toArticleResponse(&list[i]))
	}
	return out
}
