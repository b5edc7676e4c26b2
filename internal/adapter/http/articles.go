package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
)

type articleRequest struct {
	Title           string     `json:"title" validate:"required,max=500"`
	Slug            string     `json:"slug" validate:"max=255"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt" validate:"max=1000"`
	Status          string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED SCHEDULED"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	AuthorName      string     `json:"author_name" validate:"max=255"`
	MetaTitle       string     `json:"meta_title" validate:"max=255"`
	MetaDescription string     `json:"meta_description" validate:"max=500"`
}

type scheduleRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at" validate:"required"`
}

// pageParams reads `limit` and `offset`. Absent values are zero and the use
// case applies its defaults.
func pageParams(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid limit", port.ErrValidation)
		}
	}
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid offset", port.ErrValidation)
		}
	}
	return limit, offset, nil
}

// handleListPublishedArticles lists published articles, newest first.
func (h *Handler) handleListPublishedArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	list, err := h.articles.ListPublishedArticles(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponses(list))
}

// handleGetPublishedArticle returns a published article by slug. Drafts and
// scheduled articles answer HTTP 404.
func (h *Handler) handleGetPublishedArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.articles.GetPublishedArticle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponse(a))
}

func (h *Handler) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	f := port.ArticleFilter{Limit: limit, Offset: offset}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.ArticleStatus(s)
		f.Status = &status
	}
	list, err := h.articles.ListArticles(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponses(list))
}

func (h *Handler) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	a, err := h.articles.CreateArticle(r.Context(), port.ArticleInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Status:          domain.ArticleStatus(req.Status),
		ScheduledAt:     req.ScheduledAt,
		AuthorName:      req.AuthorName,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toArticleResponse(a))
}

func (h *Handler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	a, err := h.articles.GetArticle(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponse(a))
}

func (h *Handler) handleScheduleArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req scheduleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	a, err := h.articles.ScheduleArticle(r.Context(), id, *req.ScheduledAt)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponse(a))
}
