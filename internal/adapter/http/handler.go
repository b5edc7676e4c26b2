package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/internal/config/configs"
	"newsdesk/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ad and article use cases, the secrets used to authenticate
// admin and cron callers, and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	ads      port.AdUseCase
	articles port.ArticleUseCase
	auth     configs.Auth
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(ads port.AdUseCase, articles port.ArticleUseCase, auth configs.Auth, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		ads:      ads,
		articles: articles,
		auth:     auth,
		logger:   logger,
		validate: newValidator(),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, instrument, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads/placement", h.handlePlacement)
		r.Post("/ads/{id}/impression", h.handleImpression)
		r.Post("/ads/{id}/click", h.handleClick)
		r.Get("/ads/{id}/click", h.handleClickRedirect)

		r.Get("/articles", h.handleListPublishedArticles)
		r.Get("/articles/{slug}", h.handleGetPublishedArticle)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCronSecret)
			r.Get("/cron/publish", h.handleCronPublish)
			r.Post("/cron/publish", h.handleCronPublish)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireRole(roleAdmin, roleEditor))

			r.Get("/ads", h.handleListAds)
			r.Post("/ads", h.handleCreateAd)
			r.Get("/ads/stats", h.handleStatsOverview)
			r.Get("/ads/report.xlsx", h.handleStatsReport)
			r.Get("/ads/{id}", h.handleGetAd)
			r.Put("/ads/{id}", h.handleUpdateAd)
			r.Patch("/ads/{id}/active", h.handleSetAdActive)
			r.With(h.requireRole(roleAdmin)).Delete("/ads/{id}", h.handleDeleteAd)

			r.Get("/zones", h.handleListZones)
			r.Post("/zones", h.handleCreateZone)

			r.Get("/articles", h.handleListArticles)
			r.Post("/articles", h.handleCreateArticle)
			r.Get("/articles/{id}", h.handleGetArticle)
			r.Post("/articles/{id}/schedule", h.handleScheduleArticle)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
