package httpadapter

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/metrics"
)

const (
	roleAdmin  = "admin"
	roleEditor = "editor"
)

type ctxKey int

const claimsKey ctxKey = iota

// adminClaims are the claims expected in admin bearer tokens.
type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// instrument records request metrics labelled by the matched route pattern
// rather than the raw path.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPInFlight.Inc()
		defer metrics.HTTPInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := []string{r.Method, route, strconv.Itoa(status)}
		metrics.HTTPRequests.WithLabelValues(labels...).Inc()
		metrics.HTTPDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// requireRole admits requests carrying a valid HS256 token whose role claim
// is one of roles.
func (h *Handler) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(claimsKey).(*adminClaims)
			if !ok {
				var err error
				claims, err = h.parseToken(bearerToken(r))
				if err != nil {
					h.logger.Debug("admin token rejected", slog.Any("error", err))
					h.writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
					return
				}
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
			if !slices.Contains(roles, claims.Role) {
				h.writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) parseToken(raw string) (*adminClaims, error) {
	if h.auth.JWTSecret == "" {
		return nil, errors.New("admin authentication is not configured")
	}
	if raw == "" {
		return nil, errors.New("missing bearer token")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if h.auth.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(h.auth.JWTIssuer))
	}
	claims := &adminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(h.auth.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// requireCronSecret admits requests whose bearer token equals the
// configured cron secret. A missing token is 401, a wrong one 403.
func (h *Handler) requireCronSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if h.auth.CronSecret == "" || token == "" {
			h.writeError(w, http.StatusUnauthorized, "unauthorized", "missing cron secret")
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.auth.CronSecret)) != 1 {
			h.writeError(w, http.StatusForbidden, "forbidden", "invalid cron secret")
			return
		}
		next.ServeHTTP(w, r)
	})
}
