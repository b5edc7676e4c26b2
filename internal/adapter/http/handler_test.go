package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/config/configs"
	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/core/port/mocks"
)

const (
	testJWTSecret  = "jwt-test-secret"
	testCronSecret = "cron-test-secret"
)

type testServer struct {
	ads      *mocks.MockAdUseCase
	articles *mocks.MockArticleUseCase
	handler  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ads := mocks.NewMockAdUseCase(t)
	articles := mocks.NewMockArticleUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := configs.Auth{JWTSecret: testJWTSecret, CronSecret: testCronSecret}
	return &testServer{
		ads:      ads,
		articles: articles,
		handler:  NewHandler(ads, articles, auth, logger).Router(),
	}
}

func (s *testServer) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func signToken(t *testing.T, role string, secret string) string {
	t.Helper()
	claims := adminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error.Code
}

func TestPlacementReturnsAd(t *testing.T) {
	s := newTestServer(t)
	ad := &domain.Advertisement{ID: uuid.New(), Name: "Top", Position: domain.PositionHeader, TargetURL: "https://x.example"}

	s.ads.EXPECT().
		ResolveAd(mock.Anything, mock.MatchedBy(func(q domain.AdQuery) bool {
			return q.Position == domain.PositionHeader && q.PageType == "article" &&
				q.PageIdentifier != nil && *q.PageIdentifier == "123"
		})).
		Return(ad, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/ads/placement?position=header&page_type=article&page_id=123", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got placementResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, ad.ID, got.ID)
	assert.Equal(t, fmt.Sprintf("/api/v1/ads/%s/click", ad.ID), got.ClickURL)
}

func TestPlacementNoAd(t *testing.T) {
	s := newTestServer(t)
	s.ads.EXPECT().ResolveAd(mock.Anything, mock.Anything).Return(nil, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/ads/placement?position=footer", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPlacementValidationError(t *testing.T) {
	s := newTestServer(t)
	s.ads.EXPECT().ResolveAd(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: position is required", port.ErrValidation))

	rec := s.do(t, http.MethodGet, "/api/v1/ads/placement", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestPlacementStorageError(t *testing.T) {
	s := newTestServer(t)
	s.ads.EXPECT().ResolveAd(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := s.do(t, http.MethodGet, "/api/v1/ads/placement?position=footer", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}

func TestImpression(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.ads.EXPECT().RecordImpression(mock.Anything, id).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/v1/ads/"+id.String()+"/impression", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/ads/not-a-uuid/impression", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClickRedirect(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	unknown := uuid.New()
	s.ads.EXPECT().RecordClick(mock.Anything, id).Return("https://sponsor.example", nil)
	s.ads.EXPECT().RecordClick(mock.Anything, unknown).Return("", port.ErrNotFound)

	rec := s.do(t, http.MethodGet, "/api/v1/ads/"+id.String()+"/click", "", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://sponsor.example", rec.Header().Get("Location"))

	rec = s.do(t, http.MethodGet, "/api/v1/ads/"+unknown.String()+"/click", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/admin/ads", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/ads", signToken(t, roleAdmin, "wrong-secret"), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/ads", signToken(t, "reader", testJWTSecret), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminDeleteNeedsAdminRole(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()

	rec := s.do(t, http.MethodDelete, "/api/v1/admin/ads/"+id.String(), signToken(t, roleEditor, testJWTSecret), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.ads.EXPECT().DeleteAd(mock.Anything, id).Return(nil)
	rec = s.do(t, http.MethodDelete, "/api/v1/admin/ads/"+id.String(), signToken(t, roleAdmin, testJWTSecret), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateAd(t *testing.T) {
	s := newTestServer(t)
	token := signToken(t, roleEditor, testJWTSecret)

	s.ads.EXPECT().
		CreateAd(mock.Anything, mock.MatchedBy(func(in port.AdInput) bool {
			return in.Name == "Spring" && in.Position == domain.PositionInArticle && in.IsActive &&
				len(in.Targets) == 1 && in.Targets[0].PageType == "article"
		})).
		RunAndReturn(func(_ context.Context, in port.AdInput) (*domain.Advertisement, error) {
			return &domain.Advertisement{ID: uuid.New(), Name: in.Name, Position: in.Position}, nil
		})

	body := `{"name":"Spring","position":"in-article","target_url":"https://shop.example",
		"targets":[{"page_type":"article"}]}`
	rec := s.do(t, http.MethodPost, "/api/v1/admin/ads", token, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got adResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Spring", got.Name)
}

func TestCreateAdRejectsInvalidBody(t *testing.T) {
	s := newTestServer(t)
	token := signToken(t, roleAdmin, testJWTSecret)

	cases := map[string]string{
		"bad json":         `{"name":`,
		"missing name":     `{"position":"header"}`,
		"unknown position": `{"name":"x","position":"sidebar"}`,
		"bad url":          `{"name":"x","position":"header","target_url":"not a url"}`,
		"empty page type":  `{"name":"x","position":"header","targets":[{"page_type":""}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/admin/ads", token, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	s.ads.AssertNotCalled(t, "CreateAd", mock.Anything, mock.Anything)
}

func TestStatsReport(t *testing.T) {
	s := newTestServer(t)
	s.ads.EXPECT().
		ExportReport(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return("ad_report_20260101_20260102.xlsx", []byte("xlsx"), nil)

	rec := s.do(t, http.MethodGet, "/api/v1/admin/ads/report.xlsx?from=2026-01-01T00:00:00Z",
		signToken(t, roleAdmin, testJWTSecret), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ad_report_20260101_20260102.xlsx")

	rec = s.do(t, http.MethodGet, "/api/v1/admin/ads/stats?from=yesterday", signToken(t, roleAdmin, testJWTSecret), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCronPublishAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/cron/publish", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/cron/publish", "guess", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.articles.AssertNotCalled(t, "PublishDueArticles", mock.Anything, mock.Anything)
}

func TestCronPublish(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.articles.EXPECT().
		PublishDueArticles(mock.Anything, time.Time{}).
		Return(&domain.PublishResult{PublishedCount: 1, PublishedIDs: []uuid.UUID{id}}, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/cron/publish", testCronSecret, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		PublishedCount int         `json:"published_count"`
		PublishedIDs   []uuid.UUID `json:"published_ids"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 1, got.PublishedCount)
	assert.Equal(t, []uuid.UUID{id}, got.PublishedIDs)
}

func TestPublicArticle(t *testing.T) {
	s := newTestServer(t)
	now := time.Now().UTC()
	s.articles.EXPECT().GetPublishedArticle(mock.Anything, "hello-world").
		Return(&domain.Article{ID: uuid.New(), Slug: "hello-world", Status: domain.ArticlePublished, PublishedAt: &now}, nil)
	s.articles.EXPECT().GetPublishedArticle(mock.Anything, "draft").
		Return(nil, fmt.Errorf("article %q: %w", "draft", port.ErrNotFound))

	rec := s.do(t, http.MethodGet, "/api/v1/articles/hello-world", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/articles/draft", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestScheduleArticleConflict(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.articles.EXPECT().ScheduleArticle(mock.Anything, id, mock.Anything).Return(nil, port.ErrConflict)

	rec := s.do(t, http.MethodPost, "/api/v1/admin/articles/"+id.String()+"/schedule",
		signToken(t, roleEditor, testJWTSecret), `{"scheduled_at":"2030-01-01T09:00:00Z"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "newsdesk_http_requests_total")
}
