package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/metrics"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ArticleUseCase implements port.ArticleUseCase on top of an
// ArticleRepository.
type ArticleUseCase struct {
	repo   port.ArticleRepository
	logger *slog.Logger

	now func() time.Time
}

// NewArticleUseCase creates the article usecase.
func NewArticleUseCase(repo port.ArticleRepository, logger *slog.Logger) *ArticleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleUseCase{repo: repo, logger: logger, now: time.Now}
}

// PublishDueArticles promotes every SCHEDULED article whose scheduled time
// has passed. The repository performs selection and update in a single
// conditional statement, so a second or overlapping call finds nothing left
// to publish.
func (u *ArticleUseCase) PublishDueArticles(ctx context.Context, now time.Time) (*domain.PublishResult, error) {
	if now.IsZero() {
		now = u.now()
	}
	ids, err := u.repo.PublishDue(ctx, now)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	if len(ids) > 0 {
		metrics.ArticlesPublished.Add(float64(len(ids)))
		u.logger.Info("scheduled articles published", slog.Int("count", len(ids)), slog.Time("at", now))
	}
	return &domain.PublishResult{PublishedCount: len(ids), PublishedIDs: ids}, nil
}

// CreateArticle validates and stores a new article. Scheduled articles need
// a scheduled time that is not in the past; articles created as published
// are stamped with the current time.
func (u *ArticleUseCase) CreateArticle(ctx context.Context, in port.ArticleInput) (*domain.Article, error) {
	now := u.now()
	if in.Status == "" {
		in.Status = domain.ArticleDraft
	}
	if err := validateArticleInput(in, now); err != nil {
		return nil, err
	}

	slug := domain.Slugify(in.Slug)
	if slug == "" {
		slug = domain.Slugify(in.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: cannot derive a slug from the title", port.ErrValidation)
	}

	a := &domain.Article{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(in.Title),
		Slug:            slug,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Status:          in.Status,
		AuthorName:      in.AuthorName,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	switch in.Status {
	case domain.ArticleScheduled:
		at := *in.ScheduledAt
		a.ScheduledAt = &at
	case domain.ArticlePublished:
		a.PublishedAt = &now
	}

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ScheduleArticle moves a draft to SCHEDULED for a future instant.
func (u *ArticleUseCase) ScheduleArticle(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Article, error) {
	if at.IsZero() {
		return nil, fmt.Errorf("%w: scheduled time is required", port.ErrValidation)
	}
	if at.Before(u.now()) {
		return nil, fmt.Errorf("%w: scheduled time is in the past", port.ErrValidation)
	}
	if err := u.repo.Schedule(ctx, id, at); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// GetArticle returns an article in any status.
func (u *ArticleUseCase) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return u.repo.Get(ctx, id)
}

// ListArticles returns articles for the admin listing.
func (u *ArticleUseCase) ListArticles(ctx context.Context, f port.ArticleFilter) ([]domain.Article, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", port.ErrValidation, *f.Status)
	}
	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)
	return u.repo.List(ctx, f)
}

// GetPublishedArticle returns the article behind slug only if readers may
// see it.
func (u *ArticleUseCase) GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished() {
		return nil, fmt.Errorf("article %q: %w", slug, port.ErrNotFound)
	}
	return a, nil
}

// ListPublishedArticles returns published articles, newest first.
func (u *ArticleUseCase) ListPublishedArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	status := domain.ArticlePublished
	limit, offset = clampPage(limit, offset)
	return u.repo.List(ctx, port.ArticleFilter{Status: &status, Limit: limit, Offset: offset})
}

func validateArticleInput(in port.ArticleInput, now time.Time) error {
	var problems []string
	if strings.TrimSpace(in.Title) == "" {
		problems = append(problems, "title is required")
	}
	if !in.Status.Valid() {
		problems = append(problems, fmt.Sprintf("unknown status %q", in.Status))
	}
	if in.Status == domain.ArticleScheduled {
		switch {
		case in.ScheduledAt == nil:
			problems = append(problems, "scheduled time is required for scheduled articles")
		case in.ScheduledAt.Before(now):
			problems = append(problems, "scheduled time is in the past")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", port.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
