package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
)

// ArticleUseCase exposes article authoring, reading and the scheduled
// publication sweep.
type ArticleUseCase interface {
	// PublishDueArticles promotes every due scheduled article. A zero now
	// means the current time. Repeated or overlapping calls never publish
	// an article twice.
	PublishDueArticles(ctx context.Context, now time.Time) (*domain.PublishResult, error)

	CreateArticle(ctx context.Context, in ArticleInput) (*domain.Article, error)
	ScheduleArticle(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListArticles(ctx context.Context, f ArticleFilter) ([]domain.Article, error)

	// GetPublishedArticle returns a published article by slug; drafts and
	// scheduled articles are reported as ErrNotFound.
	GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error)
	ListPublishedArticles(ctx context.Context, limit, offset int) ([]domain.Article, error)
}

// ArticleInput carries the fields of a new article. An empty Slug is derived
// from Title. ScheduledAt is required when Status is SCHEDULED.
type ArticleInput struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	Status          domain.ArticleStatus
	ScheduledAt     *time.Time
	AuthorName      string
	MetaTitle       string
	MetaDescription string
}
