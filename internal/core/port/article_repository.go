package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
)

// ArticleRepository defines the persistence layer for articles.
type ArticleRepository interface {
	// PublishDue moves every SCHEDULED article with scheduled_at <= now to
	// PUBLISHED, stamping published_at = now, in one conditional statement.
	// It returns the ids it changed; an empty slice means nothing was due.
	PublishDue(ctx context.Context, now time.Time) ([]uuid.UUID, error)

	// Create stores a new article. A taken slug returns ErrConflict.
	Create(ctx context.Context, a *domain.Article) error
	// Schedule moves a DRAFT article to SCHEDULED. It returns ErrNotFound
	// for an unknown id and ErrConflict when the article is not a draft.
	Schedule(ctx context.Context, id uuid.UUID, at time.Time) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]domain.Article, error)
}

// ArticleFilter narrows article listings. Published listings are ordered
// by published_at, everything else by created_at, newest first.
type ArticleFilter struct {
	Status *domain.ArticleStatus
	Limit  int
	Offset int
}
