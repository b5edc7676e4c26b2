package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
)

const articleColumns = `id, title, slug, content, excerpt, status, published_at, scheduled_at,
	author_name, meta_title, meta_description, created_at, updated_at`

// ArticleRepository implements port.ArticleRepository on PostgreSQL.
type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

// PublishDue flips every due scheduled article to published in a single
// conditional UPDATE. Rows already published by a concurrent sweep no
// longer match the status condition and are not touched again.
func (r *ArticleRepository) PublishDue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	now = now.UTC()
	p := and(statusIs(domain.ArticleScheduled), scheduledBy(now))
	query := `UPDATE articles SET status = ?, published_at = ?, updated_at = ?` +
		whereClause(p) + ` RETURNING id`
	args := append([]any{string(domain.ArticlePublished), now, now}, p.args...)

	rows, err := r.pool.Query(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// Create inserts the article. A taken slug returns port.ErrConflict.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, slug, content, excerpt, status, published_at, scheduled_at,
			author_name, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.Title, a.Slug, a.Content, a.Excerpt, string(a.Status), a.PublishedAt, a.ScheduledAt,
		a.AuthorName, a.MetaTitle, a.MetaDescription, a.CreatedAt, a.UpdatedAt)
	return mapError(err)
}

// Schedule moves a draft to SCHEDULED. Only drafts qualify; anything else
// is a conflict.
func (r *ArticleRepository) Schedule(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET status = $2, scheduled_at = $3, updated_at = now()
		WHERE id = $1 AND status = $4`,
		id, string(domain.ArticleScheduled), at.UTC(), string(domain.ArticleDraft))
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status string
	err = r.pool.QueryRow(ctx, `SELECT status FROM articles WHERE id = $1`, id).Scan(&status)
	if err != nil {
		return fmt.Errorf("article %s: %w", id, mapError(err))
	}
	return fmt.Errorf("%w: article %s is %s, only drafts can be scheduled", port.ErrConflict, id, status)
}

func (r *ArticleRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
}

// List returns a page of articles, newest first. Published listings are
// ordered by publication time.
func (r *ArticleRepository) List(ctx context.Context, f port.ArticleFilter) ([]domain.Article, error) {
	var p predicate
	order := "created_at DESC"
	if f.Status != nil {
		p = statusIs(*f.Status)
		if *f.Status == domain.ArticlePublished {
			order = "published_at DESC, created_at DESC"
		}
	}
	query := `SELECT ` + articleColumns + ` FROM articles` + whereClause(p) +
		` ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	args := append(p.args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanArticle)
}

func (r *ArticleRepository) getOne(ctx context.Context, query string, arg any) (*domain.Article, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("article %v: %w", arg, mapError(err))
	}
	return &a, nil
}

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var (
		a      domain.Article
		status string
	)
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Content,
		&a.Excerpt,
		&status,
		&a.PublishedAt,
		&a.ScheduledAt,
		&a.AuthorName,
		&a.MetaTitle,
		&a.MetaDescription,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	a.Status = domain.ArticleStatus(status)
	return a, err
}
