package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "DRAFT"
	ArticlePublished ArticleStatus = "PUBLISHED"
	ArticleScheduled ArticleStatus = "SCHEDULED"
)

// Valid reports whether s is a known status.
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleDraft, ArticlePublished, ArticleScheduled:
		return true
	}
	return false
}

// Article is a news story. ScheduledAt is set whenever Status is
// ArticleScheduled and PublishedAt whenever Status is ArticlePublished.
type Article struct {
	ID              uuid.UUID
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	Status          ArticleStatus
	PublishedAt     *time.Time
	ScheduledAt     *time.Time
	AuthorName      string
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPublished returns true if the article is visible to readers.
func (a *Article) IsPublished() bool {
	return a.Status == ArticlePublished
}

// DueAt reports whether a scheduled article should be published at now.
func (a *Article) DueAt(now time.Time) bool {
	return a.Status == ArticleScheduled && a.ScheduledAt != nil && !a.ScheduledAt.After(now)
}

// PublishResult reports one sweep of the publication transitioner.
type PublishResult struct {
	PublishedCount int         `json:"published_count"`
	PublishedIDs   []uuid.UUID `json:"published_ids"`
}
