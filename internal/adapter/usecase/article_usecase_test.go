package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/core/port/mocks"
)

func newTestArticleUseCase(repo port.ArticleRepository) *ArticleUseCase {
	svc := NewArticleUseCase(repo, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// articleTable mimics the conditional bulk update storage performs.
type articleTable struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*domain.Article
}

func (s *articleTable) add(status domain.ArticleStatus, scheduled *time.Time) uuid.UUID {
	id := uuid.New()
	s.rows[id] = &domain.Article{ID: id, Status: status, ScheduledAt: scheduled}
	return id
}

func (s *articleTable) publishDue(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []uuid.UUID{}
	for id, a := range s.rows {
		if !a.DueAt(now) {
			continue
		}
		at := now
		a.Status = domain.ArticlePublished
		a.PublishedAt = &at
		ids = append(ids, id)
	}
	return ids, nil
}

func TestPublishDueArticlesNothingDue(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().PublishDue(mock.Anything, fixedNow).Return(nil, nil)

	res, err := newTestArticleUseCase(repo).PublishDueArticles(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, res.PublishedCount)
	assert.NotNil(t, res.PublishedIDs)
	assert.Empty(t, res.PublishedIDs)
}

func TestPublishDueArticlesDefaultsToClock(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	id := uuid.New()
	repo.EXPECT().PublishDue(mock.Anything, fixedNow).Return([]uuid.UUID{id}, nil)

	res, err := newTestArticleUseCase(repo).PublishDueArticles(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.PublishedCount)
	assert.Equal(t, []uuid.UUID{id}, res.PublishedIDs)
}

func TestPublishDueArticlesIsIdempotent(t *testing.T) {
	table := &articleTable{rows: map[uuid.UUID]*domain.Article{}}
	past := fixedNow.Add(-time.Minute)
	future := fixedNow.Add(time.Hour)
	exact := fixedNow

	dueA := table.add(domain.ArticleScheduled, &past)
	dueB := table.add(domain.ArticleScheduled, &exact)
	later := table.add(domain.ArticleScheduled, &future)
	draft := table.add(domain.ArticleDraft, nil)

	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().PublishDue(mock.Anything, mock.Anything).RunAndReturn(table.publishDue)
	svc := newTestArticleUseCase(repo)

	first, err := svc.PublishDueArticles(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, first.PublishedCount)
	assert.ElementsMatch(t, []uuid.UUID{dueA, dueB}, first.PublishedIDs)

	for _, id := range first.PublishedIDs {
		a := table.rows[id]
		assert.Equal(t, domain.ArticlePublished, a.Status)
		require.NotNil(t, a.PublishedAt)
		assert.True(t, a.PublishedAt.Equal(fixedNow))
	}
	assert.Equal(t, domain.ArticleScheduled, table.rows[later].Status)
	assert.Nil(t, table.rows[later].PublishedAt)
	assert.Equal(t, domain.ArticleDraft, table.rows[draft].Status)

	second, err := svc.PublishDueArticles(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, second.PublishedCount)
	assert.Empty(t, second.PublishedIDs)
}

func TestPublishDueArticlesPropagatesError(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().PublishDue(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := newTestArticleUseCase(repo).PublishDueArticles(context.Background(), fixedNow)
	require.ErrorIs(t, err, assert.AnError)
}

func TestCreateArticleDraftDerivesSlug(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil)

	a, err := newTestArticleUseCase(repo).CreateArticle(context.Background(), port.ArticleInput{
		Title: "Élection municipale: les résultats",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ArticleDraft, a.Status)
	assert.Equal(t, "election-municipale-les-resultats", a.Slug)
	assert.Nil(t, a.PublishedAt)
	assert.Nil(t, a.ScheduledAt)
}

func TestCreateArticlePublishedStampsTime(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	a, err := newTestArticleUseCase(repo).CreateArticle(context.Background(), port.ArticleInput{
		Title:  "Breaking",
		Slug:   "Custom Slug",
		Status: domain.ArticlePublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", a.Slug)
	require.NotNil(t, a.PublishedAt)
	assert.True(t, a.PublishedAt.Equal(fixedNow))
}

func TestCreateArticleScheduledRules(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	svc := newTestArticleUseCase(repo)

	_, err := svc.CreateArticle(context.Background(), port.ArticleInput{Title: "x", Status: domain.ArticleScheduled})
	require.ErrorIs(t, err, port.ErrValidation)

	past := fixedNow.Add(-time.Second)
	_, err = svc.CreateArticle(context.Background(), port.ArticleInput{Title: "x", Status: domain.ArticleScheduled, ScheduledAt: &past})
	require.ErrorIs(t, err, port.ErrValidation)

	_, err = svc.CreateArticle(context.Background(), port.ArticleInput{Title: "x", Status: "ARCHIVED"})
	require.ErrorIs(t, err, port.ErrValidation)

	_, err = svc.CreateArticle(context.Background(), port.ArticleInput{Title: "!!!"})
	require.ErrorIs(t, err, port.ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	future := fixedNow.Add(time.Hour)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	a, err := svc.CreateArticle(context.Background(), port.ArticleInput{Title: "Tomorrow", Status: domain.ArticleScheduled, ScheduledAt: &future})
	require.NoError(t, err)
	require.NotNil(t, a.ScheduledAt)
	assert.True(t, a.ScheduledAt.Equal(future))
	assert.Nil(t, a.PublishedAt)
}

func TestCreateArticleSlugConflict(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(port.ErrConflict)

	_, err := newTestArticleUseCase(repo).CreateArticle(context.Background(), port.ArticleInput{Title: "Same"})
	require.ErrorIs(t, err, port.ErrConflict)
}

func TestScheduleArticle(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	svc := newTestArticleUseCase(repo)
	id := uuid.New()

	_, err := svc.ScheduleArticle(context.Background(), id, fixedNow.Add(-time.Minute))
	require.ErrorIs(t, err, port.ErrValidation)
	repo.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything, mock.Anything)

	at := fixedNow.Add(time.Hour)
	repo.EXPECT().Schedule(mock.Anything, id, at).Return(nil)
	repo.EXPECT().Get(mock.Anything, id).Return(&domain.Article{ID: id, Status: domain.ArticleScheduled, ScheduledAt: &at}, nil)

	a, err := svc.ScheduleArticle(context.Background(), id, at)
	require.NoError(t, err)
	assert.Equal(t, domain.ArticleScheduled, a.Status)
}

func TestGetPublishedArticleHidesDrafts(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "draft").Return(&domain.Article{Slug: "draft", Status: domain.ArticleDraft}, nil)
	repo.EXPECT().GetBySlug(mock.Anything, "live").Return(&domain.Article{Slug: "live", Status: domain.ArticlePublished}, nil)

	svc := newTestArticleUseCase(repo)

	_, err := svc.GetPublishedArticle(context.Background(), "draft")
	require.ErrorIs(t, err, port.ErrNotFound)

	a, err := svc.GetPublishedArticle(context.Background(), "live")
	require.NoError(t, err)
	assert.Equal(t, "live", a.Slug)
}

func TestListPublishedArticlesClampsPage(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	repo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f port.ArticleFilter) bool {
			return f.Status != nil && *f.Status == domain.ArticlePublished && f.Limit == maxPageSize && f.Offset == 0
		})).
		Return([]domain.Article{}, nil)

	_, err := newTestArticleUseCase(repo).ListPublishedArticles(context.Background(), 1000, -5)
	require.NoError(t, err)
}

func TestListArticlesRejectsUnknownStatus(t *testing.T) {
	repo := mocks.NewMockArticleRepository(t)
	status := domain.ArticleStatus("ARCHIVED")

	_, err := newTestArticleUseCase(repo).ListArticles(context.Background(), port.ArticleFilter{Status: &status})
	require.ErrorIs(t, err, port.ErrValidation)
}
