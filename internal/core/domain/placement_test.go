package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func ad(name string, priority int, mods ...func(*Advertisement)) Advertisement {
	a := Advertisement{
		ID:        uuid.New(),
		Name:      name,
		Position:  PositionHeader,
		Priority:  priority,
		IsActive:  true,
		StartDate: now.Add(-24 * time.Hour),
		CreatedAt: now.Add(-48 * time.Hour),
	}
	for _, m := range mods {
		m(&a)
	}
	return a
}

func withTargets(targets ...PageTarget) func(*Advertisement) {
	return func(a *Advertisement) { a.Targets = targets }
}

func headerQuery() AdQuery {
	return AdQuery{Position: PositionHeader, At: now}
}

func TestSelectAdSkipsInactive(t *testing.T) {
	inactive := ad("off", 100, func(a *Advertisement) { a.IsActive = false })

	assert.Nil(t, SelectAd([]Advertisement{inactive}, headerQuery()))

	scoped := headerQuery()
	scoped.PageType = "article"
	inactive.Targets = []PageTarget{{PageType: GlobalPageType}}
	assert.Nil(t, SelectAd([]Advertisement{inactive}, scoped))
}

func TestSelectAdRespectsWindow(t *testing.T) {
	notStarted := ad("future", 1, func(a *Advertisement) { a.StartDate = now.Add(time.Minute) })
	ended := ad("past", 1, func(a *Advertisement) { a.EndDate = timePtr(now.Add(-time.Minute)) })
	endsNow := ad("edge", 1, func(a *Advertisement) { a.EndDate = timePtr(now) })
	startsNow := ad("start", 1, func(a *Advertisement) { a.StartDate = now })

	assert.Nil(t, SelectAd([]Advertisement{notStarted, ended}, headerQuery()))

	got := SelectAd([]Advertisement{endsNow}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "edge", got.Name)

	got = SelectAd([]Advertisement{startsNow}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "start", got.Name)
}

func TestSelectAdRanking(t *testing.T) {
	low := ad("low", 5)
	high := ad("high", 10)

	got := SelectAd([]Advertisement{low, high}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "high", got.Name)

	older := ad("older", 7, func(a *Advertisement) { a.CreatedAt = now.Add(-72 * time.Hour) })
	newer := ad("newer", 7, func(a *Advertisement) { a.CreatedAt = now.Add(-time.Hour) })

	got = SelectAd([]Advertisement{older, newer}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "newer", got.Name)

	got = SelectAd([]Advertisement{newer, older}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "newer", got.Name)
}

func TestSelectAdFiltersPosition(t *testing.T) {
	footer := ad("footer", 50, func(a *Advertisement) { a.Position = PositionFooter })
	header := ad("header", 1)

	got := SelectAd([]Advertisement{footer, header}, headerQuery())
	require.NotNil(t, got)
	assert.Equal(t, "header", got.Name)
}

func TestSelectAdGlobalIgnoresTargets(t *testing.T) {
	articleOnly := ad("article-only", 1, withTargets(PageTarget{PageType: "article"}))

	q := headerQuery()
	q.PageType = GlobalPageType
	q.PageIdentifier = strPtr("123")

	got := SelectAd([]Advertisement{articleOnly}, q)
	require.NotNil(t, got)
	assert.Equal(t, "article-only", got.Name)

	got = SelectAd([]Advertisement{articleOnly}, headerQuery())
	require.NotNil(t, got, "empty page type defaults to global")
}

func TestSelectAdScopedTargeting(t *testing.T) {
	typeWide := ad("type-wide", 1, withTargets(PageTarget{PageType: "article"}))
	exact := ad("exact", 1, withTargets(PageTarget{PageType: "article", PageIdentifier: strPtr("123")}))
	other := ad("other", 1, withTargets(PageTarget{PageType: "article", PageIdentifier: strPtr("456")}))
	category := ad("category", 1, withTargets(PageTarget{PageType: "category"}))
	untargeted := ad("untargeted", 1)

	q := headerQuery()
	q.PageType = "article"
	q.PageIdentifier = strPtr("123")

	for _, c := range []Advertisement{typeWide, exact} {
		got := SelectAd([]Advertisement{c}, q)
		require.NotNil(t, got, c.Name)
		assert.Equal(t, c.Name, got.Name)
	}
	for _, c := range []Advertisement{other, category, untargeted} {
		assert.Nil(t, SelectAd([]Advertisement{c}, q), c.Name)
	}
}

func TestSelectAdStoredGlobalTargetMatchesScopedQuery(t *testing.T) {
	universal := ad("universal", 1, withTargets(PageTarget{PageType: GlobalPageType}))

	q := headerQuery()
	q.PageType = "category"
	q.PageIdentifier = strPtr("sports")

	got := SelectAd([]Advertisement{universal}, q)
	require.NotNil(t, got)
	assert.Equal(t, "universal", got.Name)
}

func TestSelectAdTypeWideTargetWithoutIdentifier(t *testing.T) {
	exact := ad("exact", 1, withTargets(PageTarget{PageType: "article", PageIdentifier: strPtr("123")}))

	q := headerQuery()
	q.PageType = "article"

	assert.Nil(t, SelectAd([]Advertisement{exact}, q))
}

func TestSelectAdDoesNotMutateCandidates(t *testing.T) {
	candidates := []Advertisement{ad("a", 1), ad("b", 2)}

	got := SelectAd(candidates, headerQuery())
	require.NotNil(t, got)
	got.Name = "changed"

	assert.Equal(t, "b", candidates[1].Name)
}

func TestAdQueryNormalize(t *testing.T) {
	q := AdQuery{Position: PositionFooter, PageIdentifier: strPtr("9")}.Normalize()
	assert.Equal(t, GlobalPageType, q.PageType)
	assert.Nil(t, q.PageIdentifier)
	assert.False(t, q.Scoped())

	q = AdQuery{Position: PositionFooter, PageType: "article", PageIdentifier: strPtr("9")}.Normalize()
	assert.True(t, q.Scoped())
	require.NotNil(t, q.PageIdentifier)
	assert.Equal(t, "9", *q.PageIdentifier)
}

func TestPositionValid(t *testing.T) {
	assert.True(t, PositionCategoryTop.Valid())
	assert.False(t, Position("sidebar").Valid())
	assert.False(t, Position("").Valid())
}
