package usecase

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestAdUseCase(repo port.AdRepository) *AdUseCase {
	svc := NewAdUseCase(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func candidate(name string, priority int, created time.Time) domain.Advertisement {
	return domain.Advertisement{
		ID:        uuid.New(),
		Name:      name,
		Position:  domain.PositionHeader,
		Priority:  priority,
		IsActive:  true,
		StartDate: fixedNow.Add(-time.Hour),
		CreatedAt: created,
	}
}

// TestAdSelection ensures the usecase picks the highest priority ad.
func TestAdSelection(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	low := candidate("low", 5, fixedNow.Add(-time.Minute))
	high := candidate("high", 10, fixedNow.Add(-time.Hour))

	repo.EXPECT().
		ListCandidates(mock.Anything, mock.Anything).
		Return([]domain.Advertisement{low, high}, nil)

	svc := newTestAdUseCase(repo)

	ad, err := svc.ResolveAd(context.Background(), domain.AdQuery{Position: domain.PositionHeader})
	if err != nil {
		t.Fatalf("ResolveAd error: %v", err)
	}
	if ad == nil {
		t.Fatalf("expected ad, got nil")
	}
	if ad.ID != high.ID {
		t.Fatalf("expected %q, got %q", high.Name, ad.Name)
	}
}

func TestResolveAdTieGoesToNewest(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	older := candidate("older", 3, fixedNow.Add(-48*time.Hour))
	newer := candidate("newer", 3, fixedNow.Add(-time.Hour))

	repo.EXPECT().
		ListCandidates(mock.Anything, mock.Anything).
		Return([]domain.Advertisement{older, newer}, nil)

	ad, err := newTestAdUseCase(repo).ResolveAd(context.Background(), domain.AdQuery{Position: domain.PositionHeader})
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.Equal(t, newer.ID, ad.ID)
}

func TestResolveAdRejectsMissingPosition(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	svc := newTestAdUseCase(repo)

	_, err := svc.ResolveAd(context.Background(), domain.AdQuery{PageType: "article"})
	require.ErrorIs(t, err, port.ErrValidation)

	_, err = svc.ResolveAd(context.Background(), domain.AdQuery{Position: "sidebar"})
	require.ErrorIs(t, err, port.ErrValidation)

	repo.AssertNotCalled(t, "ListCandidates", mock.Anything, mock.Anything)
}

func TestResolveAdNormalizesQuery(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	pageID := "123"

	repo.EXPECT().
		ListCandidates(mock.Anything, mock.MatchedBy(func(q domain.AdQuery) bool {
			return q.PageType == domain.GlobalPageType && q.PageIdentifier == nil && q.At.Equal(fixedNow)
		})).
		Return(nil, nil)

	ad, err := newTestAdUseCase(repo).ResolveAd(context.Background(), domain.AdQuery{
		Position:       domain.PositionFooter,
		PageIdentifier: &pageID,
	})
	require.NoError(t, err)
	assert.Nil(t, ad)
}

func TestResolveAdKeepsExplicitInstant(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	at := fixedNow.Add(72 * time.Hour)

	repo.EXPECT().
		ListCandidates(mock.Anything, mock.MatchedBy(func(q domain.AdQuery) bool { return q.At.Equal(at) })).
		Return(nil, nil)

	_, err := newTestAdUseCase(repo).ResolveAd(context.Background(), domain.AdQuery{Position: domain.PositionFooter, At: at})
	require.NoError(t, err)
}

func TestResolveAdDiscardsIneligibleSnapshotRows(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	inactive := candidate("inactive", 50, fixedNow)
	inactive.IsActive = false
	expired := candidate("expired", 40, fixedNow)
	ended := fixedNow.Add(-time.Second)
	expired.EndDate = &ended
	scoped := candidate("scoped", 30, fixedNow)
	scoped.Targets = []domain.PageTarget{{PageType: "category"}}

	repo.EXPECT().
		ListCandidates(mock.Anything, mock.Anything).
		Return([]domain.Advertisement{inactive, expired, scoped}, nil)

	ad, err := newTestAdUseCase(repo).ResolveAd(context.Background(), domain.AdQuery{
		Position: domain.PositionHeader,
		PageType: "article",
	})
	require.NoError(t, err)
	assert.Nil(t, ad)
}

func TestResolveAdPropagatesStorageError(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	storageErr := errors.New("connection reset")

	repo.EXPECT().ListCandidates(mock.Anything, mock.Anything).Return(nil, storageErr)

	_, err := newTestAdUseCase(repo).ResolveAd(context.Background(), domain.AdQuery{Position: domain.PositionHeader})
	require.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, port.ErrValidation)
}

// TestConcurrentImpressions ensures concurrent impressions are all counted.
func TestConcurrentImpressions(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	id := uuid.New()

	var (
		mu          sync.Mutex
		impressions int64
	)

	// The mock plays the role of storage's atomic increment.
	repo.EXPECT().
		IncrementCounter(mock.Anything, id, domain.EventImpression, fixedNow).
		Run(func(ctx context.Context, id uuid.UUID, kind domain.EventKind, at time.Time) {
			mu.Lock()
			defer mu.Unlock()
			impressions++
		}).
		Return(nil)

	svc := newTestAdUseCase(repo)

	wg := sync.WaitGroup{}
	count := 2
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			if err := svc.RecordImpression(context.Background(), id); err != nil {
				t.Errorf("RecordImpression: %v", err)
			}
		}()
	}
	wg.Wait()

	if impressions != 2 {
		t.Fatalf("unexpected impressions after concurrency: got %d, want 2", impressions)
	}
}

func TestRecordImpressionUnknownAd(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	id := uuid.New()

	repo.EXPECT().
		IncrementCounter(mock.Anything, id, domain.EventImpression, mock.Anything).
		Return(port.ErrNotFound)

	err := newTestAdUseCase(repo).RecordImpression(context.Background(), id)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestRecordClickReturnsTargetURL(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	ad := candidate("click", 1, fixedNow)
	ad.TargetURL = "https://sponsor.example/landing"

	repo.EXPECT().Get(mock.Anything, ad.ID).Return(&ad, nil)
	repo.EXPECT().IncrementCounter(mock.Anything, ad.ID, domain.EventClick, fixedNow).Return(nil)

	url, err := newTestAdUseCase(repo).RecordClick(context.Background(), ad.ID)
	require.NoError(t, err)
	assert.Equal(t, ad.TargetURL, url)
}

func TestRecordClickUnknownAd(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	id := uuid.New()

	repo.EXPECT().Get(mock.Anything, id).Return(nil, port.ErrNotFound)

	_, err := newTestAdUseCase(repo).RecordClick(context.Background(), id)
	require.ErrorIs(t, err, port.ErrNotFound)
	repo.AssertNotCalled(t, "IncrementCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func validInput() port.AdInput {
	return port.AdInput{
		Name:      "Spring sale",
		TargetURL: "https://shop.example",
		Position:  domain.PositionInArticle,
		Priority:  4,
		IsActive:  true,
		StartDate: fixedNow,
	}
}

func TestCreateAdRejectsInvalidInput(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	svc := newTestAdUseCase(repo)

	before := fixedNow.Add(-time.Hour)
	cases := map[string]func(*port.AdInput){
		"missing name":      func(in *port.AdInput) { in.Name = "  " },
		"unknown position":  func(in *port.AdInput) { in.Position = "popup" },
		"negative priority": func(in *port.AdInput) { in.Priority = -1 },
		"missing start":     func(in *port.AdInput) { in.StartDate = time.Time{} },
		"end before start":  func(in *port.AdInput) { in.EndDate = &before },
		"empty target type": func(in *port.AdInput) { in.Targets = []port.TargetInput{{PageType: ""}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.CreateAd(context.Background(), in)
			require.ErrorIs(t, err, port.ErrValidation)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdBuildsTargets(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	zone := uuid.New()
	pageID := "42"
	empty := ""

	in := validInput()
	in.Targets = []port.TargetInput{
		{PageType: "article", PageIdentifier: &pageID},
		{PageType: " category ", PageIdentifier: &empty},
	}
	in.ZoneIDs = []uuid.UUID{zone, zone}

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Advertisement")).Return(nil)

	ad, err := newTestAdUseCase(repo).CreateAd(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, ad.Targets, 2)
	assert.Equal(t, ad.ID, ad.Targets[0].AdvertisementID)
	require.NotNil(t, ad.Targets[0].PageIdentifier)
	assert.Equal(t, "42", *ad.Targets[0].PageIdentifier)
	assert.Equal(t, "category", ad.Targets[1].PageType)
	assert.Nil(t, ad.Targets[1].PageIdentifier, "empty identifier means type-wide")
	assert.Equal(t, []uuid.UUID{zone}, ad.ZoneIDs)
	assert.Equal(t, fixedNow, ad.CreatedAt)
}

func TestUpdateAdReplacesTargets(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	stored := candidate("old", 1, fixedNow.Add(-time.Hour))
	stored.Targets = []domain.PageTarget{
		{ID: uuid.New(), AdvertisementID: stored.ID, PageType: "article"},
		{ID: uuid.New(), AdvertisementID: stored.ID, PageType: "category"},
	}
	repo.EXPECT().Get(mock.Anything, stored.ID).Return(&stored, nil)

	in := validInput()
	in.Targets = []port.TargetInput{{PageType: "homepage"}}

	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(ad *domain.Advertisement) bool {
			return len(ad.Targets) == 1 && ad.Targets[0].PageType == "homepage" &&
				ad.Name == "Spring sale" && ad.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil)

	ad, err := newTestAdUseCase(repo).UpdateAd(context.Background(), stored.ID, in)
	require.NoError(t, err)
	assert.Equal(t, stored.CreatedAt, ad.CreatedAt)
}

func TestUpdateAdUnknown(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	id := uuid.New()

	repo.EXPECT().Get(mock.Anything, id).Return(nil, port.ErrNotFound)

	_, err := newTestAdUseCase(repo).UpdateAd(context.Background(), id, validInput())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestListAdsRejectsUnknownPosition(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	pos := domain.Position("sidebar")

	_, err := newTestAdUseCase(repo).ListAds(context.Background(), port.AdListFilter{Position: &pos})
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestGetStatsDefaultsPeriodAndComputesCTR(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().
		GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.To.Equal(fixedNow) && req.From.Equal(fixedNow.Add(-24*time.Hour))
		})).
		Return(&port.StatsResp{Impressions: 200, Clicks: 5}, nil)

	stats, err := newTestAdUseCase(repo).GetStats(context.Background(), port.StatsReq{})
	require.NoError(t, err)
	assert.InDelta(t, 0.025, stats.CTR, 1e-9)
}

func TestGetStatsRejectsInvertedPeriod(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	_, err := newTestAdUseCase(repo).GetStats(context.Background(), port.StatsReq{
		From: fixedNow,
		To:   fixedNow.Add(-time.Hour),
	})
	require.ErrorIs(t, err, port.ErrValidation)
}

func TestCreateZone(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	svc := newTestAdUseCase(repo)

	_, err := svc.CreateZone(context.Background(), port.ZoneInput{Name: " "})
	require.ErrorIs(t, err, port.ErrValidation)

	repo.EXPECT().CreateZone(mock.Anything, mock.MatchedBy(func(z *domain.Zone) bool { return z.Name == "sidebar" })).Return(nil)
	z, err := svc.CreateZone(context.Background(), port.ZoneInput{Name: " sidebar "})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, z.ID)
}

func TestExportReport(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	id := uuid.New()

	repo.EXPECT().
		GetStatsByAd(mock.Anything, mock.Anything).
		Return([]port.AdStatsRow{{
			AdvertisementID:   id,
			Name:              "Banner",
			Position:          domain.PositionHeader,
			IsActive:          true,
			Priority:          3,
			TotalImpressions:  1000,
			TotalClicks:       20,
			PeriodImpressions: 100,
			PeriodClicks:      4,
		}}, nil)

	name, data, err := newTestAdUseCase(repo).ExportReport(context.Background(), port.StatsReq{})
	require.NoError(t, err)
	assert.Equal(t, "ad_report_20260531_20260601.xlsx", name)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[1][0])
	assert.Equal(t, id.String(), rows[2][0])
	assert.Equal(t, "Banner", rows[2][1])
	assert.Equal(t, "100", rows[2][7])
	assert.Equal(t, "0.04", rows[2][9])
}
