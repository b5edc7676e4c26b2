package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// ResolveAd selects the single best advertisement for a slot. It
	// returns nil without error when nothing qualifies. A missing or
	// unknown position is rejected with ErrValidation before storage is
	// queried. A zero q.At means now.
	ResolveAd(ctx context.Context, q domain.AdQuery) (*domain.Advertisement, error)

	// RecordImpression counts one display of the ad.
	RecordImpression(ctx context.Context, id uuid.UUID) error

	// RecordClick counts one click and returns the ad's target URL.
	RecordClick(ctx context.Context, id uuid.UUID) (string, error)

	CreateAd(ctx context.Context, in AdInput) (*domain.Advertisement, error)
	UpdateAd(ctx context.Context, id uuid.UUID, in AdInput) (*domain.Advertisement, error)
	SetAdActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteAd(ctx context.Context, id uuid.UUID) error
	GetAd(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)
	ListAds(ctx context.Context, f AdListFilter) ([]domain.Advertisement, error)

	// GetStats returns aggregated impressions, clicks and CTR for the
	// specified ad (optional) and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// ExportReport renders per-ad statistics for the period as an xlsx
	// workbook and returns its file name and contents.
	ExportReport(ctx context.Context, req StatsReq) (string, []byte, error)

	CreateZone(ctx context.Context, in ZoneInput) (*domain.Zone, error)
	ListZones(ctx context.Context) ([]domain.Zone, error)
}

// AdInput carries the editable fields of an advertisement. Targets and
// ZoneIDs are the complete new sets; they replace whatever was stored.
type AdInput struct {
	Name        string
	Description string
	ImageURL    string
	HTMLContent string
	TargetURL   string
	Position    domain.Position
	Priority    int
	IsActive    bool
	StartDate   time.Time
	EndDate     *time.Time
	Targets     []TargetInput
	ZoneIDs     []uuid.UUID
}

// TargetInput is one page targeting rule.
type TargetInput struct {
	PageType       string
	PageIdentifier *string
}

// ZoneInput carries the fields of a new zone.
type ZoneInput struct {
	Name        string
	Description string
}

// StatsResp contains aggregated event counts for a period. CTR is clicks
// divided by impressions, zero when there were no impressions.
type StatsResp struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// StatsReq selects the period and, optionally, a single advertisement.
type StatsReq struct {
	From            time.Time
	To              time.Time
	AdvertisementID *uuid.UUID
}
