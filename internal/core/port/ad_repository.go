package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
)

// AdRepository defines the persistence layer for advertisements. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; counters are incremented atomically by storage.
type AdRepository interface {
	// ListCandidates returns ads that may serve q, ordered by priority then
	// newest first, with their page targets loaded. Storage may narrow the
	// set as far as it can; the caller re-checks every rule.
	ListCandidates(ctx context.Context, q domain.AdQuery) ([]domain.Advertisement, error)

	// IncrementCounter atomically adds one to the impression or click
	// counter and appends an event row. It returns ErrNotFound when the ad
	// does not exist.
	IncrementCounter(ctx context.Context, id uuid.UUID, kind domain.EventKind, at time.Time) error

	// Create stores a new ad together with its targets and zones.
	Create(ctx context.Context, ad *domain.Advertisement) error
	// Update overwrites the ad and replaces its targets and zones in one
	// transaction. It returns ErrNotFound when the ad does not exist.
	Update(ctx context.Context, ad *domain.Advertisement) error
	// SetActive toggles the active flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	// Delete removes the ad and, by cascade, its targets and events.
	Delete(ctx context.Context, id uuid.UUID) error
	// Get returns an ad with targets and zones or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error)
	// List returns ads matching f, highest priority first.
	List(ctx context.Context, f AdListFilter) ([]domain.Advertisement, error)

	// GetStats returns aggregated events in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
	// GetStatsByAd returns per-ad aggregated events in a period.
	GetStatsByAd(ctx context.Context, req StatsReq) ([]AdStatsRow, error)

	// CreateZone stores a zone. Duplicate names return ErrConflict.
	CreateZone(ctx context.Context, z *domain.Zone) error
	// ListZones returns zones ordered by name.
	ListZones(ctx context.Context) ([]domain.Zone, error)
}

// AdListFilter narrows the admin listing. Nil fields do not filter.
type AdListFilter struct {
	Position *domain.Position
	Active   *bool
}

// AdStatsRow is one line of the per-ad report.
type AdStatsRow struct {
	AdvertisementID   uuid.UUID
	Name              string
	Position          domain.Position
	IsActive          bool
	Priority          int
	TotalImpressions  int64
	TotalClicks       int64
	PeriodImpressions int64
	PeriodClicks      int64
}
