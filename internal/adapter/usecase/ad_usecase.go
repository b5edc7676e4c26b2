package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/metrics"
)

// AdUseCase provides business logic for ad selection, event recording and
// ad administration. It orchestrates domain and repositories to implement
// the port.AdUseCase interface.
type AdUseCase struct {
	repo port.AdRepository

	now func() time.Time
}

// NewAdUseCase creates a new usecase with the provided repository.
func NewAdUseCase(repo port.AdRepository) *AdUseCase {
	return &AdUseCase{repo: repo, now: time.Now}
}

// ResolveAd selects the ad to render in a slot. The repository supplies a
// snapshot of candidates and domain.SelectAd makes the final decision, so a
// loose storage filter can never leak an ineligible ad.
func (u *AdUseCase) ResolveAd(ctx context.Context, q domain.AdQuery) (*domain.Advertisement, error) {
	if q.Position == "" {
		return nil, fmt.Errorf("%w: position is required", port.ErrValidation)
	}
	if !q.Position.Valid() {
		return nil, fmt.Errorf("%w: unknown position %q", port.ErrValidation, q.Position)
	}
	if q.At.IsZero() {
		q.At = u.now()
	}
	q = q.Normalize()

	candidates, err := u.repo.ListCandidates(ctx, q)
	if err != nil {
		return nil, err
	}
	chosen := domain.SelectAd(candidates, q)
	if chosen == nil {
		metrics.AdRequests.WithLabelValues(string(q.Position), "empty").Inc()
		return nil, nil
	}
	metrics.AdRequests.WithLabelValues(string(q.Position), "filled").Inc()
	return chosen, nil
}

// RecordImpression counts one display of the ad.
func (u *AdUseCase) RecordImpression(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.IncrementCounter(ctx, id, domain.EventImpression, u.now()); err != nil {
		return err
	}
	metrics.AdEvents.WithLabelValues(string(domain.EventImpression)).Inc()
	return nil
}

// RecordClick counts one click and returns the landing URL for redirection.
func (u *AdUseCase) RecordClick(ctx context.Context, id uuid.UUID) (string, error) {
	ad, err := u.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err = u.repo.IncrementCounter(ctx, id, domain.EventClick, u.now()); err != nil {
		return "", err
	}
	metrics.AdEvents.WithLabelValues(string(domain.EventClick)).Inc()
	return ad.TargetURL, nil
}

// CreateAd validates and stores a new advertisement.
func (u *AdUseCase) CreateAd(ctx context.Context, in port.AdInput) (*domain.Advertisement, error) {
	if err := validateAdInput(in); err != nil {
		return nil, err
	}
	now := u.now()
	ad := &domain.Advertisement{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyAdInput(ad, in)
	if err := u.repo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// UpdateAd overwrites an advertisement. Targets and zones in the input
// replace the stored sets wholesale.
func (u *AdUseCase) UpdateAd(ctx context.Context, id uuid.UUID, in port.AdInput) (*domain.Advertisement, error) {
	if err := validateAdInput(in); err != nil {
		return nil, err
	}
	ad, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAdInput(ad, in)
	ad.UpdatedAt = u.now()
	if err = u.repo.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// SetAdActive toggles whether the ad may be served.
func (u *AdUseCase) SetAdActive(ctx context.Context, id uuid.UUID, active bool) error {
	return u.repo.SetActive(ctx, id, active)
}

// DeleteAd removes the ad permanently.
func (u *AdUseCase) DeleteAd(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

// GetAd returns one ad with its targets and zones.
func (u *AdUseCase) GetAd(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	return u.repo.Get(ctx, id)
}

// ListAds returns ads for the admin listing.
func (u *AdUseCase) ListAds(ctx context.Context, f port.AdListFilter) ([]domain.Advertisement, error) {
	if f.Position != nil && !f.Position.Valid() {
		return nil, fmt.Errorf("%w: unknown position %q", port.ErrValidation, *f.Position)
	}
	return u.repo.List(ctx, f)
}

// GetStats returns aggregated stats for a period. An empty period defaults
// to the last 24 hours.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	req, err := u.normalizeStatsReq(req)
	if err != nil {
		return nil, err
	}
	stats, err := u.repo.GetStats(ctx, req)
	if err != nil {
		return nil, err
	}
	stats.CTR = clickThroughRate(stats.Clicks, stats.Impressions)
	return stats, nil
}

// CreateZone stores a delivery zone.
func (u *AdUseCase) CreateZone(ctx context.Context, in port.ZoneInput) (*domain.Zone, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: zone name is required", port.ErrValidation)
	}
	z := &domain.Zone{
		ID:          uuid.New(),
		Name:        name,
		Description: in.Description,
		CreatedAt:   u.now(),
	}
	if err := u.repo.CreateZone(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

// ListZones returns every zone.
func (u *AdUseCase) ListZones(ctx context.Context) ([]domain.Zone, error) {
	return u.repo.ListZones(ctx)
}

func (u *AdUseCase) normalizeStatsReq(req port.StatsReq) (port.StatsReq, error) {
	if req.To.IsZero() {
		req.To = u.now()
	}
	if req.From.IsZero() {
		req.From = req.To.Add(-24 * time.Hour)
	}
	if req.From.After(req.To) {
		return req, fmt.Errorf("%w: 'from' is after 'to'", port.ErrValidation)
	}
	return req, nil
}

func validateAdInput(in port.AdInput) error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !in.Position.Valid() {
		problems = append(problems, fmt.Sprintf("unknown position %q", in.Position))
	}
	if in.Priority < 0 {
		problems = append(problems, "priority must not be negative")
	}
	if in.StartDate.IsZero() {
		problems = append(problems, "start date is required")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		problems = append(problems, "end date is before start date")
	}
	for i, t := range in.Targets {
		if strings.TrimSpace(t.PageType) == "" {
			problems = append(problems, fmt.Sprintf("target %d: page type is required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", port.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func applyAdInput(ad *domain.Advertisement, in port.AdInput) {
	ad.Name = strings.TrimSpace(in.Name)
	ad.Description = in.Description
	ad.ImageURL = in.ImageURL
	ad.HTMLContent = in.HTMLContent
	ad.TargetURL = in.TargetURL
	ad.Position = in.Position
	ad.Priority = in.Priority
	ad.IsActive = in.IsActive
	ad.StartDate = in.StartDate
	ad.EndDate = in.EndDate

	ad.Targets = make([]domain.PageTarget, 0, len(in.Targets))
	for _, t := range in.Targets {
		target := domain.PageTarget{
			ID:              uuid.New(),
			AdvertisementID: ad.ID,
			PageType:        strings.TrimSpace(t.PageType),
		}
		if t.PageIdentifier != nil && *t.PageIdentifier != "" {
			id := *t.PageIdentifier
			target.PageIdentifier = &id
		}
		ad.Targets = append(ad.Targets, target)
	}
	ad.ZoneIDs = dedupeIDs(in.ZoneIDs)
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clickThroughRate(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}
