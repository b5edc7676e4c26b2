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

const adColumns = `a.id, a.name, a.description, a.image_url, a.html_content, a.target_url,
	a.position, a.priority, a.is_active, a.start_date, a.end_date,
	a.impressions, a.clicks, a.created_at, a.updated_at`

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// ListCandidates returns the ads that may fill the slot described by q,
// best first, with their targets loaded.
func (r *AdRepository) ListCandidates(ctx context.Context, q domain.AdQuery) ([]domain.Advertisement, error) {
	p := and(positionIs(q.Position), isActive(true), inWindow(q.At))
	if q.Scoped() {
		p = and(p, targetsPage(q.PageType, q.PageIdentifier))
	}
	query := `SELECT ` + adColumns + ` FROM advertisements a` + whereClause(p) +
		` ORDER BY a.priority DESC, a.created_at DESC`

	ads, err := r.queryAds(ctx, r.pool, rebind(query), p.args...)
	if err != nil {
		return nil, err
	}
	if err = loadTargets(ctx, r.pool, ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// IncrementCounter bumps the lifetime counter and appends an event row in
// one transaction. The increment is done by the database so concurrent
// calls are never lost.
func (r *AdRepository) IncrementCounter(ctx context.Context, id uuid.UUID, kind domain.EventKind, at time.Time) error {
	var column string
	switch kind {
	case domain.EventImpression:
		column = "impressions"
	case domain.EventClick:
		column = "clicks"
	default:
		return fmt.Errorf("%w: unknown event kind %q", port.ErrValidation, kind)
	}

	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE advertisements SET `+column+` = `+column+` + 1 WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("advertisement %s: %w", id, port.ErrNotFound)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO ad_events (advertisement_id, kind, created_at) VALUES ($1, $2, $3)`,
			id, string(kind), at.UTC())
		return err
	})
}

// Create inserts the ad with its targets and zone memberships.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO advertisements (id, name, description, image_url, html_content, target_url,
				position, priority, is_active, start_date, end_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			ad.ID, ad.Name, ad.Description, ad.ImageURL, ad.HTMLContent, ad.TargetURL,
			string(ad.Position), ad.Priority, ad.IsActive, ad.StartDate, ad.EndDate, ad.CreatedAt, ad.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceTargetsAndZones(ctx, tx, ad)
	})
	return mapError(err)
}

// Update overwrites the ad. Existing targets and zone memberships are
// deleted and the new sets inserted in the same transaction.
func (r *AdRepository) Update(ctx context.Context, ad *domain.Advertisement) error {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE advertisements SET name = $2, description = $3, image_url = $4, html_content = $5,
				target_url = $6, position = $7, priority = $8, is_active = $9,
				start_date = $10, end_date = $11, updated_at = $12
			WHERE id = $1`,
			ad.ID, ad.Name, ad.Description, ad.ImageURL, ad.HTMLContent, ad.TargetURL,
			string(ad.Position), ad.Priority, ad.IsActive, ad.StartDate, ad.EndDate, ad.UpdatedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("advertisement %s: %w", ad.ID, port.ErrNotFound)
		}
		if _, err = tx.Exec(ctx, `DELETE FROM ad_page_targets WHERE advertisement_id = $1`, ad.ID); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `DELETE FROM advertisement_zones WHERE advertisement_id = $1`, ad.ID); err != nil {
			return err
		}
		return replaceTargetsAndZones(ctx, tx, ad)
	})
	return mapError(err)
}

// replaceTargetsAndZones inserts the ad's current target and zone sets.
// Callers remove the previous sets first.
func replaceTargetsAndZones(ctx context.Context, tx pgx.Tx, ad *domain.Advertisement) error {
	if len(ad.Targets) > 0 {
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"ad_page_targets"},
			[]string{"id", "advertisement_id", "page_type", "page_identifier"},
			pgx.CopyFromSlice(len(ad.Targets), func(i int) ([]any, error) {
				t := ad.Targets[i]
				return []any{t.ID, ad.ID, t.PageType, t.PageIdentifier}, nil
			}),
		)
		if err != nil {
			return err
		}
	}
	if len(ad.ZoneIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO advertisement_zones (advertisement_id, zone_id)
			SELECT $1, z FROM unnest($2::uuid[]) AS z`,
			ad.ID, uuidStrings(ad.ZoneIDs))
		if err != nil {
			return err
		}
	}
	return nil
}

// SetActive toggles the active flag.
func (r *AdRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE advertisements SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("advertisement %s: %w", id, port.ErrNotFound)
	}
	return nil
}

// Delete removes the ad. Targets, zone memberships and events cascade.
func (r *AdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("advertisement %s: %w", id, port.ErrNotFound)
	}
	return nil
}

// Get returns an ad by id.
func (r *AdRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Advertisement, error) {
	ads, err := r.queryAds(ctx, r.pool, `SELECT `+adColumns+` FROM advertisements a WHERE a.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, fmt.Errorf("advertisement %s: %w", id, port.ErrNotFound)
	}
	if err = loadTargets(ctx, r.pool, ads); err != nil {
		return nil, err
	}
	if err = loadZones(ctx, r.pool, ads); err != nil {
		return nil, err
	}
	return &ads[0], nil
}

// List returns ads matching the filter.
func (r *AdRepository) List(ctx context.Context, f port.AdListFilter) ([]domain.Advertisement, error) {
	var p predicate
	if f.Position != nil {
		p = and(p, positionIs(*f.Position))
	}
	if f.Active != nil {
		p = and(p, isActive(*f.Active))
	}
	query := `SELECT ` + adColumns + ` FROM advertisements a` + whereClause(p) +
		` ORDER BY a.priority DESC, a.created_at DESC`

	ads, err := r.queryAds(ctx, r.pool, rebind(query), p.args...)
	if err != nil {
		return nil, err
	}
	if err = loadTargets(ctx, r.pool, ads); err != nil {
		return nil, err
	}
	if err = loadZones(ctx, r.pool, ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// GetStats returns aggregated events in the period, optionally for one ad.
func (r *AdRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	p := and(cond("e.created_at >= ?", req.From), cond("e.created_at <= ?", req.To))
	if req.AdvertisementID != nil {
		p = and(p, cond("e.advertisement_id = ?", *req.AdvertisementID))
	}
	query := `SELECT
			count(*) FILTER (WHERE e.kind = 'impression'),
			count(*) FILTER (WHERE e.kind = 'click')
		FROM ad_events e` + whereClause(p)

	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, rebind(query), p.args...).Scan(&resp.Impressions, &resp.Clicks); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatsByAd returns one row per ad with lifetime counters and events
// recorded in the period. Ads without events in the period are included.
func (r *AdRepository) GetStatsByAd(ctx context.Context, req port.StatsReq) ([]port.AdStatsRow, error) {
	var p predicate
	if req.AdvertisementID != nil {
		p = cond("a.id = ?", *req.AdvertisementID)
	}
	query := `SELECT a.id, a.name, a.position, a.is_active, a.priority, a.impressions, a.clicks,
			count(e.id) FILTER (WHERE e.kind = 'impression'),
			count(e.id) FILTER (WHERE e.kind = 'click')
		FROM advertisements a
		LEFT JOIN ad_events e
			ON e.advertisement_id = a.id AND e.created_at >= ? AND e.created_at <= ?` +
		whereClause(p) + `
		GROUP BY a.id
		ORDER BY a.priority DESC, a.name`
	args := append([]any{req.From, req.To}, p.args...)

	rows, err := r.pool.Query(ctx, rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.AdStatsRow, error) {
		var (
			s        port.AdStatsRow
			position string
		)
		err := row.Scan(&s.AdvertisementID, &s.Name, &position, &s.IsActive, &s.Priority,
			&s.TotalImpressions, &s.TotalClicks, &s.PeriodImpressions, &s.PeriodClicks)
		s.Position = domain.Position(position)
		return s, err
	})
}

// CreateZone inserts a zone. A duplicate name returns port.ErrConflict.
func (r *AdRepository) CreateZone(ctx context.Context, z *domain.Zone) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ad_zones (id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		z.ID, z.Name, z.Description, z.CreatedAt)
	return mapError(err)
}

// ListZones returns zones ordered by name.
func (r *AdRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, created_at FROM ad_zones ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Zone, error) {
		var z domain.Zone
		err := row.Scan(&z.ID, &z.Name, &z.Description, &z.CreatedAt)
		return z, err
	})
}

func (r *AdRepository) queryAds(ctx context.Context, q querier, query string, args ...any) ([]domain.Advertisement, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

func scanAd(row pgx.CollectableRow) (domain.Advertisement, error) {
	var (
		ad       domain.Advertisement
		position string
	)
	err := row.Scan(
		&ad.ID,
		&ad.Name,
		&ad.Description,
		&ad.ImageURL,
		&ad.HTMLContent,
		&ad.TargetURL,
		&position,
		&ad.Priority,
		&ad.IsActive,
		&ad.StartDate,
		&ad.EndDate,
		&ad.Impressions,
		&ad.Clicks,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	ad.Position = domain.Position(position)
	return ad, err
}

// loadTargets fills Targets for every ad with a single query.
func loadTargets(ctx context.Context, q querier, ads []domain.Advertisement) error {
	if len(ads) == 0 {
		return nil
	}
	index := make(map[uuid.UUID]int, len(ads))
	ids := make([]string, len(ads))
	for i := range ads {
		index[ads[i].ID] = i
		ids[i] = ads[i].ID.String()
		ads[i].Targets = []domain.PageTarget{}
	}

	rows, err := q.Query(ctx, `
		SELECT id, advertisement_id, page_type, page_identifier
		FROM ad_page_targets
		WHERE advertisement_id = ANY($1::uuid[])
		ORDER BY page_type, page_identifier NULLS FIRST`, ids)
	if err != nil {
		return err
	}
	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PageTarget, error) {
		var t domain.PageTarget
		err := row.Scan(&t.ID, &t.AdvertisementID, &t.PageType, &t.PageIdentifier)
		return t, err
	})
	if err != nil {
		return err
	}
	for _, t := range targets {
		if i, ok := index[t.AdvertisementID]; ok {
			ads[i].Targets = append(ads[i].Targets, t)
		}
	}
	return nil
}

// loadZones fills ZoneIDs for every ad with a single query.
func loadZones(ctx context.Context, q querier, ads []domain.Advertisement) error {
	if len(ads) == 0 {
		return nil
	}
	index := make(map[uuid.UUID]int, len(ads))
	ids := make([]string, len(ads))
	for i := range ads {
		index[ads[i].ID] = i
		ids[i] = ads[i].ID.String()
		ads[i].ZoneIDs = []uuid.UUID{}
	}

	rows, err := q.Query(ctx, `
		SELECT advertisement_id, zone_id
		FROM advertisement_zones
		WHERE advertisement_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var adID, zoneID uuid.UUID
		if err = rows.Scan(&adID, &zoneID); err != nil {
			return err
		}
		if i, ok := index[adID]; ok {
			ads[i].ZoneIDs = append(ads[i].ZoneIDs, zoneID)
		}
	}
	return rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
