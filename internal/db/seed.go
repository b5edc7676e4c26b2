package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/core/domain"
)

// seedNamespace derives stable ids so that running Seed twice is a no-op.
var seedNamespace = uuid.MustParse("6f1c2b9e-5a47-4d0e-9c1f-3b8e2d7a4f60")

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", kind, n)))
}

// Seed inserts demo advertisements, page targets and articles.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	// one ad per slot, the odd ones scoped to article pages
	for i, pos := range domain.Positions {
		id := seedID("ad", i)
		name := fmt.Sprintf("Demo %s banner", pos)
		start := now.AddDate(0, 0, -1)
		end := now.AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO advertisements
    (id, name, description, image_url, target_url, position, priority, is_active,
     start_date, end_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			id, name, "seeded", fmt.Sprintf("https://example.com/banners/%d.png", i),
			fmt.Sprintf("https://example.com/landing/%d", i), string(pos), r.Intn(10), start, end)
		if err != nil {
			return err
		}
		if i%2 == 0 {
			continue
		}
		_, err = db.Exec(ctx, `INSERT INTO ad_page_targets (id, advertisement_id, page_type, page_identifier)
VALUES ($1,$2,'article',NULL) ON CONFLICT DO NOTHING`, seedID("target", i), id)
		if err != nil {
			return err
		}
	}

	// a published, a draft and a scheduled article for every day of a week
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		rows := []struct {
			status      domain.ArticleStatus
			publishedAt *time.Time
			scheduledAt *time.Time
		}{
			{status: domain.ArticlePublished, publishedAt: &day},
			{status: domain.ArticleDraft},
			{status: domain.ArticleScheduled, scheduledAt: ptr(now.Add(time.Duration(i+1) * time.Hour))},
		}
		for j, row := range rows {
			n := i*len(rows) + j
			title := fmt.Sprintf("Demo story %d", n)
			_, err := db.Exec(ctx, `INSERT INTO articles
    (id, title, slug, content, excerpt, status, published_at, scheduled_at, author_name, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
				seedID("article", n), title, domain.Slugify(title), "Lorem ipsum.", "Lorem.",
				string(row.status), row.publishedAt, row.scheduledAt, "Newsroom")
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
