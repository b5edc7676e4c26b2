// Package scheduler runs the scheduled publication sweep on a timer inside
// the server process.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsdesk/internal/config/configs"
	"newsdesk/internal/core/domain"
	"newsdesk/internal/core/port"
	"newsdesk/internal/metrics"
)

// ErrLocked is returned by Sweep when another replica holds the sweep lock.
var ErrLocked = errors.New("publish sweep is running elsewhere")

// Publisher periodically promotes due scheduled articles. With a Locker,
// only one replica sweeps per lease; without one every replica sweeps,
// which is safe because the sweep is idempotent.
type Publisher struct {
	articles port.ArticleUseCase
	locker   port.Locker
	lockKey  string
	cfg      configs.Publish
	logger   *slog.Logger
}

// NewPublisher builds a Publisher. locker may be nil.
func NewPublisher(articles port.ArticleUseCase, locker port.Locker, lockKey string, cfg configs.Publish, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		articles: articles,
		locker:   locker,
		lockKey:  lockKey,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "publisher")),
	}
}

// Run sweeps once immediately and then every cfg.Interval until ctx is
// cancelled. Sweep failures are logged and retried on the next tick.
func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("publisher started", slog.Duration("interval", p.cfg.Interval))
	defer p.logger.Info("publisher stopped")

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		p.tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Publisher) tick(ctx context.Context) {
	_, err := p.Sweep(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrLocked):
		p.logger.Debug("sweep skipped, lock held elsewhere")
	case ctx.Err() != nil:
	default:
		p.logger.Error("sweep failed", slog.Any("error", err))
	}
}

// Sweep runs one bounded publication pass.
func (p *Publisher) Sweep(ctx context.Context) (res *domain.PublishResult, err error) {
	start := time.Now()
	result := "ok"
	defer func() {
		metrics.SweepDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	if p.locker != nil {
		release, ok, err := p.locker.TryLock(ctx, p.lockKey, p.cfg.LockTTL)
		if err != nil {
			result = "error"
			return nil, err
		}
		if !ok {
			result = "skipped"
			return nil, ErrLocked
		}
		defer func() {
			// the sweep ctx may already be done; release on a fresh one
			relCtx, relCancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer relCancel()
			if rerr := release(relCtx); rerr != nil {
				p.logger.Warn("release sweep lock", slog.Any("error", rerr))
			}
		}()
	}

	res, err = p.articles.PublishDueArticles(ctx, time.Time{})
	if err != nil {
		result = "error"
		return nil, err
	}
	return res, nil
}
