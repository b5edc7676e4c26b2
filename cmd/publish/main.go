// Command publish runs a single scheduled publication sweep and exits. It
// is meant for external schedulers such as cron or a Kubernetes CronJob.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/adapter/postgres"
	"newsdesk/internal/adapter/usecase"
	"newsdesk/internal/config"
	"newsdesk/internal/db"
	"newsdesk/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	log, closer := logger.New(cfg.Log, cfg.Env)
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Publish.Timeout)
	defer cancelTimeout()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		log.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	articles := usecase.NewArticleUseCase(postgres.NewArticleRepository(pool), log)
	res, err := articles.PublishDueArticles(ctx, time.Now())
	if err != nil {
		log.Error("publish sweep failed", slog.Any("error", err))
		return 1
	}
	log.Info("publish sweep done",
		slog.Int("published_count", res.PublishedCount),
		slog.Any("published_ids", res.PublishedIDs))
	return 0
}
