package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	httpadapter "newsdesk/internal/adapter/http"
	"newsdesk/internal/adapter/postgres"
	redisadapter "newsdesk/internal/adapter/redis"
	"newsdesk/internal/adapter/usecase"
	"newsdesk/internal/config"
	"newsdesk/internal/core/port"
	"newsdesk/internal/db"
	"newsdesk/internal/logger"
	"newsdesk/internal/scheduler"
)

// main is the entry point of the newsdesk service. It loads configuration,
// optionally runs database migrations and the demo seed, wires repositories
// and use cases, then serves HTTP and runs the publication scheduler. On
// SIGINT or SIGTERM it stops the scheduler and gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	log, closer := logger.New(cfg.Log, cfg.Env)
	defer closer.Close()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), log); err != nil {
			log.Error("migration error", slog.Any("error", err))
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		log.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			log.Error("seed error", slog.Any("error", err))
			return
		}
		log.Info("demo data seeded")
	}

	var locker port.Locker
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		locker = redisadapter.NewLocker(client)
	}

	ads := usecase.NewAdUseCase(postgres.NewAdRepository(pool))
	articles := usecase.NewArticleUseCase(postgres.NewArticleRepository(pool), log)

	handler := httpadapter.NewHandler(ads, articles, cfg.Auth, log)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup
	workCtx, stopWork := context.WithCancel(ctx)
	defer stopWork()
	if cfg.Publish.Enabled {
		publisher := scheduler.NewPublisher(articles, locker, cfg.Redis.Key("publish-sweep"), cfg.Publish, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			publisher.Run(workCtx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		log.Error("server error", slog.Any("error", err))
	}

	stopWork()
	wg.Wait()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		log.Info("server gracefully stopped")
	}
}
