package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"newsdesk/internal/config/configs"
)

// NewRedisClient connects to cfg.URL and pings it with a 5 second timeout.
// The caller closes the returned client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
