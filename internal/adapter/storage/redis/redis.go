package redis

import (
	"context"
	"fmt"
	"time"

	"delegated-trading-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// clientName tags gateway connections in CLIENT LIST.
const clientName = "delegated-trading-gateway"

func clientOptions(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
		PoolSize:   cfg.PoolSize,
		// Lock polling and rate-limit counters are small round trips.
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
}

// NewClient connects to the Redis instance holding wallet locks, rate-limit
// windows and idempotency records.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(clientOptions(cfg))
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("client_name", clientName).
		Msg("lock store connected")
	return client, nil
}
