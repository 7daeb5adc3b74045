package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "health:write"

// WriteCheck implements ports.HealthChecker. Locks and idempotency records
// need writes, so a reachable but read-only or full instance is unhealthy.
type WriteCheck struct {
	client goredis.UniversalClient
}

// NewWriteCheck creates a Redis health checker.
func NewWriteCheck(client goredis.UniversalClient) *WriteCheck {
	return &WriteCheck{client: client}
}

func (c *WriteCheck) Ping(ctx context.Context) error {
	if err := c.client.Set(ctx, healthKey, time.Now().UTC().Format(time.RFC3339), 10*time.Second).Err(); err != nil {
		return fmt.Errorf("redis write: %w", err)
	}
	return nil
}

func (c *WriteCheck) Name() string {
	return "redis"
}
