package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrSchemaMissing is reported when the database answers but the wallet
// table is gone.
var ErrSchemaMissing = errors.New("agent_wallets table missing")

// SchemaCheck implements ports.HealthChecker. A database that answers
// without the wallet table cannot serve any wallet operation, so both count.
type SchemaCheck struct {
	pool Pool
}

// NewSchemaCheck creates a PostgreSQL health checker.
func NewSchemaCheck(pool Pool) *SchemaCheck {
	return &SchemaCheck{pool: pool}
}

func (c *SchemaCheck) Ping(ctx context.Context) error {
	var present bool
	err := c.pool.QueryRow(ctx, `SELECT to_regclass('agent_wallets') IS NOT NULL`).Scan(&present)
	if err != nil {
		return fmt.Errorf("query wallet store: %w", err)
	}
	if !present {
		return ErrSchemaMissing
	}
	return nil
}

func (c *SchemaCheck) Name() string {
	return "postgresql"
}
