package postgres

import (
	"context"
	"fmt"
)

// The users table belongs to the login service; it is created here only so a
// fresh database can start.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id             UUID PRIMARY KEY,
    wallet_address TEXT NOT NULL UNIQUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS agent_wallets (
    id                     UUID PRIMARY KEY,
    user_id                UUID NOT NULL UNIQUE REFERENCES users(id),
    public_key             TEXT NOT NULL UNIQUE,
    encrypted_secret_key   TEXT NOT NULL,
    encryption_version     TEXT NOT NULL,
    is_delegated           BOOLEAN NOT NULL DEFAULT FALSE,
    delegated_at           TIMESTAMPTZ,
    is_activated           BOOLEAN NOT NULL DEFAULT FALSE,
    activated_at           TIMESTAMPTZ,
    subaccount_index       INTEGER NOT NULL DEFAULT 0,
    account_authority      TEXT NOT NULL,
    status                 TEXT NOT NULL DEFAULT 'ACTIVE',
    gas_balance            BIGINT NOT NULL DEFAULT 0,
    gas_balance_updated_at TIMESTAMPTZ,
    created_at             TIMESTAMPTZ NOT NULL,
    updated_at             TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_logs (
    id         UUID PRIMARY KEY,
    user_id    UUID,
    wallet_id  UUID,
    action     TEXT NOT NULL,
    signature  TEXT,
    details    JSONB,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_logs_wallet_created ON audit_logs (wallet_id, created_at DESC);
`

// EnsureSchema creates missing tables. It is safe to run on every start.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
