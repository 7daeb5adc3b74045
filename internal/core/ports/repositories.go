package ports

import (
	"context"
	"errors"

	"delegated-trading-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicate is returned by repositories when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

// AgentWalletRepository defines persistence operations for agent wallets.
// Lookups return nil, nil when no row matches.
type AgentWalletRepository interface {
	Create(ctx context.Context, wallet *domain.AgentWallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AgentWallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error)
	GetByPublicKey(ctx context.Context, publicKey string) (*domain.AgentWallet, error)
	Update(ctx context.Context, wallet *domain.AgentWallet) error
}

// UserRepository reads the externally owned user records.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
