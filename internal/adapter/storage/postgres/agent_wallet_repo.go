package postgres

import (
	"context"
	"errors"
	"fmt"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const agentWalletColumns = `id, user_id, public_key, encrypted_secret_key, encryption_version,
		is_delegated, delegated_at, is_activated, activated_at, subaccount_index,
		account_authority, status, gas_balance, gas_balance_updated_at, created_at, updated_at`

// AgentWalletRepo implements ports.AgentWalletRepository.
type AgentWalletRepo struct {
	pool Pool
}

// NewAgentWalletRepo creates a new AgentWalletRepo.
func NewAgentWalletRepo(pool Pool) *AgentWalletRepo {
	return &AgentWalletRepo{pool: pool}
}

// Create inserts a new agent wallet. The unique index on user_id turns a
// concurrent second create into ports.ErrDuplicate.
func (r *AgentWalletRepo) Create(ctx context.Context, w *domain.AgentWallet) error {
	query := `INSERT INTO agent_wallets (` + agentWalletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.PublicKey, w.EncryptedSecretKey, w.EncryptionVersion,
		w.IsDelegated, w.DelegatedAt, w.IsActivated, w.ActivatedAt, int32(w.SubaccountIndex),
		w.AccountAuthority, w.Status, w.GasBalance, w.GasBalanceUpdatedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert agent wallet: %w", err)
	}
	return nil
}

// GetByID fetches an agent wallet by its UUID.
func (r *AgentWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AgentWallet, error) {
	return r.getOne(ctx, "get agent wallet by id", `SELECT `+agentWalletColumns+` FROM agent_wallets WHERE id = $1`, id)
}

// GetByUserID fetches the agent wallet owned by userID.
func (r *AgentWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	return r.getOne(ctx, "get agent wallet by user", `SELECT `+agentWalletColumns+` FROM agent_wallets WHERE user_id = $1`, userID)
}

// GetByPublicKey fetches an agent wallet by its ledger address.
func (r *AgentWalletRepo) GetByPublicKey(ctx context.Context, publicKey string) (*domain.AgentWallet, error) {
	return r.getOne(ctx, "get agent wallet by public key", `SELECT `+agentWalletColumns+` FROM agent_wallets WHERE public_key = $1`, publicKey)
}

// Update writes the mutable state of a wallet. Key material and ownership never change.
func (r *AgentWalletRepo) Update(ctx context.Context, w *domain.AgentWallet) error {
	query := `UPDATE agent_wallets SET
		is_delegated = $1, delegated_at = $2, is_activated = $3, activated_at = $4,
		subaccount_index = $5, account_authority = $6, status = $7,
		gas_balance = $8, gas_balance_updated_at = $9, updated_at = $10
		WHERE id = $11`

	tag, err := r.pool.Exec(ctx, query,
		w.IsDelegated, w.DelegatedAt, w.IsActivated, w.ActivatedAt,
		int32(w.SubaccountIndex), w.AccountAuthority, w.Status,
		w.GasBalance, w.GasBalanceUpdatedAt, w.UpdatedAt,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("update agent wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent wallet not found: %s", w.ID)
	}
	return nil
}

func (r *AgentWalletRepo) getOne(ctx context.Context, op, query string, arg any) (*domain.AgentWallet, error) {
	w := &domain.AgentWallet{}
	var subaccount int32
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.UserID, &w.PublicKey, &w.EncryptedSecretKey, &w.EncryptionVersion,
		&w.IsDelegated, &w.DelegatedAt, &w.IsActivated, &w.ActivatedAt, &subaccount,
		&w.AccountAuthority, &w.Status, &w.GasBalance, &w.GasBalanceUpdatedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	w.SubaccountIndex = uint16(subaccount)
	return w, nil
}
