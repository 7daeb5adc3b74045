package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AgentWalletServiceImpl implements ports.AgentWalletService.
type AgentWalletServiceImpl struct {
	repo   ports.AgentWalletRepository
	users  ports.UserRepository
	vault  ports.KeyVault
	ledger ports.LedgerClient
	audit  ports.AuditService
	log    zerolog.Logger
}

// NewAgentWalletService creates a new AgentWalletServiceImpl.
func NewAgentWalletService(
	repo ports.AgentWalletRepository,
	users ports.UserRepository,
	vault ports.KeyVault,
	ledger ports.LedgerClient,
	audit ports.AuditService,
	log zerolog.Logger,
) *AgentWalletServiceImpl {
	return &AgentWalletServiceImpl{
		repo:   repo,
		users:  users,
		vault:  vault,
		ledger: ledger,
		audit:  audit,
		log:    log,
	}
}

// Create generates and stores a new agent wallet for userID.
func (s *AgentWalletServiceImpl) Create(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrWalletConflict()
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate keypair: %w", err))
	}
	blob, err := s.vault.Encrypt(priv)
	zeroBytes(priv)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}

	now := time.Now().UTC()
	wallet := &domain.AgentWallet{
		ID:                 uuid.New(),
		UserID:             userID,
		PublicKey:          base58.Encode(pub),
		EncryptedSecretKey: blob,
		EncryptionVersion:  s.vault.Version(),
		IsDelegated:        false,
		SubaccountIndex:    0,
		AccountAuthority:   user.WalletAddress,
		Status:             domain.AgentWalletStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrWalletConflict()
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionWalletCreated, wallet))
	s.log.Info().
		Str("user_id", userID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("public_key", wallet.PublicKey).
		Msg("agent wallet created")

	return wallet, nil
}

// Get returns the user's wallet, or nil if none exists.
func (s *AgentWalletServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	w, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet by user: %w", err))
	}
	return w, nil
}

// Require returns the user's wallet or NoAgentWallet.
func (s *AgentWalletServiceImpl) Require(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	w, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperror.ErrNoAgentWallet()
	}
	return w, nil
}

// GetByPublicKey looks a wallet up by its ledger address.
func (s *AgentWalletServiceImpl) GetByPublicKey(ctx context.Context, publicKey string) (*domain.AgentWallet, error) {
	w, err := s.repo.GetByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet by public key: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNoAgentWallet()
	}
	return w, nil
}

// MarkDelegated records a confirmed on-chain delegation. A previously revoked
// wallet becomes active again.
func (s *AgentWalletServiceImpl) MarkDelegated(ctx context.Context, walletID uuid.UUID, subaccountIndex uint16) (*domain.AgentWallet, error) {
	return s.mutate(ctx, walletID, "mark delegated", func(w *domain.AgentWallet, now time.Time) bool {
		w.IsDelegated = true
		w.SubaccountIndex = subaccountIndex
		w.DelegatedAt = &now
		w.Status = domain.AgentWalletStatusActive
		return true
	}, domain.AuditActionDelegationConfirmed)
}

// ClearDelegation drops the cached delegated flag without revoking the wallet.
func (s *AgentWalletServiceImpl) ClearDelegation(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error) {
	return s.mutate(ctx, walletID, "clear delegation", func(w *domain.AgentWallet, _ time.Time) bool {
		if !w.IsDelegated && w.DelegatedAt == nil {
			return false
		}
		w.IsDelegated = false
		w.DelegatedAt = nil
		return true
	}, "")
}

// Revoke marks the wallet revoked. Revoking twice is a no-op.
func (s *AgentWalletServiceImpl) Revoke(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error) {
	return s.mutate(ctx, walletID, "revoke", func(w *domain.AgentWallet, _ time.Time) bool {
		if w.Status == domain.AgentWalletStatusRevoked && !w.IsDelegated {
			return false
		}
		w.IsDelegated = false
		w.DelegatedAt = nil
		w.Status = domain.AgentWalletStatusRevoked
		return true
	}, domain.AuditActionDelegationRevoked)
}

// MarkActivated records the first successful deposit.
func (s *AgentWalletServiceImpl) MarkActivated(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error) {
	return s.mutate(ctx, walletID, "mark activated", func(w *domain.AgentWallet, now time.Time) bool {
		if w.IsActivated {
			return false
		}
		w.IsActivated = true
		w.ActivatedAt = &now
		return true
	}, "")
}

// SetAccountAuthority points the wallet at the trading account owned by authority.
func (s *AgentWalletServiceImpl) SetAccountAuthority(ctx context.Context, walletID uuid.UUID, authority string) (*domain.AgentWallet, error) {
	return s.mutate(ctx, walletID, "set account authority", func(w *domain.AgentWallet, _ time.Time) bool {
		if w.AccountAuthority == authority {
			return false
		}
		w.AccountAuthority = authority
		return true
	}, "")
}

// RefreshGasBalance reads the native balance from the ledger and caches it.
func (s *AgentWalletServiceImpl) RefreshGasBalance(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	w, err := s.Require(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.GetBalance(ctx, w.PublicKey)
	if err != nil {
		return nil, apperror.ErrSubmissionFailed(fmt.Errorf("get balance: %w", err))
	}

	return s.mutate(ctx, w.ID, "refresh gas balance", func(w *domain.AgentWallet, now time.Time) bool {
		w.GasBalance = balance
		w.GasBalanceUpdatedAt = &now
		return true
	}, "")
}

// DecryptSigningKey is the only path that yields plaintext key material.
// The caller must Destroy the returned key.
func (s *AgentWalletServiceImpl) DecryptSigningKey(ctx context.Context, walletID uuid.UUID) (*domain.SigningKey, error) {
	w, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNoAgentWallet()
	}

	raw, err := s.vault.Decrypt(w.EncryptedSecretKey)
	if err != nil {
		return nil, s.integrityFailure(ctx, w, err)
	}

	key, err := domain.NewSigningKey(raw)
	if err != nil {
		zeroBytes(raw)
		return nil, s.integrityFailure(ctx, w, err)
	}
	if key.Address() != w.PublicKey {
		key.Destroy()
		return nil, s.integrityFailure(ctx, w, errors.New("decrypted key does not match wallet address"))
	}
	return key, nil
}

// WithSigningKey decrypts the wallet key, hands it to fn once, and zeroes it
// before returning on every path.
func (s *AgentWalletServiceImpl) WithSigningKey(ctx context.Context, walletID uuid.UUID, fn func(key *domain.SigningKey) error) error {
	key, err := s.DecryptSigningKey(ctx, walletID)
	if err != nil {
		return err
	}
	defer key.Destroy()
	return fn(key)
}

func (s *AgentWalletServiceImpl) integrityFailure(ctx context.Context, w *domain.AgentWallet, cause error) error {
	s.log.Error().
		Err(cause).
		Str("wallet_id", w.ID.String()).
		Str("public_key", w.PublicKey).
		Str("encryption_version", w.EncryptionVersion).
		Msg("SECURITY ALERT: agent wallet key failed integrity check")
	s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionKeyIntegrityFailure, w))
	return apperror.ErrKeyIntegrity(cause)
}

// mutate loads a wallet, applies change and persists it when change reports a difference.
func (s *AgentWalletServiceImpl) mutate(
	ctx context.Context,
	walletID uuid.UUID,
	op string,
	change func(w *domain.AgentWallet, now time.Time) bool,
	action domain.AuditAction,
) (*domain.AgentWallet, error) {
	w, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("%s: get wallet: %w", op, err))
	}
	if w == nil {
		return nil, apperror.ErrNoAgentWallet()
	}

	now := time.Now().UTC()
	if !change(w, now) {
		return w, nil
	}
	w.UpdatedAt = now
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("%s: update wallet: %w", op, err))
	}

	if action != "" {
		s.audit.Log(ctx, domain.NewAuditLog(action, w))
		s.log.Info().
			Str("wallet_id", w.ID.String()).
			Str("action", string(action)).
			Msg("agent wallet updated")
	}
	return w, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
