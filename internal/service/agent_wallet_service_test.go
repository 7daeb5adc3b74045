package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"sync"
	"testing"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/internal/core/ports/mocks"
	"delegated-trading-gateway/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletServiceDeps struct {
	repo   *mocks.MockAgentWalletRepository
	users  *mocks.MockUserRepository
	ledger *mocks.MockLedgerClient
	audit  *mocks.MockAuditService
	vault  *AESKeyVault
}

func setupWalletService(t *testing.T) (*AgentWalletServiceImpl, *walletServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := &walletServiceDeps{
		repo:   mocks.NewMockAgentWalletRepository(ctrl),
		users:  mocks.NewMockUserRepository(ctrl),
		ledger: mocks.NewMockLedgerClient(ctrl),
		audit:  mocks.NewMockAuditService(ctrl),
		vault:  newTestVault(t),
	}
	svc := NewAgentWalletService(deps.repo, deps.users, deps.vault, deps.ledger, deps.audit, zerolog.Nop())
	return svc, deps
}

// newSealedWallet returns a wallet whose key blob decrypts under the test vault.
func newSealedWallet(t *testing.T, vault *AESKeyVault) *domain.AgentWallet {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	blob, err := vault.Encrypt(priv)
	require.NoError(t, err)
	return &domain.AgentWallet{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		PublicKey:          base58.Encode(pub),
		EncryptedSecretKey: blob,
		EncryptionVersion:  vault.Version(),
		AccountAuthority:   "UserWa11et1111111111111111111111111111111111",
		Status:             domain.AgentWalletStatusActive,
	}
}

// ==================== Create Tests ====================

func TestAgentWalletService_Create_Success(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.repo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)
	deps.users.EXPECT().GetByID(ctx, userID).Return(&domain.User{ID: userID, WalletAddress: "OwnerAddr"}, nil)

	var stored *domain.AgentWallet
	deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.AgentWallet) error {
		stored = w
		return nil
	})
	deps.audit.EXPECT().Log(ctx, gomock.Any())

	w, err := svc.Create(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, userID, w.UserID)
	assert.False(t, w.IsDelegated)
	assert.Equal(t, uint16(0), w.SubaccountIndex)
	assert.Equal(t, "OwnerAddr", w.AccountAuthority)
	assert.Equal(t, "v1", w.EncryptionVersion)
	assert.Len(t, base58.Decode(w.PublicKey), ed25519.PublicKeySize)

	// The stored blob opens to a key whose public half is the wallet address.
	raw, err := deps.vault.Decrypt(stored.EncryptedSecretKey)
	require.NoError(t, err)
	key, err := domain.NewSigningKey(raw)
	require.NoError(t, err)
	defer key.Destroy()
	assert.Equal(t, w.PublicKey, key.Address())
}

func TestAgentWalletService_Create_AlreadyExists(t *testing.T) {
	svc, deps := setupWalletService(t)
	userID := uuid.New()

	deps.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.AgentWallet{UserID: userID}, nil)

	_, err := svc.Create(context.Background(), userID)
	assert.True(t, apperror.HasCode(err, "AGENT_002"))
}

func TestAgentWalletService_Create_UnknownUser(t *testing.T) {
	svc, deps := setupWalletService(t)

	deps.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New())
	assert.True(t, apperror.HasCode(err, "AGENT_003"))
}

func TestAgentWalletService_Create_DuplicateInsertIsConflict(t *testing.T) {
	svc, deps := setupWalletService(t)

	deps.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.User{WalletAddress: "Owner"}, nil)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ports.ErrDuplicate)

	_, err := svc.Create(context.Background(), uuid.New())
	assert.True(t, apperror.HasCode(err, "AGENT_002"))
}

// uniqueWalletRepo enforces one wallet per user the way the unique index does.
type uniqueWalletRepo struct {
	mu      sync.Mutex
	byUser  map[uuid.UUID]*domain.AgentWallet
	created int
}

func (r *uniqueWalletRepo) Create(_ context.Context, w *domain.AgentWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[w.UserID]; ok {
		return ports.ErrDuplicate
	}
	r.byUser[w.UserID] = w
	r.created++
	return nil
}

func (r *uniqueWalletRepo) GetByID(context.Context, uuid.UUID) (*domain.AgentWallet, error) {
	return nil, nil
}

func (r *uniqueWalletRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.AgentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byUser[userID], nil
}

func (r *uniqueWalletRepo) GetByPublicKey(context.Context, string) (*domain.AgentWallet, error) {
	return nil, nil
}

func (r *uniqueWalletRepo) Update(context.Context, *domain.AgentWallet) error { return nil }

func TestAgentWalletService_Create_ConcurrentCallsYieldOneWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	repo := &uniqueWalletRepo{byUser: map[uuid.UUID]*domain.AgentWallet{}}
	svc := NewAgentWalletService(repo, users, newTestVault(t), nil, audit, zerolog.Nop())

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, WalletAddress: "Owner"}, nil).AnyTimes()
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), userID)
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, apperror.HasCode(err, "AGENT_002"), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, repo.created)
}

// ==================== Lookup Tests ====================

func TestAgentWalletService_Require_NoWallet(t *testing.T) {
	svc, deps := setupWalletService(t)
	deps.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Require(context.Background(), uuid.New())
	assert.True(t, apperror.HasCode(err, "AGENT_001"))
}

func TestAgentWalletService_Get_RepoError(t *testing.T) {
	svc, deps := setupWalletService(t)
	deps.repo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, apperror.HasCode(err, "SYS_001"))
}

func TestAgentWalletService_GetByPublicKey(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), PublicKey: "Agent111"}
	deps.repo.EXPECT().GetByPublicKey(gomock.Any(), "Agent111").Return(w, nil)
	deps.repo.EXPECT().GetByPublicKey(gomock.Any(), "Missing").Return(nil, nil)

	got, err := svc.GetByPublicKey(context.Background(), "Agent111")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	_, err = svc.GetByPublicKey(context.Background(), "Missing")
	assert.True(t, apperror.HasCode(err, "AGENT_001"))
}

// ==================== State Transition Tests ====================

func TestAgentWalletService_MarkDelegated(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), Status: domain.AgentWalletStatusRevoked}

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil)
	deps.audit.EXPECT().Log(gomock.Any(), gomock.Any())

	got, err := svc.MarkDelegated(context.Background(), w.ID, 3)
	require.NoError(t, err)
	assert.True(t, got.IsDelegated)
	assert.Equal(t, uint16(3), got.SubaccountIndex)
	assert.NotNil(t, got.DelegatedAt)
	assert.Equal(t, domain.AgentWalletStatusActive, got.Status)
}

func TestAgentWalletService_Revoke_Idempotent(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), IsDelegated: true, Status: domain.AgentWalletStatusActive}

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil).Times(2)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil).Times(1)
	deps.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Times(1)

	got, err := svc.Revoke(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentWalletStatusRevoked, got.Status)
	assert.False(t, got.IsDelegated)

	got, err = svc.Revoke(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AgentWalletStatusRevoked, got.Status)
}

func TestAgentWalletService_ClearDelegation_KeepsStatus(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), IsDelegated: true, Status: domain.AgentWalletStatusActive}

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil)

	got, err := svc.ClearDelegation(context.Background(), w.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDelegated)
	assert.Equal(t, domain.AgentWalletStatusActive, got.Status)
}

func TestAgentWalletService_MarkActivated_OnlyOnce(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New()}

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil).Times(2)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil).Times(1)

	_, err := svc.MarkActivated(context.Background(), w.ID)
	require.NoError(t, err)
	first := *w.ActivatedAt

	_, err = svc.MarkActivated(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *w.ActivatedAt)
}

func TestAgentWalletService_SetAccountAuthority(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), AccountAuthority: "Owner"}

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil)

	got, err := svc.SetAccountAuthority(context.Background(), w.ID, "Agent")
	require.NoError(t, err)
	assert.Equal(t, "Agent", got.AccountAuthority)
}

func TestAgentWalletService_RefreshGasBalance(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: "Agent"}

	deps.repo.EXPECT().GetByUserID(gomock.Any(), w.UserID).Return(w, nil)
	deps.ledger.EXPECT().GetBalance(gomock.Any(), "Agent").Return(int64(12_345), nil)
	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.repo.EXPECT().Update(gomock.Any(), w).Return(nil)

	got, err := svc.RefreshGasBalance(context.Background(), w.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(12_345), got.GasBalance)
	assert.NotNil(t, got.GasBalanceUpdatedAt)
}

// ==================== Signing Key Tests ====================

func TestAgentWalletService_WithSigningKey_SignsAndDestroys(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := newSealedWallet(t, deps.vault)
	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)

	var held *domain.SigningKey
	msg := []byte("order message")
	err := svc.WithSigningKey(context.Background(), w.ID, func(key *domain.SigningKey) error {
		held = key
		sig := key.Sign(msg)
		assert.True(t, ed25519.Verify(base58.Decode(w.PublicKey), msg, sig))
		return nil
	})
	require.NoError(t, err)
	assert.Panics(t, func() { held.Sign(msg) })
}

func TestAgentWalletService_WithSigningKey_DestroysOnCallbackError(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := newSealedWallet(t, deps.vault)
	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)

	var held *domain.SigningKey
	boom := errors.New("submit failed")
	err := svc.WithSigningKey(context.Background(), w.ID, func(key *domain.SigningKey) error {
		held = key
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Panics(t, func() { held.Sign([]byte("x")) })
}

func TestAgentWalletService_DecryptSigningKey_TamperedBlob(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := newSealedWallet(t, deps.vault)
	raw := []byte(w.EncryptedSecretKey)
	if raw[10] == 'A' {
		raw[10] = 'B'
	} else {
		raw[10] = 'A'
	}
	w.EncryptedSecretKey = string(raw)

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionKeyIntegrityFailure, entry.Action)
	})

	called := false
	err := svc.WithSigningKey(context.Background(), w.ID, func(*domain.SigningKey) error {
		called = true
		return nil
	})
	assert.True(t, apperror.HasCode(err, "SEC_001"))
	assert.False(t, called)
}

func TestAgentWalletService_DecryptSigningKey_AddressMismatch(t *testing.T) {
	svc, deps := setupWalletService(t)
	w := newSealedWallet(t, deps.vault)
	other := newSealedWallet(t, deps.vault)
	w.PublicKey = other.PublicKey

	deps.repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	deps.audit.EXPECT().Log(gomock.Any(), gomock.Any())

	_, err := svc.DecryptSigningKey(context.Background(), w.ID)
	assert.True(t, apperror.HasCode(err, "SEC_001"))
}

func TestAgentWalletService_DecryptSigningKey_NoWallet(t *testing.T) {
	svc, deps := setupWalletService(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.DecryptSigningKey(context.Background(), uuid.New())
	assert.True(t, apperror.HasCode(err, "AGENT_001"))
}
