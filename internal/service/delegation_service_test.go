package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/internal/core/ports/mocks"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAccountAddress = "TradingAcct111111111111111111111111111111111"

type delegationDeps struct {
	wallets  *mocks.MockAgentWalletService
	protocol *mocks.MockProtocolClient
	ledger   *mocks.MockLedgerClient
	audit    *mocks.MockAuditService
}

func setupDelegationService(t *testing.T) (*DelegationServiceImpl, *delegationDeps) {
	ctrl := gomock.NewController(t)
	deps := &delegationDeps{
		wallets:  mocks.NewMockAgentWalletService(ctrl),
		protocol: mocks.NewMockProtocolClient(ctrl),
		ledger:   mocks.NewMockLedgerClient(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
	}
	submitter := NewTxSubmitter(deps.wallets, deps.ledger, time.Second, zerolog.Nop())
	svc := NewDelegationService(deps.wallets, deps.protocol, deps.ledger, submitter, deps.audit, zerolog.Nop())
	return svc, deps
}

// expectAccount makes the ledger return an account with delegate, or no account when delegate is nil.
func (d *delegationDeps) expectAccount(w *domain.AgentWallet, delegate *string) {
	ref := ports.AccountRef{Authority: w.AccountAuthority, SubaccountIndex: w.SubaccountIndex}
	d.protocol.EXPECT().UserAccountAddress(gomock.Any(), ref).Return(testAccountAddress, nil)
	if delegate == nil {
		d.ledger.EXPECT().GetAccountInfo(gomock.Any(), testAccountAddress).Return(nil, nil)
		return
	}
	data := []byte("account-bytes")
	d.ledger.EXPECT().GetAccountInfo(gomock.Any(), testAccountAddress).Return(data, nil)
	d.protocol.EXPECT().DecodeUserAccount(gomock.Any(), testAccountAddress, data).Return(&domain.TradingAccount{
		Address:   testAccountAddress,
		Authority: w.AccountAuthority,
		Delegate:  *delegate,
	}, nil)
}

func strPtr(s string) *string { return &s }

// ==================== Ledger-Wins Tests ====================

func TestDelegationService_RequireDelegated_LedgerWins(t *testing.T) {
	const agentKey = "Agent11111111111111111111111111111111111111"

	ledgerStates := []struct {
		name     string
		delegate *string
	}{
		{"ledger names agent", strPtr(agentKey)},
		{"ledger names other key", strPtr("Other11111111111111111111111111111111111111")},
		{"ledger delegate cleared", strPtr(domain.SystemProgramAddress)},
		{"no ledger account", nil},
	}

	for _, cached := range []bool{true, false} {
		for _, ls := range ledgerStates {
			t.Run(fmt.Sprintf("cached=%v/%s", cached, ls.name), func(t *testing.T) {
				svc, deps := setupDelegationService(t)
				w := &domain.AgentWallet{
					ID:               uuid.New(),
					UserID:           uuid.New(),
					PublicKey:        agentKey,
					IsDelegated:      cached,
					AccountAuthority: "Owner",
					Status:           domain.AgentWalletStatusActive,
				}
				deps.expectAccount(w, ls.delegate)
				deps.audit.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
				deps.wallets.EXPECT().MarkDelegated(gomock.Any(), w.ID, w.SubaccountIndex).Return(w, nil).AnyTimes()
				deps.wallets.EXPECT().ClearDelegation(gomock.Any(), w.ID).Return(w, nil).AnyTimes()

				account, err := svc.RequireDelegated(context.Background(), w)

				ledgerMatches := ls.delegate != nil && *ls.delegate == agentKey
				if ledgerMatches {
					require.NoError(t, err)
					assert.Equal(t, agentKey, account.Delegate)
					return
				}
				require.Error(t, err)
				switch {
				case ls.delegate == nil:
					assert.True(t, apperror.HasCode(err, "LEDGER_001"))
				case cached:
					assert.True(t, apperror.HasCode(err, "DLG_002"))
				default:
					assert.True(t, apperror.HasCode(err, "DLG_001"))
				}
			})
		}
	}
}

func TestDelegationService_RequireDelegated_ClearsStaleFlag(t *testing.T) {
	svc, deps := setupDelegationService(t)
	w := &domain.AgentWallet{ID: uuid.New(), PublicKey: "Agent", IsDelegated: true, AccountAuthority: "Owner"}
	deps.expectAccount(w, strPtr("Other"))
	deps.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionDelegationDrift, e.Action)
		assert.Contains(t, e.Details, "Other")
	})
	deps.wallets.EXPECT().ClearDelegation(gomock.Any(), w.ID).Return(w, nil)

	_, err := svc.RequireDelegated(context.Background(), w)
	assert.True(t, apperror.HasCode(err, "DLG_002"))
}

// ==================== Status Tests ====================

func TestDelegationService_Status_Unlinked(t *testing.T) {
	svc, deps := setupDelegationService(t)
	deps.wallets.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

	st, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.DelegationUnlinked, st.State)
}

func TestDelegationService_Status_States(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.AgentWalletStatus
		cached    bool
		delegate  *string
		wantState domain.DelegationState
		wantDrift bool
	}{
		{"delegated and in sync", domain.AgentWalletStatusActive, true, strPtr("Agent"), domain.DelegationDelegated, false},
		{"delegated on chain only", domain.AgentWalletStatusActive, false, strPtr("Agent"), domain.DelegationDelegated, true},
		{"no account yet", domain.AgentWalletStatusActive, false, nil, domain.DelegationPendingDelegation, false},
		{"account without delegate", domain.AgentWalletStatusActive, false, strPtr(domain.SystemProgramAddress), domain.DelegationPendingDelegation, false},
		{"revoked", domain.AgentWalletStatusRevoked, false, strPtr(domain.SystemProgramAddress), domain.DelegationRevoked, false},
		{"cache claims delegation", domain.AgentWalletStatusActive, true, strPtr("Other"), domain.DelegationPendingDelegation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := setupDelegationService(t)
			w := &domain.AgentWallet{
				ID:               uuid.New(),
				UserID:           uuid.New(),
				PublicKey:        "Agent",
				IsDelegated:      tt.cached,
				AccountAuthority: "Owner",
				Status:           tt.status,
			}
			deps.wallets.EXPECT().Get(gomock.Any(), w.UserID).Return(w, nil)
			deps.expectAccount(w, tt.delegate)
			if tt.wantDrift {
				deps.audit.EXPECT().Log(gomock.Any(), gomock.Any())
				if tt.cached {
					deps.wallets.EXPECT().ClearDelegation(gomock.Any(), w.ID).Return(w, nil)
				} else {
					deps.wallets.EXPECT().MarkDelegated(gomock.Any(), w.ID, uint16(0)).Return(w, nil)
				}
			}

			st, err := svc.Status(context.Background(), w.UserID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, st.State)
			assert.Equal(t, tt.wantDrift, st.Drift)
			assert.Equal(t, tt.delegate != nil, st.HasLedgerAccount)
			assert.Equal(t, testAccountAddress, st.AccountAddress)
		})
	}
}

// ==================== Delegate Transaction Tests ====================

// testMessage returns a well-formed message whose only signer is payer.
func testMessage(t *testing.T, payer string) []byte {
	t.Helper()
	msg, err := solanatx.TransferMessage(payer, newTestAgent(t).wallet.PublicKey, 1, "11111111111111111111111111111111")
	require.NoError(t, err)
	return msg
}

// signedByOwner encodes a message signed by owner, ready for SubmitSignedDelegation.
func signedByOwner(t *testing.T, owner string) ([]byte, string) {
	t.Helper()
	msg := testMessage(t, owner)
	return msg, base64.StdEncoding.EncodeToString(solanatx.Encode([][]byte{make([]byte, 64)}, msg))
}

func TestDelegationService_BuildAuthorizeTx(t *testing.T) {
	svc, deps := setupDelegationService(t)
	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: "Agent", AccountAuthority: "Owner"}
	deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
	deps.expectAccount(w, strPtr(domain.SystemProgramAddress))
	message := testMessage(t, newTestAgent(t).wallet.PublicKey)
	deps.protocol.EXPECT().BuildSetDelegate(gomock.Any(), ports.AccountRef{Authority: "Owner"}, "Agent").
		Return(&domain.UnsignedTransaction{Message: message, Signers: []string{"Owner"}}, nil)

	tx, err := svc.BuildAuthorizeTx(context.Background(), w.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Agent", tx.Delegate)
	assert.Equal(t, "Owner", tx.Authority)
	assert.Equal(t, testAccountAddress, tx.AccountAddress)

	raw, err := base64.StdEncoding.DecodeString(tx.Transaction)
	require.NoError(t, err)
	sigs, msg, err := solanatx.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, message, msg)
	require.Len(t, sigs, 1)
	assert.Equal(t, make([]byte, solanatx.SignatureSize), sigs[0])
}

func TestDelegationService_BuildRevokeTx_UsesSystemProgram(t *testing.T) {
	svc, deps := setupDelegationService(t)
	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: "Agent", AccountAuthority: "Owner", IsDelegated: true}
	deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
	deps.expectAccount(w, strPtr("Agent"))
	deps.protocol.EXPECT().BuildSetDelegate(gomock.Any(), gomock.Any(), domain.SystemProgramAddress).
		Return(&domain.UnsignedTransaction{Message: []byte("clear"), Signers: []string{"Owner"}}, nil)

	tx, err := svc.BuildRevokeTx(context.Background(), w.UserID)
	require.NoError(t, err)
	assert.Equal(t, domain.SystemProgramAddress, tx.Delegate)
}

func TestDelegationService_BuildAuthorizeTx_NoLedgerAccount(t *testing.T) {
	svc, deps := setupDelegationService(t)
	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: "Agent", AccountAuthority: "Owner"}
	deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
	deps.expectAccount(w, nil)

	_, err := svc.BuildAuthorizeTx(context.Background(), w.UserID)
	assert.True(t, apperror.HasCode(err, "LEDGER_001"))
}

func TestDelegationService_SubmitSignedDelegation_RejectsGarbage(t *testing.T) {
	svc, deps := setupDelegationService(t)
	deps.wallets.EXPECT().Require(gomock.Any(), gomock.Any()).Return(&domain.AgentWallet{AccountAuthority: "Owner"}, nil)

	_, err := svc.SubmitSignedDelegation(context.Background(), uuid.New(), "%%%")
	assert.True(t, apperror.HasCode(err, "SYS_004"))
}

func TestDelegationService_SubmitSignedDelegation_MarksDelegated(t *testing.T) {
	svc, deps := setupDelegationService(t)

	owner := newTestAgent(t).wallet.PublicKey
	agent := newTestAgent(t).wallet.PublicKey
	msg, signed := signedByOwner(t, owner)

	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: agent, AccountAuthority: owner}
	deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
	deps.protocol.EXPECT().ParseSetDelegate(msg).Return(&ports.SetDelegateCall{
		Account:  ports.AccountRef{Authority: owner},
		Delegate: agent,
	}, nil)
	deps.ledger.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).Return("sig-dlg", nil)
	deps.ledger.EXPECT().ConfirmTransaction(gomock.Any(), "sig-dlg").Return(domain.TxStatusConfirmed, nil)

	deps.expectAccount(w, strPtr(agent))
	deps.wallets.EXPECT().MarkDelegated(gomock.Any(), w.ID, uint16(0)).DoAndReturn(
		func(context.Context, uuid.UUID, uint16) (*domain.AgentWallet, error) {
			w.IsDelegated = true
			return w, nil
		})

	deps.wallets.EXPECT().Get(gomock.Any(), w.UserID).Return(w, nil)
	deps.expectAccount(w, strPtr(agent))

	res, err := svc.SubmitSignedDelegation(context.Background(), w.UserID, signed)
	require.NoError(t, err)
	assert.Equal(t, "sig-dlg", res.Signature)
	assert.Equal(t, domain.DelegationDelegated, res.Status.State)
	assert.False(t, res.Status.Drift)
}

func TestDelegationService_SubmitSignedDelegation_WrongSigner(t *testing.T) {
	svc, deps := setupDelegationService(t)

	stranger := newTestAgent(t).wallet.PublicKey
	msg, err := solanatx.TransferMessage(stranger, stranger, 1, "11111111111111111111111111111111")
	require.NoError(t, err)
	signed := base64.StdEncoding.EncodeToString(solanatx.Encode([][]byte{nil}, msg))

	deps.wallets.EXPECT().Require(gomock.Any(), gomock.Any()).Return(&domain.AgentWallet{AccountAuthority: "Owner"}, nil)

	_, err = svc.SubmitSignedDelegation(context.Background(), uuid.New(), signed)
	assert.True(t, apperror.HasCode(err, "SYS_004"))
}

func TestDelegationService_SubmitSignedDelegation_OnlyRelaysDelegateChanges(t *testing.T) {
	owner := newTestAgent(t).wallet.PublicKey
	agent := newTestAgent(t).wallet.PublicKey

	tests := []struct {
		name string
		call *ports.SetDelegateCall
		err  error
	}{
		{
			name: "authority-signed transfer",
			err:  fmt.Errorf("unexpected instruction: instruction 0 targets program 11111111111111111111111111111111"),
		},
		{
			name: "different trading account",
			call: &ports.SetDelegateCall{Account: ports.AccountRef{Authority: owner, SubaccountIndex: 4}, Delegate: agent},
		},
		{
			name: "foreign delegate",
			call: &ports.SetDelegateCall{Account: ports.AccountRef{Authority: owner}, Delegate: newTestAgent(t).wallet.PublicKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := setupDelegationService(t)
			msg, signed := signedByOwner(t, owner)
			w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: agent, AccountAuthority: owner}
			deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
			deps.protocol.EXPECT().ParseSetDelegate(msg).Return(tt.call, tt.err)
			// No SubmitTransaction expectation: nothing may reach the ledger.

			_, err := svc.SubmitSignedDelegation(context.Background(), w.UserID, signed)
			assert.True(t, apperror.HasCode(err, "SYS_004"), "got %v", err)
		})
	}
}

func TestDelegationService_SubmitSignedDelegation_AcceptsRevoke(t *testing.T) {
	svc, deps := setupDelegationService(t)
	owner := newTestAgent(t).wallet.PublicKey
	agent := newTestAgent(t).wallet.PublicKey
	msg, signed := signedByOwner(t, owner)

	w := &domain.AgentWallet{ID: uuid.New(), UserID: uuid.New(), PublicKey: agent, AccountAuthority: owner, IsDelegated: true}
	deps.wallets.EXPECT().Require(gomock.Any(), w.UserID).Return(w, nil)
	deps.protocol.EXPECT().ParseSetDelegate(msg).Return(&ports.SetDelegateCall{
		Account:  ports.AccountRef{Authority: owner},
		Delegate: domain.SystemProgramAddress,
	}, nil)
	deps.ledger.EXPECT().SubmitTransaction(gomock.Any(), gomock.Any()).Return("sig-rvk", nil)
	deps.ledger.EXPECT().ConfirmTransaction(gomock.Any(), "sig-rvk").Return(domain.TxStatusConfirmed, nil)

	deps.expectAccount(w, strPtr(domain.SystemProgramAddress))
	deps.wallets.EXPECT().Revoke(gomock.Any(), w.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*domain.AgentWallet, error) {
			w.IsDelegated = false
			w.Status = domain.AgentWalletStatusRevoked
			return w, nil
		})
	deps.wallets.EXPECT().Get(gomock.Any(), w.UserID).Return(w, nil)
	deps.expectAccount(w, strPtr(domain.SystemProgramAddress))

	res, err := svc.SubmitSignedDelegation(context.Background(), w.UserID, signed)
	require.NoError(t, err)
	assert.Equal(t, "sig-rvk", res.Signature)
}
