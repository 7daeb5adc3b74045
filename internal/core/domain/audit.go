package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited custody action.
type AuditAction string

const (
	AuditActionWalletCreated        AuditAction = "WALLET_CREATED"
	AuditActionDelegationConfirmed  AuditAction = "DELEGATION_CONFIRMED"
	AuditActionDelegationRevoked    AuditAction = "DELEGATION_REVOKED"
	AuditActionDelegationDrift      AuditAction = "DELEGATION_DRIFT"
	AuditActionKeyIntegrityFailure  AuditAction = "KEY_INTEGRITY_FAILURE"
	AuditActionAccountInitialized   AuditAction = "ACCOUNT_INITIALIZED"
	AuditActionDeposit              AuditAction = "DEPOSIT"
	AuditActionGasWithdrawal        AuditAction = "GAS_WITHDRAWAL"
	AuditActionCollateralWithdrawal AuditAction = "COLLATERAL_WITHDRAWAL"
	AuditActionRequestFailed        AuditAction = "REQUEST_FAILED"
)

// AuditLog records a single custody-relevant action. Details never carry key material.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	WalletID  *uuid.UUID  `json:"wallet_id,omitempty"`
	Action    AuditAction `json:"action"`
	Signature string      `json:"signature,omitempty"`
	Details   string      `json:"details,omitempty"` // JSON string
	CreatedAt time.Time   `json:"created_at"`
}

// NewAuditLog builds an audit entry for a wallet action.
func NewAuditLog(action AuditAction, w *AgentWallet) *AuditLog {
	entry := &AuditLog{
		ID:        uuid.New(),
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if w != nil {
		userID, walletID := w.UserID, w.ID
		entry.UserID = &userID
		entry.WalletID = &walletID
	}
	return entry
}
