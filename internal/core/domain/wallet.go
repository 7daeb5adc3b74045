package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgentWalletStatus represents the lifecycle state of an agent wallet record.
type AgentWalletStatus string

const (
	AgentWalletStatusActive  AgentWalletStatus = "ACTIVE"
	AgentWalletStatusRevoked AgentWalletStatus = "REVOKED"
)

// AgentWallet is the platform-held signing identity that trades on a user's behalf.
// IsDelegated is a cached hint; the ledger delegate field is authoritative.
type AgentWallet struct {
	ID                  uuid.UUID         `json:"id"`
	UserID              uuid.UUID         `json:"user_id"`
	PublicKey           string            `json:"public_key"`
	EncryptedSecretKey  string            `json:"-"` // vault blob, never expose
	EncryptionVersion   string            `json:"-"`
	IsDelegated         bool              `json:"is_delegated"`
	DelegatedAt         *time.Time        `json:"delegated_at,omitempty"`
	IsActivated         bool              `json:"is_activated"`
	ActivatedAt         *time.Time        `json:"activated_at,omitempty"`
	SubaccountIndex     uint16            `json:"subaccount_index"`
	AccountAuthority    string            `json:"account_authority"`
	Status              AgentWalletStatus `json:"status"`
	GasBalance          int64             `json:"gas_balance"` // lamports, advisory
	GasBalanceUpdatedAt *time.Time        `json:"gas_balance_updated_at,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// IsActive returns true if the wallet has not been revoked.
func (w *AgentWallet) IsActive() bool {
	return w.Status == AgentWalletStatusActive
}

// User is the platform account that owns an agent wallet. It lives outside this service.
type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
}
