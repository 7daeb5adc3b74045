package domain

// DelegationState is the authorization state of an agent wallet, derived from
// a ledger read rather than from the cached flag.
type DelegationState string

const (
	DelegationUnlinked          DelegationState = "UNLINKED"
	DelegationPendingDelegation DelegationState = "PENDING_DELEGATION"
	DelegationDelegated         DelegationState = "DELEGATED"
	DelegationRevoked           DelegationState = "REVOKED"
)

// DelegationStatus is a reconciled snapshot of cached and on-chain delegation.
type DelegationStatus struct {
	State             DelegationState `json:"state"`
	AgentPublicKey    string          `json:"agent_public_key,omitempty"`
	AccountAddress    string          `json:"account_address,omitempty"`
	AccountAuthority  string          `json:"account_authority,omitempty"`
	HasLedgerAccount  bool            `json:"has_ledger_account"`
	OnChainDelegate   string          `json:"on_chain_delegate,omitempty"`
	CachedIsDelegated bool            `json:"cached_is_delegated"`
	Drift             bool            `json:"drift"`
}

// ResolveDelegationState applies the ledger-wins rule. account may be nil when
// no trading account exists yet.
func ResolveDelegationState(w *AgentWallet, account *TradingAccount) DelegationState {
	if w == nil {
		return DelegationUnlinked
	}
	onChain := account != nil && account.IsDelegatedTo(w.PublicKey)
	switch {
	case onChain:
		return DelegationDelegated
	case w.Status == AgentWalletStatusRevoked:
		return DelegationRevoked
	default:
		return DelegationPendingDelegation
	}
}
