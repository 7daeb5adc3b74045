package ports

import (
	"context"
	"errors"
	"time"

	"delegated-trading-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// KeyVault performs authenticated encryption of raw signing-key bytes.
// It never stores or caches plaintext.
type KeyVault interface {
	Encrypt(raw []byte) (string, error)
	Decrypt(blob string) ([]byte, error)
	Version() string
}

// TokenService validates bearer tokens issued by the login service.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID        uuid.UUID
	WalletAddress string
}

// AuditService records custody audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Ledger & external protocol ports ---

// ErrTransactionRejected wraps a node's explicit refusal of a submitted
// transaction. Any other submit error leaves the outcome unknown.
var ErrTransactionRejected = errors.New("transaction rejected by node")

// LedgerClient reads and writes the target ledger. Amounts are native integer units.
type LedgerClient interface {
	// GetAccountInfo returns the raw account data, or nil if the account does not exist.
	GetAccountInfo(ctx context.Context, address string) ([]byte, error)
	GetBalance(ctx context.Context, address string) (int64, error)
	GetTokenBalance(ctx context.Context, owner, mint string) (int64, error)
	LatestBlockhash(ctx context.Context) (string, error)
	// SubmitTransaction wraps preflight refusals in ErrTransactionRejected.
	SubmitTransaction(ctx context.Context, signed []byte) (string, error)
	// ConfirmTransaction blocks until the signature settles or ctx ends.
	ConfirmTransaction(ctx context.Context, signature string) (domain.TxStatus, error)
}

// AccountRef identifies a protocol trading account by owner and sub-account.
type AccountRef struct {
	Authority       string
	SubaccountIndex uint16
}

// ProtocolClient is the trading protocol's client boundary. Builders return
// unsigned transactions; this service signs and submits them.
type ProtocolClient interface {
	UserAccountAddress(ctx context.Context, ref AccountRef) (string, error)
	DecodeUserAccount(ctx context.Context, address string, data []byte) (*domain.TradingAccount, error)
	GetPerpMarket(ctx context.Context, marketIndex uint16) (*domain.PerpMarket, error)

	BuildPlaceOrder(ctx context.Context, ref AccountRef, signer string, params domain.OrderParams) (*domain.UnsignedTransaction, error)
	BuildCancelOrder(ctx context.Context, ref AccountRef, signer string, orderID uint32) (*domain.UnsignedTransaction, error)
	BuildCancelAllOrders(ctx context.Context, ref AccountRef, signer string) (*domain.UnsignedTransaction, error)
	BuildInitializeAccount(ctx context.Context, ref AccountRef, payer string) (*domain.UnsignedTransaction, error)
	BuildSetDelegate(ctx context.Context, ref AccountRef, delegate string) (*domain.UnsignedTransaction, error)
	BuildDeposit(ctx context.Context, ref AccountRef, signer string, spotMarketIndex uint16, amount int64) (*domain.UnsignedTransaction, error)
	BuildWithdraw(ctx context.Context, ref AccountRef, signer string, spotMarketIndex uint16, amount int64, reduceOnly bool) (*domain.UnsignedTransaction, error)

	// ParseSetDelegate decodes a serialized message that must consist of the
	// protocol's delegate-change instruction, optionally with compute-budget
	// instructions. Any other content is an error.
	ParseSetDelegate(message []byte) (*SetDelegateCall, error)
}

// SetDelegateCall is a decoded delegate-change instruction.
type SetDelegateCall struct {
	Account  AccountRef
	Delegate string
}

// SwapClient quotes and builds swaps through the aggregator.
type SwapClient interface {
	QuoteExactOutput(ctx context.Context, inputMint, outputMint string, amount int64, slippageBps int) (*domain.SwapQuote, error)
	BuildSwap(ctx context.Context, quote *domain.SwapQuote, signer string) (*domain.UnsignedTransaction, error)
}

// --- Coordination ports ---

// WalletLocker serializes read-then-write operations per agent wallet.
type WalletLocker interface {
	// Acquire blocks until the lock is held or ctx ends. release must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// SubmissionStore remembers what an idempotent request already submitted.
type SubmissionStore interface {
	// Reserve claims key for a new request. It returns false with the existing
	// record when the key was already claimed.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, *domain.SubmissionRecord, error)
	Save(ctx context.Context, record *domain.SubmissionRecord, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// --- Service Ports (Business Logic) ---

// AgentWalletService manages agent wallet lifecycle and key custody.
type AgentWalletService interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error)
	Require(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error)
	GetByPublicKey(ctx context.Context, publicKey string) (*domain.AgentWallet, error)
	MarkDelegated(ctx context.Context, walletID uuid.UUID, subaccountIndex uint16) (*domain.AgentWallet, error)
	ClearDelegation(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error)
	Revoke(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error)
	MarkActivated(ctx context.Context, walletID uuid.UUID) (*domain.AgentWallet, error)
	SetAccountAuthority(ctx context.Context, walletID uuid.UUID, authority string) (*domain.AgentWallet, error)
	RefreshGasBalance(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, error)
	DecryptSigningKey(ctx context.Context, walletID uuid.UUID) (*domain.SigningKey, error)
	WithSigningKey(ctx context.Context, walletID uuid.UUID, fn func(key *domain.SigningKey) error) error
}

// DelegationService reconciles cached delegation with the ledger.
type DelegationService interface {
	Status(ctx context.Context, userID uuid.UUID) (*domain.DelegationStatus, error)
	LoadAccount(ctx context.Context, wallet *domain.AgentWallet) (*domain.TradingAccount, error)
	RequireDelegated(ctx context.Context, wallet *domain.AgentWallet) (*domain.TradingAccount, error)
	BuildAuthorizeTx(ctx context.Context, userID uuid.UUID) (*DelegationTx, error)
	BuildRevokeTx(ctx context.Context, userID uuid.UUID) (*DelegationTx, error)
	SubmitSignedDelegation(ctx context.Context, userID uuid.UUID, signedTx string) (*DelegationSubmitResult, error)
}

// DelegationTx is an unsigned delegate change for the account owner to sign.
type DelegationTx struct {
	Transaction    string `json:"transaction"` // base64 wire format, signatures empty
	AccountAddress string `json:"account_address"`
	Authority      string `json:"authority"`
	Delegate       string `json:"delegate"`
}

// DelegationSubmitResult is returned after a user-signed delegate change lands.
type DelegationSubmitResult struct {
	Signature string                   `json:"signature"`
	Status    *domain.DelegationStatus `json:"status"`
}

// TradingService places, cancels and closes orders through the agent wallet.
type TradingService interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResult, error)
	PlaceTpSl(ctx context.Context, req TpSlRequest) (*OrderResult, error)
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID uint32) (string, error)
	CancelAllOrders(ctx context.Context, userID uuid.UUID) (string, error)
	ClosePosition(ctx context.Context, userID uuid.UUID, marketIndex uint16) (*ClosePositionResult, error)
	ClosePositionLimit(ctx context.Context, userID uuid.UUID, marketIndex uint16, price int64) (*ClosePositionResult, error)
	CloseAllPositions(ctx context.Context, userID uuid.UUID) (*CloseAllResult, error)
	GetPositions(ctx context.Context, userID uuid.UUID) ([]domain.Position, error)
	GetOpenOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetMarketPrice(ctx context.Context, marketIndex uint16) (*domain.PerpMarket, error)
}

// PlaceOrderRequest holds validated input for order placement.
type PlaceOrderRequest struct {
	UserID          uuid.UUID
	MarketIndex     uint16
	OrderType       domain.OrderType
	Direction       domain.Direction
	BaseAssetAmount int64
	Price           int64
	TriggerPrice    int64
	TriggerIntent   domain.TriggerIntent // required for trigger orders
	ReduceOnly      bool
	PostOnly        bool
}

// TpSlRequest protects an existing position with a trigger order.
type TpSlRequest struct {
	UserID            uuid.UUID
	MarketIndex       uint16
	PositionDirection domain.Direction
	BaseAssetAmount   int64
	TriggerPrice      int64
	LimitPrice        int64 // 0 = trigger-market
	IsStopLoss        bool
}

// OrderResult is the outcome of a placed order.
type OrderResult struct {
	Signature    string           `json:"signature"`
	OrderType    domain.OrderType `json:"order_type"`
	Direction    domain.Direction `json:"direction"`
	Price        int64            `json:"price,omitempty"`
	UsedFallback bool             `json:"used_fallback"`
}

// ClosePositionResult is the outcome of closing one position.
type ClosePositionResult struct {
	MarketIndex  uint16           `json:"market_index"`
	Signature    string           `json:"signature"`
	Direction    domain.Direction `json:"direction"`
	ClosedAmount int64            `json:"closed_amount"`
	Price        int64            `json:"price,omitempty"`
	UsedFallback bool             `json:"used_fallback"`
}

// CloseAllResult reports per-position outcomes of a close-all.
type CloseAllResult struct {
	Closed []ClosePositionResult `json:"closed"`
	Failed []FailedClose         `json:"failed"`
}

// FailedClose describes a position that could not be closed.
type FailedClose struct {
	MarketIndex uint16 `json:"market_index"`
	ErrorCode   string `json:"error_code"`
	Message     string `json:"message"`
}

// FundingService moves collateral and gas in and out of the agent wallet.
type FundingService interface {
	Deposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
	WithdrawGas(ctx context.Context, req WithdrawGasRequest) (*WithdrawGasResult, error)
	WithdrawCollateral(ctx context.Context, req WithdrawCollateralRequest) (string, error)
	MaxWithdrawable(ctx context.Context, userID uuid.UUID) (int64, error)
	AccountStatus(ctx context.Context, userID uuid.UUID) (*AccountStatus, error)
}

// DepositRequest holds validated input for a collateral deposit.
type DepositRequest struct {
	UserID         uuid.UUID
	AmountUSD      string
	PaymentMethod  domain.PaymentMethod
	IdempotencyKey string
}

// DepositResult lists every confirmed step of a deposit.
type DepositResult struct {
	InitSignature     string `json:"init_signature,omitempty"`
	DelegateSignature string `json:"delegate_signature,omitempty"`
	SwapSignature     string `json:"swap_signature,omitempty"`
	DepositSignature  string `json:"deposit_signature"`
	DepositedAmount   int64  `json:"deposited_amount"`
	SwapInputAmount   int64  `json:"swap_input_amount,omitempty"`
	IsFirstDeposit    bool   `json:"is_first_deposit"`
}

// WithdrawGasRequest moves native currency from the agent wallet back to the user.
type WithdrawGasRequest struct {
	UserID         uuid.UUID
	Amount         *int64 // nil = withdraw the maximum
	IdempotencyKey string
}

// WithdrawGasResult is the outcome of a gas withdrawal.
type WithdrawGasResult struct {
	Signature        string `json:"signature"`
	Amount           int64  `json:"amount"`
	Recipient        string `json:"recipient"`
	MaxWithdrawable  int64  `json:"max_withdrawable"`
	RemainingBalance int64  `json:"remaining_balance"`
}

// WithdrawCollateralRequest withdraws settlement collateral from the trading account.
type WithdrawCollateralRequest struct {
	UserID          uuid.UUID
	SpotMarketIndex uint16
	Amount          int64
}

// AccountStatus summarizes funding readiness.
type AccountStatus struct {
	HasAgentWallet    bool   `json:"has_agent_wallet"`
	AgentPublicKey    string `json:"agent_public_key,omitempty"`
	HasLedgerAccount  bool   `json:"has_ledger_account"`
	IsDelegated       bool   `json:"is_delegated"`
	IsActivated       bool   `json:"is_activated"`
	NativeBalance     int64  `json:"native_balance"`
	SettlementBalance int64  `json:"settlement_balance"`
	MinDepositUSD     string `json:"min_deposit_usd"`
}
