package dto

// PlaceOrderRequest is the request body for order placement.
// Prices use 6-decimal fixed point; sizes use the market's base precision.
type PlaceOrderRequest struct {
	MarketIndex     uint16 `json:"market_index"`
	OrderType       string `json:"order_type" binding:"required,oneof=MARKET LIMIT TRIGGER_MARKET TRIGGER_LIMIT"`
	Direction       string `json:"direction" binding:"required,oneof=LONG SHORT"`
	BaseAssetAmount int64  `json:"base_asset_amount" binding:"required,gt=0"`
	Price           int64  `json:"price" binding:"gte=0"`
	TriggerPrice    int64  `json:"trigger_price" binding:"gte=0"`
	TriggerIntent   string `json:"trigger_intent" binding:"omitempty,oneof=TAKE_PROFIT STOP_LOSS"`
	ReduceOnly      bool   `json:"reduce_only"`
	PostOnly        bool   `json:"post_only"`
}

// TpSlRequest is the request body for protecting a position.
type TpSlRequest struct {
	MarketIndex       uint16 `json:"market_index"`
	PositionDirection string `json:"position_direction" binding:"required,oneof=LONG SHORT"`
	BaseAssetAmount   int64  `json:"base_asset_amount" binding:"required,gt=0"`
	TriggerPrice      int64  `json:"trigger_price" binding:"required,gt=0"`
	LimitPrice        int64  `json:"limit_price" binding:"gte=0"`
	IsStopLoss        bool   `json:"is_stop_loss"`
}

// ClosePositionRequest is the optional body for closing a position. A price
// turns the close into a limit order.
type ClosePositionRequest struct {
	Price *int64 `json:"price,omitempty" binding:"omitempty,gt=0"`
}

// DepositRequest is the request body for a collateral deposit.
type DepositRequest struct {
	AmountUSD     string `json:"amount_usd" binding:"required,decimal_amount"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=USDC SOL"`
}

// WithdrawGasRequest is the request body for a gas withdrawal. A missing
// amount withdraws the maximum.
type WithdrawGasRequest struct {
	Amount *int64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
}

// WithdrawCollateralRequest is the request body for a collateral withdrawal.
type WithdrawCollateralRequest struct {
	SpotMarketIndex uint16 `json:"spot_market_index"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
}

// SubmitDelegationRequest carries a delegate change signed by the account owner.
type SubmitDelegationRequest struct {
	SignedTransaction string `json:"signed_transaction" binding:"required,base64"`
}

// AgentWalletResponse is the public view of an agent wallet.
type AgentWalletResponse struct {
	ID                  string  `json:"id"`
	PublicKey           string  `json:"public_key"`
	AccountAuthority    string  `json:"account_authority"`
	SubaccountIndex     uint16  `json:"subaccount_index"`
	Status              string  `json:"status"`
	IsDelegated         bool    `json:"is_delegated"`
	DelegatedAt         *string `json:"delegated_at,omitempty"`
	IsActivated         bool    `json:"is_activated"`
	ActivatedAt         *string `json:"activated_at,omitempty"`
	GasBalance          int64   `json:"gas_balance"`
	GasBalanceSOL       string  `json:"gas_balance_sol"`
	GasBalanceUpdatedAt *string `json:"gas_balance_updated_at,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// MaxWithdrawableResponse reports the gas withdrawal ceiling.
type MaxWithdrawableResponse struct {
	Lamports int64  `json:"lamports"`
	SOL      string `json:"sol"`
}

// SignatureResponse wraps a single confirmed transaction signature.
type SignatureResponse struct {
	Signature string `json:"signature"`
}
