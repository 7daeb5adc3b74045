package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange is returned when an amount does not fit in base units.
var ErrAmountOutOfRange = errors.New("amount out of range")

var maxQuoteUnits = decimal.NewFromInt(math.MaxInt64)

// PaymentMethod is the currency a deposit is paid in.
type PaymentMethod string

const (
	PaymentMethodUSDC PaymentMethod = "USDC"
	PaymentMethodSOL  PaymentMethod = "SOL"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodUSDC || m == PaymentMethodSOL
}

const (
	// WrappedSOLMint is the token mint used to quote native-currency swaps.
	WrappedSOLMint = "So11111111111111111111111111111111111111112"
	// SettlementSpotMarketIndex is the protocol spot market holding USDC collateral.
	SettlementSpotMarketIndex uint16 = 0
)

// SwapQuote is an exact-output quote from the swap aggregator.
// Raw carries the aggregator's quote payload for the subsequent build call.
type SwapQuote struct {
	InputMint   string `json:"input_mint"`
	OutputMint  string `json:"output_mint"`
	InAmount    int64  `json:"in_amount"`
	OutAmount   int64  `json:"out_amount"`
	SlippageBps int    `json:"slippage_bps"`
	Raw         []byte `json:"-"`
}

// SwapResult is the outcome of a confirmed swap.
type SwapResult struct {
	Signature    string `json:"signature"`
	InputAmount  int64  `json:"input_amount"`
	OutputAmount int64  `json:"output_amount"`
}

// WithdrawalCeiling returns balance - reserve - fee. A non-positive result means
// nothing can be withdrawn.
func WithdrawalCeiling(balance, rentReserve, feeBuffer int64) int64 {
	return balance - rentReserve - feeBuffer
}

// LamportsToSOL formats a lamport amount as SOL for user-facing messages.
func LamportsToSOL(lamports int64) string {
	return decimal.New(lamports, -9).String()
}

// QuoteUnitsToUSD formats settlement base units as a dollar amount.
func QuoteUnitsToUSD(units int64) string {
	return decimal.New(units, -6).StringFixed(2)
}

// USDToQuoteUnits converts a dollar amount to settlement base units, truncating
// anything below the currency's precision. Amounts that do not fit an int64
// are rejected rather than wrapped.
func USDToQuoteUnits(usd decimal.Decimal) (int64, error) {
	units := usd.Shift(6).Truncate(0)
	if units.IsNegative() || units.GreaterThan(maxQuoteUnits) {
		return 0, ErrAmountOutOfRange
	}
	return units.IntPart(), nil
}
