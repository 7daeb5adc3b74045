package domain

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	// PricePrecision is the fixed-point scale of every protocol price (6 decimals).
	PricePrecision int64 = 1_000_000
	// QuotePrecision is the scale of the settlement currency (USDC, 6 decimals).
	QuotePrecision int64 = 1_000_000
	// LamportsPerSOL is the scale of the native gas currency.
	LamportsPerSOL int64 = 1_000_000_000

	// FallbackSlippageBps is the buffer applied to the oracle price when a market
	// order falls back to a limit order.
	FallbackSlippageBps int64 = 50
	bpsDenominator      int64 = 10_000
)

var (
	ErrInvalidTickSize    = errors.New("tick size must be positive")
	ErrInvalidOraclePrice = errors.New("oracle price must be positive")
	ErrPriceOverflow      = errors.New("price arithmetic overflow")
)

// PerpMarket describes a perpetual market. OraclePrice and TickSize are only
// populated when read from the protocol.
type PerpMarket struct {
	Index        uint16 `json:"market_index"`
	Symbol       string `json:"symbol"`
	BaseDecimals int    `json:"base_decimals"`
	OraclePrice  int64  `json:"oracle_price,omitempty"`
	TickSize     int64  `json:"tick_size,omitempty"`
	StepSize     int64  `json:"step_size,omitempty"`
}

var perpMarkets = []PerpMarket{
	{Index: 0, Symbol: "SOL-PERP", BaseDecimals: 9},
	{Index: 1, Symbol: "BTC-PERP", BaseDecimals: 8},
	{Index: 2, Symbol: "ETH-PERP", BaseDecimals: 8},
	{Index: 6, Symbol: "JTO-PERP", BaseDecimals: 9},
	{Index: 8, Symbol: "JUP-PERP", BaseDecimals: 6},
	{Index: 11, Symbol: "WIF-PERP", BaseDecimals: 6},
	{Index: 12, Symbol: "1MBONK-PERP", BaseDecimals: 5},
	{Index: 13, Symbol: "HNT-PERP", BaseDecimals: 8},
	{Index: 16, Symbol: "PYTH-PERP", BaseDecimals: 6},
	{Index: 20, Symbol: "W-PERP", BaseDecimals: 6},
	{Index: 21, Symbol: "TNSR-PERP", BaseDecimals: 9},
	{Index: 22, Symbol: "DRIFT-PERP", BaseDecimals: 6},
}

// SupportedPerpMarkets returns a copy of the market catalog.
func SupportedPerpMarkets() []PerpMarket {
	out := make([]PerpMarket, len(perpMarkets))
	copy(out, perpMarkets)
	return out
}

// LookupPerpMarket returns the catalog entry for index.
func LookupPerpMarket(index uint16) (PerpMarket, bool) {
	for _, m := range perpMarkets {
		if m.Index == index {
			return m, true
		}
	}
	return PerpMarket{}, false
}

// FallbackLimitPrice returns the limit price used when a market order cannot be
// placed. Longs pay up to oracle*(1+50bps) rounded up to a tick, shorts accept
// down to oracle*(1-50bps) rounded down to a tick, so the order stays marketable.
func FallbackLimitPrice(direction Direction, oraclePrice, tickSize int64) (int64, error) {
	if tickSize <= 0 {
		return 0, ErrInvalidTickSize
	}
	if oraclePrice <= 0 {
		return 0, ErrInvalidOraclePrice
	}

	oracle, tick := uint64(oraclePrice), uint64(tickSize)
	switch direction {
	case DirectionLong:
		scaled, err := mulDiv(oracle, uint64(bpsDenominator+FallbackSlippageBps), uint64(bpsDenominator), true)
		if err != nil {
			return 0, err
		}
		rounded := ((scaled + tick - 1) / tick) * tick
		if rounded < scaled || rounded > uint64(1<<63-1) {
			return 0, ErrPriceOverflow
		}
		return int64(rounded), nil
	case DirectionShort:
		scaled, err := mulDiv(oracle, uint64(bpsDenominator-FallbackSlippageBps), uint64(bpsDenominator), false)
		if err != nil {
			return 0, err
		}
		rounded := (scaled / tick) * tick
		if rounded == 0 {
			return 0, fmt.Errorf("fallback price rounds to zero for oracle %d tick %d", oraclePrice, tickSize)
		}
		return int64(rounded), nil
	default:
		return 0, fmt.Errorf("unknown direction %q", direction)
	}
}

// mulDiv computes a*b/d with a 128-bit intermediate, rounding up when ceil is set.
func mulDiv(a, b, d uint64, ceil bool) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, ErrPriceOverflow
	}
	q, r := bits.Div64(hi, lo, d)
	if ceil && r != 0 {
		if q == ^uint64(0) {
			return 0, ErrPriceOverflow
		}
		q++
	}
	return q, nil
}
