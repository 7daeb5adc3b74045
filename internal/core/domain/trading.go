package domain

import "errors"

// Direction is the side of an order or position.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Opposite returns the other side.
func (d Direction) Opposite() Direction {
	if d == DirectionLong {
		return DirectionShort
	}
	return DirectionLong
}

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionLong || d == DirectionShort
}

// OrderType enumerates the order variants the protocol accepts.
type OrderType string

const (
	OrderTypeMarket        OrderType = "MARKET"
	OrderTypeLimit         OrderType = "LIMIT"
	OrderTypeTriggerMarket OrderType = "TRIGGER_MARKET"
	OrderTypeTriggerLimit  OrderType = "TRIGGER_LIMIT"
)

// IsTrigger returns true for trigger-market and trigger-limit orders.
func (t OrderType) IsTrigger() bool {
	return t == OrderTypeTriggerMarket || t == OrderTypeTriggerLimit
}

// TriggerCondition is the price crossing that activates a trigger order.
type TriggerCondition string

const (
	TriggerAbove TriggerCondition = "ABOVE"
	TriggerBelow TriggerCondition = "BELOW"
)

// TriggerIntent says whether a trigger order protects profit or limits loss.
type TriggerIntent string

const (
	TriggerIntentTakeProfit TriggerIntent = "TAKE_PROFIT"
	TriggerIntentStopLoss   TriggerIntent = "STOP_LOSS"
)

var ErrUnknownTriggerIntent = errors.New("unknown trigger intent")

// DeriveTriggerCondition maps an intent and the direction of the position being
// protected to the crossing that should fire the order.
func DeriveTriggerCondition(intent TriggerIntent, position Direction) (TriggerCondition, error) {
	switch intent {
	case TriggerIntentStopLoss:
		if position == DirectionLong {
			return TriggerBelow, nil
		}
		return TriggerAbove, nil
	case TriggerIntentTakeProfit:
		if position == DirectionLong {
			return TriggerAbove, nil
		}
		return TriggerBelow, nil
	default:
		return "", ErrUnknownTriggerIntent
	}
}

// OrderParams is everything the protocol needs to build a place-order instruction.
// Prices use PricePrecision, sizes use the market's base precision.
type OrderParams struct {
	MarketIndex      uint16           `json:"market_index"`
	OrderType        OrderType        `json:"order_type"`
	Direction        Direction        `json:"direction"`
	BaseAssetAmount  int64            `json:"base_asset_amount"`
	Price            int64            `json:"price,omitempty"`
	TriggerPrice     int64            `json:"trigger_price,omitempty"`
	TriggerCondition TriggerCondition `json:"trigger_condition,omitempty"`
	ReduceOnly       bool             `json:"reduce_only"`
	PostOnly         bool             `json:"post_only"`
}

// Position is a perp position as read from the trading account.
type Position struct {
	MarketIndex      uint16 `json:"market_index"`
	BaseAssetAmount  int64  `json:"base_asset_amount"` // signed: >0 long, <0 short
	QuoteAssetAmount int64  `json:"quote_asset_amount"`
	OpenOrders       int    `json:"open_orders"`
}

// IsOpen returns true if the position has a non-zero size.
func (p Position) IsOpen() bool {
	return p.BaseAssetAmount != 0
}

// Direction returns the side of an open position.
func (p Position) Direction() Direction {
	if p.BaseAssetAmount < 0 {
		return DirectionShort
	}
	return DirectionLong
}

// CloseParams builds the reduce-only order that flattens the position.
func (p Position) CloseParams(orderType OrderType, price int64) OrderParams {
	size := p.BaseAssetAmount
	if size < 0 {
		size = -size
	}
	return OrderParams{
		MarketIndex:     p.MarketIndex,
		OrderType:       orderType,
		Direction:       p.Direction().Opposite(),
		BaseAssetAmount: size,
		Price:           price,
		ReduceOnly:      true,
	}
}

// Order is an open order as read from the trading account.
type Order struct {
	OrderID          uint32           `json:"order_id"`
	MarketIndex      uint16           `json:"market_index"`
	OrderType        OrderType        `json:"order_type"`
	Direction        Direction        `json:"direction"`
	BaseAssetAmount  int64            `json:"base_asset_amount"`
	BaseAssetFilled  int64            `json:"base_asset_filled"`
	Price            int64            `json:"price"`
	TriggerPrice     int64            `json:"trigger_price,omitempty"`
	TriggerCondition TriggerCondition `json:"trigger_condition,omitempty"`
	ReduceOnly       bool             `json:"reduce_only"`
}

// TradingAccount is the protocol's per-authority account, decoded from ledger bytes.
type TradingAccount struct {
	Address         string     `json:"address"`
	Authority       string     `json:"authority"`
	Delegate        string     `json:"delegate"`
	SubaccountIndex uint16     `json:"subaccount_index"`
	Positions       []Position `json:"positions"`
	Orders          []Order    `json:"orders"`
}

// IsDelegatedTo returns true if the on-chain delegate field names address.
func (a *TradingAccount) IsDelegatedTo(address string) bool {
	return address != "" && a.Delegate == address
}

// Position returns the position for marketIndex, or a zero position.
func (a *TradingAccount) Position(marketIndex uint16) Position {
	for _, p := range a.Positions {
		if p.MarketIndex == marketIndex {
			return p
		}
	}
	return Position{MarketIndex: marketIndex}
}

// OpenPositions returns positions with non-zero size.
func (a *TradingAccount) OpenPositions() []Position {
	var open []Position
	for _, p := range a.Positions {
		if p.IsOpen() {
			open = append(open, p)
		}
	}
	return open
}
