package service

import (
	"context"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TradingServiceImpl implements ports.TradingService. Every write checks the
// ledger delegate before a key is decrypted.
type TradingServiceImpl struct {
	wallets    ports.AgentWalletService
	delegation ports.DelegationService
	protocol   ports.ProtocolClient
	submitter  *TxSubmitter
	locker     ports.WalletLocker
	lockWait   time.Duration
	log        zerolog.Logger
}

// NewTradingService creates a new TradingServiceImpl.
func NewTradingService(
	wallets ports.AgentWalletService,
	delegation ports.DelegationService,
	protocol ports.ProtocolClient,
	submitter *TxSubmitter,
	locker ports.WalletLocker,
	lockWait time.Duration,
	log zerolog.Logger,
) *TradingServiceImpl {
	return &TradingServiceImpl{
		wallets:    wallets,
		delegation: delegation,
		protocol:   protocol,
		submitter:  submitter,
		locker:     locker,
		lockWait:   lockWait,
		log:        log,
	}
}

// PlaceOrder validates and places an order. Market orders fall back to a
// slippage-bounded limit order when the ledger rejects them.
func (s *TradingServiceImpl) PlaceOrder(ctx context.Context, req ports.PlaceOrderRequest) (*ports.OrderResult, error) {
	params, err := orderParamsFromRequest(req)
	if err != nil {
		return nil, err
	}

	wallet, _, err := s.preconditions(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if params.OrderType == domain.OrderTypeMarket {
		return s.placeWithFallback(ctx, wallet, params)
	}

	sig, err := s.place(ctx, wallet, params)
	if err != nil {
		return nil, err
	}
	return &ports.OrderResult{
		Signature: sig,
		OrderType: params.OrderType,
		Direction: params.Direction,
		Price:     params.Price,
	}, nil
}

// PlaceTpSl places a reduce-only trigger order protecting an open position.
func (s *TradingServiceImpl) PlaceTpSl(ctx context.Context, req ports.TpSlRequest) (*ports.OrderResult, error) {
	if _, ok := domain.LookupPerpMarket(req.MarketIndex); !ok {
		return nil, apperror.ErrInvalidOrder(fmt.Sprintf("unsupported market %d", req.MarketIndex))
	}
	if !req.PositionDirection.IsValid() {
		return nil, apperror.ErrInvalidOrder("position_direction must be LONG or SHORT")
	}
	if req.BaseAssetAmount <= 0 {
		return nil, apperror.ErrInvalidOrder("base_asset_amount must be positive")
	}
	if req.TriggerPrice <= 0 {
		return nil, apperror.ErrInvalidOrder("trigger_price must be positive")
	}
	if req.LimitPrice < 0 {
		return nil, apperror.ErrInvalidOrder("limit_price must not be negative")
	}

	intent := domain.TriggerIntentTakeProfit
	if req.IsStopLoss {
		intent = domain.TriggerIntentStopLoss
	}
	condition, err := domain.DeriveTriggerCondition(intent, req.PositionDirection)
	if err != nil {
		return nil, apperror.ErrInvalidOrder(err.Error())
	}

	orderType := domain.OrderTypeTriggerMarket
	if req.LimitPrice > 0 {
		orderType = domain.OrderTypeTriggerLimit
	}
	params := domain.OrderParams{
		MarketIndex:      req.MarketIndex,
		OrderType:        orderType,
		Direction:        req.PositionDirection.Opposite(),
		BaseAssetAmount:  req.BaseAssetAmount,
		Price:            req.LimitPrice,
		TriggerPrice:     req.TriggerPrice,
		TriggerCondition: condition,
		ReduceOnly:       true,
	}

	wallet, _, err := s.preconditions(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	sig, err := s.place(ctx, wallet, params)
	if err != nil {
		return nil, err
	}
	return &ports.OrderResult{
		Signature: sig,
		OrderType: orderType,
		Direction: params.Direction,
		Price:     params.Price,
	}, nil
}

// CancelOrder cancels one open order by its protocol order id.
func (s *TradingServiceImpl) CancelOrder(ctx context.Context, userID uuid.UUID, orderID uint32) (string, error) {
	wallet, account, err := s.preconditions(ctx, userID)
	if err != nil {
		return "", err
	}
	if !hasOrder(account, orderID) {
		return "", apperror.ErrInvalidOrder(fmt.Sprintf("order %d is not open", orderID))
	}

	tx, err := s.protocol.BuildCancelOrder(ctx, accountRef(wallet), wallet.PublicKey, orderID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build cancel order: %w", err))
	}
	return s.submitter.SignAndSubmit(ctx, wallet, tx)
}

// CancelAllOrders cancels every open order on the account.
func (s *TradingServiceImpl) CancelAllOrders(ctx context.Context, userID uuid.UUID) (string, error) {
	wallet, _, err := s.preconditions(ctx, userID)
	if err != nil {
		return "", err
	}
	tx, err := s.protocol.BuildCancelAllOrders(ctx, accountRef(wallet), wallet.PublicKey)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build cancel all orders: %w", err))
	}
	return s.submitter.SignAndSubmit(ctx, wallet, tx)
}

// ClosePosition flattens a position with a reduce-only market order.
func (s *TradingServiceImpl) ClosePosition(ctx context.Context, userID uuid.UUID, marketIndex uint16) (*ports.ClosePositionResult, error) {
	wallet, release, err := s.lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.delegation.RequireDelegated(ctx, wallet)
	if err != nil {
		return nil, err
	}
	return s.closeOne(ctx, wallet, account.Position(marketIndex), domain.OrderTypeMarket, 0)
}

// ClosePositionLimit flattens a position with a reduce-only limit order at price.
func (s *TradingServiceImpl) ClosePositionLimit(ctx context.Context, userID uuid.UUID, marketIndex uint16, price int64) (*ports.ClosePositionResult, error) {
	if price <= 0 {
		return nil, apperror.ErrInvalidOrder("price must be positive")
	}

	wallet, release, err := s.lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.delegation.RequireDelegated(ctx, wallet)
	if err != nil {
		return nil, err
	}
	return s.closeOne(ctx, wallet, account.Position(marketIndex), domain.OrderTypeLimit, price)
}

// CloseAllPositions closes every open position independently and reports each outcome.
func (s *TradingServiceImpl) CloseAllPositions(ctx context.Context, userID uuid.UUID) (*ports.CloseAllResult, error) {
	wallet, release, err := s.lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.delegation.RequireDelegated(ctx, wallet)
	if err != nil {
		return nil, err
	}

	result := &ports.CloseAllResult{
		Closed: []ports.ClosePositionResult{},
		Failed: []ports.FailedClose{},
	}
	for _, pos := range account.OpenPositions() {
		closed, err := s.closeOne(ctx, wallet, pos, domain.OrderTypeMarket, 0)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("wallet_id", wallet.ID.String()).
				Uint16("market_index", pos.MarketIndex).
				Msg("failed to close position")
			result.Failed = append(result.Failed, ports.FailedClose{
				MarketIndex: pos.MarketIndex,
				ErrorCode:   apperror.CodeOf(err),
				Message:     err.Error(),
			})
			continue
		}
		result.Closed = append(result.Closed, *closed)
	}
	return result, nil
}

// GetPositions returns the open positions of the user's trading account.
func (s *TradingServiceImpl) GetPositions(ctx context.Context, userID uuid.UUID) ([]domain.Position, error) {
	account, err := s.readAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return []domain.Position{}, nil
	}
	positions := account.OpenPositions()
	if positions == nil {
		positions = []domain.Position{}
	}
	return positions, nil
}

// GetOpenOrders returns the open orders of the user's trading account.
func (s *TradingServiceImpl) GetOpenOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	account, err := s.readAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Orders == nil {
		return []domain.Order{}, nil
	}
	return account.Orders, nil
}

// GetMarketPrice returns the oracle price and tick size of a supported market.
func (s *TradingServiceImpl) GetMarketPrice(ctx context.Context, marketIndex uint16) (*domain.PerpMarket, error) {
	if _, ok := domain.LookupPerpMarket(marketIndex); !ok {
		return nil, apperror.ErrInvalidOrder(fmt.Sprintf("unsupported market %d", marketIndex))
	}
	market, err := s.protocol.GetPerpMarket(ctx, marketIndex)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get perp market: %w", err))
	}
	return market, nil
}

// preconditions loads an active wallet and its delegated trading account.
// A revoked wallet is refused before the ledger is read.
func (s *TradingServiceImpl) preconditions(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, *domain.TradingAccount, error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.IsActive() {
		return nil, nil, apperror.ErrNotDelegated()
	}
	account, err := s.delegation.RequireDelegated(ctx, wallet)
	if err != nil {
		return nil, nil, err
	}
	return wallet, account, nil
}

// lock serializes writes on the user's wallet and returns the wallet as read
// under the lock.
func (s *TradingServiceImpl) lock(ctx context.Context, userID uuid.UUID) (*domain.AgentWallet, func(), error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.IsActive() {
		return nil, nil, apperror.ErrNotDelegated()
	}
	wallet, release, err := lockFresh(ctx, s.locker, s.wallets, wallet, s.lockWait)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.IsActive() {
		release()
		return nil, nil, apperror.ErrNotDelegated()
	}
	return wallet, release, nil
}

func (s *TradingServiceImpl) readAccount(ctx context.Context, userID uuid.UUID) (*domain.TradingAccount, error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.delegation.LoadAccount(ctx, wallet)
}

func (s *TradingServiceImpl) closeOne(ctx context.Context, wallet *domain.AgentWallet, pos domain.Position, orderType domain.OrderType, price int64) (*ports.ClosePositionResult, error) {
	if !pos.IsOpen() {
		return nil, apperror.ErrNoOpenPosition(pos.MarketIndex)
	}
	params := pos.CloseParams(orderType, price)

	var placed *ports.OrderResult
	if orderType == domain.OrderTypeMarket {
		var err error
		if placed, err = s.placeWithFallback(ctx, wallet, params); err != nil {
			return nil, err
		}
	} else {
		sig, err := s.place(ctx, wallet, params)
		if err != nil {
			return nil, err
		}
		placed = &ports.OrderResult{Signature: sig, Price: price}
	}

	return &ports.ClosePositionResult{
		MarketIndex:  pos.MarketIndex,
		Signature:    placed.Signature,
		Direction:    params.Direction,
		ClosedAmount: params.BaseAssetAmount,
		Price:        placed.Price,
		UsedFallback: placed.UsedFallback,
	}, nil
}

// placeWithFallback retries a rejected market order as a limit order priced
// off the oracle. An unknown outcome is returned as is: the first order may
// still fill.
func (s *TradingServiceImpl) placeWithFallback(ctx context.Context, wallet *domain.AgentWallet, params domain.OrderParams) (*ports.OrderResult, error) {
	sig, err := s.place(ctx, wallet, params)
	if err == nil {
		return &ports.OrderResult{Signature: sig, OrderType: domain.OrderTypeMarket, Direction: params.Direction}, nil
	}
	if !apperror.HasCode(err, "TX_001") {
		return nil, err
	}

	market, merr := s.protocol.GetPerpMarket(ctx, params.MarketIndex)
	if merr != nil {
		return nil, apperror.InternalError(fmt.Errorf("get perp market for fallback: %w", merr))
	}
	price, perr := domain.FallbackLimitPrice(params.Direction, market.OraclePrice, market.TickSize)
	if perr != nil {
		return nil, apperror.ErrInvalidOrder(fmt.Sprintf("cannot price fallback order: %v", perr))
	}

	s.log.Warn().
		Err(err).
		Str("wallet_id", wallet.ID.String()).
		Uint16("market_index", params.MarketIndex).
		Str("direction", string(params.Direction)).
		Int64("oracle_price", market.OraclePrice).
		Int64("fallback_price", price).
		Msg("market order rejected, falling back to limit")

	limit := params
	limit.OrderType = domain.OrderTypeLimit
	limit.Price = price
	sig, err = s.place(ctx, wallet, limit)
	if err != nil {
		return nil, err
	}
	return &ports.OrderResult{
		Signature:    sig,
		OrderType:    domain.OrderTypeLimit,
		Direction:    params.Direction,
		Price:        price,
		UsedFallback: true,
	}, nil
}

func (s *TradingServiceImpl) place(ctx context.Context, wallet *domain.AgentWallet, params domain.OrderParams) (string, error) {
	tx, err := s.protocol.BuildPlaceOrder(ctx, accountRef(wallet), wallet.PublicKey, params)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build place order: %w", err))
	}
	sig, err := s.submitter.SignAndSubmit(ctx, wallet, tx)
	if err != nil {
		return "", err
	}
	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Uint16("market_index", params.MarketIndex).
		Str("order_type", string(params.OrderType)).
		Str("direction", string(params.Direction)).
		Str("signature", sig).
		Msg("order placed")
	return sig, nil
}

func orderParamsFromRequest(req ports.PlaceOrderRequest) (domain.OrderParams, error) {
	if _, ok := domain.LookupPerpMarket(req.MarketIndex); !ok {
		return domain.OrderParams{}, apperror.ErrInvalidOrder(fmt.Sprintf("unsupported market %d", req.MarketIndex))
	}
	if !req.Direction.IsValid() {
		return domain.OrderParams{}, apperror.ErrInvalidOrder("direction must be LONG or SHORT")
	}
	if req.BaseAssetAmount <= 0 {
		return domain.OrderParams{}, apperror.ErrInvalidOrder("base_asset_amount must be positive")
	}

	params := domain.OrderParams{
		MarketIndex:     req.MarketIndex,
		OrderType:       req.OrderType,
		Direction:       req.Direction,
		BaseAssetAmount: req.BaseAssetAmount,
		ReduceOnly:      req.ReduceOnly,
		PostOnly:        req.PostOnly,
	}

	switch req.OrderType {
	case domain.OrderTypeMarket:
		if req.PostOnly {
			return domain.OrderParams{}, apperror.ErrInvalidOrder("market orders cannot be post-only")
		}
	case domain.OrderTypeLimit:
		if req.Price <= 0 {
			return domain.OrderParams{}, apperror.ErrInvalidOrder("limit orders require a positive price")
		}
		params.Price = req.Price
	case domain.OrderTypeTriggerMarket, domain.OrderTypeTriggerLimit:
		if req.TriggerPrice <= 0 {
			return domain.OrderParams{}, apperror.ErrInvalidOrder("trigger orders require a positive trigger_price")
		}
		if req.OrderType == domain.OrderTypeTriggerLimit {
			if req.Price <= 0 {
				return domain.OrderParams{}, apperror.ErrInvalidOrder("trigger-limit orders require a positive price")
			}
			params.Price = req.Price
		}
		// The order closes a position on the other side.
		condition, err := domain.DeriveTriggerCondition(req.TriggerIntent, req.Direction.Opposite())
		if err != nil {
			return domain.OrderParams{}, apperror.ErrInvalidOrder("trigger orders require trigger_intent TAKE_PROFIT or STOP_LOSS")
		}
		params.TriggerPrice = req.TriggerPrice
		params.TriggerCondition = condition
		params.ReduceOnly = true
		params.PostOnly = false
	default:
		return domain.OrderParams{}, apperror.ErrInvalidOrder(fmt.Sprintf("unsupported order type %q", req.OrderType))
	}
	return params, nil
}

func hasOrder(account *domain.TradingAccount, orderID uint32) bool {
	for _, o := range account.Orders {
		if o.OrderID == orderID {
			return true
		}
	}
	return false
}
