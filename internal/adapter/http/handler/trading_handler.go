package handler

import (
	"strconv"

	"delegated-trading-gateway/internal/adapter/http/dto"
	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TradingHandler handles order and position endpoints.
type TradingHandler struct {
	trading ports.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(trading ports.TradingService) *TradingHandler {
	return &TradingHandler{trading: trading}
}

// PlaceOrder handles POST /api/v1/trading/orders.
func (h *TradingHandler) PlaceOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.trading.PlaceOrder(c.Request.Context(), ports.PlaceOrderRequest{
		UserID:          userID,
		MarketIndex:     req.MarketIndex,
		OrderType:       domain.OrderType(req.OrderType),
		Direction:       domain.Direction(req.Direction),
		BaseAssetAmount: req.BaseAssetAmount,
		Price:           req.Price,
		TriggerPrice:    req.TriggerPrice,
		TriggerIntent:   domain.TriggerIntent(req.TriggerIntent),
		ReduceOnly:      req.ReduceOnly,
		PostOnly:        req.PostOnly,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, result)
}

// PlaceTpSl handles POST /api/v1/trading/orders/tp-sl.
func (h *TradingHandler) PlaceTpSl(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.TpSlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.trading.PlaceTpSl(c.Request.Context(), ports.TpSlRequest{
		UserID:            userID,
		MarketIndex:       req.MarketIndex,
		PositionDirection: domain.Direction(req.PositionDirection),
		BaseAssetAmount:   req.BaseAssetAmount,
		TriggerPrice:      req.TriggerPrice,
		LimitPrice:        req.LimitPrice,
		IsStopLoss:        req.IsStopLoss,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, result)
}

// CancelOrder handles DELETE /api/v1/trading/orders/:orderId.
func (h *TradingHandler) CancelOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		fail(c, apperror.Validation("orderId must be a positive integer"))
		return
	}

	sig, err := h.trading.CancelOrder(c.Request.Context(), userID, uint32(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.SignatureResponse{Signature: sig})
}

// CancelAllOrders handles DELETE /api/v1/trading/orders.
func (h *TradingHandler) CancelAllOrders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	sig, err := h.trading.CancelAllOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.SignatureResponse{Signature: sig})
}

// GetOpenOrders handles GET /api/v1/trading/orders.
func (h *TradingHandler) GetOpenOrders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	orders, err := h.trading.GetOpenOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, orders)
}

// GetPositions handles GET /api/v1/trading/positions.
func (h *TradingHandler) GetPositions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	positions, err := h.trading.GetPositions(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, positions)
}

// ClosePosition handles POST /api/v1/trading/positions/:marketIndex/close.
// A body with a price closes with a limit order; otherwise at market.
func (h *TradingHandler) ClosePosition(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	marketIndex, ok := uint16Param(c, "marketIndex")
	if !ok {
		return
	}

	var req dto.ClosePositionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, apperror.Validation(err.Error()))
			return
		}
	}

	var (
		result *ports.ClosePositionResult
		err    error
	)
	if req.Price != nil {
		result, err = h.trading.ClosePositionLimit(c.Request.Context(), userID, marketIndex, *req.Price)
	} else {
		result, err = h.trading.ClosePosition(c.Request.Context(), userID, marketIndex)
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result)
}

// CloseAllPositions handles POST /api/v1/trading/positions/close-all.
// Partial failures return 207 with per-position outcomes.
func (h *TradingHandler) CloseAllPositions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.trading.CloseAllPositions(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if len(result.Failed) > 0 {
		response.MultiStatus(c, result)
		return
	}
	response.OK(c, result)
}

// GetMarketPrice handles GET /api/v1/trading/markets/:marketIndex/price.
func (h *TradingHandler) GetMarketPrice(c *gin.Context) {
	marketIndex, ok := uint16Param(c, "marketIndex")
	if !ok {
		return
	}

	market, err := h.trading.GetMarketPrice(c.Request.Context(), marketIndex)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, market)
}
