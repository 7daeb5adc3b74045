package handler

import (
	"delegated-trading-gateway/internal/adapter/http/dto"
	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// FundingHandler handles deposit, withdrawal and funding status endpoints.
type FundingHandler struct {
	funding ports.FundingService
}

// NewFundingHandler creates a new FundingHandler.
func NewFundingHandler(funding ports.FundingService) *FundingHandler {
	return &FundingHandler{funding: funding}
}

// Deposit handles POST /api/v1/funding/deposit.
func (h *FundingHandler) Deposit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.funding.Deposit(c.Request.Context(), ports.DepositRequest{
		UserID:         userID,
		AmountUSD:      req.AmountUSD,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		IdempotencyKey: key,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, result)
}

// Withdraw handles POST /api/v1/funding/withdraw.
func (h *FundingHandler) Withdraw(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.WithdrawCollateralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperror.Validation(err.Error()))
		return
	}

	sig, err := h.funding.WithdrawCollateral(c.Request.Context(), ports.WithdrawCollateralRequest{
		UserID:          userID,
		SpotMarketIndex: req.SpotMarketIndex,
		Amount:          req.Amount,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.SignatureResponse{Signature: sig})
}

// Status handles GET /api/v1/funding/status.
func (h *FundingHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := h.funding.AccountStatus(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, status)
}
