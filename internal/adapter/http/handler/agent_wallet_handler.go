package handler

import (
	"delegated-trading-gateway/internal/adapter/http/dto"
	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AgentWalletHandler handles agent wallet endpoints.
type AgentWalletHandler struct {
	wallets ports.AgentWalletService
	funding ports.FundingService
}

// NewAgentWalletHandler creates a new AgentWalletHandler.
func NewAgentWalletHandler(wallets ports.AgentWalletService, funding ports.FundingService) *AgentWalletHandler {
	return &AgentWalletHandler{wallets: wallets, funding: funding}
}

// Create handles POST /api/v1/agent-wallets.
func (h *AgentWalletHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	w, err := h.wallets.Create(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, toAgentWalletResponse(w))
}

// Get handles GET /api/v1/agent-wallets/me.
func (h *AgentWalletHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	w, err := h.wallets.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if w == nil {
		fail(c, apperror.ErrNoAgentWallet())
		return
	}
	response.OK(c, toAgentWalletResponse(w))
}

// RefreshBalance handles POST /api/v1/agent-wallets/me/refresh-balance.
func (h *AgentWalletHandler) RefreshBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	w, err := h.wallets.RefreshGasBalance(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, toAgentWalletResponse(w))
}

// MaxWithdrawable handles GET /api/v1/agent-wallets/me/max-withdrawable.
func (h *AgentWalletHandler) MaxWithdrawable(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	lamports, err := h.funding.MaxWithdrawable(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.MaxWithdrawableResponse{Lamports: lamports, SOL: domain.LamportsToSOL(lamports)})
}

// WithdrawGas handles POST /api/v1/agent-wallets/me/withdraw-gas.
func (h *AgentWalletHandler) WithdrawGas(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.WithdrawGasRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, apperror.Validation(err.Error()))
			return
		}
	}

	result, err := h.funding.WithdrawGas(c.Request.Context(), ports.WithdrawGasRequest{
		UserID:         userID,
		Amount:         req.Amount,
		IdempotencyKey: key,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result)
}
