package handler

import (
	"delegated-trading-gateway/internal/adapter/http/dto"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DelegationHandler handles delegation endpoints.
type DelegationHandler struct {
	delegation ports.DelegationService
}

// NewDelegationHandler creates a new DelegationHandler.
func NewDelegationHandler(delegation ports.DelegationService) *DelegationHandler {
	return &DelegationHandler{delegation: delegation}
}

// Status handles GET /api/v1/delegation/status.
func (h *DelegationHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := h.delegation.Status(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, status)
}

// AuthorizeTx handles GET /api/v1/delegation/authorize-tx.
func (h *DelegationHandler) AuthorizeTx(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tx, err := h.delegation.BuildAuthorizeTx(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, tx)
}

// RevokeTx handles GET /api/v1/delegation/revoke-tx.
func (h *DelegationHandler) RevokeTx(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tx, err := h.delegation.BuildRevokeTx(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, tx)
}

// Submit handles POST /api/v1/delegation/submit.
func (h *DelegationHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SubmitDelegationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.delegation.SubmitSignedDelegation(c.Request.Context(), userID, req.SignedTransaction)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result)
}
