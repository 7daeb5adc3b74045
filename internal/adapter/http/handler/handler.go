package handler

import (
	"strconv"
	"time"

	"delegated-trading-gateway/internal/adapter/http/dto"
	"delegated-trading-gateway/internal/adapter/http/middleware"
	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey lets clients retry fund-moving requests safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// fail records err on the context for the logging and audit middleware, then
// writes the error envelope.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, err)
}

// currentUser returns the authenticated user or writes AUTH_001.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		fail(c, apperror.ErrInvalidToken())
	}
	return id, ok
}

func idempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetHeader(HeaderIdempotencyKey)
	if !dto.ValidIdempotencyKey(key) {
		fail(c, apperror.Validation("Idempotency-Key must be at most 128 characters of [A-Za-z0-9_.-]"))
		return "", false
	}
	return key, true
}

func uint16Param(c *gin.Context, name string) (uint16, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 16)
	if err != nil {
		fail(c, apperror.Validation(name+" must be an integer between 0 and 65535"))
		return 0, false
	}
	return uint16(v), true
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func toAgentWalletResponse(w *domain.AgentWallet) dto.AgentWalletResponse {
	return dto.AgentWalletResponse{
		ID:                  w.ID.String(),
		PublicKey:           w.PublicKey,
		AccountAuthority:    w.AccountAuthority,
		SubaccountIndex:     w.SubaccountIndex,
		Status:              string(w.Status),
		IsDelegated:         w.IsDelegated,
		DelegatedAt:         formatTime(w.DelegatedAt),
		IsActivated:         w.IsActivated,
		ActivatedAt:         formatTime(w.ActivatedAt),
		GasBalance:          w.GasBalance,
		GasBalanceSOL:       domain.LamportsToSOL(w.GasBalance),
		GasBalanceUpdatedAt: formatTime(w.GasBalanceUpdatedAt),
		CreatedAt:           w.CreatedAt.UTC().Format(time.RFC3339),
	}
}
