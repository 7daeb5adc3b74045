package middleware

import (
	"encoding/json"
	"net/http"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuditFailures records rejected custody mutations. Successful ones are
// audited by the services themselves with their signatures.
func AuditFailures(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		userID, ok := UserID(c)
		if !ok {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		code := ""
		if len(c.Errors) > 0 {
			code = apperror.CodeOf(c.Errors.Last().Err)
		}
		details, _ := json.Marshal(map[string]any{
			"method":     c.Request.Method,
			"route":      route,
			"status":     c.Writer.Status(),
			"error_code": code,
			"client_ip":  c.ClientIP(),
		})

		entry := domain.NewAuditLog(domain.AuditActionRequestFailed, nil)
		entry.UserID = &userID
		entry.Details = string(details)
		auditSvc.Log(c.Request.Context(), entry)
	}
}
