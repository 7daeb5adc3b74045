package handler

import (
	"delegated-trading-gateway/internal/adapter/http/middleware"
	redisStore "delegated-trading-gateway/internal/adapter/storage/redis"
	"delegated-trading-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AgentWalletSvc ports.AgentWalletService
	DelegationSvc  ports.DelegationService
	TradingSvc     ports.TradingService
	FundingSvc     ports.FundingService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = failed-request auditing disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: PostgreSQL, Redis, ledger RPC)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Every API route is JWT-authenticated.
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		v1.Use(middleware.AuditFailures(deps.AuditSvc))
	}

	walletHandler := NewAgentWalletHandler(deps.AgentWalletSvc, deps.FundingSvc)
	wallets := v1.Group("/agent-wallets")
	{
		wallets.POST("", rl("agent_wallets"), walletHandler.Create)
		wallets.GET("/me", rl("reads"), walletHandler.Get)
		wallets.POST("/me/refresh-balance", rl("reads"), walletHandler.RefreshBalance)
		wallets.GET("/me/max-withdrawable", rl("reads"), walletHandler.MaxWithdrawable)
		wallets.POST("/me/withdraw-gas", rl("funding"), walletHandler.WithdrawGas)
	}

	delegationHandler := NewDelegationHandler(deps.DelegationSvc)
	delegation := v1.Group("/delegation")
	{
		delegation.GET("/status", rl("reads"), delegationHandler.Status)
		delegation.GET("/authorize-tx", rl("delegation"), delegationHandler.AuthorizeTx)
		delegation.GET("/revoke-tx", rl("delegation"), delegationHandler.RevokeTx)
		delegation.POST("/submit", rl("delegation"), delegationHandler.Submit)
	}

	tradingHandler := NewTradingHandler(deps.TradingSvc)
	trading := v1.Group("/trading")
	{
		trading.POST("/orders", rl("trading"), tradingHandler.PlaceOrder)
		trading.POST("/orders/tp-sl", rl("trading"), tradingHandler.PlaceTpSl)
		trading.DELETE("/orders/:orderId", rl("trading"), tradingHandler.CancelOrder)
		trading.DELETE("/orders", rl("trading"), tradingHandler.CancelAllOrders)
		trading.GET("/orders", rl("reads"), tradingHandler.GetOpenOrders)
		trading.GET("/positions", rl("reads"), tradingHandler.GetPositions)
		trading.POST("/positions/close-all", rl("trading"), tradingHandler.CloseAllPositions)
		trading.POST("/positions/:marketIndex/close", rl("trading"), tradingHandler.ClosePosition)
		trading.GET("/markets/:marketIndex/price", rl("reads"), tradingHandler.GetMarketPrice)
	}

	fundingHandler := NewFundingHandler(deps.FundingSvc)
	funding := v1.Group("/funding")
	{
		funding.POST("/deposit", rl("funding"), fundingHandler.Deposit)
		funding.POST("/withdraw", rl("funding"), fundingHandler.Withdraw)
		funding.GET("/status", rl("reads"), fundingHandler.Status)
	}

	return r
}
