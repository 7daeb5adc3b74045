package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delegated-trading-gateway/config"
	httpHandler "delegated-trading-gateway/internal/adapter/http/handler"
	"delegated-trading-gateway/internal/adapter/ledger/solana"
	"delegated-trading-gateway/internal/adapter/lock"
	"delegated-trading-gateway/internal/adapter/protocol/gateway"
	pgStorage "delegated-trading-gateway/internal/adapter/storage/postgres"
	redisStorage "delegated-trading-gateway/internal/adapter/storage/redis"
	"delegated-trading-gateway/internal/adapter/swap/jupiter"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/internal/service"
	"delegated-trading-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// .env is optional; the environment may already be populated.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("lock_backend", cfg.Lock.Backend).
		Msg("Starting Delegated Trading Gateway")

	minDeposit, err := decimal.NewFromString(cfg.Funding.MinDepositUSD)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Funding.MinDepositUSD).Msg("Invalid funding.min_deposit_usd")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	agentWalletRepo := pgStorage.NewAgentWalletRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Key vault
	vault, err := service.NewAESKeyVault(cfg.Vault.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key vault")
	}

	// External clients
	rpc := solana.NewRPCClient(solana.Options{
		URL:            cfg.Ledger.RPCURL,
		Commitment:     cfg.Ledger.Commitment,
		PollInterval:   cfg.Ledger.PollInterval,
		RequestsPerSec: cfg.Ledger.RequestsPerSec,
		Burst:          cfg.Ledger.Burst,
	}, &http.Client{Timeout: 30 * time.Second}, log)
	protocol := gateway.NewClient(cfg.Protocol.GatewayURL, cfg.Protocol.ProgramID, &http.Client{Timeout: cfg.Protocol.Timeout}, log)
	swap := jupiter.NewClient(cfg.Swap.BaseURL, &http.Client{Timeout: cfg.Swap.Timeout}, log)

	// Per-wallet locking and idempotency
	var locker ports.WalletLocker
	switch cfg.Lock.Backend {
	case "local":
		locker = lock.NewLocalLocker()
	default:
		locker = redisStorage.NewWalletLock(rdb, cfg.Lock.TTL, log)
	}
	submissions := redisStorage.NewSubmissionStore(rdb)

	// Initialize business services
	walletSvc := service.NewAgentWalletService(agentWalletRepo, userRepo, vault, rpc, auditSvc, log)
	submitter := service.NewTxSubmitter(walletSvc, rpc, cfg.Ledger.ConfirmTimeout, log)
	delegationSvc := service.NewDelegationService(walletSvc, protocol, rpc, submitter, auditSvc, log)
	tradingSvc := service.NewTradingService(walletSvc, delegationSvc, protocol, submitter, locker, cfg.Lock.Wait, log)
	fundingSvc := service.NewFundingService(
		walletSvc,
		userRepo,
		delegationSvc,
		protocol,
		rpc,
		swap,
		submitter,
		locker,
		submissions,
		auditSvc,
		service.FundingOptions{
			MinDepositUSD:             minDeposit,
			SettlementMint:            cfg.Ledger.USDCMint,
			SwapSlippageBps:           cfg.Swap.SlippageBps,
			RentExemptReserveLamports: cfg.Funding.RentExemptReserveLamports,
			WithdrawFeeBufferLamports: cfg.Funding.WithdrawFeeBufferLamports,
			SwapFeeBufferLamports:     cfg.Funding.SwapFeeBufferLamports,
			IdempotencyTTL:            cfg.Funding.IdempotencyTTL,
			LockWait:                  cfg.Lock.Wait,
		},
		log,
	)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewSchemaCheck(pool)
	redisHealth := redisStorage.NewWriteCheck(rdb)

	gin.SetMode(cfg.Server.Mode)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AgentWalletSvc: walletSvc,
		DelegationSvc:  delegationSvc,
		TradingSvc:     tradingSvc,
		FundingSvc:     fundingSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, rpc},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight submissions may be waiting on confirmation; give them that long.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Ledger.ConfirmTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
