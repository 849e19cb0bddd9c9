package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family-wallet-service/config"
	"family-wallet-service/internal/adapter/gateway/daraja"
	httpHandler "family-wallet-service/internal/adapter/http/handler"
	pgStorage "family-wallet-service/internal/adapter/storage/postgres"
	redisStorage "family-wallet-service/internal/adapter/storage/redis"
	"family-wallet-service/internal/core/domain"
	"family-wallet-service/internal/core/ports"
	"family-wallet-service/internal/service"
	"family-wallet-service/internal/stream"
	"family-wallet-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Family Wallet Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize event publisher (optional)
	var publisher ports.EventPublisher
	if cfg.Kafka.Brokers != "" {
		kafkaPub, err := stream.NewKafkaPublisher(cfg.Kafka.Brokers, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer kafkaPub.Close()
		publisher = kafkaPub
		log.Info().Str("brokers", cfg.Kafka.Brokers).Msg("Kafka producer ready")
	} else {
		log.Warn().Msg("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	settingsRepo := pgStorage.NewApprovalSettingsRepo(pool)
	requestRepo := pgStorage.NewPurchaseRequestRepo(pool)
	sessionRepo := pgStorage.NewPaymentSessionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	statusCache := redisStorage.NewSessionStatusCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize M-Pesa gateway client
	gateway := daraja.NewClient(cfg.Mpesa, &http.Client{Timeout: 30 * time.Second}, log)

	// Initialize business services
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, transactor, log)
	purchaseSvc := service.NewPurchaseService(
		requestRepo,
		settingsRepo,
		walletRepo,
		ledgerSvc,
		transactor,
		publisher,
		cfg.Approval.ReviewWindow,
		domain.ApprovalMode(cfg.Approval.DefaultMode),
		log,
	)
	sessionSvc := service.NewPaymentSessionService(
		sessionRepo,
		ledgerSvc,
		gateway,
		statusCache,
		publisher,
		cfg.Payment.PollInterval,
		cfg.Payment.PollTimeout,
		log,
	)

	// Resume polling for sessions interrupted by the previous shutdown.
	if err := sessionSvc.ResumePending(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to resume pending payment sessions")
	}

	// Start the expiry reaper
	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()
	reaper := service.NewReaper(purchaseSvc, sessionSvc, cfg.Reaper.Interval, cfg.Reaper.BatchSize, log)
	go reaper.Start(reaperCtx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		PurchaseSvc:    purchaseSvc,
		SessionSvc:     sessionSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
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

	stopReaper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
