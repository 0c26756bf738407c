package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secure-payment-gateway/config"
	httpHandler "secure-payment-gateway/internal/adapter/http/handler"
	"secure-payment-gateway/internal/adapter/provider"
	"secure-payment-gateway/internal/adapter/queue"
	pgStorage "secure-payment-gateway/internal/adapter/storage/postgres"
	redisStorage "secure-payment-gateway/internal/adapter/storage/redis"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/service"
	"secure-payment-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Secure Payment Gateway")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	apiKeyRepo := pgStorage.NewAPIKeyRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	customerRepo := pgStorage.NewCustomerRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	webhookConfigRepo := pgStorage.NewWebhookConfigRepo(pool)
	webhookLogRepo := pgStorage.NewWebhookLogRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	tokenCache := redisStorage.NewProviderTokenCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Crypto / auth primitives
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	// Provider adapters
	callbackURL := cfg.Server.PublicBaseURL + "/v1/webhooks/natcash"
	providers := map[domain.Channel]ports.ProviderAdapter{
		domain.ChannelMonCash: provider.NewMonCashAdapter(cfg.Providers.MonCash, tokenCache),
		domain.ChannelNatCash: provider.NewNatCashAdapter(cfg.Providers.NatCash, callbackURL, tokenCache),
		domain.ChannelStripe:  provider.NewStripeAdapter(cfg.Providers.Stripe),
	}

	// Durable job queue
	jobQueue := queue.NewAsynqJobQueue(cfg.Queue.RedisAddr)
	defer jobQueue.Close()

	// Business services
	auditSvc := service.NewAuditService(auditRepo, log)
	authSvc := service.NewAuthService(merchantRepo, apiKeyRepo, hashSvc, tokenSvc, auditSvc)
	webhookSvc := service.NewWebhookService(
		webhookConfigRepo,
		webhookLogRepo,
		sigSvc,
		jobQueue,
		&http.Client{Timeout: 35 * time.Second},
		encSvc,
		log,
	)
	paymentSvc := service.NewPaymentService(
		paymentRepo,
		txRepo,
		customerRepo,
		idempotencyRepo,
		idempotencyCache,
		providers,
		jobQueue,
		webhookSvc,
		transactor,
		auditSvc,
		log,
	)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		PaymentSvc:     paymentSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
