// Command worker drains the payments.* and notifications.webhooks
// asynq queues (§4.D): payment dispatch to a provider, and outbound
// webhook delivery with signing.
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
	log.Info().Msg("Starting Secure Payment Gateway worker")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	paymentRepo := pgStorage.NewPaymentRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	customerRepo := pgStorage.NewCustomerRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	webhookConfigRepo := pgStorage.NewWebhookConfigRepo(pool)
	webhookLogRepo := pgStorage.NewWebhookLogRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	tokenCache := redisStorage.NewProviderTokenCache(rdb)

	sigSvc := service.NewHMACSignatureService()
	auditSvc := service.NewAuditService(auditRepo, log)
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	callbackURL := cfg.Server.PublicBaseURL + "/v1/webhooks/natcash"
	providers := map[domain.Channel]ports.ProviderAdapter{
		domain.ChannelMonCash: provider.NewMonCashAdapter(cfg.Providers.MonCash, tokenCache),
		domain.ChannelNatCash: provider.NewNatCashAdapter(cfg.Providers.NatCash, callbackURL, tokenCache),
		domain.ChannelStripe:  provider.NewStripeAdapter(cfg.Providers.Stripe),
	}

	jobQueue := queue.NewAsynqJobQueue(cfg.Queue.RedisAddr)
	defer jobQueue.Close()

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

	worker := queue.NewWorker(cfg.Queue.RedisAddr, jobQueue, paymentSvc, webhookSvc, log)

	go func() {
		if err := worker.Run(); err != nil {
			log.Fatal().Err(err).Msg("worker failed")
		}
	}()

	log.Info().Msg("worker draining payments.* and notifications.webhooks")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down worker...")
	worker.Shutdown()
	log.Info().Msg("Worker exited")
}
