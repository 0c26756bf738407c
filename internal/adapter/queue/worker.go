package queue

import (
	"context"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/ports"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Worker runs the asynq server that drains payments.* and
// notifications.webhooks, dispatching each task to the matching
// service method (§4.D).
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewWorker wires per-queue concurrency weights and the retry/backoff
// schedule from §4.D: payments retry after 2s/4s/8s (MaxRetry 3, so at
// most 4 attempts), webhook deliveries retry after 5s/10s/20s/40s/80s
// (MaxRetry 5, at most 6 attempts). A task that
// exhausts its payment retries is copied onto payments.dlq instead of
// being silently archived.
func NewWorker(redisAddr string, dlq *AsynqJobQueue, paymentSvc ports.PaymentService, webhookSvc ports.WebhookDispatchService, logger zerolog.Logger) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Queues: map[string]int{
				QueueMonCash:       5,
				QueueNatCash:       5,
				QueueStripe:        5,
				QueueNotifications: 10,
			},
			RetryDelayFunc: retryDelay,
			ErrorHandler:   asynq.ErrorHandlerFunc(dlqErrorHandler(dlq, paymentSvc, logger)),
			Logger:         zerologAdapter{logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentDispatch, paymentDispatchHandler(paymentSvc))
	mux.HandleFunc(TypeWebhookDeliver, webhookDeliverHandler(webhookSvc))

	return &Worker{server: server, mux: mux}
}

// Run blocks, draining queues until the process receives a shutdown
// signal handled by the caller.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker gracefully, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func retryDelay(n int, err error, task *asynq.Task) time.Duration {
	switch task.Type() {
	case TypeWebhookDeliver:
		schedule := []time.Duration{5 * time.Second, 10 * time.Second, 20 * time.Second, 40 * time.Second, 80 * time.Second}
		if n-1 < len(schedule) {
			return schedule[n-1]
		}
		return schedule[len(schedule)-1]
	default:
		schedule := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
		if n-1 < len(schedule) {
			return schedule[n-1]
		}
		return schedule[len(schedule)-1]
	}
}

// dlqErrorHandler re-enqueues a payment dispatch task onto payments.dlq
// once its retries are exhausted, preserving the original payload
// instead of letting asynq's default archive swallow it, and marks the
// underlying payment failed so it no longer sits in pending (§4.D, §4.E).
func dlqErrorHandler(dlq *AsynqJobQueue, paymentSvc ports.PaymentService, logger zerolog.Logger) func(ctx context.Context, task *asynq.Task, err error) {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		logEvent := logger.Error().Err(err).Str("task_type", task.Type()).Int("retry", retried).Int("max_retry", maxRetry)

		if task.Type() != TypePaymentDispatch || retried < maxRetry {
			logEvent.Msg("task failed, will retry")
			return
		}

		if dlqErr := dlq.enqueueDLQ(context.Background(), task.Payload()); dlqErr != nil {
			logEvent.Err(dlqErr).Msg("task exhausted retries, failed to move to dlq")
		} else {
			logEvent.Msg("task exhausted retries, moved to payments.dlq")
		}

		var job ports.PaymentDispatchJob
		if decodeErr := decodeTask(task, &job); decodeErr != nil {
			logger.Error().Err(decodeErr).Str("task_type", task.Type()).Msg("could not decode exhausted task payload, payment left pending")
			return
		}
		reason := fmt.Sprintf("dispatch failed after %d attempts: %v", retried+1, err)
		if markErr := paymentSvc.MarkFailed(context.Background(), job.PaymentID, reason); markErr != nil {
			logger.Error().Err(markErr).Str("payment_id", job.PaymentID.String()).Msg("failed to mark payment failed after exhausted retries")
		}
	}
}

func paymentDispatchHandler(svc ports.PaymentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var job ports.PaymentDispatchJob
		if err := decodeTask(task, &job); err != nil {
			return err
		}
		return svc.Dispatch(ctx, job.PaymentID)
	}
}

func webhookDeliverHandler(svc ports.WebhookDispatchService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var job ports.WebhookDeliveryJob
		if err := decodeTask(task, &job); err != nil {
			return err
		}
		return svc.Deliver(ctx, job.WebhookLogID)
	}
}
