// Package queue implements the durable job queue port (§4.D) on top of
// asynq, a Redis-backed task queue. Nothing outside this package
// imports asynq directly — components talk to ports.JobQueue, the
// "narrow EventBus" redesign flag of §9.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/hibiken/asynq"
)

// Task type names registered with the asynq mux.
const (
	TypePaymentDispatch  = "payment:dispatch"
	TypeWebhookDeliver   = "webhook:deliver"
)

// Queue names, 1:1 with spec §4.D.
const (
	QueueMonCash      = "payments.moncash"
	QueueNatCash      = "payments.natcash"
	QueueStripe       = "payments.stripe"
	QueueDLQ          = "payments.dlq"
	QueueNotifications = "notifications.webhooks"
)

// paymentQueueFor maps a channel to its dedicated queue.
func paymentQueueFor(channel domain.Channel) string {
	switch channel {
	case domain.ChannelMonCash:
		return QueueMonCash
	case domain.ChannelNatCash:
		return QueueNatCash
	case domain.ChannelStripe:
		return QueueStripe
	default:
		return QueueMonCash
	}
}

const (
	paymentMaxRetry = 3
	webhookMaxRetry = 5
	paymentBackoffBase = 2 * time.Second
	webhookBackoffBase = 5 * time.Second
)

// AsynqJobQueue implements ports.JobQueue using asynq.
type AsynqJobQueue struct {
	client *asynq.Client
}

// NewAsynqJobQueue creates a new asynq-backed job queue client.
func NewAsynqJobQueue(redisAddr string) *AsynqJobQueue {
	return &AsynqJobQueue{client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

// Close releases the underlying Redis connection.
func (q *AsynqJobQueue) Close() error {
	return q.client.Close()
}

func (q *AsynqJobQueue) EnqueuePaymentDispatch(ctx context.Context, job ports.PaymentDispatchJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal payment dispatch job: %w", err)
	}
	task := asynq.NewTask(TypePaymentDispatch, payload)
	_, err = q.client.EnqueueContext(ctx, task,
		asynq.Queue(paymentQueueFor(job.Channel)),
		asynq.MaxRetry(paymentMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue payment dispatch: %w", err)
	}
	return nil
}

func (q *AsynqJobQueue) EnqueueWebhookDelivery(ctx context.Context, job ports.WebhookDeliveryJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal webhook delivery job: %w", err)
	}
	task := asynq.NewTask(TypeWebhookDeliver, payload)
	_, err = q.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(webhookMaxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue webhook delivery: %w", err)
	}
	return nil
}

// enqueueDLQ copies a payment dispatch payload onto payments.dlq,
// preserving the original data, without further retries (§4.D).
func (q *AsynqJobQueue) enqueueDLQ(ctx context.Context, payload []byte) error {
	task := asynq.NewTask(TypePaymentDispatch, payload)
	_, err := q.client.EnqueueContext(ctx, task, asynq.Queue(QueueDLQ), asynq.MaxRetry(0))
	return err
}
