package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookLogRepo implements ports.WebhookLogRepository.
type WebhookLogRepo struct {
	pool Pool
}

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

var _ ports.WebhookLogRepository = (*WebhookLogRepo)(nil)

// Create inserts the first delivery-attempt row for an outbound event.
func (r *WebhookLogRepo) Create(ctx context.Context, log *domain.WebhookLog) error {
	query := `INSERT INTO webhook_logs
		(id, webhook_config_id, payment_id, event_type, payload, status, http_status, response_body, attempt_count, created_at, updated_at, last_attempt_at, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.WebhookConfigID, log.PaymentID, log.EventType, log.Payload,
		log.Status, log.HTTPStatus, log.ResponseBody, log.AttemptCount,
		log.CreatedAt, log.UpdatedAt, log.LastAttemptAt, log.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// UpdateAttempt records the outcome of one delivery attempt, advancing
// attempt_count and status (§4.H).
func (r *WebhookLogRepo) UpdateAttempt(ctx context.Context, id uuid.UUID, status domain.WebhookLogStatus, httpStatus *int, responseBody *string) error {
	now := time.Now().UTC()
	var deliveredAt *time.Time
	if status == domain.WebhookLogStatusDelivered {
		deliveredAt = &now
	}

	query := `UPDATE webhook_logs
		SET status = $1, http_status = $2, response_body = $3, attempt_count = attempt_count + 1,
			last_attempt_at = $4, updated_at = $4, delivered_at = COALESCE($5, delivered_at)
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query, status, httpStatus, responseBody, now, deliveredAt, id)
	if err != nil {
		return fmt.Errorf("update webhook log attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook log not found: %s", id)
	}
	return nil
}

// GetByID fetches a webhook log row by ID.
func (r *WebhookLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookLog, error) {
	query := `SELECT id, webhook_config_id, payment_id, event_type, payload, status, http_status, response_body,
		attempt_count, created_at, updated_at, last_attempt_at, delivered_at
		FROM webhook_logs WHERE id = $1`

	log := &domain.WebhookLog{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&log.ID, &log.WebhookConfigID, &log.PaymentID, &log.EventType, &log.Payload,
		&log.Status, &log.HTTPStatus, &log.ResponseBody, &log.AttemptCount,
		&log.CreatedAt, &log.UpdatedAt, &log.LastAttemptAt, &log.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook log by id: %w", err)
	}
	return log, nil
}
