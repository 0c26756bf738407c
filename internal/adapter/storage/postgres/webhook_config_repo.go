package postgres

import (
	"context"
	"errors"
	"fmt"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookConfigRepo implements ports.WebhookConfigRepository.
type WebhookConfigRepo struct {
	pool Pool
}

// NewWebhookConfigRepo creates a new WebhookConfigRepo.
func NewWebhookConfigRepo(pool Pool) *WebhookConfigRepo {
	return &WebhookConfigRepo{pool: pool}
}

var _ ports.WebhookConfigRepository = (*WebhookConfigRepo)(nil)

// Create inserts a new webhook subscription.
func (r *WebhookConfigRepo) Create(ctx context.Context, cfg *domain.WebhookConfig) error {
	query := `INSERT INTO webhook_configs (id, merchant_id, url, events, secret, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		cfg.ID, cfg.MerchantID, cfg.URL, eventsToStrings(cfg.Events), cfg.Secret,
		cfg.IsActive, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook config: %w", err)
	}
	return nil
}

// GetByMerchantID fetches every subscription belonging to a merchant.
func (r *WebhookConfigRepo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]domain.WebhookConfig, error) {
	query := `SELECT id, merchant_id, url, events, secret, is_active, created_at, updated_at
		FROM webhook_configs WHERE merchant_id = $1`

	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list webhook configs: %w", err)
	}
	defer rows.Close()

	var configs []domain.WebhookConfig
	for rows.Next() {
		cfg, events, err := scanWebhookConfigRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook config row: %w", err)
		}
		cfg.Events = stringsToEvents(events)
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook config rows: %w", err)
	}
	return configs, nil
}

// GetByID fetches a single webhook subscription.
func (r *WebhookConfigRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error) {
	query := `SELECT id, merchant_id, url, events, secret, is_active, created_at, updated_at
		FROM webhook_configs WHERE id = $1`

	cfg, events, err := scanWebhookConfigRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook config by id: %w", err)
	}
	cfg.Events = stringsToEvents(events)
	return &cfg, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWebhookConfigRow(row rowScanner) (domain.WebhookConfig, []string, error) {
	var cfg domain.WebhookConfig
	var events []string
	err := row.Scan(&cfg.ID, &cfg.MerchantID, &cfg.URL, &events, &cfg.Secret, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt)
	return cfg, events, err
}

func eventsToStrings(events []domain.EventType) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = string(e)
	}
	return out
}

func stringsToEvents(values []string) []domain.EventType {
	out := make([]domain.EventType, len(values))
	for i, v := range values {
		out[i] = domain.EventType(v)
	}
	return out
}
