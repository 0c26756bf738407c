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

// APIKeyRepo implements ports.APIKeyRepository.
type APIKeyRepo struct {
	pool Pool
}

// NewAPIKeyRepo creates a new APIKeyRepo.
func NewAPIKeyRepo(pool Pool) *APIKeyRepo {
	return &APIKeyRepo{pool: pool}
}

var _ ports.APIKeyRepository = (*APIKeyRepo)(nil)

// Create inserts a new API key.
func (r *APIKeyRepo) Create(ctx context.Context, key *domain.APIKey) error {
	query := `INSERT INTO api_keys (id, merchant_id, key_id, secret_hash, environment, created_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		key.ID, key.MerchantID, key.KeyID, key.SecretHash,
		key.Environment, key.CreatedAt, key.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// GetByKeyID fetches an API key by its public key ID.
func (r *APIKeyRepo) GetByKeyID(ctx context.Context, keyID string) (*domain.APIKey, error) {
	query := `SELECT id, merchant_id, key_id, secret_hash, environment, created_at, revoked_at
		FROM api_keys WHERE key_id = $1`

	k := &domain.APIKey{}
	err := r.pool.QueryRow(ctx, query, keyID).Scan(
		&k.ID, &k.MerchantID, &k.KeyID, &k.SecretHash,
		&k.Environment, &k.CreatedAt, &k.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get api key by key_id: %w", err)
	}
	return k, nil
}

// Revoke marks an API key as revoked.
func (r *APIKeyRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE api_keys SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api key not found or already revoked: %s", id)
	}
	return nil
}
