package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ProviderTokenCache implements ports.TokenCacheService using Redis,
// generalizing IdempotencyCache's get/set-with-TTL shape to
// (provider) -> (token, expiry) (§4.C).
type ProviderTokenCache struct {
	client *goredis.Client
	prefix string
}

// NewProviderTokenCache creates a new Redis-backed provider token cache.
func NewProviderTokenCache(client *goredis.Client) *ProviderTokenCache {
	return &ProviderTokenCache{client: client, prefix: "provider_token:"}
}

// Get retrieves the cached token for a provider. Returns nil, nil if
// absent or expired.
func (c *ProviderTokenCache) Get(ctx context.Context, provider domain.Channel) (*domain.ProviderTokenRecord, error) {
	val, err := c.client.Get(ctx, c.prefix+string(provider)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis provider token get: %w", err)
	}

	rec := &domain.ProviderTokenRecord{}
	if err := json.Unmarshal(val, rec); err != nil {
		return nil, fmt.Errorf("unmarshal provider token: %w", err)
	}
	if !rec.Valid(time.Now()) {
		return nil, nil
	}
	return rec, nil
}

// Set stores the provider token. TTL is derived from the record's
// expiry; concurrent misses may each fetch and set, last writer wins
// (§4.C — tokens are interchangeable).
func (c *ProviderTokenCache) Set(ctx context.Context, record *domain.ProviderTokenRecord) error {
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	val, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal provider token: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+string(record.Provider), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis provider token set: %w", err)
	}
	return nil
}
