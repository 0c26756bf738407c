package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "ACTIVE"
	MerchantStatusSuspended MerchantStatus = "SUSPENDED"
)

// Environment distinguishes live traffic from sandbox traffic.
type Environment string

const (
	EnvironmentLive Environment = "live"
	EnvironmentTest Environment = "test"
)

// Merchant represents a registered business accepting payments through
// the gateway. Identity/KYC/team administration live outside the core.
type Merchant struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Status    MerchantStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IsActive returns true if the merchant may receive traffic.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// APIKey is a machine credential authenticating inbound payment requests.
// Only the hash of the secret half is ever persisted.
type APIKey struct {
	ID          uuid.UUID   `json:"id"`
	MerchantID  uuid.UUID   `json:"merchant_id"`
	KeyID       string      `json:"key_id"` // pk_{env}_..., looked up by on each request
	SecretHash  string      `json:"-"`      // hash of sk_{env}_..., never returned after creation
	Environment Environment `json:"environment"`
	CreatedAt   time.Time   `json:"created_at"`
	RevokedAt   *time.Time  `json:"revoked_at,omitempty"`
}

// IsRevoked returns true if the key can no longer authenticate requests.
func (k *APIKey) IsRevoked() bool {
	return k.RevokedAt != nil
}

// Customer is a lightweight profile keyed by contact identity, upserted
// when a payment reaches completed (§4.E customer upsert).
type Customer struct {
	ID             uuid.UUID   `json:"id"`
	MerchantID     uuid.UUID   `json:"merchant_id"`
	Environment    Environment `json:"environment"`
	Email          *string     `json:"email,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	Name           *string     `json:"name,omitempty"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	PaymentCount   int64       `json:"payment_count"`
	FirstPaymentAt time.Time   `json:"first_payment_at"`
	LastPaymentAt  time.Time   `json:"last_payment_at"`
}
