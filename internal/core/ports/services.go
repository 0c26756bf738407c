package ports

import (
	"context"
	"time"

	"secure-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// --- Cross-cutting infrastructure ports ---

// SignatureService handles HMAC-SHA256 signing and verification, used
// for outbound webhook signing (§4.H) and Stripe callback verification
// (§4.B).
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService hashes secret material at rest (Argon2id), generalized
// from the teacher's password hashing to API-key secret hashing.
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// EncryptionService handles AES-256-GCM encryption/decryption, used to
// store a merchant's webhook signing secret at rest (generalized from
// the teacher's encrypted-wallet-balance use).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService handles JWT token operations for merchant dashboard
// sessions.
type TokenService interface {
	Generate(merchantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
}

// IdempotencyCache is the Redis-layer idempotency check (fast path,
// §4.F). The Postgres IdempotencyRepository backs it as the durable
// fallback once an entry ages out of Redis.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TokenCacheService caches provider OAuth2 access tokens (§4.C),
// generalizing IdempotencyCache's get/set-with-TTL shape to
// (provider) -> (token, expiry).
type TokenCacheService interface {
	Get(ctx context.Context, provider domain.Channel) (*domain.ProviderTokenRecord, error)
	Set(ctx context.Context, record *domain.ProviderTokenRecord) error
}

// --- Provider adapter port (§4.B) ---

// ProviderAdapter is the uniform contract every payment processor
// (MonCash, NatCash, Stripe) implements, so the payment service can
// dispatch to any of them without a type switch.
type ProviderAdapter interface {
	Channel() domain.Channel
	// CreatePayment starts the payment at the provider, returning the
	// provider's transaction id and (if applicable) a redirect URL the
	// customer completes payment at.
	CreatePayment(ctx context.Context, payment *domain.Payment) (ProviderCreateResult, error)
	// GetStatus polls the provider for the current state of a
	// previously created payment. Used by the reconciler (§4.G) when a
	// callback is late or missing.
	GetStatus(ctx context.Context, providerTransactionID string) (ProviderStatusResult, error)
	// Refund issues a provider-side refund for part or all of a
	// completed payment.
	Refund(ctx context.Context, providerTransactionID string, amount domain.Currency, refundAmount string) (ProviderRefundResult, error)
	// VerifyCallback authenticates an inbound provider callback and
	// extracts the normalized outcome. Structural verification for
	// MonCash/NatCash, HMAC-SHA256 stripe-signature verification for
	// Stripe (§4.B, §4.G).
	VerifyCallback(ctx context.Context, headers map[string]string, body []byte) (ProviderCallbackResult, error)
}

// ProviderCreateResult is what a provider returns from initiating a
// payment.
type ProviderCreateResult struct {
	ProviderTransactionID string
	RedirectURL           string
}

// ProviderStatusResult is the normalized outcome of a status poll.
type ProviderStatusResult struct {
	Status       domain.PaymentStatus
	FailureReason string
}

// ProviderRefundResult is the normalized outcome of a refund call.
type ProviderRefundResult struct {
	ProviderRefundID string
}

// ProviderCallbackResult is the normalized outcome of an inbound
// callback, after authentication.
type ProviderCallbackResult struct {
	ProviderTransactionID string
	Status                domain.PaymentStatus
	FailureReason         string
	// RefundAmount carries the provider-reported refunded amount (as a
	// decimal string) when Status is refunded/partially_refunded; empty
	// otherwise.
	RefundAmount string
}

// --- Durable job queue port (§4.D, the "narrow EventBus" redesign flag
// of §9: components talk to this interface, never to asynq directly) ---

// JobQueue enqueues work onto a durable, retrying queue. The concrete
// implementation is asynq-backed (Redis), but nothing above this port
// imports asynq.
type JobQueue interface {
	EnqueuePaymentDispatch(ctx context.Context, job PaymentDispatchJob) error
	EnqueueWebhookDelivery(ctx context.Context, job WebhookDeliveryJob) error
}

// PaymentDispatchJob asks a worker to call ProviderAdapter.CreatePayment
// for the given payment.
type PaymentDispatchJob struct {
	PaymentID uuid.UUID
	Channel   domain.Channel
}

// WebhookDeliveryJob asks a worker to deliver one outbound webhook
// attempt.
type WebhookDeliveryJob struct {
	WebhookLogID uuid.UUID
}

// --- Service ports (business logic) ---

// PaymentService defines the core payment business logic (§4.E, §4.F, §4.I).
type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, reference string) (*domain.Payment, error)
	ListPayments(ctx context.Context, params PaymentListParams) ([]domain.Payment, string, error)
	RefundPayment(ctx context.Context, reference string, amount *string, reason string) (*domain.Transaction, error)
	HandleCallback(ctx context.Context, channel domain.Channel, headers map[string]string, body []byte) error
	ExpireStalePayments(ctx context.Context, now time.Time) (int, error)
	// Dispatch is called by a queue worker to submit a pending payment to
	// its provider (§4.D PaymentDispatchJob handler).
	Dispatch(ctx context.Context, paymentID uuid.UUID) error
	// MarkFailed transitions a still-pending payment to failed with a
	// human-readable reason. Called by the queue worker's error handler
	// once a PaymentDispatchJob has exhausted its retries; a no-op if the
	// payment already moved on (e.g. a racing retry dispatched it first).
	MarkFailed(ctx context.Context, paymentID uuid.UUID, reason string) error
}

// CreatePaymentRequest holds validated input for payment creation.
type CreatePaymentRequest struct {
	MerchantID     uuid.UUID
	Channel        domain.Channel
	Amount         string
	Currency       domain.Currency
	CustomerEmail  *string
	CustomerPhone  *string
	CustomerName   *string
	OrderID        *string
	Metadata       map[string]any
	IdempotencyKey string
}

// WebhookDispatchService enqueues and delivers outbound webhook
// notifications (§4.H).
type WebhookDispatchService interface {
	Notify(ctx context.Context, payment *domain.Payment, event domain.EventType) error
	Deliver(ctx context.Context, webhookLogID uuid.UUID) error
	// CreateWebhookConfig registers a merchant's outbound webhook
	// subscription, encrypting cfg.Secret at rest before it is persisted.
	CreateWebhookConfig(ctx context.Context, cfg *domain.WebhookConfig) error
}

// AuthService defines authentication business logic for the merchant
// dashboard session and API key issuance.
type AuthService interface {
	IssueAPIKey(ctx context.Context, merchantID uuid.UUID, env domain.Environment) (keyID, secret string, err error)
	AuthenticateAPIKey(ctx context.Context, keyID, secret string) (*domain.Merchant, error)
	Login(ctx context.Context, merchantID uuid.UUID) (string, time.Time, error)
}

// AuditService records significant account and payment events
// fire-and-forget, never blocking the caller on persistence.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
