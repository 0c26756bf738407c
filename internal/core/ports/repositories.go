package ports

import (
	"context"
	"time"

	"secure-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
}

// APIKeyRepository defines persistence operations for API keys.
type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.APIKey) error
	GetByKeyID(ctx context.Context, keyID string) (*domain.APIKey, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines persistence operations for payments.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking of the state-machine write path (§4.E, §4.I).
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByReference(ctx context.Context, reference string) (*domain.Payment, error)
	GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Payment, error)
	GetByProviderTransactionID(ctx context.Context, channel domain.Channel, providerTxID string) (*domain.Payment, error)
	Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	List(ctx context.Context, params PaymentListParams) ([]domain.Payment, string, error)
	ListExpired(ctx context.Context, now int64, limit int) ([]domain.Payment, error)
}

// PaymentListParams holds filter + cursor pagination for listing payments.
type PaymentListParams struct {
	MerchantID uuid.UUID
	Status     *domain.PaymentStatus
	Channel    *domain.Channel
	From       *time.Time
	To         *time.Time
	Cursor     string
	Limit      int
}

// TransactionRepository defines persistence operations for the
// append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.Transaction, error)
}

// CustomerRepository defines persistence operations for merchant
// customer profiles (§4.E customer-upsert side effect).
type CustomerRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, customer *domain.Customer) error
	GetByContact(ctx context.Context, merchantID uuid.UUID, env domain.Environment, email, phone *string) (*domain.Customer, error)
}

// WebhookConfigRepository defines persistence operations for merchant
// outbound webhook subscriptions.
type WebhookConfigRepository interface {
	Create(ctx context.Context, cfg *domain.WebhookConfig) error
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]domain.WebhookConfig, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error)
}

// WebhookLogRepository defines persistence operations for outbound
// delivery audit rows.
type WebhookLogRepository interface {
	Create(ctx context.Context, log *domain.WebhookLog) error
	UpdateAttempt(ctx context.Context, id uuid.UUID, status domain.WebhookLogStatus, httpStatus *int, responseBody *string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookLog, error)
}

// IdempotencyRepository defines persistence for idempotency records
// (Postgres durable fallback behind the Redis fast path, §4.F).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.IdempotencyRecord) error
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AuditRepository persists audit log entries. A nil repository
// disables persistence; entries are still written to the structured
// logger.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
