package postgres

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

var _ ports.PaymentRepository = (*PaymentRepo)(nil)

// Create inserts a new payment within the caller's transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal payment metadata: %w", err)
	}

	query := `INSERT INTO payments
		(id, reference, merchant_id, channel, status, amount, currency, fee_rate, fee_amount, net_amount,
		 refunded_amount, provider_transaction_id, redirect_url, idempotency_key, customer_email, customer_phone,
		 customer_name, customer_id, order_id, metadata, failure_reason, expires_at, created_at, updated_at,
		 completed_at, failed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)`

	_, err = tx.Exec(ctx, query,
		p.ID, p.Reference, p.MerchantID, p.Channel, p.Status, p.Amount, p.Currency,
		p.FeeRate, p.FeeAmount, p.NetAmount, p.RefundedAmount, p.ProviderTransactionID,
		p.RedirectURL, p.IdempotencyKey, p.CustomerEmail, p.CustomerPhone, p.CustomerName,
		p.CustomerID, p.OrderID, metadata, p.FailureReason, p.ExpiresAt, p.CreatedAt,
		p.UpdatedAt, p.CompletedAt, p.FailedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment by UUID (non-locking read).
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectPaymentQuery+" WHERE id = $1", id))
}

// GetByReference fetches a payment by its public reference (non-locking read).
func (r *PaymentRepo) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	return r.scanOne(r.pool.QueryRow(ctx, selectPaymentQuery+" WHERE reference = $1", reference))
}

// GetByReferenceForUpdate fetches a payment by reference with pessimistic
// locking. Must be called within a transaction (§4.E, §4.I).
func (r *PaymentRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Payment, error) {
	row := tx.QueryRow(ctx, selectPaymentQuery+" WHERE reference = $1 FOR UPDATE", reference)
	return r.scanOne(row)
}

// GetByProviderTransactionID fetches a payment via the channel's own
// transaction identifier, used to reconcile inbound callbacks (§4.G).
func (r *PaymentRepo) GetByProviderTransactionID(ctx context.Context, channel domain.Channel, providerTxID string) (*domain.Payment, error) {
	query := selectPaymentQuery + " WHERE channel = $1 AND provider_transaction_id = $2"
	return r.scanOne(r.pool.QueryRow(ctx, query, channel, providerTxID))
}

// Update persists a payment's mutable fields within the caller's
// transaction (status transitions, callback reconciliation, refunds).
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `UPDATE payments SET
		status = $1, fee_amount = $2, net_amount = $3, refunded_amount = $4,
		provider_transaction_id = $5, failure_reason = $6, updated_at = $7,
		completed_at = $8, failed_at = $9
		WHERE id = $10`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.FeeAmount, p.NetAmount, p.RefundedAmount,
		p.ProviderTransactionID, p.FailureReason, p.UpdatedAt,
		p.CompletedAt, p.FailedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

// List fetches a merchant's payments filtered by status/channel with
// opaque cursor pagination.
func (r *PaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, string, error) {
	conditions := []string{"merchant_id = $1"}
	args := []any{params.MerchantID}
	argIdx := 2

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Channel != nil {
		conditions = append(conditions, fmt.Sprintf("channel = $%d", argIdx))
		args = append(args, *params.Channel)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}
	if params.Cursor != "" {
		createdAt, id, err := decodeCursor(params.Cursor)
		if err != nil {
			return nil, "", fmt.Errorf("decode cursor: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("(created_at, id) < ($%d, $%d)", argIdx, argIdx+1))
		args = append(args, createdAt, id)
		argIdx += 2
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d`,
		selectPaymentQuery, strings.Join(conditions, " AND "), argIdx)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, "", fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("iterate payment rows: %w", err)
	}

	var nextCursor string
	if len(payments) > limit {
		last := payments[limit-1]
		nextCursor = encodeCursor(last.CreatedAt, last.ID)
		payments = payments[:limit]
	}
	return payments, nextCursor, nil
}

// ListExpired fetches pending payments past their expiry window, used by
// the expiry sweep job.
func (r *PaymentRepo) ListExpired(ctx context.Context, now int64, limit int) ([]domain.Payment, error) {
	query := selectPaymentQuery + ` WHERE status = $1 AND expires_at <= $2 ORDER BY expires_at ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, domain.PaymentStatusPending, time.Unix(now, 0).UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("list expired payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired payment rows: %w", err)
	}
	return payments, nil
}

const selectPaymentQuery = `SELECT id, reference, merchant_id, channel, status, amount, currency, fee_rate,
	fee_amount, net_amount, refunded_amount, provider_transaction_id, redirect_url, idempotency_key,
	customer_email, customer_phone, customer_name, customer_id, order_id, metadata, failure_reason,
	expires_at, created_at, updated_at, completed_at, failed_at
	FROM payments`

func (r *PaymentRepo) scanOne(row pgx.Row) (*domain.Payment, error) {
	p, err := scanPaymentRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

func scanPaymentRow(row interface{ Scan(dest ...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var metadata []byte
	err := row.Scan(
		&p.ID, &p.Reference, &p.MerchantID, &p.Channel, &p.Status, &p.Amount, &p.Currency,
		&p.FeeRate, &p.FeeAmount, &p.NetAmount, &p.RefundedAmount, &p.ProviderTransactionID,
		&p.RedirectURL, &p.IdempotencyKey, &p.CustomerEmail, &p.CustomerPhone, &p.CustomerName,
		&p.CustomerID, &p.OrderID, &metadata, &p.FailureReason, &p.ExpiresAt, &p.CreatedAt,
		&p.UpdatedAt, &p.CompletedAt, &p.FailedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal payment metadata: %w", err)
		}
	}
	return p, nil
}

// encodeCursor/decodeCursor implement opaque keyset pagination over
// (created_at, id), avoiding OFFSET scans on a high-write payments table.
func encodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d:%s", createdAt.UnixNano(), id.String())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("malformed cursor")
	}
	var nanos int64
	if _, err := fmt.Sscanf(parts[0], "%d", &nanos); err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor timestamp: %w", err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor id: %w", err)
	}
	return time.Unix(0, nanos).UTC(), id, nil
}
