package postgres

import (
	"context"
	"testing"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment() *domain.Payment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Payment{
		ID:         uuid.New(),
		Reference:  "pay_abc123",
		MerchantID: uuid.New(),
		Channel:    domain.ChannelMonCash,
		Status:     domain.PaymentStatusPending,
		Amount:     decimal.RequireFromString("500.00"),
		Currency:   domain.CurrencyHTG,
		FeeRate:    decimal.RequireFromString("0.025"),
		FeeAmount:  decimal.RequireFromString("12.50"),
		NetAmount:  decimal.RequireFromString("487.50"),
		ExpiresAt:  now.Add(domain.DefaultExpiry),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func paymentColumns() []string {
	return []string{"id", "reference", "merchant_id", "channel", "status", "amount", "currency", "fee_rate",
		"fee_amount", "net_amount", "refunded_amount", "provider_transaction_id", "redirect_url", "idempotency_key",
		"customer_email", "customer_phone", "customer_name", "customer_id", "order_id", "metadata", "failure_reason",
		"expires_at", "created_at", "updated_at", "completed_at", "failed_at"}
}

func paymentRow(p *domain.Payment) *pgxmock.Rows {
	return pgxmock.NewRows(paymentColumns()).AddRow(
		p.ID, p.Reference, p.MerchantID, p.Channel, p.Status, p.Amount, p.Currency, p.FeeRate,
		p.FeeAmount, p.NetAmount, p.RefundedAmount, p.ProviderTransactionID, p.RedirectURL, p.IdempotencyKey,
		p.CustomerEmail, p.CustomerPhone, p.CustomerName, p.CustomerID, p.OrderID, []byte("null"), p.FailureReason,
		p.ExpiresAt, p.CreatedAt, p.UpdatedAt, p.CompletedAt, p.FailedAt,
	)
}

func TestPaymentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectQuery("SELECT .+ FROM payments WHERE reference").
		WithArgs(p.Reference).
		WillReturnRows(paymentRow(p))

	result, err := repo.GetByReference(context.Background(), p.Reference)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.Reference, result.Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByReference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payments WHERE reference").
		WithArgs("pay_missing").
		WillReturnRows(pgxmock.NewRows(paymentColumns()))

	result, err := repo.GetByReference(context.Background(), "pay_missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByReferenceForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM payments WHERE reference .+ FOR UPDATE").
		WithArgs(p.Reference).
		WillReturnRows(paymentRow(p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByReferenceForUpdate(context.Background(), tx, p.Reference)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByProviderTransactionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()
	providerTxID := "MC-123456"
	p.ProviderTransactionID = &providerTxID

	mock.ExpectQuery("SELECT .+ FROM payments WHERE channel .+ AND provider_transaction_id").
		WithArgs(domain.ChannelMonCash, providerTxID).
		WillReturnRows(paymentRow(p))

	result, err := repo.GetByProviderTransactionID(context.Background(), domain.ChannelMonCash, providerTxID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()
	p.Status = domain.PaymentStatusCompleted

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payments SET").
		WithArgs(p.Status, p.FeeAmount, p.NetAmount, p.RefundedAmount, p.ProviderTransactionID,
			p.FailureReason, p.UpdatedAt, p.CompletedAt, p.FailedAt, p.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payments SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, p)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_ListExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectQuery("SELECT .+ FROM payments WHERE status .+ AND expires_at").
		WithArgs(domain.PaymentStatusPending, pgxmock.AnyArg(), 10).
		WillReturnRows(paymentRow(p))

	result, err := repo.ListExpired(context.Background(), time.Now().Unix(), 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, p.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()

	mock.ExpectQuery("SELECT .+ FROM payments WHERE merchant_id").
		WithArgs(p.MerchantID, 21).
		WillReturnRows(paymentRow(p))

	result, cursor, err := repo.List(context.Background(), ports.PaymentListParams{MerchantID: p.MerchantID, Limit: 20})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, cursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
