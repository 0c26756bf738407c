package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/core/ports/mocks"
	"secure-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc          *PaymentServiceImpl
	paymentRepo  *mocks.MockPaymentRepository
	txRepo       *mocks.MockTransactionRepository
	customerRepo *mocks.MockCustomerRepository
	idempRepo    *mocks.MockIdempotencyRepository
	idempCache   *mocks.MockIdempotencyCache
	provider     *mocks.MockProviderAdapter
	jobQueue     *mocks.MockJobQueue
	webhooks     *mocks.MockWebhookDispatchService
	transactor   *mocks.MockDBTransactor
	audit        *mocks.MockAuditService
	ctrl         *gomock.Controller
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		paymentRepo:  mocks.NewMockPaymentRepository(ctrl),
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		idempRepo:    mocks.NewMockIdempotencyRepository(ctrl),
		idempCache:   mocks.NewMockIdempotencyCache(ctrl),
		provider:     mocks.NewMockProviderAdapter(ctrl),
		jobQueue:     mocks.NewMockJobQueue(ctrl),
		webhooks:     mocks.NewMockWebhookDispatchService(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		audit:        mocks.NewMockAuditService(ctrl),
		ctrl:         ctrl,
	}
	providers := map[domain.Channel]ports.ProviderAdapter{
		domain.ChannelMonCash: d.provider,
	}
	d.svc = NewPaymentService(
		d.paymentRepo, d.txRepo, d.customerRepo, d.idempRepo, d.idempCache,
		providers, d.jobQueue, d.webhooks, d.transactor, d.audit, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func expectAudit(d *paymentTestDeps) {
	d.audit.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
}

// ==================== CreatePayment ====================

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	req := ports.CreatePaymentRequest{
		MerchantID: merchantID,
		Channel:    domain.ChannelMonCash,
		Amount:     "500.00",
		Currency:   domain.CurrencyHTG,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.jobQueue.EXPECT().EnqueuePaymentDispatch(ctx, gomock.Any()).Return(nil)
	expectAudit(d)

	payment, err := d.svc.CreatePayment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Contains(t, payment.Reference, "pay_")
}

func TestPaymentService_CreatePayment_InvalidAmount(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	req := ports.CreatePaymentRequest{
		MerchantID: uuid.New(),
		Channel:    domain.ChannelMonCash,
		Amount:     "0",
		Currency:   domain.CurrencyHTG,
	}

	payment, err := d.svc.CreatePayment(context.Background(), req)
	assert.Nil(t, payment)
	assertAppError(t, err, "VALIDATION_ERROR")
}

func TestPaymentService_CreatePayment_ChannelNotConfigured(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	req := ports.CreatePaymentRequest{
		MerchantID: uuid.New(),
		Channel:    domain.ChannelStripe,
		Amount:     "10.00",
		Currency:   domain.CurrencyUSD,
	}

	payment, err := d.svc.CreatePayment(context.Background(), req)
	assert.Nil(t, payment)
	assertAppError(t, err, "PROVIDER_UNAVAILABLE")
}

func TestPaymentService_CreatePayment_IdempotentRedisHit(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cachedPayment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_cached",
		Status:    domain.PaymentStatusPending,
		Amount:    decimal.RequireFromString("500.00"),
	}
	cachedJSON, _ := json.Marshal(cachedPayment)

	idempKey := domain.BuildIdempotencyKey("client-key-1")
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(cachedJSON, nil)

	req := ports.CreatePaymentRequest{
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Amount:         "500.00",
		Currency:       domain.CurrencyHTG,
		IdempotencyKey: "client-key-1",
	}

	payment, err := d.svc.CreatePayment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, cachedPayment.Reference, payment.Reference)
}

func TestPaymentService_CreatePayment_IdempotentDBFallback(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cachedPayment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_db_cached",
		Status:    domain.PaymentStatusPending,
	}
	respJSON, _ := json.Marshal(cachedPayment)

	idempKey := domain.BuildIdempotencyKey("client-key-2")
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(&domain.IdempotencyRecord{
		Key:          idempKey,
		ResponseJSON: respJSON,
	}, nil)

	req := ports.CreatePaymentRequest{
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Amount:         "500.00",
		Currency:       domain.CurrencyHTG,
		IdempotencyKey: "client-key-2",
	}

	payment, err := d.svc.CreatePayment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, cachedPayment.Reference, payment.Reference)
}

// ==================== Dispatch ====================

func TestPaymentService_Dispatch_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Channel:   domain.ChannelMonCash,
		Status:    domain.PaymentStatusPending,
	}

	d.paymentRepo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil)
	d.provider.EXPECT().CreatePayment(ctx, payment).Return(ports.ProviderCreateResult{
		ProviderTransactionID: "moncash-tx-1",
		RedirectURL:           "https://moncash.example/checkout/1",
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusProcessing, p.Status)
			assert.Equal(t, "moncash-tx-1", *p.ProviderTransactionID)
			return nil
		},
	)

	err := d.svc.Dispatch(ctx, payment.ID)
	require.NoError(t, err)
}

func TestPaymentService_Dispatch_AlreadyDispatched(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := &domain.Payment{
		ID:      uuid.New(),
		Channel: domain.ChannelMonCash,
		Status:  domain.PaymentStatusProcessing,
	}
	d.paymentRepo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil)

	err := d.svc.Dispatch(ctx, payment.ID)
	require.NoError(t, err)
}

func TestPaymentService_Dispatch_NotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.paymentRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	err := d.svc.Dispatch(ctx, id)
	assertAppError(t, err, "PAYMENT_NOT_FOUND")
}

// ==================== MarkFailed ====================

func TestPaymentService_MarkFailed_PendingToFailed(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Status:    domain.PaymentStatusPending,
	}

	d.paymentRepo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusFailed, p.Status)
			require.NotNil(t, p.FailureReason)
			assert.Equal(t, "dispatch retries exhausted", *p.FailureReason)
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentFailed).Return(nil)

	err := d.svc.MarkFailed(ctx, payment.ID, "dispatch retries exhausted")
	require.NoError(t, err)
}

func TestPaymentService_MarkFailed_AlreadyResolvedIsNoop(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Status:    domain.PaymentStatusCompleted,
	}

	d.paymentRepo.EXPECT().GetByID(ctx, payment.ID).Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)

	err := d.svc.MarkFailed(ctx, payment.ID, "dispatch retries exhausted")
	require.NoError(t, err)
}

// ==================== HandleCallback ====================

func TestPaymentService_HandleCallback_CompletesPayment(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:            uuid.New(),
		Reference:     "pay_abc",
		MerchantID:    uuid.New(),
		Channel:       domain.ChannelMonCash,
		Status:        domain.PaymentStatusProcessing,
		Amount:        decimal.RequireFromString("500.00"),
		NetAmount:     decimal.RequireFromString("487.50"),
		Currency:      domain.CurrencyHTG,
		CustomerEmail: strPtr("buyer@example.com"),
	}

	d.provider.EXPECT().VerifyCallback(ctx, gomock.Any(), gomock.Any()).Return(ports.ProviderCallbackResult{
		ProviderTransactionID: "moncash-tx-1",
		Status:                domain.PaymentStatusCompleted,
	}, nil)
	d.paymentRepo.EXPECT().GetByProviderTransactionID(ctx, domain.ChannelMonCash, "moncash-tx-1").Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.customerRepo.EXPECT().GetByContact(ctx, payment.MerchantID, domain.EnvironmentLive, gomock.Any(), gomock.Any()).Return(nil, nil)
	d.customerRepo.EXPECT().Upsert(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
			assert.NotNil(t, p.CompletedAt)
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentSucceeded).Return(nil)

	err := d.svc.HandleCallback(ctx, domain.ChannelMonCash, map[string]string{}, []byte(`{}`))
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_UnknownPaymentIgnored(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().VerifyCallback(ctx, gomock.Any(), gomock.Any()).Return(ports.ProviderCallbackResult{
		ProviderTransactionID: "unknown-tx",
		Status:                domain.PaymentStatusCompleted,
	}, nil)
	d.paymentRepo.EXPECT().GetByProviderTransactionID(ctx, domain.ChannelMonCash, "unknown-tx").Return(nil, nil)

	err := d.svc.HandleCallback(ctx, domain.ChannelMonCash, map[string]string{}, []byte(`{}`))
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_IdempotentReplay(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Channel:   domain.ChannelMonCash,
		Status:    domain.PaymentStatusCompleted,
	}

	d.provider.EXPECT().VerifyCallback(ctx, gomock.Any(), gomock.Any()).Return(ports.ProviderCallbackResult{
		ProviderTransactionID: "moncash-tx-1",
		Status:                domain.PaymentStatusCompleted,
	}, nil)
	d.paymentRepo.EXPECT().GetByProviderTransactionID(ctx, domain.ChannelMonCash, "moncash-tx-1").Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)

	err := d.svc.HandleCallback(ctx, domain.ChannelMonCash, map[string]string{}, []byte(`{}`))
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_FullRefundWritesLedgerRow(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      "pay_abc",
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Status:         domain.PaymentStatusCompleted,
		Amount:         decimal.RequireFromString("500.00"),
		RefundedAmount: decimal.Zero,
		Currency:       domain.CurrencyHTG,
	}

	d.provider.EXPECT().VerifyCallback(ctx, gomock.Any(), gomock.Any()).Return(ports.ProviderCallbackResult{
		ProviderTransactionID: "moncash-tx-1",
		Status:                domain.PaymentStatusRefunded,
		RefundAmount:          "500.00",
	}, nil)
	d.paymentRepo.EXPECT().GetByProviderTransactionID(ctx, domain.ChannelMonCash, "moncash-tx-1").Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionTypeRefund, txn.Type)
			assert.True(t, txn.Amount.Equal(decimal.RequireFromString("500.00")))
			return nil
		},
	)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusRefunded, p.Status)
			assert.True(t, p.RefundedAmount.Equal(decimal.RequireFromString("500.00")))
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentRefunded).Return(nil)

	err := d.svc.HandleCallback(ctx, domain.ChannelMonCash, map[string]string{}, []byte(`{}`))
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_PartialRefundStaysPartiallyRefunded(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      "pay_abc",
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Status:         domain.PaymentStatusCompleted,
		Amount:         decimal.RequireFromString("500.00"),
		RefundedAmount: decimal.Zero,
		Currency:       domain.CurrencyHTG,
	}

	d.provider.EXPECT().VerifyCallback(ctx, gomock.Any(), gomock.Any()).Return(ports.ProviderCallbackResult{
		ProviderTransactionID: "moncash-tx-1",
		Status:                domain.PaymentStatusRefunded,
		RefundAmount:          "200.00",
	}, nil)
	d.paymentRepo.EXPECT().GetByProviderTransactionID(ctx, domain.ChannelMonCash, "moncash-tx-1").Return(payment, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusPartiallyRefunded, p.Status)
			assert.True(t, p.RefundedAmount.Equal(decimal.RequireFromString("200.00")))
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentRefunded).Return(nil)

	err := d.svc.HandleCallback(ctx, domain.ChannelMonCash, map[string]string{}, []byte(`{}`))
	require.NoError(t, err)
}

// ==================== RefundPayment ====================

func TestPaymentService_RefundPayment_FullRefund(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      "pay_abc",
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Status:         domain.PaymentStatusCompleted,
		Amount:         decimal.RequireFromString("500.00"),
		RefundedAmount: decimal.Zero,
		Currency:       domain.CurrencyHTG,
		ProviderTransactionID: strPtr("moncash-tx-1"),
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.provider.EXPECT().Refund(ctx, "moncash-tx-1", domain.CurrencyHTG, "500.00").Return(ports.ProviderRefundResult{ProviderRefundID: "refund-1"}, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusRefunded, p.Status)
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentRefunded).Return(nil)
	expectAudit(d)

	txn, err := d.svc.RefundPayment(ctx, "pay_abc", nil, "customer request")
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("500.00")))
}

func TestPaymentService_RefundPayment_PartialRefund(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      "pay_abc",
		MerchantID:     uuid.New(),
		Channel:        domain.ChannelMonCash,
		Status:         domain.PaymentStatusCompleted,
		Amount:         decimal.RequireFromString("500.00"),
		RefundedAmount: decimal.Zero,
		Currency:       domain.CurrencyHTG,
		ProviderTransactionID: strPtr("moncash-tx-1"),
	}
	partial := "100.00"

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)
	d.provider.EXPECT().Refund(ctx, "moncash-tx-1", domain.CurrencyHTG, "100.00").Return(ports.ProviderRefundResult{}, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusPartiallyRefunded, p.Status)
			return nil
		},
	)
	d.webhooks.EXPECT().Notify(gomock.Any(), gomock.Any(), domain.EventPaymentRefunded).Return(nil)
	expectAudit(d)

	txn, err := d.svc.RefundPayment(ctx, "pay_abc", &partial, "")
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("100.00")))
}

func TestPaymentService_RefundPayment_NotRefundable(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Status:    domain.PaymentStatusFailed,
	}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)

	txn, err := d.svc.RefundPayment(ctx, "pay_abc", nil, "")
	assert.Nil(t, txn)
	assertAppError(t, err, "REFUND_NOT_ALLOWED")
}

func TestPaymentService_RefundPayment_AmountExceeds(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      "pay_abc",
		Status:         domain.PaymentStatusCompleted,
		Amount:         decimal.RequireFromString("500.00"),
		RefundedAmount: decimal.Zero,
	}
	over := "999.00"
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_abc").Return(payment, nil)

	txn, err := d.svc.RefundPayment(ctx, "pay_abc", &over, "")
	assert.Nil(t, txn)
	assertAppError(t, err, "REFUND_EXCEEDS_AMOUNT")
}

func TestPaymentService_RefundPayment_NotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_missing").Return(nil, nil)

	txn, err := d.svc.RefundPayment(ctx, "pay_missing", nil, "")
	assert.Nil(t, txn)
	assertAppError(t, err, "PAYMENT_NOT_FOUND")
}

// ==================== GetPayment / ListPayments ====================

func TestPaymentService_GetPayment_NotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.paymentRepo.EXPECT().GetByReference(ctx, "pay_missing").Return(nil, nil)

	payment, err := d.svc.GetPayment(ctx, "pay_missing")
	assert.Nil(t, payment)
	assertAppError(t, err, "PAYMENT_NOT_FOUND")
}

func TestPaymentService_ListPayments_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	params := ports.PaymentListParams{MerchantID: merchantID, Limit: 20}
	expected := []domain.Payment{{ID: uuid.New(), Reference: "pay_1"}}

	d.paymentRepo.EXPECT().List(ctx, params).Return(expected, "next-cursor", nil)

	payments, cursor, err := d.svc.ListPayments(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, expected, payments)
	assert.Equal(t, "next-cursor", cursor)
}

// ==================== ExpireStalePayments ====================

func TestPaymentService_ExpireStalePayments_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	now := time.Now().UTC()
	stale := domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_stale",
		Status:    domain.PaymentStatusPending,
	}

	d.paymentRepo.EXPECT().ListExpired(ctx, now.Unix(), 100).Return([]domain.Payment{stale}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByReferenceForUpdate(ctx, tx, "pay_stale").Return(&stale, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusExpired, p.Status)
			return nil
		},
	)
	// Expiry has no merchant-facing webhook event, so Notify must not fire.

	count, err := d.svc.ExpireStalePayments(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// ==================== Helpers ====================

func strPtr(s string) *string { return &s }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
