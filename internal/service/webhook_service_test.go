package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type webhookTestDeps struct {
	svc        ports.WebhookDispatchService
	configRepo *mocks.MockWebhookConfigRepository
	logRepo    *mocks.MockWebhookLogRepository
	sigSvc     *mocks.MockSignatureService
	jobQueue   *mocks.MockJobQueue
	encSvc     *mocks.MockEncryptionService
	ctrl       *gomock.Controller
}

func setupWebhookService(t *testing.T, httpClient HTTPClient) webhookTestDeps {
	ctrl := gomock.NewController(t)
	configRepo := mocks.NewMockWebhookConfigRepository(ctrl)
	logRepo := mocks.NewMockWebhookLogRepository(ctrl)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	jobQueue := mocks.NewMockJobQueue(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)

	svc := NewWebhookService(configRepo, logRepo, sigSvc, jobQueue, httpClient, encSvc, newTestLogger())
	return webhookTestDeps{svc, configRepo, logRepo, sigSvc, jobQueue, encSvc, ctrl}
}

// expectDecrypt wires the encryption mock to act as the identity function,
// for tests that only care about the signing/delivery path.
func expectDecrypt(d webhookTestDeps, ciphertext string) {
	d.encSvc.EXPECT().Decrypt(ciphertext).Return(ciphertext, nil)
}

func testPayment() *domain.Payment {
	return &domain.Payment{
		ID:        uuid.New(),
		Reference: "pay_abc",
		Channel:   domain.ChannelMonCash,
		Status:    domain.PaymentStatusCompleted,
		Amount:    decimal.RequireFromString("500.00"),
		FeeAmount: decimal.RequireFromString("12.50"),
		NetAmount: decimal.RequireFromString("487.50"),
		Currency:  domain.CurrencyHTG,
	}
}

// ==================== Notify ====================

func TestWebhookService_Notify_MatchingSubscription(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment()
	cfg := domain.WebhookConfig{
		ID:       uuid.New(),
		IsActive: true,
		Events:   []domain.EventType{domain.EventPaymentSucceeded},
	}

	d.configRepo.EXPECT().GetByMerchantID(ctx, payment.MerchantID).Return([]domain.WebhookConfig{cfg}, nil)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.WebhookLog) error {
			assert.Equal(t, domain.WebhookLogStatusPending, log.Status)
			assert.Equal(t, cfg.ID, log.WebhookConfigID)
			return nil
		},
	)
	d.jobQueue.EXPECT().EnqueueWebhookDelivery(ctx, gomock.Any()).Return(nil)

	err := d.svc.Notify(ctx, payment, domain.EventPaymentSucceeded)
	require.NoError(t, err)
}

func TestWebhookService_Notify_NoMatchingSubscription(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment()
	cfg := domain.WebhookConfig{
		ID:       uuid.New(),
		IsActive: true,
		Events:   []domain.EventType{domain.EventPaymentFailed},
	}

	d.configRepo.EXPECT().GetByMerchantID(ctx, payment.MerchantID).Return([]domain.WebhookConfig{cfg}, nil)

	err := d.svc.Notify(ctx, payment, domain.EventPaymentSucceeded)
	require.NoError(t, err)
}

func TestWebhookService_Notify_WildcardSubscription(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment()
	cfg := domain.WebhookConfig{
		ID:       uuid.New(),
		IsActive: true,
		Events:   []domain.EventType{domain.EventAll},
	}

	d.configRepo.EXPECT().GetByMerchantID(ctx, payment.MerchantID).Return([]domain.WebhookConfig{cfg}, nil)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.jobQueue.EXPECT().EnqueueWebhookDelivery(ctx, gomock.Any()).Return(nil)

	err := d.svc.Notify(ctx, payment, domain.EventPaymentFailed)
	require.NoError(t, err)
}

// ==================== Deliver ====================

func TestWebhookService_Deliver_Success(t *testing.T) {
	delivered := make(chan struct{}, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.Equal(t, webhookUserAgent, req.Header.Get("User-Agent"))
			assert.NotEmpty(t, req.Header.Get("DheCash-Signature"))
			delivered <- struct{}{}
			return &http.Response{StatusCode: 200, Body: http.NoBody}, nil
		},
	}
	d := setupWebhookService(t, httpClient)
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	cfgID := uuid.New()
	logRow := &domain.WebhookLog{
		ID:              logID,
		WebhookConfigID: cfgID,
		Status:          domain.WebhookLogStatusPending,
		Payload:         `{"event_type":"payment.succeeded"}`,
		AttemptCount:    0,
	}
	cfg := &domain.WebhookConfig{ID: cfgID, URL: "https://merchant.example.com/webhook", Secret: "whsec_123"}

	d.logRepo.EXPECT().GetByID(ctx, logID).Return(logRow, nil)
	d.configRepo.EXPECT().GetByID(ctx, cfgID).Return(cfg, nil)
	expectDecrypt(d, "whsec_123")
	d.sigSvc.EXPECT().Sign("whsec_123", gomock.Any()).Return("deadbeef")
	d.logRepo.EXPECT().UpdateAttempt(ctx, logID, domain.WebhookLogStatusDelivered, gomock.Any(), gomock.Any()).Return(nil)

	err := d.svc.Deliver(ctx, logID)
	require.NoError(t, err)
	<-delivered
}

func TestWebhookService_Deliver_AlreadyDelivered(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	d.logRepo.EXPECT().GetByID(ctx, logID).Return(&domain.WebhookLog{
		ID:     logID,
		Status: domain.WebhookLogStatusDelivered,
	}, nil)

	err := d.svc.Deliver(ctx, logID)
	require.NoError(t, err)
}

func TestWebhookService_Deliver_NonSuccessStatusRetries(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: 500, Body: http.NoBody}, nil
		},
	}
	d := setupWebhookService(t, httpClient)
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	cfgID := uuid.New()
	logRow := &domain.WebhookLog{
		ID:              logID,
		WebhookConfigID: cfgID,
		Status:          domain.WebhookLogStatusPending,
		Payload:         `{}`,
		AttemptCount:    0,
	}
	cfg := &domain.WebhookConfig{ID: cfgID, URL: "https://merchant.example.com/webhook", Secret: "whsec_123"}

	d.logRepo.EXPECT().GetByID(ctx, logID).Return(logRow, nil)
	d.configRepo.EXPECT().GetByID(ctx, cfgID).Return(cfg, nil)
	expectDecrypt(d, "whsec_123")
	d.sigSvc.EXPECT().Sign("whsec_123", gomock.Any()).Return("deadbeef")
	d.logRepo.EXPECT().UpdateAttempt(ctx, logID, domain.WebhookLogStatusPending, gomock.Any(), gomock.Any()).Return(nil)

	err := d.svc.Deliver(ctx, logID)
	require.Error(t, err)
}

func TestWebhookService_Deliver_FinalAttemptMarksFailed(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: 500, Body: http.NoBody}, nil
		},
	}
	d := setupWebhookService(t, httpClient)
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	cfgID := uuid.New()
	logRow := &domain.WebhookLog{
		ID:              logID,
		WebhookConfigID: cfgID,
		Status:          domain.WebhookLogStatusPending,
		Payload:         `{}`,
		AttemptCount:    4, // about to be the 5th attempt
	}
	cfg := &domain.WebhookConfig{ID: cfgID, URL: "https://merchant.example.com/webhook", Secret: "whsec_123"}

	d.logRepo.EXPECT().GetByID(ctx, logID).Return(logRow, nil)
	d.configRepo.EXPECT().GetByID(ctx, cfgID).Return(cfg, nil)
	expectDecrypt(d, "whsec_123")
	d.sigSvc.EXPECT().Sign("whsec_123", gomock.Any()).Return("deadbeef")
	d.logRepo.EXPECT().UpdateAttempt(ctx, logID, domain.WebhookLogStatusFailed, gomock.Any(), gomock.Any()).Return(nil)

	err := d.svc.Deliver(ctx, logID)
	require.Error(t, err)
}

func TestWebhookService_Deliver_TransportError(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	d := setupWebhookService(t, httpClient)
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	cfgID := uuid.New()
	logRow := &domain.WebhookLog{
		ID:              logID,
		WebhookConfigID: cfgID,
		Status:          domain.WebhookLogStatusPending,
		Payload:         `{}`,
		AttemptCount:    0,
	}
	cfg := &domain.WebhookConfig{ID: cfgID, URL: "https://merchant.example.com/webhook", Secret: "whsec_123"}

	d.logRepo.EXPECT().GetByID(ctx, logID).Return(logRow, nil)
	d.configRepo.EXPECT().GetByID(ctx, cfgID).Return(cfg, nil)
	expectDecrypt(d, "whsec_123")
	d.sigSvc.EXPECT().Sign("whsec_123", gomock.Any()).Return("deadbeef")
	d.logRepo.EXPECT().UpdateAttempt(ctx, logID, domain.WebhookLogStatusPending, (*int)(nil), gomock.Any()).Return(nil)

	err := d.svc.Deliver(ctx, logID)
	require.Error(t, err)
}

func TestWebhookService_Deliver_DecryptFailureReturnsError(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	logID := uuid.New()
	cfgID := uuid.New()
	logRow := &domain.WebhookLog{ID: logID, WebhookConfigID: cfgID, Status: domain.WebhookLogStatusPending, Payload: `{}`}
	cfg := &domain.WebhookConfig{ID: cfgID, URL: "https://merchant.example.com/webhook", Secret: "corrupted"}

	d.logRepo.EXPECT().GetByID(ctx, logID).Return(logRow, nil)
	d.configRepo.EXPECT().GetByID(ctx, cfgID).Return(cfg, nil)
	d.encSvc.EXPECT().Decrypt("corrupted").Return("", errors.New("cipher: message authentication failed"))

	err := d.svc.Deliver(ctx, logID)
	require.Error(t, err)
}

// ==================== CreateWebhookConfig ====================

func TestWebhookService_CreateWebhookConfig_EncryptsSecretAtRest(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	cfg := &domain.WebhookConfig{ID: uuid.New(), MerchantID: uuid.New(), URL: "https://merchant.example.com/webhook", Secret: "whsec_plaintext"}

	d.encSvc.EXPECT().Encrypt("whsec_plaintext").Return("ciphertext-hex", nil)
	d.configRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, cfg *domain.WebhookConfig) error {
			assert.Equal(t, "ciphertext-hex", cfg.Secret)
			return nil
		},
	)

	err := d.svc.CreateWebhookConfig(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext-hex", cfg.Secret)
}

func TestWebhookService_CreateWebhookConfig_EncryptionFailure(t *testing.T) {
	d := setupWebhookService(t, &mockHTTPClient{})
	defer d.ctrl.Finish()

	ctx := context.Background()
	cfg := &domain.WebhookConfig{ID: uuid.New(), Secret: "whsec_plaintext"}

	d.encSvc.EXPECT().Encrypt("whsec_plaintext").Return("", errors.New("key not configured"))

	err := d.svc.CreateWebhookConfig(ctx, cfg)
	require.Error(t, err)
}
