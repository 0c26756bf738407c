// Package mocks contains hand-maintained gomock doubles for the core
// ports, mirroring what mockgen would generate from
// internal/core/ports. Kept in sync by hand because the ports package
// has no go:generate directive wired to a build step here.
package mocks

import (
	"context"
	"net/http"
	reflect "reflect"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	gomock "go.uber.org/mock/gomock"
)

// ---- MerchantRepository ----

type MockMerchantRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMerchantRepositoryMockRecorder
}

type MockMerchantRepositoryMockRecorder struct{ mock *MockMerchantRepository }

func NewMockMerchantRepository(ctrl *gomock.Controller) *MockMerchantRepository {
	m := &MockMerchantRepository{ctrl: ctrl}
	m.recorder = &MockMerchantRepositoryMockRecorder{m}
	return m
}

func (m *MockMerchantRepository) EXPECT() *MockMerchantRepositoryMockRecorder { return m.recorder }

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *domain.Merchant) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, merchant)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockMerchantRepositoryMockRecorder) Create(ctx, merchant interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockMerchantRepository)(nil).Create), ctx, merchant)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Merchant)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockMerchantRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockMerchantRepository)(nil).GetByID), ctx, id)
}

// ---- APIKeyRepository ----

type MockAPIKeyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAPIKeyRepositoryMockRecorder
}

type MockAPIKeyRepositoryMockRecorder struct{ mock *MockAPIKeyRepository }

func NewMockAPIKeyRepository(ctrl *gomock.Controller) *MockAPIKeyRepository {
	m := &MockAPIKeyRepository{ctrl: ctrl}
	m.recorder = &MockAPIKeyRepositoryMockRecorder{m}
	return m
}

func (m *MockAPIKeyRepository) EXPECT() *MockAPIKeyRepositoryMockRecorder { return m.recorder }

func (m *MockAPIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAPIKeyRepositoryMockRecorder) Create(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAPIKeyRepository)(nil).Create), ctx, key)
}

func (m *MockAPIKeyRepository) GetByKeyID(ctx context.Context, keyID string) (*domain.APIKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByKeyID", ctx, keyID)
	ret0, _ := ret[0].(*domain.APIKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAPIKeyRepositoryMockRecorder) GetByKeyID(ctx, keyID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByKeyID", reflect.TypeOf((*MockAPIKeyRepository)(nil).GetByKeyID), ctx, keyID)
}

func (m *MockAPIKeyRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAPIKeyRepositoryMockRecorder) Revoke(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockAPIKeyRepository)(nil).Revoke), ctx, id)
}

// ---- PaymentRepository ----

type MockPaymentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentRepositoryMockRecorder
}

type MockPaymentRepositoryMockRecorder struct{ mock *MockPaymentRepository }

func NewMockPaymentRepository(ctrl *gomock.Controller) *MockPaymentRepository {
	m := &MockPaymentRepository{ctrl: ctrl}
	m.recorder = &MockPaymentRepositoryMockRecorder{m}
	return m
}

func (m *MockPaymentRepository) EXPECT() *MockPaymentRepositoryMockRecorder { return m.recorder }

func (m *MockPaymentRepository) Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, payment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPaymentRepositoryMockRecorder) Create(ctx, tx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPaymentRepository)(nil).Create), ctx, tx, payment)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPaymentRepository)(nil).GetByID), ctx, id)
}

func (m *MockPaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByReference", ctx, reference)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByReference(ctx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByReference", reflect.TypeOf((*MockPaymentRepository)(nil).GetByReference), ctx, reference)
}

func (m *MockPaymentRepository) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByReferenceForUpdate", ctx, tx, reference)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByReferenceForUpdate(ctx, tx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByReferenceForUpdate", reflect.TypeOf((*MockPaymentRepository)(nil).GetByReferenceForUpdate), ctx, tx, reference)
}

func (m *MockPaymentRepository) GetByProviderTransactionID(ctx context.Context, channel domain.Channel, providerTxID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByProviderTransactionID", ctx, channel, providerTxID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByProviderTransactionID(ctx, channel, providerTxID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByProviderTransactionID", reflect.TypeOf((*MockPaymentRepository)(nil).GetByProviderTransactionID), ctx, channel, providerTxID)
}

func (m *MockPaymentRepository) Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, tx, payment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPaymentRepositoryMockRecorder) Update(ctx, tx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPaymentRepository)(nil).Update), ctx, tx, payment)
}

func (m *MockPaymentRepository) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockPaymentRepositoryMockRecorder) List(ctx, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPaymentRepository)(nil).List), ctx, params)
}

func (m *MockPaymentRepository) ListExpired(ctx context.Context, now int64, limit int) ([]domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExpired", ctx, now, limit)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) ListExpired(ctx, now, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExpired", reflect.TypeOf((*MockPaymentRepository)(nil).ListExpired), ctx, now, limit)
}

// ---- TransactionRepository ----

type MockTransactionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryMockRecorder
}

type MockTransactionRepositoryMockRecorder struct{ mock *MockTransactionRepository }

func NewMockTransactionRepository(ctrl *gomock.Controller) *MockTransactionRepository {
	m := &MockTransactionRepository{ctrl: ctrl}
	m.recorder = &MockTransactionRepositoryMockRecorder{m}
	return m
}

func (m *MockTransactionRepository) EXPECT() *MockTransactionRepositoryMockRecorder { return m.recorder }

func (m *MockTransactionRepository) Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTransactionRepositoryMockRecorder) Create(ctx, tx, transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepository)(nil).Create), ctx, tx, transaction)
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByReference", ctx, reference)
	ret0, _ := ret[0].(*domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) GetByReference(ctx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByReference", reflect.TypeOf((*MockTransactionRepository)(nil).GetByReference), ctx, reference)
}

func (m *MockTransactionRepository) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByPaymentID", ctx, paymentID)
	ret0, _ := ret[0].([]domain.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransactionRepositoryMockRecorder) ListByPaymentID(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByPaymentID", reflect.TypeOf((*MockTransactionRepository)(nil).ListByPaymentID), ctx, paymentID)
}

// ---- CustomerRepository ----

type MockCustomerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerRepositoryMockRecorder
}

type MockCustomerRepositoryMockRecorder struct{ mock *MockCustomerRepository }

func NewMockCustomerRepository(ctrl *gomock.Controller) *MockCustomerRepository {
	m := &MockCustomerRepository{ctrl: ctrl}
	m.recorder = &MockCustomerRepositoryMockRecorder{m}
	return m
}

func (m *MockCustomerRepository) EXPECT() *MockCustomerRepositoryMockRecorder { return m.recorder }

func (m *MockCustomerRepository) Upsert(ctx context.Context, tx pgx.Tx, customer *domain.Customer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, tx, customer)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockCustomerRepositoryMockRecorder) Upsert(ctx, tx, customer interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockCustomerRepository)(nil).Upsert), ctx, tx, customer)
}

func (m *MockCustomerRepository) GetByContact(ctx context.Context, merchantID uuid.UUID, env domain.Environment, email, phone *string) (*domain.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByContact", ctx, merchantID, env, email, phone)
	ret0, _ := ret[0].(*domain.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockCustomerRepositoryMockRecorder) GetByContact(ctx, merchantID, env, email, phone interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByContact", reflect.TypeOf((*MockCustomerRepository)(nil).GetByContact), ctx, merchantID, env, email, phone)
}

// ---- WebhookConfigRepository ----

type MockWebhookConfigRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookConfigRepositoryMockRecorder
}

type MockWebhookConfigRepositoryMockRecorder struct{ mock *MockWebhookConfigRepository }

func NewMockWebhookConfigRepository(ctrl *gomock.Controller) *MockWebhookConfigRepository {
	m := &MockWebhookConfigRepository{ctrl: ctrl}
	m.recorder = &MockWebhookConfigRepositoryMockRecorder{m}
	return m
}

func (m *MockWebhookConfigRepository) EXPECT() *MockWebhookConfigRepositoryMockRecorder {
	return m.recorder
}

func (m *MockWebhookConfigRepository) Create(ctx context.Context, cfg *domain.WebhookConfig) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, cfg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookConfigRepositoryMockRecorder) Create(ctx, cfg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWebhookConfigRepository)(nil).Create), ctx, cfg)
}

func (m *MockWebhookConfigRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]domain.WebhookConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByMerchantID", ctx, merchantID)
	ret0, _ := ret[0].([]domain.WebhookConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockWebhookConfigRepositoryMockRecorder) GetByMerchantID(ctx, merchantID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByMerchantID", reflect.TypeOf((*MockWebhookConfigRepository)(nil).GetByMerchantID), ctx, merchantID)
}

func (m *MockWebhookConfigRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.WebhookConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockWebhookConfigRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockWebhookConfigRepository)(nil).GetByID), ctx, id)
}

// ---- WebhookLogRepository ----

type MockWebhookLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookLogRepositoryMockRecorder
}

type MockWebhookLogRepositoryMockRecorder struct{ mock *MockWebhookLogRepository }

func NewMockWebhookLogRepository(ctrl *gomock.Controller) *MockWebhookLogRepository {
	m := &MockWebhookLogRepository{ctrl: ctrl}
	m.recorder = &MockWebhookLogRepositoryMockRecorder{m}
	return m
}

func (m *MockWebhookLogRepository) EXPECT() *MockWebhookLogRepositoryMockRecorder { return m.recorder }

func (m *MockWebhookLogRepository) Create(ctx context.Context, log *domain.WebhookLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookLogRepositoryMockRecorder) Create(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWebhookLogRepository)(nil).Create), ctx, log)
}

func (m *MockWebhookLogRepository) UpdateAttempt(ctx context.Context, id uuid.UUID, status domain.WebhookLogStatus, httpStatus *int, responseBody *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAttempt", ctx, id, status, httpStatus, responseBody)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookLogRepositoryMockRecorder) UpdateAttempt(ctx, id, status, httpStatus, responseBody interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAttempt", reflect.TypeOf((*MockWebhookLogRepository)(nil).UpdateAttempt), ctx, id, status, httpStatus, responseBody)
}

func (m *MockWebhookLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.WebhookLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockWebhookLogRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockWebhookLogRepository)(nil).GetByID), ctx, id)
}

// ---- IdempotencyRepository ----

type MockIdempotencyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyRepositoryMockRecorder
}

type MockIdempotencyRepositoryMockRecorder struct{ mock *MockIdempotencyRepository }

func NewMockIdempotencyRepository(ctrl *gomock.Controller) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{ctrl: ctrl}
	m.recorder = &MockIdempotencyRepositoryMockRecorder{m}
	return m
}

func (m *MockIdempotencyRepository) EXPECT() *MockIdempotencyRepositoryMockRecorder { return m.recorder }

func (m *MockIdempotencyRepository) Create(ctx context.Context, tx pgx.Tx, record *domain.IdempotencyRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockIdempotencyRepositoryMockRecorder) Create(ctx, tx, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIdempotencyRepository)(nil).Create), ctx, tx, record)
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].(*domain.IdempotencyRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockIdempotencyRepositoryMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyRepository)(nil).Get), ctx, key)
}

// ---- DBTransactor ----

type MockDBTransactor struct {
	ctrl     *gomock.Controller
	recorder *MockDBTransactorMockRecorder
}

type MockDBTransactorMockRecorder struct{ mock *MockDBTransactor }

func NewMockDBTransactor(ctrl *gomock.Controller) *MockDBTransactor {
	m := &MockDBTransactor{ctrl: ctrl}
	m.recorder = &MockDBTransactorMockRecorder{m}
	return m
}

func (m *MockDBTransactor) EXPECT() *MockDBTransactorMockRecorder { return m.recorder }

func (m *MockDBTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(pgx.Tx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDBTransactorMockRecorder) Begin(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockDBTransactor)(nil).Begin), ctx)
}

// ---- AuditRepository ----

type MockAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRepositoryMockRecorder
}

type MockAuditRepositoryMockRecorder struct{ mock *MockAuditRepository }

func NewMockAuditRepository(ctrl *gomock.Controller) *MockAuditRepository {
	m := &MockAuditRepository{ctrl: ctrl}
	m.recorder = &MockAuditRepositoryMockRecorder{m}
	return m
}

func (m *MockAuditRepository) EXPECT() *MockAuditRepositoryMockRecorder { return m.recorder }

func (m *MockAuditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAuditRepositoryMockRecorder) Create(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditRepository)(nil).Create), ctx, entry)
}

// ---- SignatureService ----

type MockSignatureService struct {
	ctrl     *gomock.Controller
	recorder *MockSignatureServiceMockRecorder
}

type MockSignatureServiceMockRecorder struct{ mock *MockSignatureService }

func NewMockSignatureService(ctrl *gomock.Controller) *MockSignatureService {
	m := &MockSignatureService{ctrl: ctrl}
	m.recorder = &MockSignatureServiceMockRecorder{m}
	return m
}

func (m *MockSignatureService) EXPECT() *MockSignatureServiceMockRecorder { return m.recorder }

func (m *MockSignatureService) Sign(secretKey string, payload string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", secretKey, payload)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockSignatureServiceMockRecorder) Sign(secretKey, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockSignatureService)(nil).Sign), secretKey, payload)
}

func (m *MockSignatureService) Verify(secretKey string, payload string, signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", secretKey, payload, signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSignatureServiceMockRecorder) Verify(secretKey, payload, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockSignatureService)(nil).Verify), secretKey, payload, signature)
}

// ---- HashService ----

type MockHashService struct {
	ctrl     *gomock.Controller
	recorder *MockHashServiceMockRecorder
}

type MockHashServiceMockRecorder struct{ mock *MockHashService }

func NewMockHashService(ctrl *gomock.Controller) *MockHashService {
	m := &MockHashService{ctrl: ctrl}
	m.recorder = &MockHashServiceMockRecorder{m}
	return m
}

func (m *MockHashService) EXPECT() *MockHashServiceMockRecorder { return m.recorder }

func (m *MockHashService) Hash(secret string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", secret)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Hash(secret interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockHashService)(nil).Hash), secret)
}

func (m *MockHashService) Verify(secret string, hash string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", secret, hash)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Verify(secret, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockHashService)(nil).Verify), secret, hash)
}

// ---- EncryptionService ----

type MockEncryptionService struct {
	ctrl     *gomock.Controller
	recorder *MockEncryptionServiceMockRecorder
}

type MockEncryptionServiceMockRecorder struct{ mock *MockEncryptionService }

func NewMockEncryptionService(ctrl *gomock.Controller) *MockEncryptionService {
	m := &MockEncryptionService{ctrl: ctrl}
	m.recorder = &MockEncryptionServiceMockRecorder{m}
	return m
}

func (m *MockEncryptionService) EXPECT() *MockEncryptionServiceMockRecorder { return m.recorder }

func (m *MockEncryptionService) Encrypt(plaintext string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encrypt", plaintext)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEncryptionServiceMockRecorder) Encrypt(plaintext interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encrypt", reflect.TypeOf((*MockEncryptionService)(nil).Encrypt), plaintext)
}

func (m *MockEncryptionService) Decrypt(ciphertext string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decrypt", ciphertext)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEncryptionServiceMockRecorder) Decrypt(ciphertext interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decrypt", reflect.TypeOf((*MockEncryptionService)(nil).Decrypt), ciphertext)
}

// ---- TokenService ----

type MockTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceMockRecorder
}

type MockTokenServiceMockRecorder struct{ mock *MockTokenService }

func NewMockTokenService(ctrl *gomock.Controller) *MockTokenService {
	m := &MockTokenService{ctrl: ctrl}
	m.recorder = &MockTokenServiceMockRecorder{m}
	return m
}

func (m *MockTokenService) EXPECT() *MockTokenServiceMockRecorder { return m.recorder }

func (m *MockTokenService) Generate(merchantID uuid.UUID) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", merchantID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockTokenServiceMockRecorder) Generate(merchantID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockTokenService)(nil).Generate), merchantID)
}

func (m *MockTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", tokenString)
	ret0, _ := ret[0].(*ports.TokenClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenServiceMockRecorder) Validate(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockTokenService)(nil).Validate), tokenString)
}

// ---- IdempotencyCache ----

type MockIdempotencyCache struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyCacheMockRecorder
}

type MockIdempotencyCacheMockRecorder struct{ mock *MockIdempotencyCache }

func NewMockIdempotencyCache(ctrl *gomock.Controller) *MockIdempotencyCache {
	m := &MockIdempotencyCache{ctrl: ctrl}
	m.recorder = &MockIdempotencyCacheMockRecorder{m}
	return m
}

func (m *MockIdempotencyCache) EXPECT() *MockIdempotencyCacheMockRecorder { return m.recorder }

func (m *MockIdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockIdempotencyCacheMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyCache)(nil).Get), ctx, key)
}

func (m *MockIdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockIdempotencyCacheMockRecorder) Set(ctx, key, value, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockIdempotencyCache)(nil).Set), ctx, key, value, ttl)
}

// ---- TokenCacheService ----

type MockTokenCacheService struct {
	ctrl     *gomock.Controller
	recorder *MockTokenCacheServiceMockRecorder
}

type MockTokenCacheServiceMockRecorder struct{ mock *MockTokenCacheService }

func NewMockTokenCacheService(ctrl *gomock.Controller) *MockTokenCacheService {
	m := &MockTokenCacheService{ctrl: ctrl}
	m.recorder = &MockTokenCacheServiceMockRecorder{m}
	return m
}

func (m *MockTokenCacheService) EXPECT() *MockTokenCacheServiceMockRecorder { return m.recorder }

func (m *MockTokenCacheService) Get(ctx context.Context, provider domain.Channel) (*domain.ProviderTokenRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, provider)
	ret0, _ := ret[0].(*domain.ProviderTokenRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenCacheServiceMockRecorder) Get(ctx, provider interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockTokenCacheService)(nil).Get), ctx, provider)
}

func (m *MockTokenCacheService) Set(ctx context.Context, record *domain.ProviderTokenRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTokenCacheServiceMockRecorder) Set(ctx, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockTokenCacheService)(nil).Set), ctx, record)
}

// ---- ProviderAdapter ----

type MockProviderAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockProviderAdapterMockRecorder
}

type MockProviderAdapterMockRecorder struct{ mock *MockProviderAdapter }

func NewMockProviderAdapter(ctrl *gomock.Controller) *MockProviderAdapter {
	m := &MockProviderAdapter{ctrl: ctrl}
	m.recorder = &MockProviderAdapterMockRecorder{m}
	return m
}

func (m *MockProviderAdapter) EXPECT() *MockProviderAdapterMockRecorder { return m.recorder }

func (m *MockProviderAdapter) Channel() domain.Channel {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Channel")
	ret0, _ := ret[0].(domain.Channel)
	return ret0
}

func (mr *MockProviderAdapterMockRecorder) Channel() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Channel", reflect.TypeOf((*MockProviderAdapter)(nil).Channel))
}

func (m *MockProviderAdapter) CreatePayment(ctx context.Context, payment *domain.Payment) (ports.ProviderCreateResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePayment", ctx, payment)
	ret0, _ := ret[0].(ports.ProviderCreateResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderAdapterMockRecorder) CreatePayment(ctx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePayment", reflect.TypeOf((*MockProviderAdapter)(nil).CreatePayment), ctx, payment)
}

func (m *MockProviderAdapter) GetStatus(ctx context.Context, providerTransactionID string) (ports.ProviderStatusResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStatus", ctx, providerTransactionID)
	ret0, _ := ret[0].(ports.ProviderStatusResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderAdapterMockRecorder) GetStatus(ctx, providerTransactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStatus", reflect.TypeOf((*MockProviderAdapter)(nil).GetStatus), ctx, providerTransactionID)
}

func (m *MockProviderAdapter) Refund(ctx context.Context, providerTransactionID string, amount domain.Currency, refundAmount string) (ports.ProviderRefundResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Refund", ctx, providerTransactionID, amount, refundAmount)
	ret0, _ := ret[0].(ports.ProviderRefundResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderAdapterMockRecorder) Refund(ctx, providerTransactionID, amount, refundAmount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refund", reflect.TypeOf((*MockProviderAdapter)(nil).Refund), ctx, providerTransactionID, amount, refundAmount)
}

func (m *MockProviderAdapter) VerifyCallback(ctx context.Context, headers map[string]string, body []byte) (ports.ProviderCallbackResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyCallback", ctx, headers, body)
	ret0, _ := ret[0].(ports.ProviderCallbackResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderAdapterMockRecorder) VerifyCallback(ctx, headers, body interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyCallback", reflect.TypeOf((*MockProviderAdapter)(nil).VerifyCallback), ctx, headers, body)
}

// ---- JobQueue ----

type MockJobQueue struct {
	ctrl     *gomock.Controller
	recorder *MockJobQueueMockRecorder
}

type MockJobQueueMockRecorder struct{ mock *MockJobQueue }

func NewMockJobQueue(ctrl *gomock.Controller) *MockJobQueue {
	m := &MockJobQueue{ctrl: ctrl}
	m.recorder = &MockJobQueueMockRecorder{m}
	return m
}

func (m *MockJobQueue) EXPECT() *MockJobQueueMockRecorder { return m.recorder }

func (m *MockJobQueue) EnqueuePaymentDispatch(ctx context.Context, job ports.PaymentDispatchJob) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueuePaymentDispatch", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockJobQueueMockRecorder) EnqueuePaymentDispatch(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueuePaymentDispatch", reflect.TypeOf((*MockJobQueue)(nil).EnqueuePaymentDispatch), ctx, job)
}

func (m *MockJobQueue) EnqueueWebhookDelivery(ctx context.Context, job ports.WebhookDeliveryJob) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueueWebhookDelivery", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockJobQueueMockRecorder) EnqueueWebhookDelivery(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueueWebhookDelivery", reflect.TypeOf((*MockJobQueue)(nil).EnqueueWebhookDelivery), ctx, job)
}

// ---- WebhookDispatchService ----

type MockWebhookDispatchService struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookDispatchServiceMockRecorder
}

type MockWebhookDispatchServiceMockRecorder struct{ mock *MockWebhookDispatchService }

func NewMockWebhookDispatchService(ctrl *gomock.Controller) *MockWebhookDispatchService {
	m := &MockWebhookDispatchService{ctrl: ctrl}
	m.recorder = &MockWebhookDispatchServiceMockRecorder{m}
	return m
}

func (m *MockWebhookDispatchService) EXPECT() *MockWebhookDispatchServiceMockRecorder { return m.recorder }

func (m *MockWebhookDispatchService) Notify(ctx context.Context, payment *domain.Payment, event domain.EventType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notify", ctx, payment, event)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookDispatchServiceMockRecorder) Notify(ctx, payment, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notify", reflect.TypeOf((*MockWebhookDispatchService)(nil).Notify), ctx, payment, event)
}

func (m *MockWebhookDispatchService) Deliver(ctx context.Context, webhookLogID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deliver", ctx, webhookLogID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookDispatchServiceMockRecorder) Deliver(ctx, webhookLogID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deliver", reflect.TypeOf((*MockWebhookDispatchService)(nil).Deliver), ctx, webhookLogID)
}

func (m *MockWebhookDispatchService) CreateWebhookConfig(ctx context.Context, cfg *domain.WebhookConfig) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateWebhookConfig", ctx, cfg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookDispatchServiceMockRecorder) CreateWebhookConfig(ctx, cfg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateWebhookConfig", reflect.TypeOf((*MockWebhookDispatchService)(nil).CreateWebhookConfig), ctx, cfg)
}

// ---- AuditService ----

type MockAuditService struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceMockRecorder
}

type MockAuditServiceMockRecorder struct{ mock *MockAuditService }

func NewMockAuditService(ctrl *gomock.Controller) *MockAuditService {
	m := &MockAuditService{ctrl: ctrl}
	m.recorder = &MockAuditServiceMockRecorder{m}
	return m
}

func (m *MockAuditService) EXPECT() *MockAuditServiceMockRecorder { return m.recorder }

func (m *MockAuditService) Log(ctx context.Context, entry *domain.AuditLog) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Log", ctx, entry)
}

func (mr *MockAuditServiceMockRecorder) Log(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Log", reflect.TypeOf((*MockAuditService)(nil).Log), ctx, entry)
}

// ---- HTTPClient (service.HTTPClient, used by webhookService) ----

type MockHTTPClient struct {
	ctrl     *gomock.Controller
	recorder *MockHTTPClientMockRecorder
}

type MockHTTPClientMockRecorder struct{ mock *MockHTTPClient }

func NewMockHTTPClient(ctrl *gomock.Controller) *MockHTTPClient {
	m := &MockHTTPClient{ctrl: ctrl}
	m.recorder = &MockHTTPClientMockRecorder{m}
	return m
}

func (m *MockHTTPClient) EXPECT() *MockHTTPClientMockRecorder { return m.recorder }

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", req)
	resp, _ := ret[0].(*http.Response)
	err, _ := ret[1].(error)
	return resp, err
}

func (mr *MockHTTPClientMockRecorder) Do(req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockHTTPClient)(nil).Do), req)
}

// ---- AuthService ----

type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
}

type MockAuthServiceMockRecorder struct{ mock *MockAuthService }

func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	m := &MockAuthService{ctrl: ctrl}
	m.recorder = &MockAuthServiceMockRecorder{m}
	return m
}

func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder { return m.recorder }

func (m *MockAuthService) IssueAPIKey(ctx context.Context, merchantID uuid.UUID, env domain.Environment) (string, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssueAPIKey", ctx, merchantID, env)
	keyID, _ := ret[0].(string)
	secret, _ := ret[1].(string)
	err, _ := ret[2].(error)
	return keyID, secret, err
}

func (mr *MockAuthServiceMockRecorder) IssueAPIKey(ctx, merchantID, env interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssueAPIKey", reflect.TypeOf((*MockAuthService)(nil).IssueAPIKey), ctx, merchantID, env)
}

func (m *MockAuthService) AuthenticateAPIKey(ctx context.Context, keyID, secret string) (*domain.Merchant, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthenticateAPIKey", ctx, keyID, secret)
	merchant, _ := ret[0].(*domain.Merchant)
	err, _ := ret[1].(error)
	return merchant, err
}

func (mr *MockAuthServiceMockRecorder) AuthenticateAPIKey(ctx, keyID, secret interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthenticateAPIKey", reflect.TypeOf((*MockAuthService)(nil).AuthenticateAPIKey), ctx, keyID, secret)
}

func (m *MockAuthService) Login(ctx context.Context, merchantID uuid.UUID) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, merchantID)
	token, _ := ret[0].(string)
	expiry, _ := ret[1].(time.Time)
	err, _ := ret[2].(error)
	return token, expiry, err
}

func (mr *MockAuthServiceMockRecorder) Login(ctx, merchantID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, merchantID)
}

// ---- PaymentService ----

type MockPaymentService struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentServiceMockRecorder
}

type MockPaymentServiceMockRecorder struct{ mock *MockPaymentService }

func NewMockPaymentService(ctrl *gomock.Controller) *MockPaymentService {
	m := &MockPaymentService{ctrl: ctrl}
	m.recorder = &MockPaymentServiceMockRecorder{m}
	return m
}

func (m *MockPaymentService) EXPECT() *MockPaymentServiceMockRecorder { return m.recorder }

func (m *MockPaymentService) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePayment", ctx, req)
	payment, _ := ret[0].(*domain.Payment)
	err, _ := ret[1].(error)
	return payment, err
}

func (mr *MockPaymentServiceMockRecorder) CreatePayment(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePayment", reflect.TypeOf((*MockPaymentService)(nil).CreatePayment), ctx, req)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, reference string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPayment", ctx, reference)
	payment, _ := ret[0].(*domain.Payment)
	err, _ := ret[1].(error)
	return payment, err
}

func (mr *MockPaymentServiceMockRecorder) GetPayment(ctx, reference interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPayment", reflect.TypeOf((*MockPaymentService)(nil).GetPayment), ctx, reference)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPayments", ctx, params)
	payments, _ := ret[0].([]domain.Payment)
	cursor, _ := ret[1].(string)
	err, _ := ret[2].(error)
	return payments, cursor, err
}

func (mr *MockPaymentServiceMockRecorder) ListPayments(ctx, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPayments", reflect.TypeOf((*MockPaymentService)(nil).ListPayments), ctx, params)
}

func (m *MockPaymentService) RefundPayment(ctx context.Context, reference string, amount *string, reason string) (*domain.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefundPayment", ctx, reference, amount, reason)
	txn, _ := ret[0].(*domain.Transaction)
	err, _ := ret[1].(error)
	return txn, err
}

func (mr *MockPaymentServiceMockRecorder) RefundPayment(ctx, reference, amount, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefundPayment", reflect.TypeOf((*MockPaymentService)(nil).RefundPayment), ctx, reference, amount, reason)
}

func (m *MockPaymentService) HandleCallback(ctx context.Context, channel domain.Channel, headers map[string]string, body []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleCallback", ctx, channel, headers, body)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockPaymentServiceMockRecorder) HandleCallback(ctx, channel, headers, body interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleCallback", reflect.TypeOf((*MockPaymentService)(nil).HandleCallback), ctx, channel, headers, body)
}

func (m *MockPaymentService) ExpireStalePayments(ctx context.Context, now time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpireStalePayments", ctx, now)
	count, _ := ret[0].(int)
	err, _ := ret[1].(error)
	return count, err
}

func (mr *MockPaymentServiceMockRecorder) ExpireStalePayments(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpireStalePayments", reflect.TypeOf((*MockPaymentService)(nil).ExpireStalePayments), ctx, now)
}

func (m *MockPaymentService) Dispatch(ctx context.Context, paymentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Dispatch", ctx, paymentID)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockPaymentServiceMockRecorder) Dispatch(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dispatch", reflect.TypeOf((*MockPaymentService)(nil).Dispatch), ctx, paymentID)
}

func (m *MockPaymentService) MarkFailed(ctx context.Context, paymentID uuid.UUID, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkFailed", ctx, paymentID, reason)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockPaymentServiceMockRecorder) MarkFailed(ctx, paymentID, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkFailed", reflect.TypeOf((*MockPaymentService)(nil).MarkFailed), ctx, paymentID, reason)
}
