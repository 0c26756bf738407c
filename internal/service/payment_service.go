package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/refgen"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	paymentRepo ports.PaymentRepository
	txRepo      ports.TransactionRepository
	customerRepo ports.CustomerRepository
	idempRepo   ports.IdempotencyRepository
	idempCache  ports.IdempotencyCache
	providers   map[domain.Channel]ports.ProviderAdapter
	jobQueue    ports.JobQueue
	webhooks    ports.WebhookDispatchService
	transactor  ports.DBTransactor
	audit       ports.AuditService
	log         zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. providers maps
// each supported channel to its concrete adapter (§4.B).
func NewPaymentService(
	paymentRepo ports.PaymentRepository,
	txRepo ports.TransactionRepository,
	customerRepo ports.CustomerRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	providers map[domain.Channel]ports.ProviderAdapter,
	jobQueue ports.JobQueue,
	webhooks ports.WebhookDispatchService,
	transactor ports.DBTransactor,
	audit ports.AuditService,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		txRepo:       txRepo,
		customerRepo: customerRepo,
		idempRepo:    idempRepo,
		idempCache:   idempCache,
		providers:    providers,
		jobQueue:     jobQueue,
		webhooks:     webhooks,
		transactor:   transactor,
		audit:        audit,
		log:          log,
	}
}

// CreatePayment implements the create-payment path of §4.F: a two-layer
// idempotency check, row insert, then enqueueing the dispatch job.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrValidation("amount must be a positive decimal")
	}
	if _, ok := s.providers[req.Channel]; !ok {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("channel %q not configured", req.Channel))
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(req.IdempotencyKey)

		cached, err := s.idempCache.Get(ctx, idempKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to db")
		}
		if cached != nil {
			return s.unmarshalCachedPayment(cached)
		}

		record, err := s.idempRepo.Get(ctx, idempKey)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
		}
		if record != nil {
			return s.unmarshalCachedPayment(record.ResponseJSON)
		}
	}

	feeRate := domain.FeeTable[req.Channel]
	feeAmount, netAmount := domain.ComputeFees(amount, feeRate)

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:             uuid.New(),
		Reference:      refgen.New("pay_"),
		MerchantID:     req.MerchantID,
		Channel:        req.Channel,
		Status:         domain.PaymentStatusPending,
		Amount:         amount,
		Currency:       req.Currency,
		FeeRate:        feeRate,
		FeeAmount:      feeAmount,
		NetAmount:      netAmount,
		RefundedAmount: decimal.Zero,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		CustomerName:   req.CustomerName,
		OrderID:        req.OrderID,
		Metadata:       req.Metadata,
		ExpiresAt:      now.Add(domain.DefaultExpiry),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if idempKey != "" {
		payment.IdempotencyKey = &idempKey
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	respJSON, err := json.Marshal(payment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}

	if idempKey != "" {
		if err := s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyRecord{
			Key:          idempKey,
			ResponseJSON: respJSON,
			CreatedAt:    now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save idempotency record: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if idempKey != "" {
		if err := s.idempCache.Set(ctx, idempKey, respJSON, domain.IdempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency record in redis")
		}
	}

	if err := s.jobQueue.EnqueuePaymentDispatch(ctx, ports.PaymentDispatchJob{PaymentID: payment.ID, Channel: payment.Channel}); err != nil {
		s.log.Error().Err(err).Str("payment_ref", payment.Reference).Msg("failed to enqueue payment dispatch job")
	}

	s.log.Info().
		Str("payment_ref", payment.Reference).
		Str("merchant_id", payment.MerchantID.String()).
		Str("channel", string(payment.Channel)).
		Str("amount", payment.Amount.String()).
		Msg("payment created")

	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &payment.MerchantID,
		Action:       domain.AuditActionPaymentCreated,
		ResourceType: "payment",
		ResourceID:   payment.Reference,
		CreatedAt:    now,
	})

	return payment, nil
}

// Dispatch is the §4.D PaymentDispatchJob handler: it submits a pending
// payment to its provider and transitions pending -> processing.
func (s *PaymentServiceImpl) Dispatch(ctx context.Context, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load payment: %w", err))
	}
	if payment == nil {
		return apperror.ErrPaymentNotFound()
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil // already dispatched, idempotent no-op
	}

	adapter, ok := s.providers[payment.Channel]
	if !ok {
		return apperror.ErrProviderUnavailable(fmt.Errorf("channel %q not configured", payment.Channel))
	}

	result, err := adapter.CreatePayment(ctx, payment)
	if err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.paymentRepo.GetByReferenceForUpdate(ctx, dbTx, payment.Reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if locked == nil {
		return apperror.ErrPaymentNotFound()
	}
	if !domain.CanTransition(locked.Status, domain.PaymentStatusProcessing) {
		return nil // raced with a terminal transition, no-op
	}

	locked.Status = domain.PaymentStatusProcessing
	locked.ProviderTransactionID = &result.ProviderTransactionID
	if result.RedirectURL != "" {
		locked.RedirectURL = &result.RedirectURL
	}
	locked.UpdatedAt = time.Now().UTC()

	if err := s.paymentRepo.Update(ctx, dbTx, locked); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("payment_ref", locked.Reference).Str("provider_tx_id", result.ProviderTransactionID).Msg("payment dispatched to provider")
	return nil
}

// MarkFailed transitions a payment stuck in pending to failed, used when
// its dispatch job has exhausted its queue retries.
func (s *PaymentServiceImpl) MarkFailed(ctx context.Context, paymentID uuid.UUID, reason string) error {
	unlocked, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load payment: %w", err))
	}
	if unlocked == nil {
		return apperror.ErrPaymentNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByReferenceForUpdate(ctx, dbTx, unlocked.Reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return apperror.ErrPaymentNotFound()
	}
	if !domain.CanTransition(payment.Status, domain.PaymentStatusFailed) {
		return nil // already resolved by a racing dispatch, no-op
	}

	now := time.Now().UTC()
	payment.Status = domain.PaymentStatusFailed
	payment.FailedAt = &now
	payment.FailureReason = &reason
	payment.UpdatedAt = now

	if err := s.paymentRepo.Update(ctx, dbTx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Warn().Str("payment_ref", payment.Reference).Str("reason", reason).Msg("payment marked failed after exhausting dispatch retries")
	s.notifyAfterCommit(payment, eventForStatus(domain.PaymentStatusFailed))
	return nil
}

// HandleCallback implements the §4.G callback reconciler.
func (s *PaymentServiceImpl) HandleCallback(ctx context.Context, channel domain.Channel, headers map[string]string, body []byte) error {
	adapter, ok := s.providers[channel]
	if !ok {
		return apperror.ErrProviderUnavailable(fmt.Errorf("channel %q not configured", channel))
	}

	result, err := adapter.VerifyCallback(ctx, headers, body)
	if err != nil {
		return err
	}

	payment, err := s.paymentRepo.GetByProviderTransactionID(ctx, channel, result.ProviderTransactionID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup payment by provider tx id: %w", err))
	}
	if payment == nil {
		s.log.Warn().Str("channel", string(channel)).Str("provider_tx_id", result.ProviderTransactionID).Msg("callback for unknown payment, ignoring")
		return nil
	}

	return s.applyCallback(ctx, payment.Reference, result)
}

func (s *PaymentServiceImpl) applyCallback(ctx context.Context, reference string, result ports.ProviderCallbackResult) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByReferenceForUpdate(ctx, dbTx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return apperror.ErrPaymentNotFound()
	}

	if payment.Status == result.Status {
		return nil // idempotent replay
	}
	if !domain.CanTransition(payment.Status, result.Status) {
		s.log.Warn().Str("payment_ref", reference).Str("from", string(payment.Status)).Str("to", string(result.Status)).Msg("callback rejected: invalid transition")
		return nil
	}

	now := time.Now().UTC()
	payment.UpdatedAt = now

	switch result.Status {
	case domain.PaymentStatusCompleted:
		payment.Status = result.Status
		payment.CompletedAt = &now
		if err := s.creditLedgerRow(ctx, dbTx, payment); err != nil {
			return err
		}
		if err := s.upsertCustomer(ctx, dbTx, payment, now); err != nil {
			return err
		}
	case domain.PaymentStatusFailed:
		payment.Status = result.Status
		payment.FailedAt = &now
		if result.FailureReason != "" {
			payment.FailureReason = &result.FailureReason
		}
	case domain.PaymentStatusRefunded, domain.PaymentStatusPartiallyRefunded:
		// result.RefundAmount is the provider's cumulative refunded total
		// on the charge, not this event's delta, so settle status from
		// the ledger rather than trusting result.Status directly (§8.2:
		// refunded_amount = sum of refund txns).
		if err := s.applyRefundLedgerRow(ctx, dbTx, payment, result.RefundAmount, now); err != nil {
			return err
		}
	default:
		payment.Status = result.Status
	}

	if err := s.paymentRepo.Update(ctx, dbTx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifyAfterCommit(payment, eventForStatus(payment.Status))
	return nil
}

// applyRefundLedgerRow inserts the ledger row for the portion of
// cumulativeRefunded not yet recorded against payment, and settles
// payment.Status/RefundedAmount from the result (mirrors RefundPayment's
// amount bookkeeping for the synchronous, merchant-initiated path).
func (s *PaymentServiceImpl) applyRefundLedgerRow(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, cumulativeRefundedStr string, now time.Time) error {
	cumulative, err := decimal.NewFromString(cumulativeRefundedStr)
	if err != nil {
		return apperror.ErrValidation("invalid refund amount in provider callback")
	}
	delta := cumulative.Sub(payment.RefundedAmount)
	if delta.LessThanOrEqual(decimal.Zero) {
		return nil // already recorded, idempotent replay
	}

	txn := &domain.Transaction{
		ID:         uuid.New(),
		Reference:  refgen.New("txn_"),
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Type:       domain.TransactionTypeRefund,
		Amount:     delta,
		Currency:   payment.Currency,
		CreatedAt:  now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return apperror.InternalError(fmt.Errorf("create refund ledger row: %w", err))
	}

	payment.RefundedAmount = cumulative
	if payment.RefundedAmount.GreaterThanOrEqual(payment.Amount) {
		payment.Status = domain.PaymentStatusRefunded
	} else {
		payment.Status = domain.PaymentStatusPartiallyRefunded
	}
	return nil
}

func (s *PaymentServiceImpl) creditLedgerRow(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment) error {
	txn := &domain.Transaction{
		ID:         uuid.New(),
		Reference:  refgen.New("txn_"),
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Type:       domain.TransactionTypeCredit,
		Amount:     payment.NetAmount,
		Currency:   payment.Currency,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return apperror.InternalError(fmt.Errorf("create credit ledger row: %w", err))
	}
	return nil
}

// upsertCustomer implements the §4.E customer-upsert side effect.
func (s *PaymentServiceImpl) upsertCustomer(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, now time.Time) error {
	if payment.CustomerEmail == nil && payment.CustomerPhone == nil {
		return nil
	}

	existing, err := s.customerRepo.GetByContact(ctx, payment.MerchantID, domain.EnvironmentLive, payment.CustomerEmail, payment.CustomerPhone)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup customer: %w", err))
	}

	customer := existing
	if customer == nil {
		customer = &domain.Customer{
			ID:             uuid.New(),
			MerchantID:     payment.MerchantID,
			Environment:    domain.EnvironmentLive,
			Email:          payment.CustomerEmail,
			Phone:          payment.CustomerPhone,
			Name:           payment.CustomerName,
			FirstPaymentAt: now,
		}
	} else if customer.Name == nil || *customer.Name == "" {
		customer.Name = payment.CustomerName
	}
	customer.TotalSpent = customer.TotalSpent.Add(payment.Amount)
	customer.PaymentCount++
	customer.LastPaymentAt = now

	if err := s.customerRepo.Upsert(ctx, dbTx, customer); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert customer: %w", err))
	}
	payment.CustomerID = &customer.ID
	return nil
}

// RefundPayment implements the §4.I refund handler.
func (s *PaymentServiceImpl) RefundPayment(ctx context.Context, reference string, amountStr *string, reason string) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByReferenceForUpdate(ctx, dbTx, reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}
	if !payment.IsRefundable() {
		return nil, apperror.ErrRefundNotAllowed()
	}

	outstanding := payment.Outstanding()
	amount := outstanding
	if amountStr != nil {
		parsed, err := decimal.NewFromString(*amountStr)
		if err != nil || parsed.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.ErrValidation("refund amount must be a positive decimal")
		}
		amount = parsed
	}
	if amount.GreaterThan(outstanding) {
		return nil, apperror.ErrRefundExceedsAmount()
	}

	adapter, ok := s.providers[payment.Channel]
	if !ok {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("channel %q not configured", payment.Channel))
	}
	providerTxID := ""
	if payment.ProviderTransactionID != nil {
		providerTxID = *payment.ProviderTransactionID
	}
	if _, err := adapter.Refund(ctx, providerTxID, payment.Currency, amount.StringFixed(2)); err != nil {
		return nil, err
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	txn := &domain.Transaction{
		ID:         uuid.New(),
		Reference:  refgen.New("txn_"),
		PaymentID:  payment.ID,
		MerchantID: payment.MerchantID,
		Type:       domain.TransactionTypeRefund,
		Amount:     amount,
		Currency:   payment.Currency,
		Reason:     reasonPtr,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create refund ledger row: %w", err))
	}

	payment.RefundedAmount = payment.RefundedAmount.Add(amount)
	if payment.RefundedAmount.Equal(payment.Amount) {
		payment.Status = domain.PaymentStatusRefunded
	} else {
		payment.Status = domain.PaymentStatusPartiallyRefunded
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.paymentRepo.Update(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.notifyAfterCommit(payment, domain.EventPaymentRefunded)

	s.log.Info().Str("payment_ref", reference).Str("txn_ref", txn.Reference).Str("amount", amount.String()).Msg("refund processed")

	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &payment.MerchantID,
		Action:       domain.AuditActionRefundIssued,
		ResourceType: "payment",
		ResourceID:   payment.Reference,
		CreatedAt:    txn.CreatedAt,
	})

	return txn, nil
}

func (s *PaymentServiceImpl) notifyAfterCommit(payment *domain.Payment, event domain.EventType) {
	if event == "" {
		return // status has no merchant-facing event (e.g. expired)
	}
	if err := s.webhooks.Notify(context.Background(), payment, event); err != nil {
		s.log.Error().Err(err).Str("payment_ref", payment.Reference).Str("event", string(event)).Msg("failed to enqueue outbound webhook notification")
	}
}

func eventForStatus(status domain.PaymentStatus) domain.EventType {
	switch status {
	case domain.PaymentStatusCompleted:
		return domain.EventPaymentSucceeded
	case domain.PaymentStatusFailed:
		return domain.EventPaymentFailed
	case domain.PaymentStatusCancelled:
		return domain.EventPaymentCancelled
	case domain.PaymentStatusRefunded, domain.PaymentStatusPartiallyRefunded:
		return domain.EventPaymentRefunded
	default:
		return "" // e.g. expired: no webhook event defined, emit nothing
	}
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, reference string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}
	return payment, nil
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, string, error) {
	payments, nextCursor, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("list payments: %w", err))
	}
	return payments, nextCursor, nil
}

// ExpireStalePayments implements the optional background sweep of §4.E:
// pending -> expired once expires_at has passed.
func (s *PaymentServiceImpl) ExpireStalePayments(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.paymentRepo.ListExpired(ctx, now.Unix(), 100)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list expired payments: %w", err))
	}

	count := 0
	for _, p := range expired {
		if err := s.applyCallback(ctx, p.Reference, ports.ProviderCallbackResult{
			ProviderTransactionID: "",
			Status:                domain.PaymentStatusExpired,
		}); err != nil {
			s.log.Error().Err(err).Str("payment_ref", p.Reference).Msg("failed to expire stale payment")
			continue
		}
		count++
	}
	return count, nil
}

func (s *PaymentServiceImpl) unmarshalCachedPayment(data []byte) (*domain.Payment, error) {
	payment := &domain.Payment{}
	if err := json.Unmarshal(data, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached payment: %w", err))
	}
	return payment, nil
}
