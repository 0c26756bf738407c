package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	webhookUserAgent    = "DheCash-Webhooks/1.0"
	webhookDeliveryTimeout = 30 * time.Second
	responseBodyCap     = 500
)

// HTTPClient is the minimal surface webhookService depends on, for
// testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookPayload is the §4.H outbound notification envelope.
type webhookPayload struct {
	APIVersion string             `json:"api_version"`
	EventType  domain.EventType   `json:"event_type"`
	CreatedAt  string             `json:"created_at"`
	Data       webhookPayloadData `json:"data"`
}

type webhookPayloadData struct {
	PaymentRef            string     `json:"payment_ref"`
	OrderID                *string    `json:"order_id,omitempty"`
	Channel                domain.Channel `json:"channel"`
	Status                 domain.PaymentStatus `json:"status"`
	Amount                 float64    `json:"amount"`
	Currency               domain.Currency `json:"currency"`
	FeeAmount              float64    `json:"fee_amount"`
	NetAmount              float64    `json:"net_amount"`
	ProviderTransactionID  *string    `json:"provider_transaction_id,omitempty"`
	CreatedAtPayment       time.Time  `json:"created_at"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
	FailedAt               *time.Time `json:"failed_at,omitempty"`
	FailureReason          *string    `json:"failure_reason,omitempty"`
}

// webhookService implements ports.WebhookDispatchService.
type webhookService struct {
	configRepo ports.WebhookConfigRepository
	logRepo    ports.WebhookLogRepository
	sigSvc     ports.SignatureService
	jobQueue   ports.JobQueue
	httpClient HTTPClient
	encSvc     ports.EncryptionService
	log        zerolog.Logger
}

// NewWebhookService creates a new outbound webhook dispatch service.
// encSvc encrypts each config's signing secret before it is persisted and
// decrypts it again before signing a delivery, so the secret never sits
// in the database in plaintext.
func NewWebhookService(
	configRepo ports.WebhookConfigRepository,
	logRepo ports.WebhookLogRepository,
	sigSvc ports.SignatureService,
	jobQueue ports.JobQueue,
	httpClient HTTPClient,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) ports.WebhookDispatchService {
	return &webhookService{
		configRepo: configRepo,
		logRepo:    logRepo,
		sigSvc:     sigSvc,
		jobQueue:   jobQueue,
		httpClient: httpClient,
		encSvc:     encSvc,
		log:        log,
	}
}

// CreateWebhookConfig registers a merchant's outbound webhook
// subscription. cfg.Secret is encrypted at rest; callers pass it in
// plaintext (as generated at provisioning time or supplied by the
// merchant) and never see the stored ciphertext.
func (s *webhookService) CreateWebhookConfig(ctx context.Context, cfg *domain.WebhookConfig) error {
	encrypted, err := s.encSvc.Encrypt(cfg.Secret)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("encrypt webhook secret: %w", err))
	}
	cfg.Secret = encrypted
	if err := s.configRepo.Create(ctx, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("create webhook config: %w", err))
	}
	return nil
}

// Notify implements the dispatch half of §4.H: for every active
// subscription matching event, insert a pending WebhookLog row and
// enqueue a delivery job. Delivery itself happens out-of-process via
// Deliver, invoked by a queue worker.
func (s *webhookService) Notify(ctx context.Context, payment *domain.Payment, event domain.EventType) error {
	configs, err := s.configRepo.GetByMerchantID(ctx, payment.MerchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load webhook configs: %w", err))
	}

	payload := buildPayload(payment, event)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook payload: %w", err))
	}

	now := time.Now().UTC()
	for _, cfg := range configs {
		if !cfg.Subscribes(event) {
			continue
		}

		logRow := &domain.WebhookLog{
			ID:              uuid.New(),
			WebhookConfigID: cfg.ID,
			PaymentID:       payment.ID,
			EventType:       event,
			Payload:         string(payloadJSON),
			Status:          domain.WebhookLogStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.logRepo.Create(ctx, logRow); err != nil {
			s.log.Error().Err(err).Str("payment_ref", payment.Reference).Str("webhook_config_id", cfg.ID.String()).Msg("failed to persist webhook log row")
			continue
		}

		if err := s.jobQueue.EnqueueWebhookDelivery(ctx, ports.WebhookDeliveryJob{WebhookLogID: logRow.ID}); err != nil {
			s.log.Error().Err(err).Str("webhook_log_id", logRow.ID.String()).Msg("failed to enqueue webhook delivery job")
		}
	}
	return nil
}

// Deliver performs one delivery attempt for a WebhookLog row. It is
// invoked by a queue worker; a non-nil error causes the queue to retry
// per the webhook backoff schedule (§4.D, §4.H).
func (s *webhookService) Deliver(ctx context.Context, webhookLogID uuid.UUID) error {
	logRow, err := s.logRepo.GetByID(ctx, webhookLogID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load webhook log: %w", err))
	}
	if logRow == nil {
		return apperror.InternalError(fmt.Errorf("webhook log %s not found", webhookLogID))
	}
	if logRow.Status == domain.WebhookLogStatusDelivered {
		return nil // already delivered, idempotent no-op
	}

	cfg, err := s.configRepoLookup(ctx, logRow.WebhookConfigID)
	if err != nil {
		return err
	}

	deliverCtx, cancel := context.WithTimeout(ctx, webhookDeliveryTimeout)
	defer cancel()

	secret, err := s.encSvc.Decrypt(cfg.Secret)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("decrypt webhook secret: %w", err))
	}

	ts := fmt.Sprintf("%d", time.Now().Unix())
	signature := s.sigSvc.Sign(secret, ts+"."+logRow.Payload)

	req, err := http.NewRequestWithContext(deliverCtx, http.MethodPost, cfg.URL, bytes.NewReader([]byte(logRow.Payload)))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build webhook request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", webhookUserAgent)
	req.Header.Set("DheCash-Event-Type", string(logRow.EventType))
	req.Header.Set("DheCash-Timestamp", ts)
	req.Header.Set("DheCash-Signature", fmt.Sprintf("t=%s,v1=%s", ts, signature))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.recordAttempt(ctx, logRow, nil, "", false)
		return fmt.Errorf("webhook delivery transport error: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyCap))
	httpStatus := resp.StatusCode
	success := httpStatus >= 200 && httpStatus < 300

	s.recordAttempt(ctx, logRow, &httpStatus, string(bodyBytes), success)

	if !success {
		return fmt.Errorf("webhook delivery received non-2xx status %d", httpStatus)
	}
	return nil
}

func (s *webhookService) configRepoLookup(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error) {
	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load webhook config: %w", err))
	}
	if cfg == nil {
		return nil, apperror.InternalError(fmt.Errorf("webhook config %s not found", id))
	}
	return cfg, nil
}

func (s *webhookService) recordAttempt(ctx context.Context, logRow *domain.WebhookLog, httpStatus *int, responseBody string, success bool) {
	status := domain.WebhookLogStatusFailed
	if success {
		status = domain.WebhookLogStatusDelivered
	} else if logRow.AttemptCount+1 < 5 {
		status = domain.WebhookLogStatusPending
	}

	trimmed := responseBody
	if len(trimmed) > responseBodyCap {
		trimmed = trimmed[:responseBodyCap]
	}

	if err := s.logRepo.UpdateAttempt(ctx, logRow.ID, status, httpStatus, &trimmed); err != nil {
		s.log.Error().Err(err).Str("webhook_log_id", logRow.ID.String()).Msg("failed to update webhook log attempt")
	}
}

func buildPayload(payment *domain.Payment, event domain.EventType) webhookPayload {
	amount, _ := payment.Amount.Float64()
	fee, _ := payment.FeeAmount.Float64()
	net, _ := payment.NetAmount.Float64()

	return webhookPayload{
		APIVersion: "1.0",
		EventType:  event,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Data: webhookPayloadData{
			PaymentRef:            payment.Reference,
			OrderID:               payment.OrderID,
			Channel:               payment.Channel,
			Status:                payment.Status,
			Amount:                amount,
			Currency:              payment.Currency,
			FeeAmount:             fee,
			NetAmount:             net,
			ProviderTransactionID: payment.ProviderTransactionID,
			CreatedAtPayment:      payment.CreatedAt,
			CompletedAt:           payment.CompletedAt,
			FailedAt:              payment.FailedAt,
			FailureReason:         payment.FailureReason,
		},
	}
}
