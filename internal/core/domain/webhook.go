package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the outbound notification kinds a merchant may
// subscribe to (§4.H). The wildcard "*" subscribes to all of them.
type EventType string

const (
	EventAll                EventType = "*"
	EventPaymentSucceeded    EventType = "payment.succeeded"
	EventPaymentFailed       EventType = "payment.failed"
	EventPaymentCancelled    EventType = "payment.cancelled"
	EventPaymentRefunded     EventType = "payment.refunded"
)

// WebhookConfig is a merchant's outbound webhook subscription.
type WebhookConfig struct {
	ID         uuid.UUID   `json:"id"`
	MerchantID uuid.UUID   `json:"merchant_id"`
	URL        string      `json:"url"`
	Events     []EventType `json:"events"`
	Secret     string      `json:"-"` // used for outbound HMAC, never returned
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Subscribes reports whether this config should receive the given event.
func (w *WebhookConfig) Subscribes(event EventType) bool {
	if !w.IsActive {
		return false
	}
	for _, e := range w.Events {
		if e == EventAll || e == event {
			return true
		}
	}
	return false
}

// WebhookLogStatus is the delivery state of one WebhookLog row.
type WebhookLogStatus string

const (
	WebhookLogStatusPending   WebhookLogStatus = "pending"
	WebhookLogStatusDelivered WebhookLogStatus = "delivered"
	WebhookLogStatusFailed    WebhookLogStatus = "failed"
)

// WebhookLog is one audit row per outbound delivery attempt series
// (§3 — one row per config/payment/event, updated across attempts).
type WebhookLog struct {
	ID             uuid.UUID        `json:"id"`
	WebhookConfigID uuid.UUID       `json:"webhook_config_id"`
	PaymentID      uuid.UUID        `json:"payment_id"`
	EventType      EventType        `json:"event_type"`
	Payload        string           `json:"payload"` // serialized envelope, see §4.H
	Status         WebhookLogStatus `json:"status"`
	HTTPStatus     *int             `json:"http_status,omitempty"`
	ResponseBody   *string          `json:"response_body,omitempty"` // capped at 500 chars
	AttemptCount   int              `json:"attempt_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	LastAttemptAt  *time.Time       `json:"last_attempt_at,omitempty"`
	DeliveredAt    *time.Time       `json:"delivered_at,omitempty"`
}
