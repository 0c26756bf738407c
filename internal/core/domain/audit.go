package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction enumerates the significant events the gateway records for
// operator review: payment lifecycle writes and credential changes.
type AuditAction string

const (
	AuditActionPaymentCreated AuditAction = "payment.created"
	AuditActionRefundIssued  AuditAction = "refund.issued"
	AuditActionAPIKeyIssued  AuditAction = "api_key.issued"
	AuditActionAPIKeyRevoked AuditAction = "api_key.revoked"
	AuditActionLogin         AuditAction = "login"
)

// AuditLog is an append-only record of a significant action taken
// against a merchant's account or payments.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
