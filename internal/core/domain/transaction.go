package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement recorded against
// a payment. The ledger is append-only; there is no update path.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeRefund TransactionType = "refund"
)

// Transaction is an immutable ledger entry (§3). Exactly one credit row
// exists per completed payment; N refund rows may follow it.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	Reference  string          `json:"reference"` // txn_*
	PaymentID  uuid.UUID       `json:"payment_id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	Reason     *string         `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
