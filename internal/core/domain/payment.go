package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Channel identifies which payment processor handles a payment.
type Channel string

const (
	ChannelMonCash Channel = "moncash"
	ChannelNatCash Channel = "natcash"
	ChannelStripe  Channel = "stripe"
)

// Currency is a pinned payment currency.
type Currency string

const (
	CurrencyHTG Currency = "HTG"
	CurrencyUSD Currency = "USD"
)

// PaymentStatus is the authoritative lifecycle state of a Payment (§4.E).
type PaymentStatus string

const (
	PaymentStatusPending            PaymentStatus = "pending"
	PaymentStatusProcessing         PaymentStatus = "processing"
	PaymentStatusCompleted          PaymentStatus = "completed"
	PaymentStatusFailed             PaymentStatus = "failed"
	PaymentStatusCancelled          PaymentStatus = "cancelled"
	PaymentStatusExpired            PaymentStatus = "expired"
	PaymentStatusPartiallyRefunded  PaymentStatus = "partially_refunded"
	PaymentStatusRefunded           PaymentStatus = "refunded"
)

// FeeTable is the compile-time fee schedule per §3.
var FeeTable = map[Channel]decimal.Decimal{
	ChannelMonCash: decimal.NewFromFloat(0.025),
	ChannelNatCash: decimal.NewFromFloat(0.025),
	ChannelStripe:  decimal.NewFromFloat(0.035),
}

// DefaultExpiry is the payment's time-to-live from creation (§3).
const DefaultExpiry = 30 * time.Minute

// USDToHTGRate is a hard-coded estimation constant (§4.B, §9 Open Questions:
// whether this should be a live FX lookup is unresolved upstream).
const USDToHTGRate = 140

// Payment is the central entity of the gateway.
type Payment struct {
	ID                    uuid.UUID       `json:"id"`
	Reference             string          `json:"reference"` // pay_*
	MerchantID            uuid.UUID       `json:"merchant_id"`
	Channel               Channel         `json:"channel"`
	Status                PaymentStatus   `json:"status"`
	Amount                decimal.Decimal `json:"amount"` // gross, in Currency
	Currency              Currency        `json:"currency"`
	FeeRate               decimal.Decimal `json:"fee_rate"` // snapshot at creation
	FeeAmount             decimal.Decimal `json:"fee_amount"`
	NetAmount             decimal.Decimal `json:"net_amount"`
	RefundedAmount        decimal.Decimal `json:"refunded_amount"`
	ProviderTransactionID *string         `json:"provider_transaction_id,omitempty"`
	RedirectURL           *string         `json:"redirect_url,omitempty"`
	IdempotencyKey        *string         `json:"-"`
	CustomerEmail         *string         `json:"customer_email,omitempty"`
	CustomerPhone         *string         `json:"customer_phone,omitempty"`
	CustomerName          *string         `json:"customer_name,omitempty"`
	CustomerID            *uuid.UUID      `json:"customer_id,omitempty"`
	OrderID               *string         `json:"order_id,omitempty"`
	Metadata              map[string]any  `json:"metadata,omitempty"`
	FailureReason          *string        `json:"failure_reason,omitempty"`
	ExpiresAt             time.Time       `json:"expires_at"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	CompletedAt           *time.Time      `json:"completed_at,omitempty"`
	FailedAt              *time.Time      `json:"failed_at,omitempty"`
}

// IsExpired reports whether the payment's expiry window has elapsed.
func (p *Payment) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// IsRefundable reports whether a refund may currently be applied.
func (p *Payment) IsRefundable() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusPartiallyRefunded
}

// Outstanding is the amount still eligible for refund.
func (p *Payment) Outstanding() decimal.Decimal {
	return p.Amount.Sub(p.RefundedAmount)
}

// ComputeFees derives fee_amount and net_amount from amount and fee_rate,
// enforcing invariant 1 of §8: fee_amount = round(amount * fee_rate, 2).
func ComputeFees(amount, feeRate decimal.Decimal) (fee, net decimal.Decimal) {
	fee = amount.Mul(feeRate).Round(2)
	net = amount.Sub(fee)
	return fee, net
}

// ProviderAmount converts the payment's gross amount into the unit the
// provider expects for the given channel (§4.B). MonCash requires HTG;
// USD amounts are converted using the fixed estimation constant.
func (p *Payment) ProviderAmount() decimal.Decimal {
	if p.Channel == ChannelMonCash && p.Currency == CurrencyUSD {
		return p.Amount.Mul(decimal.NewFromInt(USDToHTGRate))
	}
	return p.Amount
}

// ValidTransitions enumerates the state machine graph of §4.E.
var ValidTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {
		PaymentStatusProcessing,
		PaymentStatusExpired,
		PaymentStatusFailed,
	},
	PaymentStatusProcessing: {
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusCancelled,
	},
	PaymentStatusCompleted: {
		PaymentStatusPartiallyRefunded,
		PaymentStatusRefunded,
	},
	PaymentStatusPartiallyRefunded: {
		PaymentStatusRefunded,
	},
}

// CanTransition reports whether `to` is reachable from `from` in one hop,
// or is a same-state no-op (idempotent replay, §4.E).
func CanTransition(from, to PaymentStatus) bool {
	if from == to {
		return true
	}
	for _, candidate := range ValidTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
