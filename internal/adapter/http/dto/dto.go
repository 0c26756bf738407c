package dto

import "time"

// CreatePaymentRequest is the request body for POST /v1/payments.
type CreatePaymentRequest struct {
	Channel       string         `json:"channel" binding:"required,oneof=moncash natcash stripe"`
	Amount        string         `json:"amount" binding:"required"`
	Currency      string         `json:"currency" binding:"required,oneof=HTG USD"`
	CustomerEmail *string        `json:"customer_email,omitempty" binding:"omitempty,email"`
	CustomerPhone *string        `json:"customer_phone,omitempty"`
	CustomerName  *string        `json:"customer_name,omitempty"`
	OrderID       *string        `json:"order_id,omitempty" binding:"omitempty,safe_id"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// RefundRequest is the request body for POST /v1/payments/:ref/refund.
type RefundRequest struct {
	Amount *string `json:"amount,omitempty"`
	Reason string  `json:"reason" binding:"required,max=500"`
}

// PaymentResponse is the response body describing a payment.
type PaymentResponse struct {
	Reference             string         `json:"reference"`
	Channel                string         `json:"channel"`
	Status                 string         `json:"status"`
	Amount                 string         `json:"amount"`
	Currency               string         `json:"currency"`
	FeeAmount               string        `json:"fee_amount"`
	NetAmount               string        `json:"net_amount"`
	RefundedAmount          string        `json:"refunded_amount"`
	ProviderTransactionID   *string       `json:"provider_transaction_id,omitempty"`
	RedirectURL             *string       `json:"redirect_url,omitempty"`
	CustomerEmail           *string       `json:"customer_email,omitempty"`
	CustomerPhone           *string       `json:"customer_phone,omitempty"`
	CustomerName            *string       `json:"customer_name,omitempty"`
	OrderID                 *string       `json:"order_id,omitempty"`
	Metadata                map[string]any `json:"metadata,omitempty"`
	FailureReason           *string       `json:"failure_reason,omitempty"`
	ExpiresAt               time.Time     `json:"expires_at"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
	CompletedAt             *time.Time    `json:"completed_at,omitempty"`
	FailedAt                *time.Time    `json:"failed_at,omitempty"`
}

// PaymentListResponse wraps a cursor-paginated page of payments.
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// TransactionResponse is the response body for a ledger entry (credit
// or refund), returned from the refund endpoint.
type TransactionResponse struct {
	Reference  string    `json:"reference"`
	PaymentRef string    `json:"payment_reference"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CheckoutResponse is the unauthenticated public view of a payment,
// served to a hosted checkout page (§6 GET /v1/checkout/:ref). It
// deliberately omits everything PaymentResponse exposes to an
// authenticated merchant (customer contact details, metadata,
// provider transaction id).
type CheckoutResponse struct {
	Reference   string    `json:"reference"`
	Channel     string    `json:"channel"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	RedirectURL *string   `json:"redirect_url,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
