package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMerchant_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status MerchantStatus
		want   bool
	}{
		{"active", MerchantStatusActive, true},
		{"suspended", MerchantStatusSuspended, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Merchant{Status: tt.status}
			assert.Equal(t, tt.want, m.IsActive())
		})
	}
}

func TestAPIKey_IsRevoked(t *testing.T) {
	k := &APIKey{}
	assert.False(t, k.IsRevoked())

	now := time.Now()
	k.RevokedAt = &now
	assert.True(t, k.IsRevoked())
}

func TestComputeFees(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		feeRate  string
		wantFee  string
		wantNet  string
	}{
		{"moncash round number", "100.00", "0.025", "2.50", "97.50"},
		{"stripe round number", "100.00", "0.035", "3.50", "96.50"},
		{"rounds to nearest cent", "10.005", "0.025", "0.25", "9.755"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			feeRate := decimal.RequireFromString(tt.feeRate)
			fee, net := ComputeFees(amount, feeRate)
			assert.True(t, decimal.RequireFromString(tt.wantFee).Equal(fee), "fee: got %s want %s", fee, tt.wantFee)
			assert.True(t, decimal.RequireFromString(tt.wantNet).Equal(net), "net: got %s want %s", net, tt.wantNet)
		})
	}
}

func TestPayment_ProviderAmount_MonCashUSDConversion(t *testing.T) {
	p := &Payment{
		Channel:  ChannelMonCash,
		Currency: CurrencyUSD,
		Amount:   decimal.RequireFromString("10.00"),
	}
	got := p.ProviderAmount()
	assert.True(t, decimal.RequireFromString("1400.00").Equal(got), "got %s", got)
}

func TestPayment_ProviderAmount_HTGUnchanged(t *testing.T) {
	p := &Payment{
		Channel:  ChannelMonCash,
		Currency: CurrencyHTG,
		Amount:   decimal.RequireFromString("100.00"),
	}
	got := p.ProviderAmount()
	assert.True(t, decimal.RequireFromString("100.00").Equal(got))
}

func TestPayment_IsRefundable(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentStatusPending, false},
		{PaymentStatusProcessing, false},
		{PaymentStatusCompleted, true},
		{PaymentStatusPartiallyRefunded, true},
		{PaymentStatusRefunded, false},
		{PaymentStatusFailed, false},
	}
	for _, tt := range tests {
		p := &Payment{Status: tt.status}
		assert.Equal(t, tt.want, p.IsRefundable(), "status=%s", tt.status)
	}
}

func TestPayment_Outstanding(t *testing.T) {
	p := &Payment{
		Amount:         decimal.RequireFromString("100.00"),
		RefundedAmount: decimal.RequireFromString("40.00"),
	}
	assert.True(t, decimal.RequireFromString("60.00").Equal(p.Outstanding()))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{"pending to processing", PaymentStatusPending, PaymentStatusProcessing, true},
		{"pending to expired", PaymentStatusPending, PaymentStatusExpired, true},
		{"processing to completed", PaymentStatusProcessing, PaymentStatusCompleted, true},
		{"completed to partially_refunded", PaymentStatusCompleted, PaymentStatusPartiallyRefunded, true},
		{"partially_refunded to refunded", PaymentStatusPartiallyRefunded, PaymentStatusRefunded, true},
		{"completed to refunded direct", PaymentStatusCompleted, PaymentStatusRefunded, true},
		{"idempotent replay same status", PaymentStatusCompleted, PaymentStatusCompleted, true},
		{"no reverse transition", PaymentStatusCompleted, PaymentStatusPending, false},
		{"no skipping pending to completed", PaymentStatusPending, PaymentStatusCompleted, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestWebhookConfig_Subscribes(t *testing.T) {
	cfg := &WebhookConfig{IsActive: true, Events: []EventType{EventPaymentSucceeded}}
	assert.True(t, cfg.Subscribes(EventPaymentSucceeded))
	assert.False(t, cfg.Subscribes(EventPaymentFailed))

	cfg.IsActive = false
	assert.False(t, cfg.Subscribes(EventPaymentSucceeded))

	wildcard := &WebhookConfig{IsActive: true, Events: []EventType{EventAll}}
	assert.True(t, wildcard.Subscribes(EventPaymentFailed))
}

func TestBuildIdempotencyKey(t *testing.T) {
	assert.Equal(t, "idempotency:abc123", BuildIdempotencyKey("abc123"))
}

func TestProviderTokenRecord_Valid(t *testing.T) {
	var nilRec *ProviderTokenRecord
	assert.False(t, nilRec.Valid(time.Now()))

	rec := &ProviderTokenRecord{ExpiresAt: time.Now().Add(time.Minute)}
	assert.True(t, rec.Valid(time.Now()))

	expired := &ProviderTokenRecord{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.False(t, expired.Valid(time.Now()))
}
