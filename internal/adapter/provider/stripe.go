package provider

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"secure-payment-gateway/config"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// stripeUnitScale converts a decimal gross amount into Stripe's
// smallest-currency-unit representation (§4.B: amount x100).
var stripeUnitScale = decimal.NewFromInt(100)

// StripeAdapter implements ports.ProviderAdapter for Stripe (§4.B).
// Callback authentication is hand-rolled HMAC-SHA256 verification of
// the stripe-signature header rather than stripe-go's webhook helper,
// so Stripe shares the same VerifyCallback shape as MonCash/NatCash.
type StripeAdapter struct {
	sc            *client.API
	webhookSecret string
}

// NewStripeAdapter creates a new Stripe adapter.
func NewStripeAdapter(cfg config.StripeConfig) *StripeAdapter {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &StripeAdapter{sc: sc, webhookSecret: cfg.WebhookSecret}
}

func (a *StripeAdapter) Channel() domain.Channel { return domain.ChannelStripe }

func (a *StripeAdapter) CreatePayment(ctx context.Context, payment *domain.Payment) (ports.ProviderCreateResult, error) {
	cents := payment.Amount.Mul(stripeUnitScale).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(strings.ToLower(string(payment.Currency))),
		Metadata: map[string]string{"order_id": valueOrEmpty(payment.OrderID), "payment_ref": payment.Reference},
	}
	params.Context = ctx

	pi, err := a.sc.PaymentIntents.New(params)
	if err != nil {
		return ports.ProviderCreateResult{}, translateStripeErr(err)
	}

	return ports.ProviderCreateResult{
		ProviderTransactionID: pi.ID,
		RedirectURL:           "", // Stripe completes client-side via the client secret, no redirect hop
	}, nil
}

func (a *StripeAdapter) GetStatus(ctx context.Context, providerTransactionID string) (ports.ProviderStatusResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := a.sc.PaymentIntents.Get(providerTransactionID, params)
	if err != nil {
		return ports.ProviderStatusResult{}, translateStripeErr(err)
	}
	return ports.ProviderStatusResult{Status: stripeStatus(pi.Status)}, nil
}

func (a *StripeAdapter) Refund(ctx context.Context, providerTransactionID string, currency domain.Currency, refundAmount string) (ports.ProviderRefundResult, error) {
	amt, err := strconv.ParseFloat(refundAmount, 64)
	if err != nil {
		return ports.ProviderRefundResult{}, apperror.ErrValidation("invalid refund amount")
	}
	cents := int64(amt * 100)

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(providerTransactionID),
		Amount:        stripe.Int64(cents),
	}
	params.Context = ctx

	r, err := a.sc.Refunds.New(params)
	if err != nil {
		return ports.ProviderRefundResult{}, translateStripeErr(err)
	}
	return ports.ProviderRefundResult{ProviderRefundID: r.ID}, nil
}

// VerifyCallback verifies the stripe-signature header: HMAC-SHA256 over
// "timestamp.rawBody" keyed by the webhook secret (§4.B).
func (a *StripeAdapter) VerifyCallback(ctx context.Context, headers map[string]string, body []byte) (ports.ProviderCallbackResult, error) {
	sigHeader := headers["Stripe-Signature"]
	if sigHeader == "" {
		sigHeader = headers["stripe-signature"]
	}
	ts, v1, err := parseStripeSignatureHeader(sigHeader)
	if err != nil {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("malformed stripe-signature header")
	}

	signedPayload := ts + "." + string(body)
	mac := hmac.New(sha256.New, []byte(a.webhookSecret))
	mac.Write([]byte(signedPayload))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("signature mismatch")
	}

	var event stripe.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("malformed stripe event body")
	}

	return stripeEventToResult(event)
}

func stripeEventToResult(event stripe.Event) (ports.ProviderCallbackResult, error) {
	obj := event.Data.Object

	switch event.Type {
	case "payment_intent.succeeded":
		return ports.ProviderCallbackResult{
			ProviderTransactionID: stringField(obj, "id"),
			Status:                domain.PaymentStatusCompleted,
		}, nil
	case "payment_intent.payment_failed":
		reason := ""
		if lastErr, ok := obj["last_payment_error"].(map[string]any); ok {
			reason = stringField(lastErr, "message")
		}
		return ports.ProviderCallbackResult{
			ProviderTransactionID: stringField(obj, "id"),
			Status:                domain.PaymentStatusFailed,
			FailureReason:         reason,
		}, nil
	case "payment_intent.canceled":
		return ports.ProviderCallbackResult{
			ProviderTransactionID: stringField(obj, "id"),
			Status:                domain.PaymentStatusCancelled,
		}, nil
	case "charge.refunded":
		return ports.ProviderCallbackResult{
			ProviderTransactionID: stringField(obj, "payment_intent"),
			Status:                domain.PaymentStatusRefunded,
			RefundAmount:          centsField(obj, "amount_refunded").Div(stripeUnitScale).StringFixed(2),
		}, nil
	default:
		return ports.ProviderCallbackResult{}, apperror.ErrValidation(fmt.Sprintf("unsupported stripe event type %q", event.Type))
	}
}

func stripeStatus(s stripe.PaymentIntentStatus) domain.PaymentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.PaymentStatusCompleted
	case stripe.PaymentIntentStatusCanceled:
		return domain.PaymentStatusCancelled
	case stripe.PaymentIntentStatusProcessing:
		return domain.PaymentStatusProcessing
	default:
		return domain.PaymentStatusPending
	}
}

func translateStripeErr(err error) error {
	if stripeErr, ok := err.(*stripe.Error); ok {
		return apperror.ErrProviderError(stripeErr)
	}
	return apperror.ErrProviderError(err)
}

func parseStripeSignatureHeader(header string) (timestamp, v1 string, err error) {
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			v1 = kv[1]
		}
	}
	if timestamp == "" || v1 == "" {
		return "", "", fmt.Errorf("missing t or v1 in stripe-signature header")
	}
	return timestamp, v1, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// centsField reads a Stripe amount field, which json.Unmarshal decodes as
// float64 since Data.Object is a map[string]any.
func centsField(m map[string]any, key string) decimal.Decimal {
	if v, ok := m[key].(float64); ok {
		return decimal.NewFromFloat(v)
	}
	return decimal.Zero
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
