package handler

import (
	"io"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles inbound provider callbacks and the public
// checkout read (§4.B, §4.G, §6).
type WebhookHandler struct {
	paymentSvc ports.PaymentService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(paymentSvc ports.PaymentService) *WebhookHandler {
	return &WebhookHandler{paymentSvc: paymentSvc}
}

// MonCash handles POST /v1/webhooks/moncash.
func (h *WebhookHandler) MonCash(c *gin.Context) {
	h.handleCallback(c, domain.ChannelMonCash)
}

// NatCash handles POST /v1/webhooks/natcash.
func (h *WebhookHandler) NatCash(c *gin.Context) {
	h.handleCallback(c, domain.ChannelNatCash)
}

// Stripe handles POST /v1/webhooks/stripe. The raw body must reach
// VerifyCallback byte-for-byte since Stripe's signature is computed
// over the exact bytes it sent, not a re-marshalled form.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	h.handleCallback(c, domain.ChannelStripe)
}

func (h *WebhookHandler) handleCallback(c *gin.Context, channel domain.Channel) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.ErrValidation("unreadable request body"))
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	if err := h.paymentSvc.HandleCallback(c.Request.Context(), channel, headers, body); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}

// Checkout handles GET /v1/checkout/:ref, the unauthenticated view a
// hosted checkout page polls while a customer completes payment.
func (h *WebhookHandler) Checkout(c *gin.Context) {
	payment, err := h.paymentSvc.GetPayment(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CheckoutResponse{
		Reference:   payment.Reference,
		Channel:     string(payment.Channel),
		Status:      string(payment.Status),
		Amount:      payment.Amount.String(),
		Currency:    string(payment.Currency),
		RedirectURL: payment.RedirectURL,
		ExpiresAt:   payment.ExpiresAt,
	})
}
