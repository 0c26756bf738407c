package handler

import (
	"time"

	"secure-payment-gateway/internal/adapter/http/dto"
	"secure-payment-gateway/internal/adapter/http/middleware"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment-related endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreatePayment handles POST /v1/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrAuthRequired())
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.paymentSvc.CreatePayment(c.Request.Context(), ports.CreatePaymentRequest{
		MerchantID:     merchantID.(uuid.UUID),
		Channel:        domain.Channel(req.Channel),
		Amount:         req.Amount,
		Currency:       domain.Currency(req.Currency),
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		CustomerName:   req.CustomerName,
		OrderID:        req.OrderID,
		Metadata:       req.Metadata,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(payment))
}

// GetPayment handles GET /v1/payments/:ref.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrAuthRequired())
		return
	}

	payment, err := h.paymentSvc.GetPayment(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if payment.MerchantID != merchantID.(uuid.UUID) {
		response.Error(c, apperror.ErrPaymentNotFound())
		return
	}

	response.OK(c, toPaymentResponse(payment))
}

// ListPayments handles GET /v1/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrAuthRequired())
		return
	}

	params := ports.PaymentListParams{
		MerchantID: merchantID.(uuid.UUID),
		Cursor:     c.Query("cursor"),
		Limit:      20,
	}

	if status := c.Query("status"); status != "" {
		s := domain.PaymentStatus(status)
		params.Status = &s
	}
	if channel := c.Query("channel"); channel != "" {
		ch := domain.Channel(channel)
		params.Channel = &ch
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			response.Error(c, apperror.ErrValidation("from must be an RFC3339 timestamp"))
			return
		}
		params.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			response.Error(c, apperror.ErrValidation("to must be an RFC3339 timestamp"))
			return
		}
		params.To = &t
	}

	payments, nextCursor, err := h.paymentSvc.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		items[i] = toPaymentResponse(&payments[i])
	}

	response.OK(c, dto.PaymentListResponse{Items: items, NextCursor: nextCursor})
}

// RefundPayment handles POST /v1/payments/:ref/refund.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrAuthRequired())
		return
	}

	reference := c.Param("ref")

	payment, err := h.paymentSvc.GetPayment(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, err)
		return
	}
	if payment.MerchantID != merchantID.(uuid.UUID) {
		response.Error(c, apperror.ErrPaymentNotFound())
		return
	}

	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.paymentSvc.RefundPayment(c.Request.Context(), reference, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn, reference))
}

func toPaymentResponse(p *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		Reference:             p.Reference,
		Channel:               string(p.Channel),
		Status:                string(p.Status),
		Amount:                p.Amount.String(),
		Currency:              string(p.Currency),
		FeeAmount:             p.FeeAmount.String(),
		NetAmount:             p.NetAmount.String(),
		RefundedAmount:        p.RefundedAmount.String(),
		ProviderTransactionID: p.ProviderTransactionID,
		RedirectURL:           p.RedirectURL,
		CustomerEmail:         p.CustomerEmail,
		CustomerPhone:         p.CustomerPhone,
		CustomerName:          p.CustomerName,
		OrderID:               p.OrderID,
		Metadata:              p.Metadata,
		FailureReason:         p.FailureReason,
		ExpiresAt:             p.ExpiresAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		CompletedAt:           p.CompletedAt,
		FailedAt:              p.FailedAt,
	}
}

func toTransactionResponse(t *domain.Transaction, paymentRef string) dto.TransactionResponse {
	return dto.TransactionResponse{
		Reference:  t.Reference,
		PaymentRef: paymentRef,
		Type:       string(t.Type),
		Amount:     t.Amount.String(),
		Currency:   string(t.Currency),
		Reason:     t.Reason,
		CreatedAt:  t.CreatedAt,
	}
}
