package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VALIDATION_ERROR", "amount must be positive", http.StatusBadRequest),
			expected: "[VALIDATION_ERROR] amount must be positive",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("INTERNAL_ERROR", "db error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[INTERNAL_ERROR] db error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("INTERNAL_ERROR", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VALIDATION_ERROR", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AuthRequired", ErrAuthRequired(), "AUTH_REQUIRED", 401},
		{"InvalidCredentials", ErrInvalidCredentials(), "INVALID_CREDENTIALS", 401},
		{"TokenExpired", ErrTokenExpired(), "TOKEN_EXPIRED", 401},
		{"TokenInvalid", ErrTokenInvalid(), "TOKEN_INVALID", 401},
		{"InsufficientPermissions", ErrInsufficientPermissions(), "INSUFFICIENT_PERMISSIONS", 403},
		{"APIKeyInvalid", ErrAPIKeyInvalid(), "API_KEY_INVALID", 401},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_LIMIT_EXCEEDED", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", ErrValidation("bad input"), "VALIDATION_ERROR", 400},
		{"PaymentNotFound", ErrPaymentNotFound(), "PAYMENT_NOT_FOUND", 404},
		{"PaymentExpired", ErrPaymentExpired(), "PAYMENT_EXPIRED", 410},
		{"RefundNotAllowed", ErrRefundNotAllowed(), "REFUND_NOT_ALLOWED", 422},
		{"RefundExceedsAmount", ErrRefundExceedsAmount(), "REFUND_EXCEEDS_AMOUNT", 422},
		{"IdempotencyConflict", ErrIdempotencyConflict(), "IDEMPOTENCY_CONFLICT", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestProviderErrors(t *testing.T) {
	inner := fmt.Errorf("connection reset")

	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"ProviderError", ErrProviderError(inner), "PROVIDER_ERROR", 502},
		{"ProviderTimeout", ErrProviderTimeout(inner), "PROVIDER_TIMEOUT", 504},
		{"ProviderUnavailable", ErrProviderUnavailable(inner), "PROVIDER_UNAVAILABLE", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.True(t, errors.Is(tt.err, inner))
		})
	}
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	err := InternalError(inner)
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}
