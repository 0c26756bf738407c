package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Code is
// the literal string clients key error handling off of — never
// renumbered (§7).
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // wrapped internal error, never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// ---- Authentication & authorization ----

func ErrAuthRequired() *AppError {
	return New("AUTH_REQUIRED", "authentication required", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized)
}

func ErrTokenExpired() *AppError {
	return New("TOKEN_EXPIRED", "token has expired", http.StatusUnauthorized)
}

func ErrTokenInvalid() *AppError {
	return New("TOKEN_INVALID", "token is invalid", http.StatusUnauthorized)
}

func ErrInsufficientPermissions() *AppError {
	return New("INSUFFICIENT_PERMISSIONS", "insufficient permissions", http.StatusForbidden)
}

func ErrAPIKeyInvalid() *AppError {
	return New("API_KEY_INVALID", "api key is invalid or revoked", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("RATE_LIMIT_EXCEEDED", "rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Request validation ----

func ErrValidation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

// ---- Payment lifecycle ----

func ErrPaymentNotFound() *AppError {
	return New("PAYMENT_NOT_FOUND", "payment not found", http.StatusNotFound)
}

func ErrPaymentExpired() *AppError {
	return New("PAYMENT_EXPIRED", "payment has expired", http.StatusGone)
}

func ErrRefundNotAllowed() *AppError {
	return New("REFUND_NOT_ALLOWED", "payment is not eligible for refund", http.StatusUnprocessableEntity)
}

func ErrRefundExceedsAmount() *AppError {
	return New("REFUND_EXCEEDS_AMOUNT", "refund amount exceeds outstanding balance", http.StatusUnprocessableEntity)
}

func ErrIdempotencyConflict() *AppError {
	return New("IDEMPOTENCY_CONFLICT", "idempotency key reused with a different request body", http.StatusConflict)
}

// ---- Provider dispatch ----

func ErrProviderError(err error) *AppError {
	return Wrap("PROVIDER_ERROR", "payment provider returned an error", http.StatusBadGateway, err)
}

func ErrProviderTimeout(err error) *AppError {
	return Wrap("PROVIDER_TIMEOUT", "payment provider timed out", http.StatusGatewayTimeout, err)
}

func ErrProviderUnavailable(err error) *AppError {
	return Wrap("PROVIDER_UNAVAILABLE", "payment provider is not configured or unreachable", http.StatusServiceUnavailable, err)
}

// ---- Catch-all ----

// InternalError wraps an internal error as INTERNAL_ERROR.
func InternalError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, err)
}
