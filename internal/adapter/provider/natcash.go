package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"secure-payment-gateway/config"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"golang.org/x/oauth2/clientcredentials"
)

// NatCashAdapter implements ports.ProviderAdapter for NatCash (§4.B).
type NatCashAdapter struct {
	cc          *clientcredentials.Config
	httpClient  *http.Client
	tokenCache  ports.TokenCacheService
	baseURL     string
	callbackURL string
}

// NewNatCashAdapter creates a new NatCash adapter. callbackURL is the
// gateway's own inbound callback endpoint, passed to NatCash at
// create-time per its API (§4.B).
func NewNatCashAdapter(creds config.ProviderCredentials, callbackURL string, tokenCache ports.TokenCacheService) *NatCashAdapter {
	return &NatCashAdapter{
		cc:          newClientCredentials(creds, creds.BaseURL+"/oauth/token"),
		httpClient:  newHTTPClient(),
		tokenCache:  tokenCache,
		baseURL:     creds.BaseURL,
		callbackURL: callbackURL,
	}
}

func (a *NatCashAdapter) Channel() domain.Channel { return domain.ChannelNatCash }

func (a *NatCashAdapter) CreatePayment(ctx context.Context, payment *domain.Payment) (ports.ProviderCreateResult, error) {
	token, err := oauthToken(ctx, domain.ChannelNatCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderCreateResult{}, err
	}

	reqBody, _ := json.Marshal(map[string]any{
		"amount":      payment.ProviderAmount().StringFixed(2),
		"orderId":     payment.Reference,
		"callbackUrl": a.callbackURL,
		"phone":       payment.CustomerPhone,
		"email":       payment.CustomerEmail,
	})

	resp, err := a.do(ctx, token, http.MethodPost, "/api/v1/payment/create", reqBody)
	if err != nil {
		return ports.ProviderCreateResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		TransactionID string `json:"transactionId"`
		RedirectURL   string `json:"redirectUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderCreateResult{}, apperror.ErrProviderError(fmt.Errorf("decode create response: %w", err))
	}

	return ports.ProviderCreateResult{
		ProviderTransactionID: out.TransactionID,
		RedirectURL:           out.RedirectURL,
	}, nil
}

// natCashStatus maps NatCash's provider status enum onto the gateway's
// PaymentStatus (§4.B).
func natCashStatus(raw string) domain.PaymentStatus {
	switch raw {
	case "SUCCESS":
		return domain.PaymentStatusCompleted
	case "PENDING":
		return domain.PaymentStatusPending
	case "CANCELLED":
		return domain.PaymentStatusFailed
	default:
		return domain.PaymentStatusFailed
	}
}

func (a *NatCashAdapter) GetStatus(ctx context.Context, providerTransactionID string) (ports.ProviderStatusResult, error) {
	token, err := oauthToken(ctx, domain.ChannelNatCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderStatusResult{}, err
	}

	resp, err := a.do(ctx, token, http.MethodGet, "/api/v1/payment/"+providerTransactionID, nil)
	if err != nil {
		return ports.ProviderStatusResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderStatusResult{}, apperror.ErrProviderError(fmt.Errorf("decode status response: %w", err))
	}

	return ports.ProviderStatusResult{Status: natCashStatus(out.Status), FailureReason: out.Reason}, nil
}

func (a *NatCashAdapter) Refund(ctx context.Context, providerTransactionID string, currency domain.Currency, refundAmount string) (ports.ProviderRefundResult, error) {
	token, err := oauthToken(ctx, domain.ChannelNatCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderRefundResult{}, err
	}

	reqBody, _ := json.Marshal(map[string]any{
		"transactionId": providerTransactionID,
		"amount":        refundAmount,
	})
	resp, err := a.do(ctx, token, http.MethodPost, "/api/v1/payment/refund", reqBody)
	if err != nil {
		return ports.ProviderRefundResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		RefundID string `json:"refundId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderRefundResult{}, apperror.ErrProviderError(fmt.Errorf("decode refund response: %w", err))
	}
	return ports.ProviderRefundResult{ProviderRefundID: out.RefundID}, nil
}

// VerifyCallback authenticates a NatCash callback structurally, the
// same shape as MonCash's (§4.B): no HMAC, presence and shape of the
// required fields is the authentication.
func (a *NatCashAdapter) VerifyCallback(ctx context.Context, headers map[string]string, body []byte) (ports.ProviderCallbackResult, error) {
	var payload struct {
		TransactionID string `json:"transactionId"`
		OrderID       string `json:"orderId"`
		Status        string `json:"status"`
		Reason        string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("malformed natcash callback body")
	}
	if payload.TransactionID == "" || payload.OrderID == "" || payload.Status == "" {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("missing transactionId, orderId, or status")
	}

	return ports.ProviderCallbackResult{
		ProviderTransactionID: payload.TransactionID,
		Status:                natCashStatus(payload.Status),
		FailureReason:         payload.Reason,
	}, nil
}

func (a *NatCashAdapter) do(ctx context.Context, token, method, path string, body []byte) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, apperror.ErrProviderError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperror.ErrProviderTimeout(err)
		}
		return nil, apperror.ErrProviderError(err)
	}
	if resp.StatusCode >= 500 {
		resp.Body.Close()
		return nil, apperror.ErrProviderError(fmt.Errorf("natcash returned %d", resp.StatusCode))
	}
	return resp, nil
}
