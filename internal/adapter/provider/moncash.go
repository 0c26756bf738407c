package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"secure-payment-gateway/config"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"golang.org/x/oauth2/clientcredentials"
)

// MonCashAdapter implements ports.ProviderAdapter for MonCash (§4.B).
type MonCashAdapter struct {
	cc         *clientcredentials.Config
	httpClient *http.Client
	tokenCache ports.TokenCacheService
	baseURL    string
}

// NewMonCashAdapter creates a new MonCash adapter.
func NewMonCashAdapter(creds config.ProviderCredentials, tokenCache ports.TokenCacheService) *MonCashAdapter {
	return &MonCashAdapter{
		cc:         newClientCredentials(creds, creds.BaseURL+"/Api/oauth/token"),
		httpClient: newHTTPClient(),
		tokenCache: tokenCache,
		baseURL:    creds.BaseURL,
	}
}

func (a *MonCashAdapter) Channel() domain.Channel { return domain.ChannelMonCash }

type monCashCreateResponse struct {
	PaymentToken struct {
		Token string `json:"token"`
	} `json:"payment_token"`
}

// monCashTokenPayload is the payload segment of the JWT MonCash returns;
// the gateway only reads it as a return-value transport, it never
// verifies it as an auth credential (§4.B).
type monCashTokenPayload struct {
	ID  string `json:"id"`
	Ref string `json:"ref"`
}

func (a *MonCashAdapter) CreatePayment(ctx context.Context, payment *domain.Payment) (ports.ProviderCreateResult, error) {
	token, err := oauthToken(ctx, domain.ChannelMonCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderCreateResult{}, err
	}

	reqBody, _ := json.Marshal(map[string]any{
		"amount":  a.amountForWire(payment),
		"orderId": payment.Reference,
	})

	resp, err := a.do(ctx, token, http.MethodPost, "/Api/v1/CreatePayment", reqBody)
	if err != nil {
		return ports.ProviderCreateResult{}, err
	}
	defer resp.Body.Close()

	var out monCashCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderCreateResult{}, apperror.ErrProviderError(fmt.Errorf("decode create response: %w", err))
	}

	payload, err := decodeJWTPayload(out.PaymentToken.Token)
	if err != nil {
		return ports.ProviderCreateResult{}, apperror.ErrProviderError(err)
	}

	return ports.ProviderCreateResult{
		ProviderTransactionID: payload.ID,
		RedirectURL:           fmt.Sprintf("%s/Moncash-middleware/Checkout/Payment/Redirect?token=%s", a.baseURL, out.PaymentToken.Token),
	}, nil
}

func (a *MonCashAdapter) GetStatus(ctx context.Context, providerTransactionID string) (ports.ProviderStatusResult, error) {
	token, err := oauthToken(ctx, domain.ChannelMonCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderStatusResult{}, err
	}

	reqBody, _ := json.Marshal(map[string]any{"transactionId": providerTransactionID})
	resp, err := a.do(ctx, token, http.MethodPost, "/Api/v1/RetrieveTransactionPayment", reqBody)
	if err != nil {
		return ports.ProviderStatusResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Message struct {
			TransactionID string `json:"transaction_id"`
			Message       string `json:"message"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderStatusResult{}, apperror.ErrProviderError(fmt.Errorf("decode status response: %w", err))
	}

	if out.Message.TransactionID == providerTransactionID {
		return ports.ProviderStatusResult{Status: domain.PaymentStatusCompleted}, nil
	}
	return ports.ProviderStatusResult{Status: domain.PaymentStatusFailed, FailureReason: out.Message.Message}, nil
}

func (a *MonCashAdapter) Refund(ctx context.Context, providerTransactionID string, currency domain.Currency, refundAmount string) (ports.ProviderRefundResult, error) {
	token, err := oauthToken(ctx, domain.ChannelMonCash, a.cc, a.tokenCache)
	if err != nil {
		return ports.ProviderRefundResult{}, err
	}

	reqBody, _ := json.Marshal(map[string]any{
		"transactionId": providerTransactionID,
		"amount":        refundAmount,
	})
	resp, err := a.do(ctx, token, http.MethodPost, "/Api/v1/RefundPayment", reqBody)
	if err != nil {
		return ports.ProviderRefundResult{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Message struct {
			TransactionID string `json:"transaction_id"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.ProviderRefundResult{}, apperror.ErrProviderError(fmt.Errorf("decode refund response: %w", err))
	}
	return ports.ProviderRefundResult{ProviderRefundID: out.Message.TransactionID}, nil
}

// VerifyCallback authenticates a MonCash callback structurally: there is
// no HMAC on MonCash callbacks, so authenticity is established by the
// presence of transactionId, orderId, and a numeric amount (§4.B).
func (a *MonCashAdapter) VerifyCallback(ctx context.Context, headers map[string]string, body []byte) (ports.ProviderCallbackResult, error) {
	var payload struct {
		TransactionID string  `json:"transactionId"`
		OrderID       string  `json:"orderId"`
		Amount        float64 `json:"amount"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("malformed moncash callback body")
	}
	if payload.TransactionID == "" || payload.OrderID == "" || payload.Amount <= 0 {
		return ports.ProviderCallbackResult{}, apperror.ErrValidation("missing transactionId, orderId, or amount")
	}

	return ports.ProviderCallbackResult{
		ProviderTransactionID: payload.TransactionID,
		Status:                domain.PaymentStatusCompleted,
	}, nil
}

func (a *MonCashAdapter) amountForWire(payment *domain.Payment) string {
	return payment.ProviderAmount().StringFixed(2)
}

func (a *MonCashAdapter) do(ctx context.Context, token, method, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, bytes.NewReader(body))
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
		return nil, apperror.ErrProviderError(fmt.Errorf("moncash returned %d", resp.StatusCode))
	}
	return resp, nil
}

func decodeJWTPayload(token string) (monCashTokenPayload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return monCashTokenPayload{}, fmt.Errorf("malformed payment_token: expected 3 JWT segments, got %d", len(parts))
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return monCashTokenPayload{}, fmt.Errorf("decode jwt payload: %w", err)
	}
	var payload monCashTokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return monCashTokenPayload{}, fmt.Errorf("unmarshal jwt payload: %w", err)
	}
	return payload, nil
}
