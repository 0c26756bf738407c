// Package provider implements the ports.ProviderAdapter contract (§4.B)
// for each payment processor the gateway dispatches to: MonCash,
// NatCash, and Stripe.
package provider

import (
	"context"
	"net/http"
	"time"

	"secure-payment-gateway/config"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// requestTimeout bounds every provider HTTP call except token fetches.
const requestTimeout = 30 * time.Second

// tokenFetchTimeout bounds the OAuth2 client-credentials exchange.
const tokenFetchTimeout = 10 * time.Second

// newHTTPClient builds the HTTP client that the MonCash and NatCash
// adapters each create in their constructor; Stripe calls go through
// stripe-go's own backend instead.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// oauthToken fetches (and caches via tokenCache) an access token for the
// given channel using client-credentials. TTL is expires_in minus a
// 60-second safety margin (§4.C). Concurrent misses may each fetch;
// last writer wins since tokens are interchangeable.
func oauthToken(ctx context.Context, channel domain.Channel, cc *clientcredentials.Config, tokenCache ports.TokenCacheService) (string, error) {
	if cached, err := tokenCache.Get(ctx, channel); err == nil && cached != nil {
		return cached.AccessToken, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, tokenFetchTimeout)
	defer cancel()

	tok, err := cc.Token(fetchCtx)
	if err != nil {
		if fetchCtx.Err() != nil {
			return "", apperror.ErrProviderTimeout(err)
		}
		return "", apperror.ErrProviderError(err)
	}

	expiresAt := tok.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(time.Hour)
	}
	record := &domain.ProviderTokenRecord{
		Provider:    channel,
		AccessToken: tok.AccessToken,
		ExpiresAt:   expiresAt.Add(-60 * time.Second),
	}
	_ = tokenCache.Set(ctx, record) // best-effort; a cache miss just means re-fetch next call

	return tok.AccessToken, nil
}

// newClientCredentials builds an oauth2 client-credentials config for a
// provider whose token endpoint expects HTTP Basic auth (MonCash,
// NatCash per §4.B).
func newClientCredentials(creds config.ProviderCredentials, tokenURL string) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
}
