package domain

import "time"

// ProviderTokenRecord is the ephemeral (provider) -> (access_token, expiry)
// cache entry of §3/§4.C.
type ProviderTokenRecord struct {
	Provider    Channel   `json:"provider"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid reports whether the cached token is still usable.
func (r *ProviderTokenRecord) Valid(now time.Time) bool {
	return r != nil && now.Before(r.ExpiresAt)
}
