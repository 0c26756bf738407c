// Package refgen generates opaque, URL-safe reference identifiers
// (§4.A): payment references, transaction references, and API key
// material, each prefixed by kind so they're visually distinguishable
// in logs and support tickets.
package refgen

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	payloadLen       = 21 // ~125 bits of entropy over a 62-symbol alphabet
	secretPayloadLen = 32
)

// New generates a prefixed reference with the standard 21-char payload.
func New(prefix string) string {
	return prefix + random(payloadLen)
}

// NewSecret generates a prefixed reference with the longer 32-char
// payload used for API secrets (sk_*).
func NewSecret(prefix string) string {
	return prefix + random(secretPayloadLen)
}

func random(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Errorf("refgen: reading random bytes: %w", err))
	}
	out := make([]byte, n)
	for i, v := range b {
		out[i] = alphabet[int(v)%len(alphabet)]
	}
	return string(out)
}
