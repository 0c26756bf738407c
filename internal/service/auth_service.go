package service

import (
	"context"
	"fmt"
	"time"

	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/refgen"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService: API key issuance for
// inbound payment requests, and JWT session issuance for the merchant
// dashboard.
type AuthServiceImpl struct {
	merchantRepo ports.MerchantRepository
	apiKeyRepo   ports.APIKeyRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	audit        ports.AuditService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	merchantRepo ports.MerchantRepository,
	apiKeyRepo ports.APIKeyRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	audit ports.AuditService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		merchantRepo: merchantRepo,
		apiKeyRepo:   apiKeyRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		audit:        audit,
	}
}

// IssueAPIKey mints a new pk_{env}_/sk_{env}_ key pair for a merchant.
// The plaintext secret is returned once and never again; only its
// Argon2id hash is persisted (§4.A).
func (s *AuthServiceImpl) IssueAPIKey(ctx context.Context, merchantID uuid.UUID, env domain.Environment) (string, string, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil {
		return "", "", apperror.ErrValidation("merchant not found")
	}

	keyID := refgen.New(fmt.Sprintf("pk_%s_", env))
	secret := refgen.NewSecret(fmt.Sprintf("sk_%s_", env))

	secretHash, err := s.hashSvc.Hash(secret)
	if err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("hash api secret: %w", err))
	}

	apiKey := &domain.APIKey{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		KeyID:       keyID,
		SecretHash:  secretHash,
		Environment: env,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("create api key: %w", err))
	}

	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		MerchantID:   &merchantID,
		Action:       domain.AuditActionAPIKeyIssued,
		ResourceType: "api_key",
		ResourceID:   keyID,
		CreatedAt:    apiKey.CreatedAt,
	})

	return keyID, secret, nil
}

// AuthenticateAPIKey verifies a pk_/sk_ credential pair presented on an
// inbound request and returns the owning, active merchant.
func (s *AuthServiceImpl) AuthenticateAPIKey(ctx context.Context, keyID, secret string) (*domain.Merchant, error) {
	apiKey, err := s.apiKeyRepo.GetByKeyID(ctx, keyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find api key: %w", err))
	}
	if apiKey == nil || apiKey.IsRevoked() {
		return nil, apperror.ErrAPIKeyInvalid()
	}

	valid, err := s.hashSvc.Verify(secret, apiKey.SecretHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify api secret: %w", err))
	}
	if !valid {
		return nil, apperror.ErrAPIKeyInvalid()
	}

	merchant, err := s.merchantRepo.GetByID(ctx, apiKey.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil || !merchant.IsActive() {
		return nil, apperror.ErrAPIKeyInvalid()
	}

	return merchant, nil
}

// Login issues a dashboard session JWT for a merchant that has already
// been authenticated upstream.
func (s *AuthServiceImpl) Login(ctx context.Context, merchantID uuid.UUID) (string, time.Time, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if !merchant.IsActive() {
		return "", time.Time{}, apperror.ErrInsufficientPermissions()
	}

	token, expiry, err := s.tokenSvc.Generate(merchant.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}
