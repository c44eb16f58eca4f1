// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// JWKSAuth validates RS256 tokens against a cached remote key set
type JWKSAuth struct {
	validator *validator.Validator
}

var _ port.Authenticator = (*JWKSAuth)(nil)

// NewJWKSAuth creates an authenticator backed by the configured JWKS endpoint
func NewJWKSAuth(config JWTAuthConfig) (*JWKSAuth, error) {
	if config.JWKSURL == "" || config.Issuer == "" {
		return nil, errors.NewValidation("JWKS URL and issuer are required")
	}
	jwksURL, err := url.Parse(config.JWKSURL)
	if err != nil {
		return nil, errors.NewValidation("invalid JWKS URL", err)
	}
	issuerURL, err := url.Parse(config.Issuer)
	if err != nil {
		return nil, errors.NewValidation("invalid issuer URL", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, config.CacheTTL, jwks.WithCustomJWKSURI(jwksURL))

	var audience []string
	if config.Audience != "" {
		audience = []string{config.Audience}
	}

	v, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		config.Issuer,
		audience,
		validator.WithCustomClaims(func() validator.CustomClaims { return &PortalClaims{} }),
		validator.WithAllowedClockSkew(config.ClockSkew),
	)
	if err != nil {
		return nil, errors.NewValidation("failed to set up JWT validator", err)
	}

	return &JWKSAuth{validator: v}, nil
}

// ParsePrincipal validates the token and returns its principal
func (a *JWKSAuth) ParsePrincipal(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, errors.NewUnauthorized("bearer token is required")
	}

	parsed, err := a.validator.ValidateToken(ctx, token)
	if err != nil {
		slog.DebugContext(ctx, "token rejected", "error", err)
		return nil, errors.NewUnauthorized("invalid or expired token", err)
	}

	validated, ok := parsed.(*validator.ValidatedClaims)
	if !ok {
		return nil, errors.NewUnexpected("unexpected claims type from validator")
	}
	claims, ok := validated.CustomClaims.(*PortalClaims)
	if !ok {
		return nil, errors.NewUnexpected("unexpected custom claims type from validator")
	}

	return claims.principal(validated.RegisteredClaims.Subject, token)
}
