// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// JWTAuth validates HS256 tokens signed with a shared secret
type JWTAuth struct {
	secret []byte
	parser *jwt.Parser
}

var _ port.Authenticator = (*JWTAuth)(nil)

// NewJWTAuth creates an HMAC authenticator
func NewJWTAuth(config JWTAuthConfig) (*JWTAuth, error) {
	if config.Secret == "" {
		return nil, errors.NewValidation("JWT secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(config.ClockSkew),
		jwt.WithExpirationRequired(),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}

	return &JWTAuth{
		secret: []byte(config.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// ParsePrincipal validates the token and returns its principal
func (a *JWTAuth) ParsePrincipal(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, errors.NewUnauthorized("bearer token is required")
	}

	claims := &hmacClaims{}
	_, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		slog.DebugContext(ctx, "token rejected", "error", err, "expired", stderrors.Is(err, jwt.ErrTokenExpired))
		return nil, errors.NewUnauthorized("invalid or expired token", err)
	}
	if err := claims.PortalClaims.Validate(ctx); err != nil {
		return nil, err
	}

	return claims.principal(claims.Subject, token)
}
