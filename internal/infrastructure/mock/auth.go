// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mock provides mock implementations for testing purposes.
package mock

import (
	"context"
	"log/slog"
	"os"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// MockAuthService provides a mock implementation of the authentication service
type MockAuthService struct{}

// ParsePrincipal ignores the token and returns the principal configured
// through the JWT_AUTH_DISABLED_MOCK_LOCAL_* environment variables
func (m *MockAuthService) ParsePrincipal(ctx context.Context, token string) (*model.Principal, error) {

	userID := os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_PRINCIPAL")

	if userID == "" {
		return nil, errors.NewUnauthorized("JWT_AUTH_DISABLED_MOCK_LOCAL_PRINCIPAL environment variable not set")
	}

	role := model.RoleSuperAdmin
	if raw := os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_ROLE"); raw != "" {
		role = model.ParseRole(raw)
	}

	principal := &model.Principal{
		UserID:        userID,
		Email:         os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_EMAIL"),
		Role:          role,
		InstitutionID: os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_INSTITUTION_ID"),
		Token:         token,
	}

	slog.DebugContext(ctx, "parsed principal",
		"user_id", principal.UserID,
		"role", principal.Role,
	)

	return principal, nil
}

// NewMockAuthService creates a new mock authentication service
func NewMockAuthService() port.Authenticator {
	return &MockAuthService{}
}
