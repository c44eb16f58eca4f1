// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// Authenticator turns a bearer token into a principal.
type Authenticator interface {
	// ParsePrincipal returns Unauthorized when the token is missing, malformed or expired
	ParsePrincipal(ctx context.Context, token string) (*model.Principal, error)
}
