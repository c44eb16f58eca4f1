// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package port defines the interfaces for external dependencies and adapters.
package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// DirectoryReader defines read-only directory lookups
type DirectoryReader interface {
	ListInstitutions(ctx context.Context) ([]*model.Institution, error)
	ListRegions(ctx context.Context) ([]*model.Region, error)
	ListSectors(ctx context.Context) ([]*model.Sector, error)
	// ListUsersByInstitution returns an empty slice, not an error, when the institution has no users
	ListUsersByInstitution(ctx context.Context, institutionID string) ([]*model.User, error)
	// ListCommenters returns the commenters of the caller's institution
	ListCommenters(ctx context.Context) ([]*model.User, error)
}
