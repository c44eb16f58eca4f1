// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// DirectoryWriter defines directory maintenance: new institutions and
// accounts, region renames and account edits
type DirectoryWriter interface {
	CreateInstitution(ctx context.Context, institution *model.Institution) (*model.Institution, error)
	UpdateRegion(ctx context.Context, region *model.Region) (*model.Region, error)
	CreateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error)
	UpdateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error)
}
