// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// DraftReader defines the interface for draft read operations
type DraftReader interface {
	ListDrafts(ctx context.Context, filter model.DraftFilter) (*model.DraftPage, error)
	GetDraft(ctx context.Context, id string) (*model.Draft, error)
}

// DraftWriter defines the interface for draft write operations
type DraftWriter interface {
	UpdateDraft(ctx context.Context, draft *model.Draft) (*model.Draft, error)
	// RejectCommentOpening declines a draft owner's request to open the draft for comment
	RejectCommentOpening(ctx context.Context, rejection *model.OpeningRejection) error
}
