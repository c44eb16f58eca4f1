// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// CommentRequestReader defines the interface for comment request read operations
type CommentRequestReader interface {
	GetCommentRequest(ctx context.Context, id string) (*model.CommentRequest, error)
	ListCommentRequests(ctx context.Context, filter model.CommentRequestFilter) ([]*model.CommentRequest, error)
}

// CommentRequestWriter defines the interface for comment request write operations.
// Implementations persist only; state machine checks happen before these are called.
type CommentRequestWriter interface {
	InviteInstitutions(ctx context.Context, invitation *model.InstitutionInvitation) ([]*model.CommentRequest, error)
	InvitePeople(ctx context.Context, invitation *model.PersonalInvitation) ([]*model.CommentRequest, error)
	AcceptCommentRequest(ctx context.Context, acceptance *model.Acceptance) (*model.CommentRequest, error)
	RejectCommentRequest(ctx context.Context, rejection *model.Rejection) (*model.CommentRequest, error)
}
