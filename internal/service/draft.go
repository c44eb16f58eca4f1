// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// DraftReader lists and reads drafts on behalf of a principal
type DraftReader interface {
	// ListDrafts returns a page of drafts; private drafts are hidden from guests
	ListDrafts(ctx context.Context, principal *model.Principal, filter model.DraftFilter) (*model.DraftPage, error)
	// GetDraft returns NotFound for private drafts when the principal is a guest
	GetDraft(ctx context.Context, principal *model.Principal, id string) (*model.Draft, error)
}

// DraftWriter edits drafts and declines comment-opening requests
type DraftWriter interface {
	// UpdateDraft is allowed to uploaders and approvers of the owning institution, and to super admins
	UpdateDraft(ctx context.Context, principal *model.Principal, draft *model.Draft) (*model.Draft, error)
	// RejectCommentOpening declines a request to open a draft for comment
	RejectCommentOpening(ctx context.Context, draftID, message string) error
}

// draftOrchestratorOption defines a function type for setting options
type draftOrchestratorOption func(*draftOrchestrator)

// WithDraftReader sets the backend draft reader
func WithDraftReader(reader port.DraftReader) draftOrchestratorOption {
	return func(d *draftOrchestrator) {
		d.reader = reader
	}
}

// WithDraftWriter sets the backend draft writer
func WithDraftWriter(writer port.DraftWriter) draftOrchestratorOption {
	return func(d *draftOrchestrator) {
		d.writer = writer
	}
}

type draftOrchestrator struct {
	reader port.DraftReader
	writer port.DraftWriter
}

// NewDraftReaderOrchestrator creates a new draft reader using the option pattern
func NewDraftReaderOrchestrator(opts ...draftOrchestratorOption) DraftReader {
	return newDraftOrchestrator(opts...)
}

// NewDraftWriterOrchestrator creates a new draft writer using the option pattern
func NewDraftWriterOrchestrator(opts ...draftOrchestratorOption) DraftWriter {
	return newDraftOrchestrator(opts...)
}

func newDraftOrchestrator(opts ...draftOrchestratorOption) *draftOrchestrator {
	d := &draftOrchestrator{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListDrafts returns a page of drafts visible to the principal
func (o *draftOrchestrator) ListDrafts(ctx context.Context, principal *model.Principal, filter model.DraftFilter) (*model.DraftPage, error) {
	if filter.Page < 0 {
		return nil, errors.NewValidation("page must not be negative")
	}

	page, err := o.reader.ListDrafts(ctx, filter)
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Draft, 0, len(page.Drafts))
	for _, d := range page.Drafts {
		if d.VisibleTo(principal) {
			visible = append(visible, d)
		}
	}
	hidden := len(page.Drafts) - len(visible)
	if hidden > 0 {
		slog.DebugContext(ctx, "private drafts hidden from principal", "hidden", hidden)
	}

	return &model.DraftPage{
		Drafts:      visible,
		Total:       max(page.Total-hidden, len(visible)),
		CurrentPage: page.CurrentPage,
	}, nil
}

// GetDraft returns a draft visible to the principal
func (o *draftOrchestrator) GetDraft(ctx context.Context, principal *model.Principal, id string) (*model.Draft, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidation("draft id is required")
	}

	d, err := o.reader.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.VisibleTo(principal) {
		return nil, errors.NewNotFound(fmt.Sprintf("draft %s not found", id))
	}
	return d, nil
}

// UpdateDraft saves a draft edit after checking the principal may edit it
func (o *draftOrchestrator) UpdateDraft(ctx context.Context, principal *model.Principal, draft *model.Draft) (*model.Draft, error) {
	if err := draft.ValidateForUpdate(); err != nil {
		return nil, err
	}

	current, err := o.reader.GetDraft(ctx, draft.ID)
	if err != nil {
		return nil, err
	}
	if err := canEditDraft(principal, current); err != nil {
		slog.WarnContext(ctx, "draft edit refused",
			"draft_id", draft.ID,
			"role", principal.EffectiveRole(),
		)
		return nil, err
	}
	if draft.InstitutionID != current.InstitutionID && principal.EffectiveRole() != model.RoleSuperAdmin {
		return nil, errors.NewForbidden("only a super admin can move a draft to another institution")
	}

	updated, err := o.writer.UpdateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "draft updated", "draft_id", updated.ID)
	return updated, nil
}

// canEditDraft allows super admins, and uploaders or approvers of the owning institution
func canEditDraft(principal *model.Principal, d *model.Draft) error {
	switch principal.EffectiveRole() {
	case model.RoleSuperAdmin:
		return nil
	case model.RoleUploader, model.RoleApprover:
		if principal.BelongsTo(d.InstitutionID) {
			return nil
		}
		return errors.NewForbidden(fmt.Sprintf("draft %s belongs to another institution", d.ID))
	default:
		return errors.NewForbidden("only uploaders and approvers can edit drafts")
	}
}

// RejectCommentOpening declines a request to open a draft for comment
func (o *draftOrchestrator) RejectCommentOpening(ctx context.Context, draftID, message string) error {
	rejection := &model.OpeningRejection{
		DraftID: strings.TrimSpace(draftID),
		Message: strings.TrimSpace(message),
	}
	if rejection.DraftID == "" {
		return errors.NewValidation("draft id is required")
	}
	if rejection.Message == "" {
		return errors.NewValidation("rejection message is required")
	}

	if err := o.writer.RejectCommentOpening(ctx, rejection); err != nil {
		slog.ErrorContext(ctx, "failed to reject comment opening",
			"error", err,
			"draft_id", rejection.DraftID,
		)
		return err
	}

	slog.InfoContext(ctx, "comment opening rejected", "draft_id", rejection.DraftID)
	return nil
}
