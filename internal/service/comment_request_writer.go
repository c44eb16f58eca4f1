// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/concurrent"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/redaction"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

// CommentRequestWriter coordinates invitations and decisions on comment requests.
// Every state change is checked against the request state machine before the
// backend is called.
type CommentRequestWriter interface {
	// CreateInstitutionInvitation invites institutions to comment; one pending request per institution
	CreateInstitutionInvitation(ctx context.Context, draftID string, institutionIDs []string, remark string) ([]*model.CommentRequest, error)
	// CreatePersonalInvitation invites individuals by email
	CreatePersonalInvitation(ctx context.Context, draftID string, emails []string, remark string) ([]*model.CommentRequest, error)
	// AcceptRequest accepts a pending request and opens the draft for comment between the two dates
	AcceptRequest(ctx context.Context, requestID, openingDate, closingDate, remark string) (*model.CommentRequest, error)
	// RejectRequest rejects a pending request
	RejectRequest(ctx context.Context, requestID, reason string) (*model.CommentRequest, error)
}

// commentRequestWriterOrchestratorOption defines a function type for setting options
type commentRequestWriterOrchestratorOption func(*commentRequestWriterOrchestrator)

// WithCommentRequestWriter sets the backend writer
func WithCommentRequestWriter(writer port.CommentRequestWriter) commentRequestWriterOrchestratorOption {
	return func(w *commentRequestWriterOrchestrator) {
		w.writer = writer
	}
}

// WithCommentRequestWriterReader sets the reader used to load requests before a decision
func WithCommentRequestWriterReader(reader port.CommentRequestReader) commentRequestWriterOrchestratorOption {
	return func(w *commentRequestWriterOrchestrator) {
		w.reader = reader
	}
}

// WithCommentRequestNotifier sets the notifier for invitation and decision events
func WithCommentRequestNotifier(notifier port.Notifier) commentRequestWriterOrchestratorOption {
	return func(w *commentRequestWriterOrchestrator) {
		w.notifier = notifier
	}
}

// WithCommentRequestMetrics sets the workflow metrics
func WithCommentRequestMetrics(metrics *WorkflowMetrics) commentRequestWriterOrchestratorOption {
	return func(w *commentRequestWriterOrchestrator) {
		w.metrics = metrics
	}
}

type commentRequestWriterOrchestrator struct {
	writer   port.CommentRequestWriter
	reader   port.CommentRequestReader
	notifier port.Notifier // May be nil when notifications are disabled
	metrics  *WorkflowMetrics
}

// NewCommentRequestWriterOrchestrator creates a new writer orchestrator using the option pattern
func NewCommentRequestWriterOrchestrator(opts ...commentRequestWriterOrchestratorOption) CommentRequestWriter {
	uc := &commentRequestWriterOrchestrator{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateInstitutionInvitation invites institutions to comment on a draft
func (o *commentRequestWriterOrchestrator) CreateInstitutionInvitation(ctx context.Context, draftID string, institutionIDs []string, remark string) ([]*model.CommentRequest, error) {
	invitation := &model.InstitutionInvitation{
		DraftID:        strings.TrimSpace(draftID),
		InstitutionIDs: institutionIDs,
		Remark:         remark,
	}
	if err := invitation.Validate(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "executing institution invitation use case",
		"draft_id", invitation.DraftID,
		"institution_ids", invitation.InstitutionIDs,
	)

	requests, err := o.writer.InviteInstitutions(ctx, invitation)
	if err != nil {
		slog.ErrorContext(ctx, "failed to invite institutions",
			"error", err,
			"draft_id", invitation.DraftID,
		)
		return nil, err
	}

	o.created(ctx, requests, false)
	return requests, nil
}

// CreatePersonalInvitation invites individuals to comment on a draft
func (o *commentRequestWriterOrchestrator) CreatePersonalInvitation(ctx context.Context, draftID string, emails []string, remark string) ([]*model.CommentRequest, error) {
	invitation := &model.PersonalInvitation{
		DraftID: strings.TrimSpace(draftID),
		Emails:  emails,
		Remark:  remark,
	}
	if err := invitation.Validate(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "executing personal invitation use case",
		"draft_id", invitation.DraftID,
		"emails", redaction.RedactEmails(invitation.Emails),
	)

	requests, err := o.writer.InvitePeople(ctx, invitation)
	if err != nil {
		slog.ErrorContext(ctx, "failed to invite people",
			"error", err,
			"draft_id", invitation.DraftID,
		)
		return nil, err
	}

	o.created(ctx, requests, true)
	return requests, nil
}

// created normalises new requests and announces them to their recipients
func (o *commentRequestWriterOrchestrator) created(ctx context.Context, requests []*model.CommentRequest, personal bool) {
	for _, cr := range requests {
		cr.Normalize()
	}
	o.metrics.invited(ctx, personal, len(requests))

	if o.notifier == nil {
		return
	}
	_ = concurrent.RunEach(ctx, defaultNotificationWorkers, requests, func(ctx context.Context, cr *model.CommentRequest) error {
		notify(ctx, o.notifier, o.metrics, model.NewNotification(ctx,
			model.NotificationInvitationCreated,
			constants.InvitationCreatedSubject,
			cr.Target(),
			model.InvitationCreatedEvent{CommentRequest: cr},
		))
		return nil
	})
}

// AcceptRequest accepts a pending comment request
func (o *commentRequestWriterOrchestrator) AcceptRequest(ctx context.Context, requestID, openingDate, closingDate, remark string) (*model.CommentRequest, error) {
	cr, err := o.loadForTransition(ctx, requestID, model.RequestStateAccepted)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateDateRange(openingDate, closingDate); err != nil {
		return nil, err
	}

	accepted, err := o.writer.AcceptCommentRequest(ctx, &model.Acceptance{
		CommentRequestID:   cr.ID,
		DraftID:            cr.DraftID,
		InstitutionID:      cr.InstitutionID,
		CommentOpeningDate: openingDate,
		CommentClosingDate: closingDate,
		Remark:             remark,
	})
	if err != nil {
		slog.ErrorContext(ctx, "backend refused to accept comment request",
			"error", err,
			"comment_request_id", cr.ID,
		)
		return nil, err
	}

	return o.decided(ctx, cr, accepted, model.RequestStateAccepted), nil
}

// RejectRequest rejects a pending comment request
func (o *commentRequestWriterOrchestrator) RejectRequest(ctx context.Context, requestID, reason string) (*model.CommentRequest, error) {
	cr, err := o.loadForTransition(ctx, requestID, model.RequestStateRejected)
	if err != nil {
		return nil, err
	}

	rejected, err := o.writer.RejectCommentRequest(ctx, &model.Rejection{
		CommentRequestID: cr.ID,
		Message:          reason,
	})
	if err != nil {
		slog.ErrorContext(ctx, "backend refused to reject comment request",
			"error", err,
			"comment_request_id", cr.ID,
		)
		return nil, err
	}

	return o.decided(ctx, cr, rejected, model.RequestStateRejected), nil
}

// loadForTransition reads the current request and checks the state machine
// allows next. It returns InvalidState when it does not.
func (o *commentRequestWriterOrchestrator) loadForTransition(ctx context.Context, requestID string, next model.RequestState) (*model.CommentRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, errors.NewValidation("comment request id is required")
	}

	cr, err := o.reader.GetCommentRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cr.Normalize()

	candidate := *cr
	if err := candidate.Transition(next); err != nil {
		slog.WarnContext(ctx, "comment request transition refused",
			"comment_request_id", cr.ID,
			"state", cr.State,
			"requested_state", next,
		)
		return nil, err
	}
	return cr, nil
}

// decided completes the result the backend returned, records the transition
// and publishes the decision.
func (o *commentRequestWriterOrchestrator) decided(ctx context.Context, before, after *model.CommentRequest, state model.RequestState) *model.CommentRequest {
	if after == nil {
		after = before
	}
	result := *after
	if result.ID == "" {
		result.ID = before.ID
	}
	if result.DraftID == "" {
		result.DraftID = before.DraftID
	}
	if result.Target() == "" {
		result.InstitutionID, result.Email, result.IsPersonal = before.InstitutionID, before.Email, before.IsPersonal
	}
	// the backend acknowledged the decision even if its echo lags behind
	result.State = state

	o.metrics.transition(ctx, before.State, state)

	slog.InfoContext(ctx, "comment request decided",
		"comment_request_id", result.ID,
		"draft_id", result.DraftID,
		"state", result.State,
	)

	notify(ctx, o.notifier, o.metrics, model.NewNotification(ctx,
		model.NotificationRequestDecided,
		constants.CommentRequestDecidedSubject,
		result.Target(),
		model.RequestDecidedEvent{CommentRequest: &result, DecidedBy: decidedBy(ctx)},
	))

	return &result
}
