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
	"github.com/econsultation/econsultation-service/pkg/concurrent"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// CommenterAssignmentWriter assigns commenters to accepted comment requests
type CommenterAssignmentWriter interface {
	// AssignCommenters records the commenters of an accepted request and notifies each of them
	AssignCommenters(ctx context.Context, requestID string, commenterIDs []string, message string) (*model.CommenterAssignment, error)
	// GetAssignment returns the current assignment of a request
	GetAssignment(ctx context.Context, requestID string) (*model.CommenterAssignment, error)
}

// commenterAssignmentWriterOrchestratorOption defines a function type for setting options
type commenterAssignmentWriterOrchestratorOption func(*commenterAssignmentWriterOrchestrator)

// WithAssignmentWriter sets the backend assignment writer
func WithAssignmentWriter(writer port.AssignmentWriter) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.writer = writer
	}
}

// WithAssignmentReader sets the backend assignment reader
func WithAssignmentReader(reader port.AssignmentReader) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.assignments = reader
	}
}

// WithAssignmentRequestReader sets the reader used to load the comment request
func WithAssignmentRequestReader(reader port.CommentRequestReader) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.requests = reader
	}
}

// WithAssignmentDirectory sets the directory used to check institution membership
func WithAssignmentDirectory(directory port.DirectoryReader) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.directory = directory
	}
}

// WithAssignmentNotifier sets the notifier for assigned commenters
func WithAssignmentNotifier(notifier port.Notifier) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.notifier = notifier
	}
}

// WithAssignmentMetrics sets the workflow metrics
func WithAssignmentMetrics(metrics *WorkflowMetrics) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.metrics = metrics
	}
}

// WithNotificationWorkers bounds how many commenter notifications are sent at once
func WithNotificationWorkers(workers int) commenterAssignmentWriterOrchestratorOption {
	return func(w *commenterAssignmentWriterOrchestrator) {
		w.workers = workers
	}
}

type commenterAssignmentWriterOrchestrator struct {
	writer      port.AssignmentWriter
	assignments port.AssignmentReader
	requests    port.CommentRequestReader
	directory   port.DirectoryReader
	notifier    port.Notifier // May be nil when notifications are disabled
	metrics     *WorkflowMetrics
	workers     int
}

// NewCommenterAssignmentWriterOrchestrator creates a new assignment orchestrator using the option pattern
func NewCommenterAssignmentWriterOrchestrator(opts ...commenterAssignmentWriterOrchestratorOption) CommenterAssignmentWriter {
	uc := &commenterAssignmentWriterOrchestrator{workers: defaultNotificationWorkers}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AssignCommenters assigns commenters to an accepted request
func (o *commenterAssignmentWriterOrchestrator) AssignCommenters(ctx context.Context, requestID string, commenterIDs []string, message string) (*model.CommenterAssignment, error) {
	assignment := &model.CommenterAssignment{
		CommentRequestID: strings.TrimSpace(requestID),
		CommenterIDs:     commenterIDs,
		Message:          message,
	}
	if err := assignment.Validate(); err != nil {
		return nil, err
	}

	cr, err := o.requests.GetCommentRequest(ctx, assignment.CommentRequestID)
	if err != nil {
		return nil, err
	}
	cr.Normalize()
	if cr.State != model.RequestStateAccepted {
		return nil, errors.NewInvalidState(fmt.Sprintf("comment request %s is %s; commenters can only be assigned to an accepted request", cr.ID, cr.State))
	}

	// commenters of an institution request must belong to that institution
	var members map[string]*model.User
	if !cr.IsPersonal && cr.InstitutionID != "" {
		users, err := o.directory.ListUsersByInstitution(ctx, cr.InstitutionID)
		if err != nil {
			return nil, err
		}
		members = make(map[string]*model.User, len(users))
		for _, u := range users {
			members[u.ID] = u
		}

		var outsiders []string
		for _, id := range assignment.CommenterIDs {
			if _, ok := members[id]; !ok {
				outsiders = append(outsiders, id)
			}
		}
		if len(outsiders) > 0 {
			return nil, errors.NewValidation(fmt.Sprintf("commenters %s do not belong to institution %s",
				strings.Join(outsiders, ", "), cr.InstitutionID))
		}
	}

	created, err := o.writer.AssignCommenters(ctx, assignment)
	if err != nil {
		slog.ErrorContext(ctx, "failed to assign commenters",
			"error", err,
			"comment_request_id", assignment.CommentRequestID,
		)
		return nil, err
	}
	if created.CommentRequestID == "" {
		created.CommentRequestID = assignment.CommentRequestID
	}

	slog.InfoContext(ctx, "commenters assigned",
		"comment_request_id", created.CommentRequestID,
		"commenter_count", len(created.CommenterIDs),
	)

	o.notifyCommenters(ctx, cr, created, members)
	return created, nil
}

// notifyCommenters sends one notification per commenter concurrently.
// Delivery failures are logged by notify and do not affect the others.
func (o *commenterAssignmentWriterOrchestrator) notifyCommenters(ctx context.Context, cr *model.CommentRequest, assignment *model.CommenterAssignment, members map[string]*model.User) {
	if o.notifier == nil {
		return
	}

	_ = concurrent.RunEach(ctx, o.workers, assignment.CommenterIDs, func(ctx context.Context, commenterID string) error {
		recipient := commenterID
		if u, ok := members[commenterID]; ok && u.Email != "" {
			recipient = u.Email
		}
		notify(ctx, o.notifier, o.metrics, model.NewNotification(ctx,
			model.NotificationCommenterAssigned,
			constants.CommenterAssignedSubject,
			recipient,
			model.CommenterAssignedEvent{
				CommentRequestID: assignment.CommentRequestID,
				DraftID:          cr.DraftID,
				CommenterID:      commenterID,
				Message:          assignment.Message,
			},
		))
		return nil
	})
}

// GetAssignment returns the current assignment of a request
func (o *commenterAssignmentWriterOrchestrator) GetAssignment(ctx context.Context, requestID string) (*model.CommenterAssignment, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, errors.NewValidation("comment request id is required")
	}
	return o.assignments.GetAssignment(ctx, requestID)
}
