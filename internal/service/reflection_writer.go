// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// ReflectionWriter collects reflections from assigned commenters
type ReflectionWriter interface {
	// SubmitReflection records a reflection; every call creates a new one
	SubmitReflection(ctx context.Context, requestID, authorID, text string) (*model.Reflection, error)
	// ListReflections lists the reflections of a request
	ListReflections(ctx context.Context, requestID string) ([]*model.Reflection, error)
}

// reflectionWriterOrchestratorOption defines a function type for setting options
type reflectionWriterOrchestratorOption func(*reflectionWriterOrchestrator)

// WithReflectionWriter sets the backend reflection writer
func WithReflectionWriter(writer port.ReflectionWriter) reflectionWriterOrchestratorOption {
	return func(w *reflectionWriterOrchestrator) {
		w.writer = writer
	}
}

// WithReflectionReader sets the backend reflection reader
func WithReflectionReader(reader port.ReflectionReader) reflectionWriterOrchestratorOption {
	return func(w *reflectionWriterOrchestrator) {
		w.reader = reader
	}
}

// WithReflectionAssignmentReader sets the reader used to check an assignment exists
func WithReflectionAssignmentReader(reader port.AssignmentReader) reflectionWriterOrchestratorOption {
	return func(w *reflectionWriterOrchestrator) {
		w.assignments = reader
	}
}

// WithReflectionRequestReader sets the reader used to resolve the request's draft
func WithReflectionRequestReader(reader port.CommentRequestReader) reflectionWriterOrchestratorOption {
	return func(w *reflectionWriterOrchestrator) {
		w.requests = reader
	}
}

type reflectionWriterOrchestrator struct {
	writer      port.ReflectionWriter
	reader      port.ReflectionReader
	assignments port.AssignmentReader
	requests    port.CommentRequestReader
}

// NewReflectionWriterOrchestrator creates a new reflection orchestrator using the option pattern
func NewReflectionWriterOrchestrator(opts ...reflectionWriterOrchestratorOption) ReflectionWriter {
	uc := &reflectionWriterOrchestrator{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// SubmitReflection records a reflection against a request that has commenters assigned
func (o *reflectionWriterOrchestrator) SubmitReflection(ctx context.Context, requestID, authorID, text string) (*model.Reflection, error) {
	reflection := &model.Reflection{
		CommentRequestID: strings.TrimSpace(requestID),
		AuthorID:         strings.TrimSpace(authorID),
		Text:             text,
	}
	if reflection.CommentRequestID == "" {
		return nil, errors.NewValidation("comment request id is required")
	}
	if err := reflection.Validate(); err != nil {
		return nil, err
	}

	cr, err := o.requests.GetCommentRequest(ctx, reflection.CommentRequestID)
	if err != nil {
		return nil, err
	}
	reflection.DraftID = cr.DraftID

	assignment, err := o.assignments.GetAssignment(ctx, reflection.CommentRequestID)
	if err != nil {
		var notFound errors.NotFound
		if stderrors.As(err, &notFound) {
			return nil, errors.NewInvalidState(fmt.Sprintf("no commenters are assigned to comment request %s", reflection.CommentRequestID), err)
		}
		return nil, err
	}
	if !assignment.Includes(reflection.AuthorID) {
		slog.WarnContext(ctx, "reflection submitted by a user outside the assignment",
			"comment_request_id", reflection.CommentRequestID,
			"author_id", reflection.AuthorID,
		)
	}

	created, err := o.writer.SubmitReflection(ctx, reflection)
	if err != nil {
		slog.ErrorContext(ctx, "failed to submit reflection",
			"error", err,
			"comment_request_id", reflection.CommentRequestID,
		)
		return nil, err
	}

	slog.InfoContext(ctx, "reflection submitted",
		"comment_request_id", reflection.CommentRequestID,
		"reflection_id", created.ID,
	)
	return created, nil
}

// ListReflections lists the reflections of a request
func (o *reflectionWriterOrchestrator) ListReflections(ctx context.Context, requestID string) ([]*model.Reflection, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, errors.NewValidation("comment request id is required")
	}
	return o.reader.ListReflections(ctx, requestID)
}
