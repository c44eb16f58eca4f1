// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// CommentRequestReader defines the read operations recipient admins use
type CommentRequestReader interface {
	// GetCommentRequest retrieves a single comment request
	GetCommentRequest(ctx context.Context, id string) (*model.CommentRequest, error)
	// ListCommentRequests lists the requests of a draft; personal filters
	// personal or institution requests when non-nil
	ListCommentRequests(ctx context.Context, draftID string, personal *bool) ([]*model.CommentRequest, error)
}

// commentRequestReaderOrchestratorOption defines a function type for setting options
type commentRequestReaderOrchestratorOption func(*commentRequestReaderOrchestrator)

// WithCommentRequestReader sets the backend reader
func WithCommentRequestReader(reader port.CommentRequestReader) commentRequestReaderOrchestratorOption {
	return func(r *commentRequestReaderOrchestrator) {
		r.reader = reader
	}
}

type commentRequestReaderOrchestrator struct {
	reader port.CommentRequestReader
}

// NewCommentRequestReaderOrchestrator creates a new reader orchestrator using the option pattern
func NewCommentRequestReaderOrchestrator(opts ...commentRequestReaderOrchestratorOption) CommentRequestReader {
	rc := &commentRequestReaderOrchestrator{}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// GetCommentRequest retrieves a single comment request
func (o *commentRequestReaderOrchestrator) GetCommentRequest(ctx context.Context, id string) (*model.CommentRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidation("comment request id is required")
	}

	slog.DebugContext(ctx, "executing get comment request use case", "comment_request_id", id)

	cr, err := o.reader.GetCommentRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	cr.Normalize()
	return cr, nil
}

// ListCommentRequests lists the requests of a draft
func (o *commentRequestReaderOrchestrator) ListCommentRequests(ctx context.Context, draftID string, personal *bool) ([]*model.CommentRequest, error) {
	if strings.TrimSpace(draftID) == "" {
		return nil, errors.NewValidation("draft id is required")
	}

	requests, err := o.reader.ListCommentRequests(ctx, model.CommentRequestFilter{
		DraftID:    draftID,
		IsPersonal: personal,
	})
	if err != nil {
		return nil, err
	}
	for _, cr := range requests {
		cr.Normalize()
	}

	slog.DebugContext(ctx, "comment requests listed",
		"draft_id", draftID,
		"count", len(requests),
	)
	return requests, nil
}
