// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// GetAssignment returns the commenters assigned to a comment request
func (c *Client) GetAssignment(ctx context.Context, commentRequestID string) (*model.CommenterAssignment, error) {
	var dto assignmentDTO
	_, err := c.get(ctx, fmt.Sprintf(constants.PathCommenterAssignment, url.PathEscape(commentRequestID)), nil, &dto)
	if err != nil {
		if isRemoteNotFound(err) {
			return nil, errors.NewNotFound(fmt.Sprintf("no commenters assigned to comment request %s", commentRequestID), err)
		}
		return nil, err
	}
	if len(dto.Commenters) == 0 {
		return nil, errors.NewNotFound(fmt.Sprintf("no commenters assigned to comment request %s", commentRequestID))
	}

	assignment := dto.toModel()
	if assignment.CommentRequestID == "" {
		assignment.CommentRequestID = commentRequestID
	}
	return assignment, nil
}

// AssignCommenters records the commenters of an accepted comment request
func (c *Client) AssignCommenters(ctx context.Context, assignment *model.CommenterAssignment) (*model.CommenterAssignment, error) {
	body := assignmentBody{
		CommentRequestID: ID(assignment.CommentRequestID),
		Message:          assignment.Message,
		Commenters:       toIDs(assignment.CommenterIDs),
	}

	var dto assignmentDTO
	message, err := c.post(ctx, constants.PathAssignCommenters, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "commenters assigned",
		"comment_request_id", assignment.CommentRequestID,
		"commenter_count", len(assignment.CommenterIDs),
		"message", message,
	)

	if len(dto.Commenters) == 0 {
		created := *assignment
		created.CreatedAt = time.Now().UTC()
		return &created, nil
	}
	return dto.toModel(), nil
}
