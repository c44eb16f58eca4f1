// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// AssignmentReader defines the interface for commenter assignment lookups
type AssignmentReader interface {
	// GetAssignment returns NotFound when no commenters were assigned to the request
	GetAssignment(ctx context.Context, commentRequestID string) (*model.CommenterAssignment, error)
}

// AssignmentWriter defines the interface for commenter assignment writes
type AssignmentWriter interface {
	AssignCommenters(ctx context.Context, assignment *model.CommenterAssignment) (*model.CommenterAssignment, error)
}
