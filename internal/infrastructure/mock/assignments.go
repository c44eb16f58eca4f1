// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// GetAssignment returns the assignment of a comment request
func (m *MockBackend) GetAssignment(ctx context.Context, commentRequestID string) (*model.CommenterAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("GetAssignment", commentRequestID); err != nil {
		return nil, err
	}

	a, ok := m.assignments[commentRequestID]
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("no commenters assigned to comment request %s", commentRequestID))
	}
	return cloneAssignment(a), nil
}

// AssignCommenters stores the commenters of an accepted request, replacing
// any earlier assignment.
func (m *MockBackend) AssignCommenters(ctx context.Context, assignment *model.CommenterAssignment) (*model.CommenterAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("AssignCommenters", assignment.CommentRequestID); err != nil {
		return nil, err
	}

	cr, ok := m.commentRequests[assignment.CommentRequestID]
	if !ok {
		return nil, errors.NewRemote(http.StatusNotFound, fmt.Sprintf("Comment request %s not found.", assignment.CommentRequestID))
	}
	if cr.State != model.RequestStateAccepted {
		return nil, rejected("Commenters can only be assigned to an accepted request.")
	}
	for _, id := range assignment.CommenterIDs {
		if _, ok := m.users[id]; !ok {
			return nil, rejected("The selected commenter %s is invalid.", id)
		}
	}

	stored := cloneAssignment(assignment)
	stored.CreatedAt = time.Now().UTC()
	m.assignments[assignment.CommentRequestID] = stored
	return cloneAssignment(stored), nil
}

func cloneAssignment(a *model.CommenterAssignment) *model.CommenterAssignment {
	c := *a
	c.CommenterIDs = slices.Clone(a.CommenterIDs)
	return &c
}
