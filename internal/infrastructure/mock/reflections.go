// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// SubmitReflection stores a new reflection; duplicates are kept
func (m *MockBackend) SubmitReflection(ctx context.Context, reflection *model.Reflection) (*model.Reflection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("SubmitReflection", reflection.CommentRequestID); err != nil {
		return nil, err
	}
	if _, ok := m.assignments[reflection.CommentRequestID]; !ok {
		return nil, rejected("No commenters have been assigned to this request.")
	}

	stored := *reflection
	stored.ID = newID()
	stored.CreatedAt = time.Now().UTC()
	if stored.DraftID == "" {
		if cr, ok := m.commentRequests[reflection.CommentRequestID]; ok {
			stored.DraftID = cr.DraftID
		}
	}
	m.reflections[reflection.CommentRequestID] = append(m.reflections[reflection.CommentRequestID], &stored)

	c := stored
	return &c, nil
}

// ListReflections lists the reflections of a comment request in submission order
func (m *MockBackend) ListReflections(ctx context.Context, commentRequestID string) ([]*model.Reflection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListReflections", commentRequestID); err != nil {
		return nil, err
	}

	out := make([]*model.Reflection, 0, len(m.reflections[commentRequestID]))
	for _, r := range m.reflections[commentRequestID] {
		c := *r
		out = append(out, &c)
	}
	return out, nil
}
