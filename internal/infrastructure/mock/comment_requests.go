// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/redaction"
)

// GetCommentRequest retrieves a comment request by id
func (m *MockBackend) GetCommentRequest(ctx context.Context, id string) (*model.CommentRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("GetCommentRequest", id); err != nil {
		return nil, err
	}

	cr, ok := m.commentRequests[id]
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("comment request %s not found", id))
	}
	c := *cr
	return &c, nil
}

// ListCommentRequests lists requests matching the filter, oldest first
func (m *MockBackend) ListCommentRequests(ctx context.Context, filter model.CommentRequestFilter) ([]*model.CommentRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListCommentRequests", filter.DraftID); err != nil {
		return nil, err
	}

	out := []*model.CommentRequest{}
	for _, cr := range m.commentRequests {
		if filter.DraftID != "" && cr.DraftID != filter.DraftID {
			continue
		}
		if filter.IsPersonal != nil && cr.IsPersonal != *filter.IsPersonal {
			continue
		}
		c := *cr
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *model.CommentRequest) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

// InviteInstitutions creates one pending request per institution
func (m *MockBackend) InviteInstitutions(ctx context.Context, invitation *model.InstitutionInvitation) ([]*model.CommentRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("InviteInstitutions", invitation.DraftID); err != nil {
		return nil, err
	}
	if _, ok := m.drafts[invitation.DraftID]; !ok {
		return nil, rejected("The selected draft id is invalid.")
	}
	for _, id := range invitation.InstitutionIDs {
		if _, ok := m.institutions[id]; !ok {
			return nil, rejected("The selected institution %s is invalid.", id)
		}
	}

	now := time.Now().UTC()
	created := make([]*model.CommentRequest, 0, len(invitation.InstitutionIDs))
	for _, institutionID := range invitation.InstitutionIDs {
		cr := &model.CommentRequest{
			ID:            newID(),
			DraftID:       invitation.DraftID,
			InstitutionID: institutionID,
			Message:       invitation.Remark,
			State:         model.RequestStatePending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		m.commentRequests[cr.ID] = cr
		c := *cr
		created = append(created, &c)
	}

	slog.DebugContext(ctx, "mock institution invitations created",
		"draft_id", invitation.DraftID,
		"count", len(created),
	)
	return created, nil
}

// InvitePeople creates one pending personal request per email
func (m *MockBackend) InvitePeople(ctx context.Context, invitation *model.PersonalInvitation) ([]*model.CommentRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("InvitePeople", invitation.DraftID); err != nil {
		return nil, err
	}
	if _, ok := m.drafts[invitation.DraftID]; !ok {
		return nil, rejected("The selected draft id is invalid.")
	}

	now := time.Now().UTC()
	created := make([]*model.CommentRequest, 0, len(invitation.Emails))
	for _, email := range invitation.Emails {
		cr := &model.CommentRequest{
			ID:         newID(),
			DraftID:    invitation.DraftID,
			Email:      email,
			IsPersonal: true,
			Message:    invitation.Remark,
			State:      model.RequestStatePending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		m.commentRequests[cr.ID] = cr
		c := *cr
		created = append(created, &c)
	}

	slog.DebugContext(ctx, "mock personal invitations created",
		"draft_id", invitation.DraftID,
		"emails", redaction.RedactEmails(invitation.Emails),
	)
	return created, nil
}

// AcceptCommentRequest accepts a pending request and opens its draft for comment
func (m *MockBackend) AcceptCommentRequest(ctx context.Context, acceptance *model.Acceptance) (*model.CommentRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("AcceptCommentRequest", acceptance.CommentRequestID); err != nil {
		return nil, err
	}

	cr, err := m.pendingRequest(acceptance.CommentRequestID)
	if err != nil {
		return nil, err
	}
	if cr.DraftID != acceptance.DraftID {
		return nil, rejected("The comment request does not belong to draft %s.", acceptance.DraftID)
	}
	if cr.InstitutionID != acceptance.InstitutionID {
		return nil, rejected("The selected institutions are invalid.")
	}

	if err := cr.Transition(model.RequestStateAccepted); err != nil {
		return nil, err
	}
	cr.CommentOpeningDate = acceptance.CommentOpeningDate
	cr.CommentClosingDate = acceptance.CommentClosingDate
	cr.DecisionMessage = acceptance.Remark

	if d, ok := m.drafts[cr.DraftID]; ok {
		d.CommentOpeningDate = acceptance.CommentOpeningDate
		d.CommentClosingDate = acceptance.CommentClosingDate
	}

	c := *cr
	return &c, nil
}

// RejectCommentRequest rejects a pending request
func (m *MockBackend) RejectCommentRequest(ctx context.Context, rejection *model.Rejection) (*model.CommentRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("RejectCommentRequest", rejection.CommentRequestID); err != nil {
		return nil, err
	}

	cr, err := m.pendingRequest(rejection.CommentRequestID)
	if err != nil {
		return nil, err
	}
	if err := cr.Transition(model.RequestStateRejected); err != nil {
		return nil, err
	}
	cr.DecisionMessage = rejection.Message

	c := *cr
	return &c, nil
}

// pendingRequest must be called with the write lock held
func (m *MockBackend) pendingRequest(id string) (*model.CommentRequest, error) {
	cr, ok := m.commentRequests[id]
	if !ok {
		return nil, errors.NewRemote(http.StatusNotFound, fmt.Sprintf("Comment request %s not found.", id))
	}
	if cr.State != model.RequestStatePending {
		return nil, rejected("This request has already been %s.", cr.State)
	}
	return cr, nil
}
