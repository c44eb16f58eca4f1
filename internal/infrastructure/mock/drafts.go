// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// ListDrafts pages through drafts whose short title contains the filter text
func (m *MockBackend) ListDrafts(ctx context.Context, filter model.DraftFilter) (*model.DraftPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListDrafts", ""); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter.ShortTitle))
	var matched []*model.Draft
	for _, id := range sortedKeys(m.drafts) {
		d := m.drafts[id]
		if needle == "" || strings.Contains(strings.ToLower(d.ShortTitle), needle) {
			matched = append(matched, cloneDraft(d))
		}
	}

	page := max(filter.Page, constants.DefaultPage)
	start := min((page-1)*draftPageSize, len(matched))
	end := min(start+draftPageSize, len(matched))

	return &model.DraftPage{
		Drafts:      matched[start:end],
		Total:       len(matched),
		CurrentPage: page,
	}, nil
}

// GetDraft retrieves a draft by id
func (m *MockBackend) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("GetDraft", id); err != nil {
		return nil, err
	}

	d, ok := m.drafts[id]
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("draft %s not found", id))
	}
	return cloneDraft(d), nil
}

// UpdateDraft replaces a stored draft
func (m *MockBackend) UpdateDraft(ctx context.Context, draft *model.Draft) (*model.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("UpdateDraft", draft.ID); err != nil {
		return nil, err
	}
	if _, ok := m.drafts[draft.ID]; !ok {
		return nil, rejected("The selected draft id is invalid.")
	}
	if _, ok := m.institutions[draft.InstitutionID]; !ok {
		return nil, rejected("The selected institution id is invalid.")
	}

	stored := cloneDraft(draft)
	m.drafts[draft.ID] = stored

	slog.DebugContext(ctx, "mock draft updated", "draft_id", draft.ID)
	return cloneDraft(stored), nil
}

// RejectCommentOpening records a declined comment-opening request
func (m *MockBackend) RejectCommentOpening(ctx context.Context, rejection *model.OpeningRejection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("RejectCommentOpening", rejection.DraftID); err != nil {
		return err
	}
	if _, ok := m.drafts[rejection.DraftID]; !ok {
		return rejected("The selected draft id is invalid.")
	}
	if strings.TrimSpace(rejection.Message) == "" {
		return rejected("The request rejection message field is required.")
	}

	r := *rejection
	m.openingRejections[rejection.DraftID] = &r
	return nil
}

func cloneDraft(d *model.Draft) *model.Draft {
	c := *d
	c.Sectors = slices.Clone(d.Sectors)
	c.Tags = slices.Clone(d.Tags)
	return &c
}
