// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/infrastructure/mock"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

func TestDraftReader(t *testing.T) {
	backend := mock.NewMockBackend()
	reader := NewDraftReaderOrchestrator(WithDraftReader(backend))
	ctx := context.Background()

	guest := &model.Principal{UserID: "99", Role: model.RoleGuest}
	approver := &model.Principal{UserID: "11", Role: model.RoleApprover, InstitutionID: "1"}

	t.Run("guests do not see private drafts", func(t *testing.T) {
		page, err := reader.ListDrafts(ctx, guest, model.DraftFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		for _, d := range page.Drafts {
			assert.False(t, d.IsPrivate)
		}

		_, err = reader.GetDraft(ctx, guest, "44")
		require.Error(t, err)
		assert.IsType(t, errors.NotFound{}, err)
	})

	t.Run("other roles see private drafts", func(t *testing.T) {
		page, err := reader.ListDrafts(ctx, approver, model.DraftFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)

		d, err := reader.GetDraft(ctx, approver, "44")
		require.NoError(t, err)
		assert.True(t, d.IsPrivate)
	})

	t.Run("title filter", func(t *testing.T) {
		page, err := reader.ListDrafts(ctx, guest, model.DraftFilter{ShortTitle: "investment"})
		require.NoError(t, err)
		require.Len(t, page.Drafts, 1)
		assert.Equal(t, "42", page.Drafts[0].ID)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := reader.ListDrafts(ctx, guest, model.DraftFilter{Page: -1})
		assert.IsType(t, errors.Validation{}, err)

		_, err = reader.GetDraft(ctx, guest, "")
		assert.IsType(t, errors.Validation{}, err)
	})
}

func TestDraftWriter_UpdateDraft(t *testing.T) {
	tests := []struct {
		name        string
		principal   *model.Principal
		draft       *model.Draft
		expectedErr any
	}{
		{
			name:      "uploader of the owning institution",
			principal: &model.Principal{UserID: "10", Role: model.RoleUploader, InstitutionID: "1"},
			draft:     &model.Draft{ID: "42", ShortTitle: "Investment Proclamation (revised)", InstitutionID: "1"},
		},
		{
			name:      "super admin moves a draft",
			principal: &model.Principal{UserID: "1", Role: model.RoleSuperAdmin},
			draft:     &model.Draft{ID: "42", ShortTitle: "Investment Proclamation", InstitutionID: "2"},
		},
		{
			name:        "uploader of another institution",
			principal:   &model.Principal{UserID: "10", Role: model.RoleUploader, InstitutionID: "1"},
			draft:       &model.Draft{ID: "43", ShortTitle: "Roadmap", InstitutionID: "2"},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "approver moves a draft",
			principal:   &model.Principal{UserID: "11", Role: model.RoleApprover, InstitutionID: "1"},
			draft:       &model.Draft{ID: "42", ShortTitle: "Investment Proclamation", InstitutionID: "2"},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "commenter",
			principal:   &model.Principal{UserID: "21", Role: model.RoleCommenter, InstitutionID: "2"},
			draft:       &model.Draft{ID: "43", ShortTitle: "Roadmap", InstitutionID: "2"},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "missing title",
			principal:   &model.Principal{UserID: "1", Role: model.RoleSuperAdmin},
			draft:       &model.Draft{ID: "42", InstitutionID: "1"},
			expectedErr: errors.Validation{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := mock.NewMockBackend()
			writer := NewDraftWriterOrchestrator(WithDraftReader(backend), WithDraftWriter(backend))

			updated, err := writer.UpdateDraft(context.Background(), tc.principal, tc.draft)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.IsType(t, tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.draft.ShortTitle, updated.ShortTitle)
			assert.Equal(t, tc.draft.InstitutionID, updated.InstitutionID)
		})
	}
}

func TestDraftWriter_RejectCommentOpening(t *testing.T) {
	backend := mock.NewMockBackend()
	writer := NewDraftWriterOrchestrator(WithDraftReader(backend), WithDraftWriter(backend))

	require.NoError(t, writer.RejectCommentOpening(context.Background(), "42", " Needs a legal review first "))
	rejection, ok := backend.OpeningRejection("42")
	require.True(t, ok)
	assert.Equal(t, "Needs a legal review first", rejection.Message)

	err := writer.RejectCommentOpening(context.Background(), "42", "")
	assert.IsType(t, errors.Validation{}, err)
}
