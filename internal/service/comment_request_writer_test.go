// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/infrastructure/mock"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

func newCommentRequestWriter(backend *mock.MockBackend, notifier *mock.MockNotifier) CommentRequestWriter {
	return NewCommentRequestWriterOrchestrator(
		WithCommentRequestWriter(backend),
		WithCommentRequestWriterReader(backend),
		WithCommentRequestNotifier(notifier),
		WithCommentRequestMetrics(NewWorkflowMetrics()),
	)
}

func TestCommentRequestWriter_CreateInstitutionInvitation(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mock.MockBackend)
		draftID        string
		institutionIDs []string
		expectedErr    any
		validate       func(t *testing.T, requests []*model.CommentRequest, notifier *mock.MockNotifier)
	}{
		{
			name: "two institutions produce two pending requests",
			setupMock: func(backend *mock.MockBackend) {
				backend.AddInstitution(&model.Institution{ID: "A", Name: "Institution A"})
				backend.AddInstitution(&model.Institution{ID: "B", Name: "Institution B"})
			},
			draftID:        "42",
			institutionIDs: []string{"A", "B"},
			validate: func(t *testing.T, requests []*model.CommentRequest, notifier *mock.MockNotifier) {
				require.Len(t, requests, 2)
				targets := []string{}
				for _, cr := range requests {
					assert.Equal(t, "42", cr.DraftID)
					assert.Equal(t, model.RequestStatePending, cr.State)
					assert.False(t, cr.IsPersonal)
					assert.NotEmpty(t, cr.ID)
					targets = append(targets, cr.InstitutionID)
				}
				assert.ElementsMatch(t, []string{"A", "B"}, targets)

				sent := notifier.SentOfKind(model.NotificationInvitationCreated)
				require.Len(t, sent, 2)
				for _, n := range sent {
					assert.Equal(t, constants.InvitationCreatedSubject, n.Subject)
				}
			},
		},
		{
			name:           "duplicate institutions are collapsed",
			draftID:        "42",
			institutionIDs: []string{"2", "3", "2"},
			validate: func(t *testing.T, requests []*model.CommentRequest, notifier *mock.MockNotifier) {
				assert.Len(t, requests, 2)
			},
		},
		{
			name:           "empty draft id",
			draftID:        " ",
			institutionIDs: []string{"2"},
			expectedErr:    errors.Validation{},
		},
		{
			name:           "no institutions",
			draftID:        "42",
			institutionIDs: nil,
			expectedErr:    errors.Validation{},
		},
		{
			name:           "backend rejects unknown institution",
			draftID:        "42",
			institutionIDs: []string{"999"},
			expectedErr:    errors.Remote{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := mock.NewMockBackend()
			notifier := mock.NewMockNotifier()
			if tc.setupMock != nil {
				tc.setupMock(backend)
			}

			requests, err := newCommentRequestWriter(backend, notifier).
				CreateInstitutionInvitation(context.Background(), tc.draftID, tc.institutionIDs, "please review")

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.IsType(t, tc.expectedErr, err)
				assert.Empty(t, notifier.Sent())
				return
			}
			require.NoError(t, err)
			tc.validate(t, requests, notifier)
		})
	}
}

func TestCommentRequestWriter_CreatePersonalInvitation(t *testing.T) {
	backend := mock.NewMockBackend()
	notifier := mock.NewMockNotifier()
	writer := newCommentRequestWriter(backend, notifier)

	t.Run("emails are normalised and notified", func(t *testing.T) {
		requests, err := writer.CreatePersonalInvitation(context.Background(), "42",
			[]string{"Alice@Example.com", "alice@example.com", "bob@example.com"}, "")
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "alice@example.com", requests[0].Email)
		assert.True(t, requests[0].IsPersonal)

		sent := notifier.SentOfKind(model.NotificationInvitationCreated)
		recipients := []string{}
		for _, n := range sent {
			recipients = append(recipients, n.Recipient)
		}
		assert.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, recipients)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := writer.CreatePersonalInvitation(context.Background(), "42", []string{"not-an-email"}, "")
		require.Error(t, err)
		assert.IsType(t, errors.Validation{}, err)
	})
}

func TestCommentRequestWriter_AcceptRequest(t *testing.T) {
	ctx := context.WithValue(context.Background(), constants.RequestIDContextKey, "req-123")

	t.Run("pending request becomes accepted", func(t *testing.T) {
		backend := mock.NewMockBackend()
		notifier := mock.NewMockNotifier()
		backend.AddCommentRequest(&model.CommentRequest{ID: "8", DraftID: "42", InstitutionID: "2", State: model.RequestStatePending})

		accepted, err := newCommentRequestWriter(backend, notifier).
			AcceptRequest(ctx, "8", "2024-01-01", "2024-01-31", "")
		require.NoError(t, err)
		assert.Equal(t, model.RequestStateAccepted, accepted.State)
		assert.Equal(t, "2024-01-01", accepted.CommentOpeningDate)
		assert.Equal(t, "2024-01-31", accepted.CommentClosingDate)

		d, err := backend.GetDraft(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", d.CommentOpeningDate)

		sent := notifier.SentOfKind(model.NotificationRequestDecided)
		require.Len(t, sent, 1)
		assert.Equal(t, "2", sent[0].Recipient)
		assert.Equal(t, "req-123", sent[0].Headers[constants.RequestIDHeader])
	})

	t.Run("accepting twice is refused", func(t *testing.T) {
		backend := mock.NewMockBackend()
		notifier := mock.NewMockNotifier()
		backend.AddCommentRequest(&model.CommentRequest{ID: "8", DraftID: "42", InstitutionID: "2", State: model.RequestStatePending})
		writer := newCommentRequestWriter(backend, notifier)

		_, err := writer.AcceptRequest(ctx, "8", "2024-01-01", "2024-01-31", "")
		require.NoError(t, err)

		_, err = writer.AcceptRequest(ctx, "8", "2024-02-01", "2024-02-28", "")
		require.Error(t, err)
		assert.IsType(t, errors.InvalidState{}, err)
		assert.Len(t, notifier.SentOfKind(model.NotificationRequestDecided), 1)

		cr, err := backend.GetCommentRequest(ctx, "8")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", cr.CommentOpeningDate)
	})

	t.Run("closing before opening", func(t *testing.T) {
		backend := mock.NewMockBackend()
		backend.AddCommentRequest(&model.CommentRequest{ID: "8", DraftID: "42", InstitutionID: "2", State: model.RequestStatePending})

		_, err := newCommentRequestWriter(backend, mock.NewMockNotifier()).
			AcceptRequest(ctx, "8", "2024-02-01", "2024-01-01", "")
		require.Error(t, err)
		assert.IsType(t, errors.Validation{}, err)

		cr, err := backend.GetCommentRequest(ctx, "8")
		require.NoError(t, err)
		assert.Equal(t, model.RequestStatePending, cr.State)
	})

	t.Run("notification failure does not fail the decision", func(t *testing.T) {
		backend := mock.NewMockBackend()
		notifier := mock.NewMockNotifier()
		notifier.FailWith(stderrors.New("broker down"))
		backend.AddCommentRequest(&model.CommentRequest{ID: "8", DraftID: "42", Email: "alice@example.com", State: model.RequestStatePending})

		accepted, err := newCommentRequestWriter(backend, notifier).
			AcceptRequest(ctx, "8", "2024-01-01", "2024-01-01", "")
		require.NoError(t, err)
		assert.True(t, accepted.IsPersonal)
		assert.Equal(t, model.RequestStateAccepted, accepted.State)
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		backend := mock.NewMockBackend()
		backend.AddCommentRequest(&model.CommentRequest{ID: "8", DraftID: "42", InstitutionID: "2", State: model.RequestStatePending})
		backend.SetErrorForOperation("AcceptCommentRequest", errors.NewRemote(http.StatusInternalServerError, "Server Error"))

		_, err := newCommentRequestWriter(backend, mock.NewMockNotifier()).
			AcceptRequest(ctx, "8", "2024-01-01", "2024-01-31", "")
		require.Error(t, err)
		var remote errors.Remote
		require.True(t, stderrors.As(err, &remote))
		assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	})
}

func TestCommentRequestWriter_RejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request becomes rejected and cannot be assigned", func(t *testing.T) {
		backend := mock.NewMockBackend()
		notifier := mock.NewMockNotifier()
		backend.AddCommentRequest(&model.CommentRequest{ID: "7", DraftID: "42", InstitutionID: "2", State: model.RequestStatePending})

		rejected, err := newCommentRequestWriter(backend, notifier).RejectRequest(ctx, "7", "insufficient context")
		require.NoError(t, err)
		assert.Equal(t, model.RequestStateRejected, rejected.State)
		assert.Equal(t, "insufficient context", rejected.DecisionMessage)

		_, err = newAssignmentWriter(backend, notifier).AssignCommenters(ctx, "7", []string{"21"}, "")
		require.Error(t, err)
		assert.IsType(t, errors.InvalidState{}, err)
	})

	t.Run("accepted request cannot be rejected", func(t *testing.T) {
		backend := mock.NewMockBackend()
		notifier := mock.NewMockNotifier()

		_, err := newCommentRequestWriter(backend, notifier).RejectRequest(ctx, "7", "too late")
		require.Error(t, err)
		assert.IsType(t, errors.InvalidState{}, err)
		assert.Empty(t, notifier.Sent())

		cr, err := backend.GetCommentRequest(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, model.RequestStateAccepted, cr.State)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := newCommentRequestWriter(mock.NewMockBackend(), mock.NewMockNotifier()).RejectRequest(ctx, "missing", "")
		require.Error(t, err)
		assert.IsType(t, errors.NotFound{}, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := newCommentRequestWriter(mock.NewMockBackend(), mock.NewMockNotifier()).RejectRequest(ctx, "", "")
		require.Error(t, err)
		assert.IsType(t, errors.Validation{}, err)
	})
}
