// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	pkgerrors "github.com/econsultation/econsultation-service/pkg/errors"
)

func TestMockBackend_RequestLifecycle(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend()

	created, err := backend.InviteInstitutions(ctx, &model.InstitutionInvitation{
		DraftID: "42", InstitutionIDs: []string{"2", "3"}, Remark: "please review",
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)

	id := created[0].ID

	// assignment before acceptance is refused by the backend
	_, err = backend.AssignCommenters(ctx, &model.CommenterAssignment{CommentRequestID: id, CommenterIDs: []string{"21"}})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	// the acceptance must name the invited institution
	_, err = backend.AcceptCommentRequest(ctx, &model.Acceptance{
		CommentRequestID: id, DraftID: "42", InstitutionID: "1", CommentOpeningDate: "2024-03-01", CommentClosingDate: "2024-03-31",
	})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	accepted, err := backend.AcceptCommentRequest(ctx, &model.Acceptance{
		CommentRequestID: id, DraftID: "42", InstitutionID: created[0].InstitutionID,
		CommentOpeningDate: "2024-03-01", CommentClosingDate: "2024-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RequestStateAccepted, accepted.State)

	draft, err := backend.GetDraft(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", draft.CommentOpeningDate)

	_, err = backend.RejectCommentRequest(ctx, &model.Rejection{CommentRequestID: id, Message: "too late"})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	_, err = backend.SubmitReflection(ctx, &model.Reflection{CommentRequestID: id, AuthorID: "21", Text: "early"})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	_, err = backend.AssignCommenters(ctx, &model.CommenterAssignment{CommentRequestID: id, CommenterIDs: []string{"21", "22"}})
	require.NoError(t, err)

	for range 2 {
		_, err = backend.SubmitReflection(ctx, &model.Reflection{CommentRequestID: id, AuthorID: "21", Text: "Article 4 is unclear"})
		require.NoError(t, err)
	}
	reflections, err := backend.ListReflections(ctx, id)
	require.NoError(t, err)
	assert.Len(t, reflections, 2, "duplicates are kept")
	assert.Equal(t, "42", reflections[0].DraftID)
}

func TestMockBackend_InviteValidation(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend()

	_, err := backend.InviteInstitutions(ctx, &model.InstitutionInvitation{DraftID: "999", InstitutionIDs: []string{"2"}})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	_, err = backend.InviteInstitutions(ctx, &model.InstitutionInvitation{DraftID: "42", InstitutionIDs: []string{"404"}})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	personal, err := backend.InvitePeople(ctx, &model.PersonalInvitation{DraftID: "42", Emails: []string{"hana@example.org"}})
	require.NoError(t, err)
	require.Len(t, personal, 1)
	assert.True(t, personal[0].IsPersonal)

	isPersonal := true
	listed, err := backend.ListCommentRequests(ctx, model.CommentRequestFilter{DraftID: "42", IsPersonal: &isPersonal})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestMockBackend_Drafts(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend()

	page, err := backend.ListDrafts(ctx, model.DraftFilter{ShortTitle: "investment"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.CurrentPage)

	page, err = backend.ListDrafts(ctx, model.DraftFilter{Page: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Drafts)
	assert.Equal(t, 3, page.Total)

	d, err := backend.GetDraft(ctx, "42")
	require.NoError(t, err)
	d.ShortTitle = "changed locally"

	again, err := backend.GetDraft(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Investment Proclamation", again.ShortTitle, "callers get copies")

	require.NoError(t, backend.RejectCommentOpening(ctx, &model.OpeningRejection{DraftID: "42", Message: "not ready"}))
	r, ok := backend.OpeningRejection("42")
	require.True(t, ok)
	assert.Equal(t, "not ready", r.Message)
}

func TestMockBackend_Commenters(t *testing.T) {
	backend := NewMockBackend()

	_, err := backend.ListCommenters(context.Background())
	assertRemote(t, err, http.StatusUnauthorized)

	ctx := model.ContextWithPrincipal(context.Background(), &model.Principal{UserID: "20", Role: model.RoleFederalInstitutionsAdmin, InstitutionID: "2"})
	commenters, err := backend.ListCommenters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"21", "22"}, model.UserIDs(commenters))

	users, err := backend.ListUsersByInstitution(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func assertRemote(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var remote pkgerrors.Remote
	require.True(t, errors.As(err, &remote), "expected Remote, got %T", err)
	assert.Equal(t, status, remote.StatusCode)
}

func TestMockBackend_DirectoryWrites(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend()

	institution, err := backend.CreateInstitution(ctx, &model.Institution{
		Name: "Ministry of Health", InstitutionTypeID: "1", RegionID: "1", SectorID: "3", Email: "info@moh.gov.et",
	})
	require.NoError(t, err)
	require.NotEmpty(t, institution.ID)

	_, err = backend.CreateInstitution(ctx, &model.Institution{Name: "ministry of health", RegionID: "1", SectorID: "3"})
	assertRemote(t, err, http.StatusUnprocessableEntity)
	_, err = backend.CreateInstitution(ctx, &model.Institution{Name: "Health Bureau", RegionID: "99", SectorID: "3"})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	region, err := backend.UpdateRegion(ctx, &model.Region{ID: "2", Name: "Addis Ababa City"})
	require.NoError(t, err)
	assert.Equal(t, "Addis Ababa City", region.Name)
	_, err = backend.UpdateRegion(ctx, &model.Region{ID: "99", Name: "Nowhere"})
	assertRemote(t, err, http.StatusNotFound)

	user, err := backend.CreateUser(ctx, &model.UserProfile{
		FirstName: "Liya", LastName: "Mekonnen", Email: "liya@moh.gov.et", Role: model.RoleCommenter, InstitutionID: institution.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Liya Mekonnen", user.Name)

	users, err := backend.ListUsersByInstitution(ctx, institution.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, model.UserIDs(users))

	// emails are unique across accounts
	_, err = backend.CreateUser(ctx, &model.UserProfile{
		FirstName: "Other", LastName: "Person", Email: "HANA.TESFAYE@mof.gov.et", Role: model.RoleCommenter, InstitutionID: "1",
	})
	assertRemote(t, err, http.StatusUnprocessableEntity)

	updated, err := backend.UpdateUser(ctx, &model.UserProfile{
		ID: user.ID, FirstName: "Liya", LastName: "Mekonnen", Email: "liya@moh.gov.et", Role: model.RoleApprover, InstitutionID: institution.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleApprover, updated.Role)

	_, err = backend.UpdateUser(ctx, &model.UserProfile{ID: "999", FirstName: "No", LastName: "One", Email: "no.one@gov.et", Role: model.RoleCommenter})
	assertRemote(t, err, http.StatusNotFound)
}
