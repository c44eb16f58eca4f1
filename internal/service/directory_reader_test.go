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

func TestDirectoryReader(t *testing.T) {
	reader := NewDirectoryReaderOrchestrator(WithDirectory(mock.NewMockBackend()))
	ctx := context.Background()

	institutions, err := reader.ListInstitutions(ctx)
	require.NoError(t, err)
	assert.Len(t, institutions, 3)

	users, err := reader.ListUsersByInstitution(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"20", "21", "22"}, model.UserIDs(users))

	_, err = reader.ListUsersByInstitution(ctx, " ")
	assert.IsType(t, errors.Validation{}, err)

	commenters, err := reader.ListCommenters(model.ContextWithPrincipal(ctx, &model.Principal{
		UserID: "20", Role: model.RoleFederalInstitutionsAdmin, InstitutionID: "2",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"21", "22"}, model.UserIDs(commenters))
}

func TestCommentRequestReader(t *testing.T) {
	backend := mock.NewMockBackend()
	reader := NewCommentRequestReaderOrchestrator(WithCommentRequestReader(backend))
	ctx := context.Background()

	cr, err := reader.GetCommentRequest(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, model.RequestStateAccepted, cr.State)

	personal := false
	requests, err := reader.ListCommentRequests(ctx, "43", &personal)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "3", requests[0].InstitutionID)

	_, err = reader.ListCommentRequests(ctx, "", nil)
	assert.IsType(t, errors.Validation{}, err)
}
