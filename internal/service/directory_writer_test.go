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

func newDirectoryWriter() (DirectoryWriter, *mock.MockBackend) {
	backend := mock.NewMockBackend()
	return NewDirectoryWriterOrchestrator(
		WithDirectoryWriter(backend),
		WithDirectoryWriterReader(backend),
	), backend
}

func as(p *model.Principal) context.Context {
	return model.ContextWithPrincipal(context.Background(), p)
}

var (
	federalAdmin = &model.Principal{UserID: "2", Role: model.RoleFederalAdmin, RegionID: "1"}
	moeAdmin     = &model.Principal{UserID: "20", Role: model.RoleFederalInstitutionsAdmin, InstitutionID: "2", RegionID: "1"}
	moeCommenter = &model.Principal{UserID: "21", Role: model.RoleCommenter, InstitutionID: "2"}
)

func TestDirectoryWriter_CreateInstitution(t *testing.T) {
	writer, backend := newDirectoryWriter()

	tests := []struct {
		name        string
		ctx         context.Context
		institution *model.Institution
		expectedErr error
	}{
		{
			name: "federal admin registers an institution",
			ctx:  as(federalAdmin),
			institution: &model.Institution{
				Name: "Ministry of Health", InstitutionTypeID: "1", RegionID: "1", SectorID: "3", Email: "info@moh.gov.et",
			},
		},
		{
			name:        "institution admin cannot",
			ctx:         as(moeAdmin),
			institution: &model.Institution{Name: "Shadow Ministry"},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "missing sector",
			ctx:         as(federalAdmin),
			institution: &model.Institution{Name: "Ministry of Trade", InstitutionTypeID: "1", RegionID: "1", Email: "info@mot.gov.et"},
			expectedErr: errors.Validation{},
		},
		{
			name:        "anonymous",
			ctx:         context.Background(),
			institution: &model.Institution{Name: "Ministry of Trade"},
			expectedErr: errors.Unauthorized{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			created, err := writer.CreateInstitution(tc.ctx, tc.institution)
			if tc.expectedErr != nil {
				assert.IsType(t, tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			institutions, err := backend.ListInstitutions(context.Background())
			require.NoError(t, err)
			assert.Len(t, institutions, 4)
			assert.Equal(t, "Ministry of Health", created.Name)
		})
	}
}

func TestDirectoryWriter_UpdateRegion(t *testing.T) {
	writer, _ := newDirectoryWriter()

	region, err := writer.UpdateRegion(as(federalAdmin), &model.Region{ID: "3", Name: " Oromia Region "})
	require.NoError(t, err)
	assert.Equal(t, "Oromia Region", region.Name)

	_, err = writer.UpdateRegion(as(moeAdmin), &model.Region{ID: "3", Name: "Oromia"})
	assert.IsType(t, errors.Forbidden{}, err)

	_, err = writer.UpdateRegion(as(federalAdmin), &model.Region{ID: "3"})
	assert.IsType(t, errors.Validation{}, err)
}

func TestDirectoryWriter_CreateUser(t *testing.T) {
	tests := []struct {
		name            string
		principal       *model.Principal
		profile         model.UserProfile
		expectedErr     error
		wantInstitution string
	}{
		{
			name:            "institution admin defaults to own institution",
			principal:       moeAdmin,
			profile:         model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya@moe.gov.et", Role: model.RoleCommenter},
			wantInstitution: "2",
		},
		{
			name:        "institution admin cannot staff another institution",
			principal:   moeAdmin,
			profile:     model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya@mof.gov.et", Role: model.RoleCommenter, InstitutionID: "1"},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "institution admin cannot grant admin roles",
			principal:   moeAdmin,
			profile:     model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya@moe.gov.et", Role: model.RoleFederalInstitutionsAdmin},
			expectedErr: errors.Forbidden{},
		},
		{
			name:            "federal admin staffs any institution",
			principal:       federalAdmin,
			profile:         model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya@aahb.gov.et", Role: model.RoleRegionalInstitutionsAdmin, InstitutionID: "3"},
			wantInstitution: "3",
		},
		{
			name:        "commenter cannot manage users",
			principal:   moeCommenter,
			profile:     model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya@moe.gov.et", Role: model.RoleCommenter},
			expectedErr: errors.Forbidden{},
		},
		{
			name:        "invalid email",
			principal:   federalAdmin,
			profile:     model.UserProfile{FirstName: "Liya", LastName: "Mekonnen", Email: "liya", Role: model.RoleFederalAdmin},
			expectedErr: errors.Validation{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			writer, _ := newDirectoryWriter()
			profile := tc.profile
			user, err := writer.CreateUser(as(tc.principal), &profile)
			if tc.expectedErr != nil {
				assert.IsType(t, tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInstitution, user.InstitutionID)
			assert.Equal(t, "Liya Mekonnen", user.Name)
		})
	}
}

func TestDirectoryWriter_UpdateUser(t *testing.T) {
	writer, backend := newDirectoryWriter()

	promoted := &model.UserProfile{
		ID: "22", FirstName: "Meron", LastName: "Haile", Email: "meron.haile@moe.gov.et",
		Role: model.RoleApprover, InstitutionID: "2",
	}
	user, err := writer.UpdateUser(as(moeAdmin), promoted)
	require.NoError(t, err)
	assert.Equal(t, model.RoleApprover, user.Role)

	// user 10 belongs to the Ministry of Finance
	_, err = writer.UpdateUser(as(moeAdmin), &model.UserProfile{
		ID: "10", FirstName: "Hana", LastName: "Tesfaye", Email: "hana.tesfaye@mof.gov.et",
		Role: model.RoleUploader, InstitutionID: "2",
	})
	assert.IsType(t, errors.Forbidden{}, err)

	_, err = writer.UpdateUser(as(moeAdmin), &model.UserProfile{FirstName: "No", LastName: "Id", Email: "no.id@moe.gov.et", Role: model.RoleCommenter, InstitutionID: "2"})
	assert.IsType(t, errors.Validation{}, err)

	// backend refusals pass through unchanged
	backend.SetErrorForOperation("UpdateUser", errors.NewNetwork("backend unreachable"))
	_, err = writer.UpdateUser(as(federalAdmin), promoted)
	assert.IsType(t, errors.Remote{}, err)
}
