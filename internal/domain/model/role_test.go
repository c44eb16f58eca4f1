// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		role  Role
		cap   Capability
		allow bool
	}{
		{RoleSuperAdmin, CapDirectoryManage, true},
		{RoleSuperAdmin, CapReflectionsSubmit, true},
		{RoleFederalAdmin, CapDirectoryManage, true},
		{RoleFederalAdmin, CapRequestsDecide, false},
		{RoleRegionalInstitutionsAdmin, CapRequestsDecide, true},
		{RoleFederalInstitutionsAdmin, CapRequestsAssign, true},
		{RoleFederalInstitutionsAdmin, CapDraftsEdit, false},
		{RoleApprover, CapDraftsApprove, true},
		{RoleApprover, CapRequestsInvite, true},
		{RoleUploader, CapDraftsCreate, true},
		{RoleUploader, CapDraftsApprove, false},
		{RoleCommenter, CapReflectionsSubmit, true},
		{RoleCommenter, CapRequestsAssign, false},
		{RoleGuest, CapDraftsBrowse, true},
		{RoleGuest, CapRequestsView, false},
		{Role("Intern"), CapDraftsBrowse, true},
		{Role("Intern"), CapDraftsEdit, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.cap), func(t *testing.T) {
			assert.Equal(t, tt.allow, Authorize(tt.role, tt.cap))
		})
	}
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, AllCapabilities(), Capabilities(RoleSuperAdmin))
	assert.Equal(t, []Capability{CapDraftsBrowse}, Capabilities(RoleGuest))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleSuperAdmin, ParseRole("super admin"))
	assert.Equal(t, RoleUploader, ParseRole("Uploaders"))
	assert.Equal(t, RoleRegionalInstitutionsAdmin, ParseRole(" Regional Institutions Admin "))
	assert.Equal(t, RoleGuest, ParseRole("root"))
	assert.Equal(t, RoleGuest, ParseRole(""))
}

func TestPrincipalCan(t *testing.T) {
	var nobody *Principal
	assert.True(t, nobody.Can(CapDraftsBrowse))
	assert.False(t, nobody.Can(CapDraftsEdit))

	p := &Principal{UserID: "u1", Role: "made-up", InstitutionID: "A"}
	assert.Equal(t, RoleGuest, p.EffectiveRole())
	assert.True(t, p.BelongsTo("A"))
	assert.False(t, p.BelongsTo(""))
}
