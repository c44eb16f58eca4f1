// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewState(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		id      string
		want    ViewState
		wantErr bool
	}{
		{name: "default browsing", want: ViewState{Mode: ViewBrowsing}},
		{name: "creating ignores id", mode: "creating", id: "9", want: ViewState{Mode: ViewCreating}},
		{name: "editing", mode: "Editing", id: "9", want: ViewState{Mode: ViewEditing, EntityID: "9"}},
		{name: "editing without id", mode: "editing", wantErr: true},
		{name: "unknown mode", mode: "deleting", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseViewState(tt.mode, tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestViewStateTransitions(t *testing.T) {
	vs := ViewState{}.Browse()
	assert.Equal(t, ViewBrowsing, vs.Mode)

	vs = vs.Create()
	assert.Equal(t, ViewCreating, vs.Mode)

	vs, err := vs.Edit("12")
	require.NoError(t, err)
	assert.Equal(t, ViewState{Mode: ViewEditing, EntityID: "12"}, vs)

	assert.Empty(t, vs.Browse().EntityID)
}

func TestViewStateRequiredCapability(t *testing.T) {
	tests := []struct {
		state    ViewState
		resource string
		want     Capability
		wantErr  bool
	}{
		{ViewState{Mode: ViewBrowsing}, "drafts", CapDraftsBrowse, false},
		{ViewState{Mode: ViewEditing, EntityID: "1"}, "drafts", CapDraftsEdit, false},
		{ViewState{Mode: ViewCreating}, "drafts", "", true},
		{ViewState{Mode: ViewBrowsing}, "institutions", CapDirectoryRead, false},
		{ViewState{Mode: ViewCreating}, "institutions", CapDirectoryManage, false},
		{ViewState{Mode: ViewEditing, EntityID: "1"}, "institutions", "", true},
		{ViewState{Mode: ViewBrowsing}, "regions", CapDirectoryRead, false},
		{ViewState{Mode: ViewEditing, EntityID: "1"}, "regions", CapDirectoryManage, false},
		{ViewState{Mode: ViewCreating}, "regions", "", true},
		{ViewState{Mode: ViewCreating}, "sectors", "", true},
		{ViewState{Mode: ViewBrowsing}, "users", CapUsersManage, false},
		{ViewState{Mode: ViewCreating}, "users", CapUsersManage, false},
		{ViewState{Mode: ViewEditing, EntityID: "1"}, "users", CapUsersManage, false},
		{ViewState{Mode: ViewBrowsing}, "reports", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.resource+"/"+string(tt.state.Mode), func(t *testing.T) {
			got, err := tt.state.RequiredCapability(tt.resource)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
