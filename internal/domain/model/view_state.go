// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strings"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// ViewMode is the mode of a management screen.
type ViewMode string

// View modes.
const (
	ViewBrowsing ViewMode = "browsing"
	ViewCreating ViewMode = "creating"
	ViewEditing  ViewMode = "editing"
)

// ViewState replaces per-screen "show add form" / "show edit form" flags with
// one explicit value. EntityID is set only while Editing.
type ViewState struct {
	Mode     ViewMode `json:"mode"`
	EntityID string   `json:"entity_id,omitempty"`
}

// Browse returns the browsing state.
func (ViewState) Browse() ViewState {
	return ViewState{Mode: ViewBrowsing}
}

// Create returns the creating state.
func (ViewState) Create() ViewState {
	return ViewState{Mode: ViewCreating}
}

// Edit returns the editing state for id.
func (ViewState) Edit(id string) (ViewState, error) {
	if strings.TrimSpace(id) == "" {
		return ViewState{}, errors.NewValidation("editing requires an entity id")
	}
	return ViewState{Mode: ViewEditing, EntityID: id}, nil
}

// ParseViewState resolves a mode and optional id. An empty mode is Browsing.
func ParseViewState(mode, id string) (ViewState, error) {
	var vs ViewState
	switch ViewMode(strings.ToLower(strings.TrimSpace(mode))) {
	case "", ViewBrowsing:
		return vs.Browse(), nil
	case ViewCreating:
		return vs.Create(), nil
	case ViewEditing:
		return vs.Edit(id)
	default:
		return ViewState{}, errors.NewValidation(fmt.Sprintf("unknown view mode %q", mode))
	}
}

// viewCapabilities lists, per resource, the modes the gateway can serve and
// the capability each one needs. A mode absent here has no backing operation.
var viewCapabilities = map[string]map[ViewMode]Capability{
	"drafts":       {ViewBrowsing: CapDraftsBrowse, ViewEditing: CapDraftsEdit},
	"institutions": {ViewBrowsing: CapDirectoryRead, ViewCreating: CapDirectoryManage},
	"regions":      {ViewBrowsing: CapDirectoryRead, ViewEditing: CapDirectoryManage},
	"sectors":      {ViewBrowsing: CapDirectoryRead},
	"users":        {ViewBrowsing: CapUsersManage, ViewCreating: CapUsersManage, ViewEditing: CapUsersManage},
}

// RequiredCapability returns the capability needed to enter this state on the
// given resource.
func (vs ViewState) RequiredCapability(resource string) (Capability, error) {
	modes, ok := viewCapabilities[resource]
	if !ok {
		return "", errors.NewNotFound(fmt.Sprintf("unknown resource %q", resource))
	}
	capability, ok := modes[vs.Mode]
	if !ok {
		return "", errors.NewValidation(fmt.Sprintf("%s cannot be %s", resource, vs.Mode))
	}
	return capability, nil
}
