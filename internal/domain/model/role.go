// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "strings"

// Role is a portal role as issued by the identity provider.
type Role string

// Portal roles.
const (
	RoleSuperAdmin                Role = "Super Admin"
	RoleFederalAdmin              Role = "Federal Admin"
	RoleFederalInstitutionsAdmin  Role = "Federal Institutions Admin"
	RoleRegionalAdmin             Role = "Regional Admin"
	RoleRegionalInstitutionsAdmin Role = "Regional Institutions Admin"
	RoleApprover                  Role = "Approver"
	RoleUploader                  Role = "Uploader"
	RoleCommenter                 Role = "Commenter"
	RoleGuest                     Role = "Guest"
)

// Capability is a named action gated by the authorization policy.
type Capability string

// Capabilities checked by the gateway and the services.
const (
	CapDraftsBrowse      Capability = "drafts.browse"
	CapDraftsEdit        Capability = "drafts.edit"
	CapDraftsCreate      Capability = "drafts.create"
	CapDraftsApprove     Capability = "drafts.approve"
	CapDirectoryRead     Capability = "directory.read"
	CapDirectoryManage   Capability = "directory.manage"
	CapUsersManage       Capability = "users.manage"
	CapRequestsInvite    Capability = "requests.invite"
	CapRequestsDecide    Capability = "requests.decide"
	CapRequestsAssign    Capability = "requests.assign"
	CapRequestsView      Capability = "requests.view"
	CapReflectionsSubmit Capability = "reflections.submit"
)

var institutionAdminCaps = []Capability{
	CapDraftsBrowse, CapDirectoryRead, CapUsersManage,
	CapRequestsInvite, CapRequestsDecide, CapRequestsAssign, CapRequestsView,
}

var directoryAdminCaps = []Capability{
	CapDraftsBrowse, CapDirectoryRead, CapDirectoryManage, CapUsersManage, CapRequestsView,
}

// policy is the single role -> capability table. Super Admin is handled in Authorize.
var policy = map[Role]map[Capability]struct{}{
	RoleFederalAdmin:              capSet(directoryAdminCaps...),
	RoleRegionalAdmin:             capSet(directoryAdminCaps...),
	RoleFederalInstitutionsAdmin:  capSet(institutionAdminCaps...),
	RoleRegionalInstitutionsAdmin: capSet(institutionAdminCaps...),
	RoleApprover: capSet(CapDraftsBrowse, CapDraftsEdit, CapDraftsApprove, CapDirectoryRead,
		CapRequestsInvite, CapRequestsView),
	RoleUploader:  capSet(CapDraftsBrowse, CapDraftsCreate, CapDraftsEdit, CapDirectoryRead, CapRequestsView),
	RoleCommenter: capSet(CapDraftsBrowse, CapDirectoryRead, CapRequestsView, CapReflectionsSubmit),
	RoleGuest:     capSet(CapDraftsBrowse),
}

func capSet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Authorize is the authorization policy: it reports whether role may perform
// capability. Unknown roles get the Guest capability set.
func Authorize(role Role, capability Capability) bool {
	if role == RoleSuperAdmin {
		return true
	}
	caps, ok := policy[role]
	if !ok {
		caps = policy[RoleGuest]
	}
	_, allowed := caps[capability]
	return allowed
}

// Capabilities lists everything role may do, in declaration order.
func Capabilities(role Role) []Capability {
	var out []Capability
	for _, c := range AllCapabilities() {
		if Authorize(role, c) {
			out = append(out, c)
		}
	}
	return out
}

// AllCapabilities returns every capability known to the policy.
func AllCapabilities() []Capability {
	return []Capability{
		CapDraftsBrowse, CapDraftsEdit, CapDraftsCreate, CapDraftsApprove,
		CapDirectoryRead, CapDirectoryManage, CapUsersManage,
		CapRequestsInvite, CapRequestsDecide, CapRequestsAssign, CapRequestsView,
		CapReflectionsSubmit,
	}
}

// ParseRole matches a role name case-insensitively. Plural "Uploaders" is
// accepted. Anything unrecognised parses as Guest.
func ParseRole(raw string) Role {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "uploaders" {
		return RoleUploader
	}
	for _, r := range allRoles {
		if strings.ToLower(string(r)) == name {
			return r
		}
	}
	return RoleGuest
}

var allRoles = []Role{
	RoleSuperAdmin, RoleFederalAdmin, RoleFederalInstitutionsAdmin, RoleRegionalAdmin,
	RoleRegionalInstitutionsAdmin, RoleApprover, RoleUploader, RoleCommenter, RoleGuest,
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}
