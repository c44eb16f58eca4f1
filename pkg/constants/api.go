// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Backend REST API paths, relative to the configured base URL.
const (
	PathDrafts                    = "drafts"
	PathDraft                     = "drafts/%s"
	PathRequestInstitutionComment = "request-institution-for-comment"
	PathRequestPeopleComment      = "request-people-for-comment"
	PathCommentRequests           = "comment-request"
	PathCommentRequest            = "comment-request/%s"
	PathApproveCommentOpening     = "approve-comment-opening/draft/%s"
	PathRejectCommentRequest      = "reject-comment-request"
	PathAssignCommenters          = "assign-commenters"
	PathCommenterAssignment       = "assign-commenters/%s"
	PathCommentersPerInstitution  = "commenters-per-institution"
	PathRequestRejection          = "request-rejection"
	PathReflections               = "reflections"
	PathPublicInstitutions        = "public/institutions"
	PathInstitutions              = "institutions"
	PathRegions                   = "regions"
	PathRegion                    = "regions/%s"
	PathSectors                   = "sectors"
	PathUsers                     = "users"
	PathUser                      = "users/%s"
)

// Method overrides sent as _method when an update is tunnelled through POST.
const (
	MethodOverridePut   = "put"
	MethodOverridePatch = "patch"
)
