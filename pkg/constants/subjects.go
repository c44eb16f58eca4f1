// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// NATS subjects for workflow notifications
const (
	// CommentRequestDecidedSubject carries accept/reject decisions to the inviting institution
	CommentRequestDecidedSubject = "econsult.comment_request.decided"

	// CommenterAssignedSubject carries one message per assigned commenter
	CommenterAssignedSubject = "econsult.commenter.assigned"

	// InvitationCreatedSubject carries newly created comment requests to their recipients
	InvitationCreatedSubject = "econsult.comment_request.created"
)
