// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"time"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// CommenterAssignment names the people who comment on behalf of an invited
// institution. It exists only for accepted comment requests.
type CommenterAssignment struct {
	CommentRequestID string    `json:"comment_request_id"`
	CommenterIDs     []string  `json:"commenters"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks the assignment carries a request and at least one commenter.
// Duplicate commenters are collapsed.
func (a *CommenterAssignment) Validate() error {
	if strings.TrimSpace(a.CommentRequestID) == "" {
		return errors.NewValidation("comment_request_id is required")
	}
	a.CommenterIDs = dedupe(a.CommenterIDs)
	if len(a.CommenterIDs) == 0 {
		return errors.NewValidation("at least one commenter is required")
	}
	return nil
}

// Includes reports whether userID is one of the assigned commenters.
func (a *CommenterAssignment) Includes(userID string) bool {
	for _, id := range a.CommenterIDs {
		if id == userID {
			return true
		}
	}
	return false
}
