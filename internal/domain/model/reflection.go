// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"time"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// Reflection is a recorded response to comments received on a draft.
// Submissions are not idempotent: every call creates a new reflection.
type Reflection struct {
	ID               string    `json:"id"`
	CommentRequestID string    `json:"comment_request_id,omitempty"`
	DraftID          string    `json:"draft_id,omitempty"`
	AuthorID         string    `json:"author_id"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks required fields.
func (r *Reflection) Validate() error {
	if strings.TrimSpace(r.CommentRequestID) == "" && strings.TrimSpace(r.DraftID) == "" {
		return errors.NewValidation("comment_request_id or draft_id is required")
	}
	if strings.TrimSpace(r.AuthorID) == "" {
		return errors.NewValidation("author_id is required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.NewValidation("text is required")
	}
	return nil
}
