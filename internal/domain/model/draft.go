// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"strings"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// Draft is a piece of legislation circulated for comment. It is owned by one
// institution and carries the fields of both historical edit forms.
type Draft struct {
	ID                 string   `json:"id"`
	ShortTitle         string   `json:"short_title"`
	InstitutionID      string   `json:"institution_id"`
	Sectors            []string `json:"sectors"`
	Tags               []string `json:"tags"`
	IsPrivate          bool     `json:"is_private"`
	Status             string   `json:"status,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Slug               string   `json:"slug,omitempty"`
	ParentID           string   `json:"parent_id,omitempty"`
	CommentOpeningDate string   `json:"comment_opening_date,omitempty"`
	CommentClosingDate string   `json:"comment_closing_date,omitempty"`
}

// ValidateForUpdate checks the fields every draft edit must carry.
func (d *Draft) ValidateForUpdate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.NewValidation("draft id is required")
	}
	if strings.TrimSpace(d.ShortTitle) == "" {
		return errors.NewValidation("short_title is required")
	}
	if strings.TrimSpace(d.InstitutionID) == "" {
		return errors.NewValidation("institution_id is required")
	}
	return nil
}

// VisibleTo reports whether the principal may see the draft at all.
// Private drafts are hidden from guests.
func (d *Draft) VisibleTo(p *Principal) bool {
	if !d.IsPrivate {
		return true
	}
	return p != nil && p.EffectiveRole() != RoleGuest
}

// DraftFilter is the search used when listing drafts.
type DraftFilter struct {
	Page       int    `url:"page,omitempty"`
	ShortTitle string `url:"short_title,omitempty"`
}

// DraftPage is one page of a draft listing.
type DraftPage struct {
	Drafts      []*Draft `json:"data"`
	Total       int      `json:"total"`
	CurrentPage int      `json:"current_page"`
}

// OpeningRejection declines a draft owner's request to open a draft for comment.
type OpeningRejection struct {
	DraftID string `json:"draft_id"`
	Message string `json:"request_rejection_message"`
}
