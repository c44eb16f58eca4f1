// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// draftPayload is the body of PUT /v1/drafts/{id}
type draftPayload struct {
	ShortTitle    string   `json:"short_title"`
	InstitutionID string   `json:"institution_id"`
	Sectors       []string `json:"sectors"`
	Tags          []string `json:"tags"`
	IsPrivate     bool     `json:"is_private"`
	Status        string   `json:"status"`
	Summary       string   `json:"summary"`
	Slug          string   `json:"slug"`
	ParentID      string   `json:"parent_id"`
}

func (p draftPayload) toModel(id string) *model.Draft {
	return &model.Draft{
		ID:            id,
		ShortTitle:    strings.TrimSpace(p.ShortTitle),
		InstitutionID: strings.TrimSpace(p.InstitutionID),
		Sectors:       p.Sectors,
		Tags:          p.Tags,
		IsPrivate:     p.IsPrivate,
		Status:        p.Status,
		Summary:       p.Summary,
		Slug:          p.Slug,
		ParentID:      p.ParentID,
	}
}

// messagePayload is the body of rejections
type messagePayload struct {
	Message string `json:"message"`
}

// institutionInvitationPayload is the body of POST /v1/drafts/{id}/invitations/institutions
type institutionInvitationPayload struct {
	Institutions []string `json:"institutions"`
	Remark       string   `json:"invitation_remark"`
}

// personalInvitationPayload is the body of POST /v1/drafts/{id}/invitations/people
type personalInvitationPayload struct {
	Emails []string `json:"emails"`
	Remark string   `json:"invitation_remark"`
}

// acceptancePayload is the body of POST /v1/comment-requests/{id}/accept
type acceptancePayload struct {
	CommentOpeningDate string `json:"comment_opening_date"`
	CommentClosingDate string `json:"comment_closing_date"`
	Remark             string `json:"acceptance_remark"`
}

// assignmentPayload is the body of POST /v1/comment-requests/{id}/commenters
type assignmentPayload struct {
	Commenters []string `json:"commenters"`
	Message    string   `json:"message"`
}

// reflectionPayload is the body of POST /v1/comment-requests/{id}/reflections
type reflectionPayload struct {
	Text string `json:"text"`
}

// institutionPayload is the body of POST /v1/institutions
type institutionPayload struct {
	Name              string `json:"name"`
	InstitutionTypeID string `json:"institution_type_id"`
	RegionID          string `json:"region_id"`
	SectorID          string `json:"sector_id"`
	Email             string `json:"email"`
	Telephone         string `json:"telephone"`
	Address           string `json:"address"`
	CanCreateDraft    bool   `json:"can_create_draft"`
}

func (p institutionPayload) toModel() *model.Institution {
	return &model.Institution{
		Name:              p.Name,
		InstitutionTypeID: strings.TrimSpace(p.InstitutionTypeID),
		RegionID:          strings.TrimSpace(p.RegionID),
		SectorID:          strings.TrimSpace(p.SectorID),
		Email:             p.Email,
		Telephone:         strings.TrimSpace(p.Telephone),
		Address:           strings.TrimSpace(p.Address),
		CanCreateDraft:    p.CanCreateDraft,
	}
}

// regionPayload is the body of PUT /v1/regions/{id}
type regionPayload struct {
	Name string `json:"name"`
}

// userPayload is the body of POST /v1/users and PUT /v1/users/{id}
type userPayload struct {
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	InstitutionID string `json:"institution_id"`
	RegionID      string `json:"region_id"`
}

// toModel keeps an unknown role name as given so validation can reject it
func (p userPayload) toModel(id string) *model.UserProfile {
	role := model.ParseRole(p.Role)
	if role == model.RoleGuest {
		role = model.Role(strings.TrimSpace(p.Role))
	}
	return &model.UserProfile{
		ID:            id,
		FirstName:     p.FirstName,
		MiddleName:    p.MiddleName,
		LastName:      p.LastName,
		MobileNumber:  strings.TrimSpace(p.MobileNumber),
		Email:         p.Email,
		Role:          role,
		InstitutionID: strings.TrimSpace(p.InstitutionID),
		RegionID:      strings.TrimSpace(p.RegionID),
	}
}

// viewResponse describes a resolved management view
type viewResponse struct {
	Resource   string           `json:"resource"`
	State      model.ViewState  `json:"state"`
	Capability model.Capability `json:"capability"`
	Allowed    bool             `json:"allowed"`
}

// parsePage reads an optional page query parameter
func parsePage(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errors.NewValidation(fmt.Sprintf("invalid page %q", raw))
	}
	return page, nil
}

// parseOptionalBool reads an optional boolean query parameter; the backend's
// 0/1 spelling is accepted
func parseOptionalBool(name, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidation(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return &v, nil
}
