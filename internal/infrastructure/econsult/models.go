// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

// envelope is the success body of every backend response
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// pageObject is a paginated list nested inside an envelope's data
type pageObject struct {
	Data        json.RawMessage `json:"data"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
}

// ID accepts both JSON numbers and strings; the backend uses numeric keys.
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON sends numeric ids as numbers so the backend's integer
// validation accepts them.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func toIDs(in []string) []ID {
	out := make([]ID, len(in))
	for i, s := range in {
		out[i] = ID(s)
	}
	return out
}

func fromIDs(in []ID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = string(id)
	}
	return out
}

// named is the shape of regions, sectors and tag-like references
type named struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// nameRefs accepts either a list of ids or a list of {id, name} objects.
type nameRefs []string

// UnmarshalJSON implements json.Unmarshaler
func (r *nameRefs) UnmarshalJSON(b []byte) error {
	var ids []ID
	if err := json.Unmarshal(b, &ids); err == nil {
		*r = fromIDs(ids)
		return nil
	}
	var objs []named
	if err := json.Unmarshal(b, &objs); err != nil {
		return err
	}
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = string(o.ID)
		if out[i] == "" {
			out[i] = o.Name
		}
	}
	*r = out
	return nil
}

type draftDTO struct {
	ID                 ID       `json:"id"`
	ShortTitle         string   `json:"short_title"`
	InstitutionID      ID       `json:"institution_id"`
	Sectors            nameRefs `json:"sectors,omitempty"`
	Tags               nameRefs `json:"tags,omitempty"`
	IsPrivate          flexBool `json:"is_private"`
	Status             string   `json:"status,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Slug               string   `json:"slug,omitempty"`
	ParentID           ID       `json:"parent_id,omitempty"`
	CommentOpeningDate string   `json:"comment_opening_date,omitempty"`
	CommentClosingDate string   `json:"comment_closing_date,omitempty"`
}

func (d draftDTO) toModel() *model.Draft {
	return &model.Draft{
		ID:                 string(d.ID),
		ShortTitle:         d.ShortTitle,
		InstitutionID:      string(d.InstitutionID),
		Sectors:            []string(d.Sectors),
		Tags:               []string(d.Tags),
		IsPrivate:          bool(d.IsPrivate),
		Status:             d.Status,
		Summary:            d.Summary,
		Slug:               d.Slug,
		ParentID:           string(d.ParentID),
		CommentOpeningDate: d.CommentOpeningDate,
		CommentClosingDate: d.CommentClosingDate,
	}
}

// draftUpdate is the body of a draft edit, tunnelled through POST
type draftUpdate struct {
	Method             string   `json:"_method"`
	ShortTitle         string   `json:"short_title"`
	InstitutionID      ID       `json:"institution_id"`
	Sectors            []ID     `json:"sectors"`
	Tags               []string `json:"tags"`
	IsPrivate          bool     `json:"is_private"`
	Summary            string   `json:"summary,omitempty"`
	Slug               string   `json:"slug,omitempty"`
	ParentID           ID       `json:"parent_id,omitempty"`
	CommentOpeningDate string   `json:"comment_opening_date,omitempty"`
	CommentClosingDate string   `json:"comment_closing_date,omitempty"`
}

// flexBool accepts true/false, 0/1 and "0"/"1".
type flexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(b)), `"`) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

type commentRequestDTO struct {
	ID                 ID       `json:"id"`
	DraftID            ID       `json:"draft_id"`
	InstitutionID      ID       `json:"institution_id"`
	Email              string   `json:"email"`
	IsPersonal         flexBool `json:"is_personal"`
	InvitationRemark   string   `json:"invitation_remark"`
	Status             string   `json:"status"`
	CommentOpeningDate string   `json:"comment_opening_date"`
	CommentClosingDate string   `json:"comment_closing_date"`
	AcceptanceRemark   string   `json:"acceptance_remark"`
	RejectionMessage   string   `json:"rejection_message"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// toModel converts the backend record. When the backend sends no explicit
// status the state is derived from the decision fields that are present.
func (d commentRequestDTO) toModel() (*model.CommentRequest, error) {
	state, err := model.ParseRequestState(d.Status)
	if err != nil {
		return nil, err
	}
	if d.Status == "" {
		switch {
		case d.RejectionMessage != "":
			state = model.RequestStateRejected
		case d.CommentOpeningDate != "" || d.AcceptanceRemark != "":
			state = model.RequestStateAccepted
		}
	}

	cr := &model.CommentRequest{
		ID:                 string(d.ID),
		DraftID:            string(d.DraftID),
		InstitutionID:      string(d.InstitutionID),
		Email:              d.Email,
		IsPersonal:         bool(d.IsPersonal),
		Message:            d.InvitationRemark,
		State:              state,
		CommentOpeningDate: d.CommentOpeningDate,
		CommentClosingDate: d.CommentClosingDate,
		CreatedAt:          parseTime(d.CreatedAt),
		UpdatedAt:          parseTime(d.UpdatedAt),
	}
	switch state {
	case model.RequestStateAccepted:
		cr.DecisionMessage = d.AcceptanceRemark
	case model.RequestStateRejected:
		cr.DecisionMessage = d.RejectionMessage
	}
	cr.Normalize()
	return cr, nil
}

type invitationBody struct {
	DraftID      ID       `json:"draft_id"`
	Institutions []ID     `json:"institutions,omitempty"`
	Emails       []string `json:"email,omitempty"`
	Remark       string   `json:"invitation_remark"`
}

type acceptanceBody struct {
	CommentRequestID   ID     `json:"comment_request_id"`
	DraftID            ID     `json:"draft_id"`
	Institutions       []ID   `json:"institutions"`
	CommentOpeningDate string `json:"comment_opening_date"`
	CommentClosingDate string `json:"comment_closing_date"`
	AcceptanceRemark   string `json:"acceptance_remark"`
}

type rejectionBody struct {
	CommentRequestID ID     `json:"comment_request_id"`
	Message          string `json:"message"`
}

type openingRejectionBody struct {
	DraftID ID     `json:"draft_id"`
	Message string `json:"request_rejection_message"`
}

type assignmentDTO struct {
	CommentRequestID ID       `json:"comment_request_id"`
	Message          string   `json:"message"`
	Commenters       nameRefs `json:"commenters"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

func (d assignmentDTO) toModel() *model.CommenterAssignment {
	return &model.CommenterAssignment{
		CommentRequestID: string(d.CommentRequestID),
		CommenterIDs:     []string(d.Commenters),
		Message:          d.Message,
		CreatedAt:        parseTime(d.CreatedAt),
	}
}

type assignmentBody struct {
	CommentRequestID ID     `json:"comment_request_id"`
	Message          string `json:"message"`
	Commenters       []ID   `json:"commenters"`
}

type reflectionDTO struct {
	ID               ID     `json:"id,omitempty"`
	CommentRequestID ID     `json:"comment_request_id,omitempty"`
	DraftID          ID     `json:"draft_id,omitempty"`
	AuthorID         ID     `json:"author_id"`
	Text             string `json:"text"`
	CreatedAt        string `json:"created_at,omitempty"`
}

func (d reflectionDTO) toModel() *model.Reflection {
	return &model.Reflection{
		ID:               string(d.ID),
		CommentRequestID: string(d.CommentRequestID),
		DraftID:          string(d.DraftID),
		AuthorID:         string(d.AuthorID),
		Text:             d.Text,
		CreatedAt:        parseTime(d.CreatedAt),
	}
}

type institutionDTO struct {
	ID                ID       `json:"id"`
	Name              string   `json:"name"`
	InstitutionType   string   `json:"institution_type"`
	InstitutionTypeID ID       `json:"institution_type_id"`
	RegionID          ID       `json:"region_id"`
	SectorID          ID       `json:"sector_id"`
	Email             string   `json:"email"`
	Telephone         string   `json:"telephone"`
	Address           string   `json:"address"`
	CanCreateDraft    flexBool `json:"can_create_draft"`
}

func (d institutionDTO) toModel() *model.Institution {
	return &model.Institution{
		ID:                string(d.ID),
		Name:              d.Name,
		InstitutionType:   d.InstitutionType,
		InstitutionTypeID: string(d.InstitutionTypeID),
		RegionID:          string(d.RegionID),
		SectorID:          string(d.SectorID),
		Email:             d.Email,
		Telephone:         d.Telephone,
		Address:           d.Address,
		CanCreateDraft:    bool(d.CanCreateDraft),
	}
}

// institutionBody is the body of POST institutions
type institutionBody struct {
	Name              string `json:"name"`
	InstitutionTypeID ID     `json:"institution_type_id"`
	RegionID          ID     `json:"region_id"`
	SectorID          ID     `json:"sector_id"`
	Email             string `json:"email"`
	Telephone         string `json:"telephone"`
	Address           string `json:"address"`
	CanCreateDraft    bool   `json:"can_create_draft"`
	CreatedBy         ID     `json:"created_by,omitempty"`
	UpdatedBy         ID     `json:"updated_by,omitempty"`
}

// regionUpdate is the body of POST regions/{id}
type regionUpdate struct {
	Method    string `json:"_method"`
	Name      string `json:"name"`
	UpdatedBy ID     `json:"updated_by,omitempty"`
}

// userBody is the body of POST users and, with Method and ID set, of POST users/{id}
type userBody struct {
	Method          string `json:"_method,omitempty"`
	ID              ID     `json:"id,omitempty"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	Email           string `json:"email"`
	Roles           string `json:"roles"`
	RegionID        ID     `json:"region_id,omitempty"`
	InstitutionID   ID     `json:"institution_id,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
	CreatedBy       ID     `json:"created_by,omitempty"`
	UpdatedBy       ID     `json:"updated_by,omitempty"`
}

type userDTO struct {
	ID            ID      `json:"id"`
	Name          string  `json:"name"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Role          roleRef `json:"role"`
	InstitutionID ID      `json:"institution_id"`
	RegionID      ID      `json:"region_id"`
}

func (d userDTO) toModel() *model.User {
	name := d.Name
	if name == "" {
		name = strings.TrimSpace(d.FirstName + " " + d.LastName)
	}
	return &model.User{
		ID:            string(d.ID),
		Name:          name,
		Email:         d.Email,
		Role:          model.ParseRole(string(d.Role)),
		InstitutionID: string(d.InstitutionID),
		RegionID:      string(d.RegionID),
	}
}

// roleRef accepts a role given as a plain name or as {"name": ...}.
type roleRef string

// UnmarshalJSON implements json.Unmarshaler
func (r *roleRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = roleRef(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = roleRef(obj.Name)
	return nil
}

// parseTime accepts RFC3339 timestamps; anything else yields the zero time.
func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := utils.ValidateRFC3339(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
