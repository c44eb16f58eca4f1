// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package model defines the domain models and entities for the e-consultation service.
package model

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// RequestState is the lifecycle state of a comment request.
type RequestState string

// Comment request states. Accepted and rejected are terminal.
const (
	RequestStatePending  RequestState = "pending"
	RequestStateAccepted RequestState = "accepted"
	RequestStateRejected RequestState = "rejected"
)

// requestTransitions is the whole state machine: pending -> {accepted, rejected}.
var requestTransitions = map[RequestState][]RequestState{
	RequestStatePending: {RequestStateAccepted, RequestStateRejected},
}

// ParseRequestState converts a raw backend state. An empty value means the
// backend has not recorded a decision yet, which is pending.
func ParseRequestState(raw string) (RequestState, error) {
	state := RequestState(strings.ToLower(strings.TrimSpace(raw)))
	switch state {
	case "":
		return RequestStatePending, nil
	case RequestStatePending, RequestStateAccepted, RequestStateRejected:
		return state, nil
	case "approved":
		return RequestStateAccepted, nil
	default:
		return "", errors.NewValidation(fmt.Sprintf("unknown comment request state %q", raw))
	}
}

// IsTerminal reports whether no further transition is possible.
func (s RequestState) IsTerminal() bool {
	return len(requestTransitions[s]) == 0
}

// CanTransitionTo reports whether the state machine allows s -> next.
func (s RequestState) CanTransitionTo(next RequestState) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CommentRequest is an invitation for an institution or an individual to
// comment on a draft.
type CommentRequest struct {
	ID                 string       `json:"id"`
	DraftID            string       `json:"draft_id"`
	InstitutionID      string       `json:"institution_id,omitempty"`
	Email              string       `json:"email,omitempty"`
	IsPersonal         bool         `json:"is_personal"`
	Message            string       `json:"message,omitempty"`
	State              RequestState `json:"state"`
	CommentOpeningDate string       `json:"comment_opening_date,omitempty"` // YYYY-MM-DD, set on accept
	CommentClosingDate string       `json:"comment_closing_date,omitempty"` // YYYY-MM-DD, set on accept
	DecisionMessage    string       `json:"decision_message,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// Normalize fills defaults the backend may omit.
func (cr *CommentRequest) Normalize() {
	if cr.State == "" {
		cr.State = RequestStatePending
	}
	if cr.Email != "" && cr.InstitutionID == "" {
		cr.IsPersonal = true
	}
}

// Target returns the invited institution id or, for personal requests, the email.
func (cr *CommentRequest) Target() string {
	if cr.IsPersonal {
		return cr.Email
	}
	return cr.InstitutionID
}

// Transition moves the request to next, or fails with InvalidState when the
// state machine does not allow it. The receiver is left untouched on failure.
func (cr *CommentRequest) Transition(next RequestState) error {
	if !cr.State.CanTransitionTo(next) {
		return errors.NewInvalidState(fmt.Sprintf("comment request %s is %s and cannot become %s", cr.ID, cr.State, next))
	}
	cr.State = next
	cr.UpdatedAt = time.Now().UTC()
	return nil
}

// InstitutionInvitation asks one or more institutions to comment on a draft.
type InstitutionInvitation struct {
	DraftID        string   `json:"draft_id"`
	InstitutionIDs []string `json:"institutions"`
	Remark         string   `json:"invitation_remark"`
}

// Validate checks required fields and removes duplicate institutions,
// keeping the first occurrence.
func (in *InstitutionInvitation) Validate() error {
	if strings.TrimSpace(in.DraftID) == "" {
		return errors.NewValidation("draft_id is required")
	}
	in.InstitutionIDs = dedupe(in.InstitutionIDs)
	if len(in.InstitutionIDs) == 0 {
		return errors.NewValidation("at least one institution is required")
	}
	return nil
}

// PersonalInvitation asks individuals, addressed by email, to comment on a draft.
type PersonalInvitation struct {
	DraftID string   `json:"draft_id"`
	Emails  []string `json:"email"`
	Remark  string   `json:"invitation_remark"`
}

// Validate checks required fields and email syntax. Addresses are lower-cased
// and deduplicated.
func (in *PersonalInvitation) Validate() error {
	if strings.TrimSpace(in.DraftID) == "" {
		return errors.NewValidation("draft_id is required")
	}
	emails := make([]string, 0, len(in.Emails))
	for _, raw := range in.Emails {
		addr, err := mail.ParseAddress(strings.TrimSpace(raw))
		if err != nil {
			return errors.NewValidation(fmt.Sprintf("invalid email address %q", raw), err)
		}
		emails = append(emails, strings.ToLower(addr.Address))
	}
	in.Emails = dedupe(emails)
	if len(in.Emails) == 0 {
		return errors.NewValidation("at least one email is required")
	}
	return nil
}

// Acceptance carries the recipient's decision to accept a request and open
// the draft for comment between the two dates.
type Acceptance struct {
	CommentRequestID   string `json:"comment_request_id"`
	DraftID            string `json:"draft_id"`
	InstitutionID      string `json:"institution_id,omitempty"` // empty for personal requests
	CommentOpeningDate string `json:"comment_opening_date"`
	CommentClosingDate string `json:"comment_closing_date"`
	Remark             string `json:"acceptance_remark"`
}

// Rejection carries the recipient's reason for declining a request.
type Rejection struct {
	CommentRequestID string `json:"comment_request_id"`
	Message          string `json:"message"`
}

// CommentRequestFilter narrows a comment request listing.
type CommentRequestFilter struct {
	DraftID    string `url:"draft_id,omitempty"`
	IsPersonal *bool  `url:"is_personal,omitempty"`
	Page       int    `url:"page,omitempty"`
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
