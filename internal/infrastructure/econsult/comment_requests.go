// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/redaction"
)

// GetCommentRequest retrieves a single comment request
func (c *Client) GetCommentRequest(ctx context.Context, id string) (*model.CommentRequest, error) {
	var dto commentRequestDTO
	if _, err := c.get(ctx, fmt.Sprintf(constants.PathCommentRequest, url.PathEscape(id)), nil, &dto); err != nil {
		if isRemoteNotFound(err) {
			return nil, errors.NewNotFound(fmt.Sprintf("comment request %s not found", id), err)
		}
		return nil, err
	}
	if dto.ID == "" {
		return nil, errors.NewNotFound(fmt.Sprintf("comment request %s not found", id))
	}
	return dto.toModel()
}

// ListCommentRequests lists comment requests, typically those of one draft
func (c *Client) ListCommentRequests(ctx context.Context, filter model.CommentRequestFilter) ([]*model.CommentRequest, error) {
	params, err := queryValues(filter)
	if err != nil {
		return nil, err
	}

	dtos, err := listAll[commentRequestDTO](ctx, c, constants.PathCommentRequests, params)
	if err != nil {
		return nil, err
	}
	return convertRequests(dtos)
}

// InviteInstitutions asks institutions to comment on a draft
func (c *Client) InviteInstitutions(ctx context.Context, invitation *model.InstitutionInvitation) ([]*model.CommentRequest, error) {
	body := invitationBody{
		DraftID:      ID(invitation.DraftID),
		Institutions: toIDs(invitation.InstitutionIDs),
		Remark:       invitation.Remark,
	}

	var raw json.RawMessage
	message, err := c.post(ctx, constants.PathRequestInstitutionComment, body, &raw)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "institutions invited to comment",
		"draft_id", invitation.DraftID,
		"institution_count", len(invitation.InstitutionIDs),
		"message", message,
	)

	created, err := decodeCreatedRequests(raw)
	if err != nil {
		return nil, err
	}
	if len(created) > 0 {
		return created, nil
	}

	// the backend only acknowledged; describe what it was asked to create
	now := time.Now().UTC()
	requests := make([]*model.CommentRequest, 0, len(invitation.InstitutionIDs))
	for _, institutionID := range invitation.InstitutionIDs {
		requests = append(requests, &model.CommentRequest{
			DraftID:       invitation.DraftID,
			InstitutionID: institutionID,
			Message:       invitation.Remark,
			State:         model.RequestStatePending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return requests, nil
}

// InvitePeople asks individuals, by email, to comment on a draft
func (c *Client) InvitePeople(ctx context.Context, invitation *model.PersonalInvitation) ([]*model.CommentRequest, error) {
	body := invitationBody{
		DraftID: ID(invitation.DraftID),
		Emails:  invitation.Emails,
		Remark:  invitation.Remark,
	}

	var raw json.RawMessage
	message, err := c.post(ctx, constants.PathRequestPeopleComment, body, &raw)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "people invited to comment",
		"draft_id", invitation.DraftID,
		"emails", redaction.RedactEmails(invitation.Emails),
		"message", message,
	)

	created, err := decodeCreatedRequests(raw)
	if err != nil {
		return nil, err
	}
	if len(created) > 0 {
		return created, nil
	}

	now := time.Now().UTC()
	requests := make([]*model.CommentRequest, 0, len(invitation.Emails))
	for _, email := range invitation.Emails {
		requests = append(requests, &model.CommentRequest{
			DraftID:    invitation.DraftID,
			Email:      email,
			IsPersonal: true,
			Message:    invitation.Remark,
			State:      model.RequestStatePending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return requests, nil
}

// AcceptCommentRequest accepts a request and opens the draft for comment
func (c *Client) AcceptCommentRequest(ctx context.Context, acceptance *model.Acceptance) (*model.CommentRequest, error) {
	body := acceptanceBody{
		CommentRequestID:   ID(acceptance.CommentRequestID),
		DraftID:            ID(acceptance.DraftID),
		CommentOpeningDate: acceptance.CommentOpeningDate,
		CommentClosingDate: acceptance.CommentClosingDate,
		AcceptanceRemark:   acceptance.Remark,
		Institutions:       []ID{},
	}
	if acceptance.InstitutionID != "" {
		body.Institutions = []ID{ID(acceptance.InstitutionID)}
	}

	var dto commentRequestDTO
	path := fmt.Sprintf(constants.PathApproveCommentOpening, url.PathEscape(acceptance.DraftID))
	message, err := c.post(ctx, path, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comment request accepted",
		"comment_request_id", acceptance.CommentRequestID,
		"draft_id", acceptance.DraftID,
		"message", message,
	)

	return c.decidedRequest(ctx, dto, acceptance.CommentRequestID)
}

// RejectCommentRequest declines a comment request
func (c *Client) RejectCommentRequest(ctx context.Context, rejection *model.Rejection) (*model.CommentRequest, error) {
	body := rejectionBody{
		CommentRequestID: ID(rejection.CommentRequestID),
		Message:          rejection.Message,
	}

	var dto commentRequestDTO
	message, err := c.post(ctx, constants.PathRejectCommentRequest, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comment request rejected",
		"comment_request_id", rejection.CommentRequestID,
		"message", message,
	)

	return c.decidedRequest(ctx, dto, rejection.CommentRequestID)
}

// decidedRequest uses the record in the decision response when the backend
// returns one, and re-reads the request otherwise.
func (c *Client) decidedRequest(ctx context.Context, dto commentRequestDTO, id string) (*model.CommentRequest, error) {
	if dto.ID != "" {
		return dto.toModel()
	}
	return c.GetCommentRequest(ctx, id)
}

// decodeCreatedRequests reads the requests an invitation created, if the
// backend returned them.
func decodeCreatedRequests(raw json.RawMessage) ([]*model.CommentRequest, error) {
	if !hasData(raw) || raw[0] != '[' {
		return nil, nil
	}

	var dtos []commentRequestDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, errors.NewUnexpected("failed to parse created comment requests", err)
	}
	return convertRequests(dtos)
}

func convertRequests(dtos []commentRequestDTO) ([]*model.CommentRequest, error) {
	requests := make([]*model.CommentRequest, 0, len(dtos))
	for _, d := range dtos {
		cr, err := d.toModel()
		if err != nil {
			return nil, err
		}
		requests = append(requests, cr)
	}
	return requests, nil
}
