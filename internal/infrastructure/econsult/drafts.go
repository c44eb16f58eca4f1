// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// ListDrafts returns one page of drafts matching the filter
func (c *Client) ListDrafts(ctx context.Context, filter model.DraftFilter) (*model.DraftPage, error) {
	params, err := queryValues(filter)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if _, err := c.get(ctx, constants.PathDrafts, params, &raw); err != nil {
		return nil, err
	}

	var page pageObject
	var dtos []draftDTO
	if hasData(raw) && raw[0] == '[' {
		if err := json.Unmarshal(raw, &dtos); err != nil {
			return nil, errors.NewUnexpected("failed to parse draft listing", err)
		}
		page.Total = len(dtos)
		page.CurrentPage = max(filter.Page, 1)
	} else if hasData(raw) {
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, errors.NewUnexpected("failed to parse draft listing", err)
		}
		if hasData(page.Data) {
			if err := json.Unmarshal(page.Data, &dtos); err != nil {
				return nil, errors.NewUnexpected("failed to parse draft listing", err)
			}
		}
	}

	result := &model.DraftPage{
		Drafts:      make([]*model.Draft, 0, len(dtos)),
		Total:       page.Total,
		CurrentPage: page.CurrentPage,
	}
	for _, d := range dtos {
		result.Drafts = append(result.Drafts, d.toModel())
	}

	slog.DebugContext(ctx, "drafts listed",
		"page", result.CurrentPage,
		"count", len(result.Drafts),
		"total", result.Total,
	)
	return result, nil
}

// GetDraft retrieves a single draft
func (c *Client) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	var dto draftDTO
	if _, err := c.get(ctx, fmt.Sprintf(constants.PathDraft, url.PathEscape(id)), nil, &dto); err != nil {
		if isRemoteNotFound(err) {
			return nil, errors.NewNotFound(fmt.Sprintf("draft %s not found", id), err)
		}
		return nil, err
	}
	if dto.ID == "" {
		return nil, errors.NewNotFound(fmt.Sprintf("draft %s not found", id))
	}
	return dto.toModel(), nil
}

// UpdateDraft edits a draft. The backend only accepts multipart-style method
// spoofing, so the update is sent as POST with _method=put.
func (c *Client) UpdateDraft(ctx context.Context, draft *model.Draft) (*model.Draft, error) {
	body := draftUpdate{
		Method:             constants.MethodOverridePut,
		ShortTitle:         draft.ShortTitle,
		InstitutionID:      ID(draft.InstitutionID),
		Sectors:            toIDs(draft.Sectors),
		Tags:               draft.Tags,
		IsPrivate:          draft.IsPrivate,
		Summary:            draft.Summary,
		Slug:               draft.Slug,
		ParentID:           ID(draft.ParentID),
		CommentOpeningDate: draft.CommentOpeningDate,
		CommentClosingDate: draft.CommentClosingDate,
	}

	var dto draftDTO
	message, err := c.post(ctx, fmt.Sprintf(constants.PathDraft, url.PathEscape(draft.ID)), body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "draft updated", "draft_id", draft.ID, "message", message)

	if dto.ID == "" {
		return draft, nil
	}
	return dto.toModel(), nil
}

// RejectCommentOpening declines a draft owner's request to open comments
func (c *Client) RejectCommentOpening(ctx context.Context, rejection *model.OpeningRejection) error {
	body := openingRejectionBody{
		DraftID: ID(rejection.DraftID),
		Message: rejection.Message,
	}

	message, err := c.post(ctx, constants.PathRequestRejection, body, nil)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "comment opening rejected", "draft_id", rejection.DraftID, "message", message)
	return nil
}
