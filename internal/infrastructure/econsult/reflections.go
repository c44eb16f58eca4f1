// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

// SubmitReflection records a reflection. Every call creates a new one.
func (c *Client) SubmitReflection(ctx context.Context, reflection *model.Reflection) (*model.Reflection, error) {
	body := reflectionDTO{
		CommentRequestID: ID(reflection.CommentRequestID),
		DraftID:          ID(reflection.DraftID),
		AuthorID:         ID(reflection.AuthorID),
		Text:             reflection.Text,
	}

	var dto reflectionDTO
	message, err := c.post(ctx, constants.PathReflections, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reflection submitted",
		"comment_request_id", reflection.CommentRequestID,
		"reflection_id", string(dto.ID),
		"message", message,
	)

	if dto.ID == "" {
		created := *reflection
		created.CreatedAt = time.Now().UTC()
		return &created, nil
	}
	return dto.toModel(), nil
}

// ListReflections lists the reflections recorded against a comment request
func (c *Client) ListReflections(ctx context.Context, commentRequestID string) ([]*model.Reflection, error) {
	params := url.Values{"comment_request_id": {commentRequestID}}
	dtos, err := listAll[reflectionDTO](ctx, c, constants.PathReflections, params)
	if err != nil {
		return nil, err
	}

	reflections := make([]*model.Reflection, 0, len(dtos))
	for _, d := range dtos {
		reflections = append(reflections, d.toModel())
	}
	return reflections, nil
}
