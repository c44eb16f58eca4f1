// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"context"
	"time"

	"github.com/econsultation/econsultation-service/pkg/constants"
)

// NotificationKind identifies the workflow event behind a notification.
type NotificationKind string

// Notification kinds
const (
	NotificationInvitationCreated NotificationKind = "invitation_created"
	NotificationRequestDecided    NotificationKind = "request_decided"
	NotificationCommenterAssigned NotificationKind = "commenter_assigned"
)

// Notification is the payload published to notification channels.
type Notification struct {
	Kind      NotificationKind  `json:"kind"`
	Subject   string            `json:"-"`
	Recipient string            `json:"recipient,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
	Data      any               `json:"data"`
	SentAt    time.Time         `json:"sent_at"`
}

// RequestDecidedEvent is published after a comment request is accepted or rejected.
type RequestDecidedEvent struct {
	CommentRequest *CommentRequest `json:"comment_request"`
	DecidedBy      string          `json:"decided_by,omitempty"`
}

// CommenterAssignedEvent is published once per assigned commenter.
type CommenterAssignedEvent struct {
	CommentRequestID string `json:"comment_request_id"`
	DraftID          string `json:"draft_id"`
	CommenterID      string `json:"commenter_id"`
	Message          string `json:"message,omitempty"`
}

// InvitationCreatedEvent is published for each new comment request.
type InvitationCreatedEvent struct {
	CommentRequest *CommentRequest `json:"comment_request"`
}

// NewNotification builds a notification, copying the request id from ctx into
// the headers so consumers can correlate it with the originating call.
func NewNotification(ctx context.Context, kind NotificationKind, subject, recipient string, data any) *Notification {
	headers := make(map[string]string)
	if requestID, ok := ctx.Value(constants.RequestIDContextKey).(string); ok && requestID != "" {
		headers[constants.RequestIDHeader] = requestID
	}
	return &Notification{
		Kind:      kind,
		Subject:   subject,
		Recipient: recipient,
		Headers:   headers,
		Data:      data,
		SentAt:    time.Now().UTC(),
	}
}
