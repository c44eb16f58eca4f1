// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

// NotificationHandler receives decoded workflow notifications
type NotificationHandler func(ctx context.Context, notification *model.Notification)

// SubscribeNotifications delivers every notification published on subject to
// handler until ctx is done. Subscribers sharing a queue name split the load.
func (c *NATSClient) SubscribeNotifications(ctx context.Context, subject, queue string, handler NotificationHandler) error {
	sub, err := c.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		msgCtx := ctx
		if requestID := msg.Header.Get(constants.RequestIDHeader); requestID != "" {
			msgCtx = context.WithValue(ctx, constants.RequestIDContextKey, requestID)
		}

		notification, err := decodeNotification(msg)
		if err != nil {
			slog.WarnContext(msgCtx, "discarding malformed notification",
				"error", err,
				"subject", msg.Subject,
			)
			return
		}
		handler(msgCtx, notification)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "subscribed to notifications", "subject", subject, "queue", queue)

	<-ctx.Done()
	if err := sub.Unsubscribe(); err != nil {
		slog.WarnContext(ctx, "failed to unsubscribe", "error", err, "subject", subject)
	}
	return nil
}

// decodeNotification rebuilds a notification from a NATS message. The
// payload stays raw JSON since consumers know which event kind to expect.
func decodeNotification(msg *nats.Msg) (*model.Notification, error) {
	var notification model.Notification
	if err := json.Unmarshal(msg.Data, &notification); err != nil {
		return nil, err
	}
	var payload struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		return nil, err
	}
	notification.Subject = msg.Subject
	notification.Data = payload.Data
	return &notification, nil
}
