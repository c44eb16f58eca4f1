// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

// notificationPublisher implements port.Notifier over NATS core or JetStream
type notificationPublisher struct {
	client *NATSClient
	retry  utils.RetryConfig
}

// Notify publishes the notification on its subject. Transient failures are
// retried with exponential backoff.
func (m *notificationPublisher) Notify(ctx context.Context, notification *model.Notification) error {
	if notification == nil || notification.Subject == "" {
		return errors.NewValidation("notification subject is required")
	}

	data, err := json.Marshal(notification)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal notification to JSON",
			"error", err,
			"subject", notification.Subject,
			"kind", notification.Kind,
		)
		return errors.NewUnexpected("failed to marshal notification", err)
	}

	msg := nats.NewMsg(notification.Subject)
	msg.Data = data
	for key, value := range notification.Headers {
		msg.Header.Set(key, value)
	}

	return utils.RetryWithExponentialBackoff(ctx, m.retry, func(ctx context.Context) error {
		return m.publish(ctx, msg, string(notification.Kind))
	})
}

// publish is the common method for publishing messages to NATS
func (m *notificationPublisher) publish(ctx context.Context, msg *nats.Msg, kind string) error {
	// Check if client is ready
	if err := m.client.IsReady(ctx); err != nil {
		slog.ErrorContext(ctx, "NATS client is not ready for publishing",
			"error", err,
			"subject", msg.Subject,
			"kind", kind,
		)
		return errors.NewServiceUnavailable("NATS client is not ready", err)
	}

	if m.client.js != nil {
		ackCtx, cancel := context.WithTimeout(ctx, m.client.timeout)
		defer cancel()

		ack, err := m.client.js.PublishMsg(ackCtx, msg)
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish notification to JetStream",
				"error", err,
				"subject", msg.Subject,
				"kind", kind,
			)
			return errors.NewServiceUnavailable("failed to publish notification", err)
		}
		slog.DebugContext(ctx, "notification stored in stream",
			"subject", msg.Subject,
			"stream", ack.Stream,
			"sequence", ack.Sequence,
		)
		return nil
	}

	// Publish message
	if err := m.client.conn.PublishMsg(msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish notification to NATS",
			"error", err,
			"subject", msg.Subject,
			"kind", kind,
		)
		return errors.NewServiceUnavailable("failed to publish notification", err)
	}

	slog.DebugContext(ctx, "notification published successfully",
		"subject", msg.Subject,
		"kind", kind,
		"message_size", len(msg.Data),
	)

	return nil
}

// Close closes the underlying connection
func (m *notificationPublisher) Close() error {
	return m.client.Close()
}

// NewNotifier creates a new Notifier using NATS
func NewNotifier(client *NATSClient) port.Notifier {
	return &notificationPublisher{
		client: client,
		retry:  client.config.Retry,
	}
}
