// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/redaction"
)

// defaultNotificationWorkers bounds concurrent notification delivery
const defaultNotificationWorkers = 4

// notify delivers a notification. Failures are logged and counted, never
// returned: the backend write that triggered it has already succeeded.
func notify(ctx context.Context, notifier port.Notifier, metrics *WorkflowMetrics, notification *model.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, notification); err != nil {
		slog.WarnContext(ctx, "failed to deliver notification",
			"error", err,
			"kind", notification.Kind,
			"subject", notification.Subject,
			"recipient", redaction.RedactEmail(notification.Recipient),
		)
		metrics.notificationFailed(ctx, notification.Kind)
	}
}

// decidedBy returns the user id of the principal on ctx, if any
func decidedBy(ctx context.Context) string {
	if p, ok := model.PrincipalFromContext(ctx); ok {
		return p.UserID
	}
	return ""
}
