// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// Notifier delivers workflow notifications to an external channel.
// Callers treat delivery as fire-and-forget: a failure never undoes the
// backend write that triggered it.
type Notifier interface {
	Notify(ctx context.Context, notification *model.Notification) error
	Close() error
}
