// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
)

// MockNotifier logs and records notifications instead of delivering them
type MockNotifier struct {
	mu   sync.Mutex
	sent []*model.Notification
	err  error
}

// Ensure MockNotifier implements the Notifier interface
var _ port.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a new mock notifier for testing
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Notify records the notification (mock implementation - logs only)
func (n *MockNotifier) Notify(ctx context.Context, notification *model.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)

	slog.InfoContext(ctx, "mock notification published",
		"subject", notification.Subject,
		"kind", notification.Kind,
	)
	return nil
}

// Close implements port.Notifier
func (n *MockNotifier) Close() error {
	return nil
}

// FailWith makes every later Notify call return err
func (n *MockNotifier) FailWith(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = err
}

// Sent returns the notifications recorded so far
func (n *MockNotifier) Sent() []*model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.sent)
}

// SentOfKind returns the recorded notifications of one kind
func (n *MockNotifier) SentOfKind(kind model.NotificationKind) []*model.Notification {
	var out []*model.Notification
	for _, sent := range n.Sent() {
		if sent.Kind == kind {
			out = append(out, sent)
		}
	}
	return out
}
