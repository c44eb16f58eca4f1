// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

// WorkflowMetrics counts comment-request workflow events
type WorkflowMetrics struct {
	transitions   metric.Int64Counter
	invitations   metric.Int64Counter
	notifications metric.Int64Counter
}

// NewWorkflowMetrics registers the workflow instruments on the global meter
// provider. Instruments that fail to register fall back to no-ops.
func NewWorkflowMetrics() *WorkflowMetrics {
	meter := otel.GetMeterProvider().Meter(constants.ServiceName)
	m := &WorkflowMetrics{}

	var err error
	m.transitions, err = meter.Int64Counter("econsult.comment_request.transitions",
		metric.WithDescription("Comment request state transitions"),
	)
	if err != nil {
		slog.Warn("failed to register transitions counter", "error", err)
	}
	m.invitations, err = meter.Int64Counter("econsult.comment_request.invitations",
		metric.WithDescription("Comment requests created by invitations"),
	)
	if err != nil {
		slog.Warn("failed to register invitations counter", "error", err)
	}
	m.notifications, err = meter.Int64Counter("econsult.notifications.failed",
		metric.WithDescription("Workflow notifications that could not be delivered"),
	)
	if err != nil {
		slog.Warn("failed to register notifications counter", "error", err)
	}
	return m
}

func (m *WorkflowMetrics) transition(ctx context.Context, from, to model.RequestState) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	))
}

func (m *WorkflowMetrics) invited(ctx context.Context, personal bool, count int) {
	if m == nil || m.invitations == nil {
		return
	}
	m.invitations.Add(ctx, int64(count), metric.WithAttributes(attribute.Bool("personal", personal)))
}

func (m *WorkflowMetrics) notificationFailed(ctx context.Context, kind model.NotificationKind) {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
}
