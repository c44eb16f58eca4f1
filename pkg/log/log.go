// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package log provides structured logging utilities and configuration for the service.
package log

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	slogotel "github.com/remychantenay/slog-otel"
)

type ctxKey string

const (
	slogFields      ctxKey = "slog_fields"
	logLevelDefault        = slog.LevelInfo

	debug = "debug"
	warn  = "warn"
	info  = "info"
	erro  = "error"

	priorityCritical = "critical"
)

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context handler in front of the derived handler
func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context handler in front of the derived handler
func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so sibling contexts never share a backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)
		attrs = append(attrs, attr)
		return context.WithValue(parent, slogFields, attrs)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// ParseLevel maps LOG_LEVEL values to slog levels
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case debug:
		return slog.LevelDebug
	case warn, "warning":
		return slog.LevelWarn
	case info:
		return slog.LevelInfo
	case erro:
		return slog.LevelError
	default:
		return logLevelDefault
	}
}

// NewHandler builds the service handler chain: JSON output, OpenTelemetry
// trace correlation and context attributes.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return contextHandler{
		Handler: slogotel.OtelHandler{
			Next: slog.NewJSONHandler(w, opts),
		},
	}
}

// InitStructureLogConfig sets the structured log behavior from LOG_LEVEL and LOG_ADD_SOURCE
func InitStructureLogConfig() {
	logOptions := &slog.HandlerOptions{
		Level: ParseLevel(os.Getenv("LOG_LEVEL")),
	}

	if addSource := os.Getenv("LOG_ADD_SOURCE"); addSource == "true" {
		logOptions.AddSource = true
	}

	log.SetFlags(log.Llongfile)
	slog.SetDefault(slog.New(NewHandler(os.Stdout, logOptions)))

	slog.Info("log config",
		"log_level", logOptions.Level,
		"add_source", logOptions.AddSource,
	)
}

// Priority creates a slog.Attr for error priority classification
func Priority(level string) slog.Attr {
	return slog.String("priority", level)
}

// PriorityCritical creates a slog.Attr for critical errors
// this is used to identify critical errors in the logs
// the ones that should be escalated to the team
func PriorityCritical() slog.Attr {
	return Priority(priorityCritical)
}
