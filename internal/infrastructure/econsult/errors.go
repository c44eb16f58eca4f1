// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/httpclient"
)

// errorEnvelope is the body the backend sends with every non-2xx response
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MapHTTPError maps httpclient errors to domain errors with proper context logging.
// Every non-2xx response becomes Remote carrying the status and the server's
// message. Transport failures become Remote with status 0; callers do not
// distinguish the two.
func MapHTTPError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if stderrors.As(err, &statusErr) {
		message := remoteMessage(statusErr)
		if statusErr.StatusCode >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "backend server error",
				"status_code", statusErr.StatusCode,
				"message", message,
			)
		} else {
			slog.WarnContext(ctx, "backend rejected request",
				"status_code", statusErr.StatusCode,
				"message", message,
			)
		}
		return errors.NewRemote(statusErr.StatusCode, message, err)
	}

	slog.ErrorContext(ctx, "backend request failed with non-HTTP error",
		"error", err.Error(),
	)
	return errors.NewNetwork("e-consultation backend unreachable", err)
}

// remoteMessage extracts the server-provided message. Field errors are
// appended so the caller sees why a submission was refused.
func remoteMessage(statusErr *httpclient.StatusError) string {
	var env errorEnvelope
	if err := json.Unmarshal(statusErr.Body, &env); err != nil || env.Message == "" {
		if text := http.StatusText(statusErr.StatusCode); text != "" {
			return strings.ToLower(text)
		}
		return "backend request failed"
	}

	if len(env.Errors) == 0 {
		return env.Message
	}

	details := make([]string, 0, len(env.Errors))
	for field, msgs := range env.Errors {
		details = append(details, field+": "+strings.Join(msgs, ", "))
	}
	slices.Sort(details)
	return env.Message + " (" + strings.Join(details, "; ") + ")"
}

// isRemoteNotFound reports whether err is a backend 404.
func isRemoteNotFound(err error) bool {
	var remote errors.Remote
	return stderrors.As(err, &remote) && remote.StatusCode == http.StatusNotFound
}
