// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	econsulterrors "github.com/econsultation/econsultation-service/pkg/errors"
)

// wrapError maps a domain error onto an HTTP status and the message shown to
// the caller. The outermost error decides; wrapped causes are consulted only
// when the outermost one is not a domain error.
func wrapError(ctx context.Context, err error) (int, string) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "error", err, "status", status)
	} else {
		slog.InfoContext(ctx, "request refused", "error", err, "status", status)
	}

	// unexpected errors may carry internals; backend messages are meant for users
	if status == http.StatusInternalServerError && !econsulterrors.IsRemote(err) {
		return status, "internal server error"
	}
	return status, err.Error()
}

func statusOf(err error) int {
	if status, ok := directStatus(err); ok {
		return status
	}

	var (
		validation   econsulterrors.Validation
		tooLarge     econsulterrors.PayloadTooLarge
		unauthorized econsulterrors.Unauthorized
		forbidden    econsulterrors.Forbidden
		notFound     econsulterrors.NotFound
		invalidState econsulterrors.InvalidState
		conflict     econsulterrors.Conflict
		unavailable  econsulterrors.ServiceUnavailable
		remote       econsulterrors.Remote
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalidState), errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &remote):
		return remoteStatus(remote)
	default:
		return http.StatusInternalServerError
	}
}

func directStatus(err error) (int, bool) {
	switch e := err.(type) {
	case econsulterrors.Validation:
		return http.StatusBadRequest, true
	case econsulterrors.PayloadTooLarge:
		return http.StatusRequestEntityTooLarge, true
	case econsulterrors.Unauthorized:
		return http.StatusUnauthorized, true
	case econsulterrors.Forbidden:
		return http.StatusForbidden, true
	case econsulterrors.NotFound:
		return http.StatusNotFound, true
	case econsulterrors.InvalidState, econsulterrors.Conflict:
		return http.StatusConflict, true
	case econsulterrors.ServiceUnavailable:
		return http.StatusServiceUnavailable, true
	case econsulterrors.Remote:
		return remoteStatus(e), true
	default:
		return 0, false
	}
}

// remoteStatus passes backend statuses through; network failures have none
func remoteStatus(remote econsulterrors.Remote) int {
	if remote.Network() || remote.StatusCode < http.StatusBadRequest {
		return http.StatusBadGateway
	}
	return remote.StatusCode
}
