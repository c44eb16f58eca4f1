// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "validation", err: errors.NewValidation("draft_id is required"), status: http.StatusBadRequest, message: "draft_id is required"},
		{name: "payload too large", err: errors.NewPayloadTooLarge("request body exceeds 64 bytes"), status: http.StatusRequestEntityTooLarge, message: "request body exceeds 64 bytes"},
		{name: "unauthorized", err: errors.NewUnauthorized("expired"), status: http.StatusUnauthorized, message: "expired"},
		{name: "forbidden", err: errors.NewForbidden("no"), status: http.StatusForbidden, message: "no"},
		{name: "not found", err: errors.NewNotFound("draft 1 not found"), status: http.StatusNotFound, message: "draft 1 not found"},
		{name: "invalid state", err: errors.NewInvalidState("already accepted"), status: http.StatusConflict, message: "already accepted"},
		{name: "invalid state wrapping not found", err: errors.NewInvalidState("no commenters", errors.NewNotFound("none")), status: http.StatusConflict},
		{name: "conflict", err: errors.NewConflict("exists"), status: http.StatusConflict, message: "exists"},
		{name: "unavailable", err: errors.NewServiceUnavailable("down"), status: http.StatusServiceUnavailable},
		{name: "remote", err: errors.NewRemote(http.StatusUnprocessableEntity, "The selected draft id is invalid."), status: http.StatusUnprocessableEntity, message: "The selected draft id is invalid."},
		{name: "remote server error keeps message", err: errors.NewRemote(http.StatusInternalServerError, "Server Error"), status: http.StatusInternalServerError, message: "Server Error"},
		{name: "network", err: errors.NewNetwork("connection refused"), status: http.StatusBadGateway},
		{name: "wrapped remote", err: fmt.Errorf("failed after 3 attempts: %w", errors.NewRemote(http.StatusNotFound, "gone")), status: http.StatusNotFound},
		{name: "unexpected hides internals", err: errors.NewUnexpected("nil pointer in converter"), status: http.StatusInternalServerError, message: "internal server error"},
		{name: "plain error", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, message: "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, message := wrapError(context.Background(), tc.err)
			assert.Equal(t, tc.status, status)
			if tc.message != "" {
				assert.Equal(t, tc.message, message)
			}
		})
	}
}
