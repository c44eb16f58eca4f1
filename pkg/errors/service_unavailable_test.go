// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceUnavailableUnwrap(t *testing.T) {
	rootCause := errors.New("nats: no servers available for connection")

	serviceErr := NewServiceUnavailable("notification bus unavailable", rootCause)
	assert.NotNil(t, serviceErr.Unwrap())
	assert.ErrorIs(t, serviceErr, rootCause)
	assert.Equal(t, "notification bus unavailable: nats: no servers available for connection", serviceErr.Error())

	simpleErr := NewServiceUnavailable("simple service error")
	assert.Nil(t, simpleErr.Unwrap())
	assert.Equal(t, "simple service error", simpleErr.Error())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation without cause", NewValidation("draft_id is required"), "draft_id is required"},
		{"invalid state with cause", NewInvalidState("comment request is not pending", errors.New("state=rejected")), "comment request is not pending: state=rejected"},
		{"remote uses backend message", NewRemote(403, "You are not allowed to approve this draft"), "You are not allowed to approve this draft"},
		{"forbidden", NewForbidden("role Commenter cannot invite institutions"), "role Commenter cannot invite institutions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
