// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnwrap(t *testing.T) {
	// Test with a root cause error
	rootCause := errors.New("root cause error")

	// Create a custom error that wraps the root cause
	validationErr := NewValidation("validation failed", rootCause)

	// Test that Unwrap returns the joined error (which wraps our root cause)
	unwrapped := validationErr.Unwrap()
	if unwrapped == nil {
		t.Error("Expected unwrapped error to not be nil")
	}

	// Test errors.Is functionality - this should work even with errors.Join
	if !errors.Is(validationErr, rootCause) {
		t.Error("errors.Is should find the root cause in the wrapped error")
	}

	// Test with no wrapped error
	simpleErr := NewValidation("simple error")
	if simpleErr.Unwrap() != nil {
		t.Error("Expected Unwrap to return nil for error with no wrapped cause")
	}
}

func TestUnwrapWithDifferentErrorTypes(t *testing.T) {
	rootCause := errors.New("backend connection failed")

	// Test with different error types that embed base
	testCases := []struct {
		name string
		err  error
	}{
		{"Validation", NewValidation("validation error", rootCause)},
		{"NotFound", NewNotFound("not found error", rootCause)},
		{"Unexpected", NewUnexpected("unexpected error", rootCause)},
		{"ServiceUnavailable", NewServiceUnavailable("service unavailable", rootCause)},
		{"Conflict", NewConflict("conflict error", rootCause)},
		{"Unauthorized", NewUnauthorized("unauthorized error", rootCause)},
		{"Forbidden", NewForbidden("forbidden error", rootCause)},
		{"InvalidState", NewInvalidState("invalid state error", rootCause)},
		{"Remote", NewRemote(500, "remote error", rootCause)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Test errors.Is functionality - this should work thanks to Unwrap
			if !errors.Is(tc.err, rootCause) {
				t.Errorf("errors.Is should find root cause in %s error", tc.name)
			}

			// Test that we can unwrap to get some underlying error
			type unwrapper interface {
				Unwrap() error
			}

			if u, ok := tc.err.(unwrapper); ok {
				underlying := u.Unwrap()
				if underlying == nil {
					t.Errorf("Expected %s error to have an underlying error", tc.name)
				}
				// Verify that errors.Is can traverse the chain
				if !errors.Is(underlying, rootCause) {
					t.Errorf("errors.Is should find root cause in unwrapped %s error", tc.name)
				}
			} else {
				t.Errorf("%s error should implement Unwrap()", tc.name)
			}
		})
	}
}

func TestRemoteNetworkFolding(t *testing.T) {
	rootCause := errors.New("dial tcp: connection refused")

	networkErr := NewNetwork("backend unreachable", rootCause)
	if !networkErr.Network() {
		t.Error("expected network error to report Network() == true")
	}
	if !IsRemote(networkErr) {
		t.Error("network failures must be classified as Remote")
	}
	if !errors.Is(networkErr, rootCause) {
		t.Error("errors.Is should find root cause in network error")
	}

	httpErr := NewRemote(422, "comment request is not pending")
	if httpErr.Network() {
		t.Error("HTTP failures must not report Network() == true")
	}
	if httpErr.Error() != "comment request is not pending" {
		t.Errorf("unexpected message %q", httpErr.Error())
	}

	wrapped := fmt.Errorf("accept failed: %w", httpErr)
	var remote Remote
	if !errors.As(wrapped, &remote) {
		t.Fatal("errors.As should extract Remote through fmt.Errorf wrapping")
	}
	if remote.StatusCode != 422 {
		t.Errorf("expected status 422, got %d", remote.StatusCode)
	}

	if IsRemote(NewValidation("institutions are required")) {
		t.Error("validation errors are not remote")
	}
}
