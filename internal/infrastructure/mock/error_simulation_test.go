// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	pkgerrors "github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSimulation(t *testing.T) {
	ctx := context.Background()

	t.Run("Resource error simulation", func(t *testing.T) {
		backend := NewMockBackend()

		// Configure error for specific draft
		expectedErr := pkgerrors.NewNotFound("simulated draft not found")
		backend.SetErrorForResource("42", expectedErr)

		// Try to get the draft - should return configured error
		_, err := backend.GetDraft(ctx, "42")
		require.Error(t, err)
		assert.True(t, errors.Is(err, expectedErr))

		// Other drafts are unaffected
		_, err = backend.GetDraft(ctx, "43")
		assert.NoError(t, err)
	})

	t.Run("Operation error simulation", func(t *testing.T) {
		backend := NewMockBackend()

		// Configure error for specific operation
		expectedErr := pkgerrors.NewServiceUnavailable("simulated service unavailable")
		backend.SetErrorForOperation("InviteInstitutions", expectedErr)

		_, err := backend.InviteInstitutions(ctx, &model.InstitutionInvitation{DraftID: "42", InstitutionIDs: []string{"2"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, expectedErr))
	})

	t.Run("Global error simulation", func(t *testing.T) {
		backend := NewMockBackend()

		// Configure global error for all operations
		expectedErr := pkgerrors.NewRemote(502, "Bad Gateway")
		backend.SetGlobalError(expectedErr)

		// Try any operation - should return configured global error
		_, err := backend.ListInstitutions(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, expectedErr))

		// Try another operation - should also return global error
		assert.True(t, errors.Is(backend.IsReady(ctx), expectedErr))
	})

	t.Run("Clear error simulation", func(t *testing.T) {
		backend := NewMockBackend()

		// Configure some errors
		backend.SetErrorForResource("42", pkgerrors.NewNotFound("test error"))
		backend.SetGlobalError(pkgerrors.NewUnexpected("global error"))

		// Clear all error simulation
		backend.ClearErrorSimulation()

		// Operations should work normally now (return NotFound for non-existent resources)
		_, err := backend.GetDraft(ctx, "non-existent-draft")
		require.Error(t, err)

		// Should be NotFound error from normal logic, not our simulated error
		var notFoundErr pkgerrors.NotFound
		assert.True(t, errors.As(err, &notFoundErr))
		assert.Contains(t, err.Error(), "draft non-existent-draft not found")
	})

	t.Run("Error priority - global takes precedence", func(t *testing.T) {
		backend := NewMockBackend()

		specificErr := pkgerrors.NewNotFound("specific error")
		globalErr := pkgerrors.NewUnexpected("global error")

		backend.SetErrorForResource("42", specificErr)
		backend.SetGlobalError(globalErr)

		// Global error should take precedence
		_, err := backend.GetDraft(ctx, "42")
		require.Error(t, err)
		assert.True(t, errors.Is(err, globalErr))
		assert.False(t, errors.Is(err, specificErr))
	})

	t.Run("Error priority - operation over resource", func(t *testing.T) {
		backend := NewMockBackend()

		resourceErr := pkgerrors.NewNotFound("resource error")
		operationErr := pkgerrors.NewConflict("operation error")

		backend.SetErrorForResource("42", resourceErr)
		backend.SetErrorForOperation("GetDraft", operationErr)

		// Operation error should take precedence
		_, err := backend.GetDraft(ctx, "42")
		require.Error(t, err)
		assert.True(t, errors.Is(err, operationErr))
		assert.False(t, errors.Is(err, resourceErr))
	})
}
