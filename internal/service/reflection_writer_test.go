// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/infrastructure/mock"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

func newReflectionWriter(backend *mock.MockBackend) ReflectionWriter {
	return NewReflectionWriterOrchestrator(
		WithReflectionWriter(backend),
		WithReflectionReader(backend),
		WithReflectionAssignmentReader(backend),
		WithReflectionRequestReader(backend),
	)
}

func TestReflectionWriter_SubmitReflection(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an assignment", func(t *testing.T) {
		backend := mock.NewMockBackend()

		_, err := newReflectionWriter(backend).SubmitReflection(ctx, "7", "31", "Article 4 is unclear")
		require.Error(t, err)
		assert.IsType(t, errors.InvalidState{}, err)
	})

	t.Run("every submission creates a reflection", func(t *testing.T) {
		backend := mock.NewMockBackend()
		_, err := newAssignmentWriter(backend, mock.NewMockNotifier()).AssignCommenters(ctx, "7", []string{"31"}, "")
		require.NoError(t, err)

		writer := newReflectionWriter(backend)
		first, err := writer.SubmitReflection(ctx, "7", "31", "Article 4 is unclear")
		require.NoError(t, err)
		second, err := writer.SubmitReflection(ctx, "7", "31", "Article 4 is unclear")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, "43", first.DraftID)

		reflections, err := writer.ListReflections(ctx, "7")
		require.NoError(t, err)
		assert.Len(t, reflections, 2)
	})

	t.Run("validation", func(t *testing.T) {
		writer := newReflectionWriter(mock.NewMockBackend())

		for _, args := range [][3]string{
			{"", "31", "text"},
			{"7", "", "text"},
			{"7", "31", "   "},
		} {
			_, err := writer.SubmitReflection(ctx, args[0], args[1], args[2])
			require.Error(t, err)
			assert.IsType(t, errors.Validation{}, err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := newReflectionWriter(mock.NewMockBackend()).SubmitReflection(ctx, "missing", "31", "text")
		require.Error(t, err)
		assert.IsType(t, errors.NotFound{}, err)
	})
}
