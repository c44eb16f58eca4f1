// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/econsultation/econsultation-service/internal/domain/model"
)

// ReflectionReader defines the interface for reflection read operations
type ReflectionReader interface {
	ListReflections(ctx context.Context, commentRequestID string) ([]*model.Reflection, error)
}

// ReflectionWriter defines the interface for reflection write operations
type ReflectionWriter interface {
	SubmitReflection(ctx context.Context, reflection *model.Reflection) (*model.Reflection, error)
}
