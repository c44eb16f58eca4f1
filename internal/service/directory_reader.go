// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// DirectoryReader exposes the institution, region, sector and user directory
type DirectoryReader interface {
	port.DirectoryReader
}

// directoryReaderOrchestratorOption defines a function type for setting options
type directoryReaderOrchestratorOption func(*directoryReaderOrchestrator)

// WithDirectory sets the backend directory
func WithDirectory(directory port.DirectoryReader) directoryReaderOrchestratorOption {
	return func(r *directoryReaderOrchestrator) {
		r.directory = directory
	}
}

type directoryReaderOrchestrator struct {
	directory port.DirectoryReader
}

// NewDirectoryReaderOrchestrator creates a new directory reader using the option pattern
func NewDirectoryReaderOrchestrator(opts ...directoryReaderOrchestratorOption) DirectoryReader {
	rc := &directoryReaderOrchestrator{}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// ListInstitutions returns every institution
func (o *directoryReaderOrchestrator) ListInstitutions(ctx context.Context) ([]*model.Institution, error) {
	slog.DebugContext(ctx, "executing list institutions use case")
	return o.directory.ListInstitutions(ctx)
}

// ListRegions returns every region
func (o *directoryReaderOrchestrator) ListRegions(ctx context.Context) ([]*model.Region, error) {
	return o.directory.ListRegions(ctx)
}

// ListSectors returns every sector
func (o *directoryReaderOrchestrator) ListSectors(ctx context.Context) ([]*model.Sector, error) {
	return o.directory.ListSectors(ctx)
}

// ListUsersByInstitution returns the users of an institution
func (o *directoryReaderOrchestrator) ListUsersByInstitution(ctx context.Context, institutionID string) ([]*model.User, error) {
	if strings.TrimSpace(institutionID) == "" {
		return nil, errors.NewValidation("institution id is required")
	}
	slog.DebugContext(ctx, "executing list users use case", "institution_id", institutionID)
	return o.directory.ListUsersByInstitution(ctx, institutionID)
}

// ListCommenters returns the commenters of the caller's institution
func (o *directoryReaderOrchestrator) ListCommenters(ctx context.Context) ([]*model.User, error) {
	return o.directory.ListCommenters(ctx)
}
