// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// DirectoryWriter maintains institutions, regions and portal accounts
type DirectoryWriter interface {
	port.DirectoryWriter
}

// roles an institution admin may hand out inside their own institution
var institutionGrantableRoles = []model.Role{model.RoleApprover, model.RoleUploader, model.RoleCommenter}

// directoryWriterOrchestratorOption defines a function type for setting options
type directoryWriterOrchestratorOption func(*directoryWriterOrchestrator)

// WithDirectoryWriter sets the backend directory writer
func WithDirectoryWriter(writer port.DirectoryWriter) directoryWriterOrchestratorOption {
	return func(w *directoryWriterOrchestrator) {
		w.writer = writer
	}
}

// WithDirectoryWriterReader sets the directory reader used for membership checks
func WithDirectoryWriterReader(reader port.DirectoryReader) directoryWriterOrchestratorOption {
	return func(w *directoryWriterOrchestrator) {
		w.reader = reader
	}
}

type directoryWriterOrchestrator struct {
	writer port.DirectoryWriter
	reader port.DirectoryReader
}

// NewDirectoryWriterOrchestrator creates a new directory writer using the option pattern
func NewDirectoryWriterOrchestrator(opts ...directoryWriterOrchestratorOption) DirectoryWriter {
	w := &directoryWriterOrchestrator{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateInstitution validates and registers an institution
func (o *directoryWriterOrchestrator) CreateInstitution(ctx context.Context, institution *model.Institution) (*model.Institution, error) {
	if _, err := requireCapability(ctx, model.CapDirectoryManage); err != nil {
		return nil, err
	}
	if institution == nil {
		return nil, errors.NewValidation("institution is required")
	}
	if err := institution.ValidateForCreate(); err != nil {
		return nil, err
	}

	created, err := o.writer.CreateInstitution(ctx, institution)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "institution registered", "institution_id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateRegion validates and renames a region
func (o *directoryWriterOrchestrator) UpdateRegion(ctx context.Context, region *model.Region) (*model.Region, error) {
	if _, err := requireCapability(ctx, model.CapDirectoryManage); err != nil {
		return nil, err
	}
	if region == nil {
		return nil, errors.NewValidation("region is required")
	}
	if err := region.ValidateForUpdate(); err != nil {
		return nil, err
	}
	return o.writer.UpdateRegion(ctx, region)
}

// CreateUser opens an account. Institution admins are limited to their own
// institution and to the approver, uploader and commenter roles; the
// institution defaults to theirs.
func (o *directoryWriterOrchestrator) CreateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	principal, err := requireCapability(ctx, model.CapUsersManage)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewValidation("user is required")
	}
	if !principal.Can(model.CapDirectoryManage) && profile.InstitutionID == "" {
		profile.InstitutionID = principal.InstitutionID
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := checkUserScope(principal, profile); err != nil {
		return nil, err
	}

	user, err := o.writer.CreateUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user account created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// UpdateUser edits an account under the same scope rules as CreateUser. An
// institution admin may only edit accounts already in their institution.
func (o *directoryWriterOrchestrator) UpdateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	principal, err := requireCapability(ctx, model.CapUsersManage)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewValidation("user is required")
	}
	if err := profile.ValidateForUpdate(); err != nil {
		return nil, err
	}
	if err := checkUserScope(principal, profile); err != nil {
		return nil, err
	}

	if !principal.Can(model.CapDirectoryManage) {
		members, err := o.reader.ListUsersByInstitution(ctx, principal.InstitutionID)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(model.UserIDs(members), profile.ID) {
			return nil, errors.NewForbidden(fmt.Sprintf("user %s is not a member of institution %s", profile.ID, principal.InstitutionID))
		}
	}

	user, err := o.writer.UpdateUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user account updated", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func checkUserScope(principal *model.Principal, profile *model.UserProfile) error {
	if principal.Can(model.CapDirectoryManage) {
		return nil
	}
	if !principal.BelongsTo(profile.InstitutionID) {
		return errors.NewForbidden("institution admins can only manage users of their own institution")
	}
	if !slices.Contains(institutionGrantableRoles, profile.Role) {
		return errors.NewForbidden(fmt.Sprintf("institution admins cannot grant the %s role", profile.Role))
	}
	return nil
}

func requireCapability(ctx context.Context, capability model.Capability) (*model.Principal, error) {
	principal, ok := model.PrincipalFromContext(ctx)
	if !ok {
		return nil, errors.NewUnauthorized("authentication required")
	}
	if !principal.Can(capability) {
		return nil, errors.NewForbidden(fmt.Sprintf("%s is required", capability))
	}
	return principal, nil
}
