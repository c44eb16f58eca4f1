// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

// ListInstitutions returns every institution in the public directory
func (c *Client) ListInstitutions(ctx context.Context) ([]*model.Institution, error) {
	dtos, err := listAll[institutionDTO](ctx, c, constants.PathPublicInstitutions, nil)
	if err != nil {
		return nil, err
	}

	institutions := make([]*model.Institution, 0, len(dtos))
	for _, d := range dtos {
		institutions = append(institutions, d.toModel())
	}

	slog.DebugContext(ctx, "institutions listed", "count", len(institutions))
	return institutions, nil
}

// ListRegions returns every region
func (c *Client) ListRegions(ctx context.Context) ([]*model.Region, error) {
	dtos, err := listAll[named](ctx, c, constants.PathRegions, nil)
	if err != nil {
		return nil, err
	}

	regions := make([]*model.Region, 0, len(dtos))
	for _, d := range dtos {
		regions = append(regions, &model.Region{ID: string(d.ID), Name: d.Name})
	}
	return regions, nil
}

// ListSectors returns every sector
func (c *Client) ListSectors(ctx context.Context) ([]*model.Sector, error) {
	dtos, err := listAll[named](ctx, c, constants.PathSectors, nil)
	if err != nil {
		return nil, err
	}

	sectors := make([]*model.Sector, 0, len(dtos))
	for _, d := range dtos {
		sectors = append(sectors, &model.Sector{ID: string(d.ID), Name: d.Name})
	}
	return sectors, nil
}

// ListUsersByInstitution returns the users that belong to an institution
func (c *Client) ListUsersByInstitution(ctx context.Context, institutionID string) ([]*model.User, error) {
	params := url.Values{"institution_id": {institutionID}}
	dtos, err := listAll[userDTO](ctx, c, constants.PathUsers, params)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(dtos))
	for _, d := range dtos {
		u := d.toModel()
		// older backends ignore the filter
		if u.InstitutionID != "" && u.InstitutionID != institutionID {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// ListCommenters returns the commenters of the caller's institution
func (c *Client) ListCommenters(ctx context.Context) ([]*model.User, error) {
	dtos, err := listAll[userDTO](ctx, c, constants.PathCommentersPerInstitution, nil)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(dtos))
	for _, d := range dtos {
		users = append(users, d.toModel())
	}
	return users, nil
}

// CreateInstitution registers a new institution
func (c *Client) CreateInstitution(ctx context.Context, institution *model.Institution) (*model.Institution, error) {
	actor := actorID(ctx)
	body := institutionBody{
		Name:              institution.Name,
		InstitutionTypeID: ID(institution.InstitutionTypeID),
		RegionID:          ID(institution.RegionID),
		SectorID:          ID(institution.SectorID),
		Email:             institution.Email,
		Telephone:         institution.Telephone,
		Address:           institution.Address,
		CanCreateDraft:    institution.CanCreateDraft,
		CreatedBy:         actor,
		UpdatedBy:         actor,
	}

	var dto institutionDTO
	message, err := c.post(ctx, constants.PathInstitutions, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "institution created", "institution_id", dto.ID, "message", message)

	if dto.ID == "" {
		return institution, nil
	}
	return dto.toModel(), nil
}

// UpdateRegion renames a region, tunnelled through POST with _method=put
func (c *Client) UpdateRegion(ctx context.Context, region *model.Region) (*model.Region, error) {
	body := regionUpdate{
		Method:    constants.MethodOverridePut,
		Name:      region.Name,
		UpdatedBy: actorID(ctx),
	}

	var dto named
	message, err := c.post(ctx, fmt.Sprintf(constants.PathRegion, url.PathEscape(region.ID)), body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "region updated", "region_id", region.ID, "message", message)

	if dto.ID == "" {
		return region, nil
	}
	return &model.Region{ID: string(dto.ID), Name: dto.Name}, nil
}

// CreateUser opens a portal account. The account gets a random initial
// password; its owner sets a real one through the backend's reset flow.
func (c *Client) CreateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	actor := actorID(ctx)
	password := uuid.NewString()
	body := userBody{
		FirstName:       profile.FirstName,
		MiddleName:      profile.MiddleName,
		LastName:        profile.LastName,
		MobileNumber:    profile.MobileNumber,
		Email:           profile.Email,
		Roles:           string(profile.Role),
		RegionID:        ID(profile.RegionID),
		InstitutionID:   ID(profile.InstitutionID),
		Password:        password,
		ConfirmPassword: password,
		CreatedBy:       actor,
		UpdatedBy:       actor,
	}
	return c.saveUser(ctx, constants.PathUsers, body, profile)
}

// UpdateUser edits a portal account, tunnelled through POST with _method=patch
func (c *Client) UpdateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	body := userBody{
		Method:        constants.MethodOverridePatch,
		ID:            ID(profile.ID),
		FirstName:     profile.FirstName,
		MiddleName:    profile.MiddleName,
		LastName:      profile.LastName,
		MobileNumber:  profile.MobileNumber,
		Email:         profile.Email,
		Roles:         string(profile.Role),
		RegionID:      ID(profile.RegionID),
		InstitutionID: ID(profile.InstitutionID),
		UpdatedBy:     actorID(ctx),
	}
	return c.saveUser(ctx, fmt.Sprintf(constants.PathUser, url.PathEscape(profile.ID)), body, profile)
}

func (c *Client) saveUser(ctx context.Context, path string, body userBody, profile *model.UserProfile) (*model.User, error) {
	var dto userDTO
	message, err := c.post(ctx, path, body, &dto)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user saved", "user_id", dto.ID, "message", message)

	if dto.ID == "" {
		return &model.User{
			ID:            profile.ID,
			Name:          profile.FullName(),
			Email:         profile.Email,
			Role:          profile.Role,
			InstitutionID: profile.InstitutionID,
			RegionID:      profile.RegionID,
		}, nil
	}
	return dto.toModel(), nil
}

// actorID is the calling user, recorded by the backend as created_by/updated_by
func actorID(ctx context.Context) ID {
	if p, ok := model.PrincipalFromContext(ctx); ok {
		return ID(p.UserID)
	}
	return ""
}
