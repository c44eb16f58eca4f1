// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// ListInstitutions returns every institution
func (m *MockBackend) ListInstitutions(ctx context.Context) ([]*model.Institution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListInstitutions", ""); err != nil {
		return nil, err
	}

	out := make([]*model.Institution, 0, len(m.institutions))
	for _, id := range sortedKeys(m.institutions) {
		in := *m.institutions[id]
		out = append(out, &in)
	}
	return out, nil
}

// ListRegions returns every region
func (m *MockBackend) ListRegions(ctx context.Context) ([]*model.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListRegions", ""); err != nil {
		return nil, err
	}

	out := make([]*model.Region, 0, len(m.regions))
	for _, id := range sortedKeys(m.regions) {
		r := *m.regions[id]
		out = append(out, &r)
	}
	return out, nil
}

// ListSectors returns every sector
func (m *MockBackend) ListSectors(ctx context.Context) ([]*model.Sector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListSectors", ""); err != nil {
		return nil, err
	}

	out := make([]*model.Sector, 0, len(m.sectors))
	for _, id := range sortedKeys(m.sectors) {
		s := *m.sectors[id]
		out = append(out, &s)
	}
	return out, nil
}

// ListUsersByInstitution returns the users of an institution; unknown
// institutions simply have none.
func (m *MockBackend) ListUsersByInstitution(ctx context.Context, institutionID string) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListUsersByInstitution", institutionID); err != nil {
		return nil, err
	}
	return m.usersWhere(func(u *model.User) bool { return u.InstitutionID == institutionID }), nil
}

// ListCommenters returns the commenters of the calling principal's institution
func (m *MockBackend) ListCommenters(ctx context.Context) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.simulatedError("ListCommenters", ""); err != nil {
		return nil, err
	}

	principal, ok := model.PrincipalFromContext(ctx)
	if !ok {
		return nil, errors.NewRemote(http.StatusUnauthorized, "Unauthenticated.")
	}
	return m.usersWhere(func(u *model.User) bool {
		return u.Role == model.RoleCommenter && u.InstitutionID != "" && u.InstitutionID == principal.InstitutionID
	}), nil
}

// usersWhere must be called with the read lock held
func (m *MockBackend) usersWhere(match func(*model.User) bool) []*model.User {
	out := []*model.User{}
	for _, id := range sortedKeys(m.users) {
		if u := m.users[id]; match(u) {
			c := *u
			out = append(out, &c)
		}
	}
	return out
}

// CreateInstitution stores a new institution. Names are unique and the
// region and sector must exist.
func (m *MockBackend) CreateInstitution(ctx context.Context, institution *model.Institution) (*model.Institution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("CreateInstitution", ""); err != nil {
		return nil, err
	}
	if _, ok := m.regions[institution.RegionID]; !ok {
		return nil, rejected("The selected region id is invalid.")
	}
	if _, ok := m.sectors[institution.SectorID]; !ok {
		return nil, rejected("The selected sector id is invalid.")
	}
	for _, existing := range m.institutions {
		if strings.EqualFold(existing.Name, institution.Name) {
			return nil, rejected("The name has already been taken.")
		}
	}

	stored := *institution
	stored.ID = newID()
	m.institutions[stored.ID] = &stored
	out := stored
	return &out, nil
}

// UpdateRegion renames a region
func (m *MockBackend) UpdateRegion(ctx context.Context, region *model.Region) (*model.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("UpdateRegion", region.ID); err != nil {
		return nil, err
	}
	stored, ok := m.regions[region.ID]
	if !ok {
		return nil, errors.NewRemote(http.StatusNotFound, fmt.Sprintf("Region %s not found.", region.ID))
	}
	stored.Name = region.Name
	out := *stored
	return &out, nil
}

// CreateUser opens an account. Emails are unique and any institution must exist.
func (m *MockBackend) CreateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("CreateUser", ""); err != nil {
		return nil, err
	}
	if err := m.checkUserProfile(profile); err != nil {
		return nil, err
	}

	u := userFromProfile(newID(), profile)
	m.users[u.ID] = u
	out := *u
	return &out, nil
}

// UpdateUser replaces an account's profile
func (m *MockBackend) UpdateUser(ctx context.Context, profile *model.UserProfile) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.simulatedError("UpdateUser", profile.ID); err != nil {
		return nil, err
	}
	if _, ok := m.users[profile.ID]; !ok {
		return nil, errors.NewRemote(http.StatusNotFound, fmt.Sprintf("User %s not found.", profile.ID))
	}
	if err := m.checkUserProfile(profile); err != nil {
		return nil, err
	}

	u := userFromProfile(profile.ID, profile)
	m.users[u.ID] = u
	out := *u
	return &out, nil
}

// checkUserProfile must be called with the lock held
func (m *MockBackend) checkUserProfile(profile *model.UserProfile) error {
	for id, existing := range m.users {
		if id != profile.ID && strings.EqualFold(existing.Email, profile.Email) {
			return rejected("The email has already been taken.")
		}
	}
	if profile.InstitutionID != "" {
		if _, ok := m.institutions[profile.InstitutionID]; !ok {
			return rejected("The selected institution id is invalid.")
		}
	}
	if profile.RegionID != "" {
		if _, ok := m.regions[profile.RegionID]; !ok {
			return rejected("The selected region id is invalid.")
		}
	}
	return nil
}

func userFromProfile(id string, profile *model.UserProfile) *model.User {
	return &model.User{
		ID:            id,
		Name:          profile.FullName(),
		Email:         profile.Email,
		Role:          profile.Role,
		InstitutionID: profile.InstitutionID,
		RegionID:      profile.RegionID,
	}
}
