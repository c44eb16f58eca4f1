// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// Institution is a government body that can own drafts and receive invitations.
type Institution struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	InstitutionType   string `json:"institution_type,omitempty"`
	InstitutionTypeID string `json:"institution_type_id,omitempty"`
	RegionID          string `json:"region_id,omitempty"`
	SectorID          string `json:"sector_id,omitempty"`
	Email             string `json:"email,omitempty"`
	Telephone         string `json:"telephone,omitempty"`
	Address           string `json:"address,omitempty"`
	CanCreateDraft    bool   `json:"can_create_draft,omitempty"`
}

// ValidateForCreate checks the fields the backend requires of a new
// institution and normalises the name and email.
func (in *Institution) ValidateForCreate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return errors.NewValidation("name is required")
	}
	for _, f := range []struct{ name, value string }{
		{"institution_type_id", in.InstitutionTypeID},
		{"region_id", in.RegionID},
		{"sector_id", in.SectorID},
	} {
		if strings.TrimSpace(f.value) == "" {
			return errors.NewValidation(f.name + " is required")
		}
	}
	email, err := normaliseEmail(in.Email)
	if err != nil {
		return err
	}
	in.Email = email
	return nil
}

// Region is an administrative region.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidateForUpdate checks that a region rename names both the region and its new name.
func (r *Region) ValidateForUpdate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.NewValidation("region id is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.NewValidation("name is required")
	}
	return nil
}

// Sector is a policy sector used to classify drafts and institutions.
type Sector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a directory entry for a portal account.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	InstitutionID string `json:"institution_id,omitempty"`
	RegionID      string `json:"region_id,omitempty"`
}

// UserIDs returns the ids of users, in order.
func UserIDs(users []*User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

// UserProfile is the editable part of a portal account. ID is empty when
// the account is being created.
type UserProfile struct {
	ID            string `json:"id,omitempty"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	InstitutionID string `json:"institution_id,omitempty"`
	RegionID      string `json:"region_id,omitempty"`
}

// institutionRoles are the roles that only make sense inside an institution.
var institutionRoles = []Role{
	RoleFederalInstitutionsAdmin, RoleRegionalInstitutionsAdmin,
	RoleApprover, RoleUploader, RoleCommenter,
}

// IsInstitutionScoped reports whether r belongs to a single institution.
func (r Role) IsInstitutionScoped() bool {
	for _, scoped := range institutionRoles {
		if r == scoped {
			return true
		}
	}
	return false
}

// Validate checks names, email and role. Guest is not assignable, and
// institution-scoped roles need an institution.
func (u *UserProfile) Validate() error {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.MiddleName = strings.TrimSpace(u.MiddleName)
	u.LastName = strings.TrimSpace(u.LastName)
	if u.FirstName == "" || u.LastName == "" {
		return errors.NewValidation("first_name and last_name are required")
	}
	email, err := normaliseEmail(u.Email)
	if err != nil {
		return err
	}
	u.Email = email
	if !u.Role.IsValid() || u.Role == RoleGuest {
		return errors.NewValidation(fmt.Sprintf("role %q cannot be assigned", u.Role))
	}
	if u.Role.IsInstitutionScoped() && strings.TrimSpace(u.InstitutionID) == "" {
		return errors.NewValidation(fmt.Sprintf("institution_id is required for role %s", u.Role))
	}
	return nil
}

// ValidateForUpdate is Validate plus a required id.
func (u *UserProfile) ValidateForUpdate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.NewValidation("user id is required")
	}
	return u.Validate()
}

// FullName joins the non-empty name parts.
func (u *UserProfile) FullName() string {
	return strings.Join(strings.Fields(u.FirstName+" "+u.MiddleName+" "+u.LastName), " ")
}

func normaliseEmail(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.NewValidation("email is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.NewValidation(fmt.Sprintf("invalid email address %q", raw), err)
	}
	return strings.ToLower(addr.Address), nil
}
