// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"context"

	"github.com/econsultation/econsultation-service/pkg/constants"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email,omitempty"`
	Role          Role   `json:"role"`
	InstitutionID string `json:"institution_id,omitempty"`
	RegionID      string `json:"region_id,omitempty"`
	// Token is the raw bearer token, forwarded to the backend.
	Token string `json:"-"`
}

// EffectiveRole maps unknown roles to Guest.
func (p *Principal) EffectiveRole() Role {
	if p == nil || !p.Role.IsValid() {
		return RoleGuest
	}
	return p.Role
}

// Can reports whether the principal holds the capability.
func (p *Principal) Can(c Capability) bool {
	return Authorize(p.EffectiveRole(), c)
}

// BelongsTo reports whether the principal is a member of the institution.
func (p *Principal) BelongsTo(institutionID string) bool {
	return p != nil && institutionID != "" && p.InstitutionID == institutionID
}

// ContextWithPrincipal stores the principal and its token on ctx.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	ctx = context.WithValue(ctx, constants.PrincipalContextID, p)
	if p != nil && p.Token != "" {
		ctx = context.WithValue(ctx, constants.AuthorizationContextID, p.Token)
	}
	return ctx
}

// PrincipalFromContext returns the principal stored by ContextWithPrincipal.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(constants.PrincipalContextID).(*Principal)
	return p, ok && p != nil
}
