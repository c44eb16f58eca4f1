// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// claimID accepts numeric and string identifiers
type claimID string

// UnmarshalJSON implements json.Unmarshaler
func (c *claimID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = claimID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = claimID(n.String())
	return nil
}

// PortalClaims are the application claims carried by portal tokens
type PortalClaims struct {
	UserID        claimID `json:"user_id,omitempty"`
	Email         string  `json:"email,omitempty"`
	Role          string  `json:"role,omitempty"`
	InstitutionID claimID `json:"institution_id,omitempty"`
	RegionID      claimID `json:"region_id,omitempty"`
}

// Validate implements validator.CustomClaims. Roles outside the policy
// table are accepted and degrade to Guest.
func (c *PortalClaims) Validate(_ context.Context) error {
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return errors.NewUnauthorized("token carries a malformed email claim")
	}
	return nil
}

// principal builds the caller from the claims; subject backs a missing user_id
func (c *PortalClaims) principal(subject, token string) (*model.Principal, error) {
	userID := string(c.UserID)
	if userID == "" {
		userID = subject
	}
	if userID == "" {
		return nil, errors.NewUnauthorized("token has no subject")
	}
	return &model.Principal{
		UserID:        userID,
		Email:         c.Email,
		Role:          model.ParseRole(c.Role),
		InstitutionID: string(c.InstitutionID),
		RegionID:      string(c.RegionID),
		Token:         token,
	}, nil
}

// hmacClaims is PortalClaims plus the registered claims for golang-jwt
type hmacClaims struct {
	PortalClaims
	jwt.RegisteredClaims
}
