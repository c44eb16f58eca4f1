// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

// Profile holds the operator's connection settings
type Profile struct {
	Source   string        `yaml:"source"` // "api" or "mock"
	BaseURL  string        `yaml:"base_url"`
	Token    string        `yaml:"token"`
	Timeout  time.Duration `yaml:"timeout"`
	Notifier string        `yaml:"notifier"` // "", "nats" or "sendgrid"
	User     UserProfile   `yaml:"user"`
	NATS     NATSProfile   `yaml:"nats"`
}

// UserProfile identifies the operator to the workflow
type UserProfile struct {
	ID            string `yaml:"id"`
	Email         string `yaml:"email"`
	Role          string `yaml:"role"`
	InstitutionID string `yaml:"institution_id"`
}

// NATSProfile holds the notification broker settings
type NATSProfile struct {
	URL         string `yaml:"url"`
	Credentials string `yaml:"credentials"`
}

func defaultProfile() Profile {
	return Profile{
		Source:  constants.SourceAPI,
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
		User:    UserProfile{Role: string(model.RoleGuest)},
	}
}

// loadProfile reads the YAML profile at path, when given, and applies
// environment overrides
func loadProfile(path string) (Profile, error) {
	profile := defaultProfile()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Profile{}, fmt.Errorf("failed to read profile: %w", err)
		}
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
		}
	}

	profile.overrideWithEnv()

	if err := constants.ValidateSource(profile.Source); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

// overrideWithEnv overrides profile values with environment variables
func (p *Profile) overrideWithEnv() {
	if val := os.Getenv(constants.EnvBackendSource); val != "" {
		p.Source = val
	}
	if val := os.Getenv("ECONSULT_BASE_URL"); val != "" {
		p.BaseURL = val
	}
	if val := os.Getenv("ECONSULT_TOKEN"); val != "" {
		p.Token = val
	}
	if val := os.Getenv(constants.EnvNotifierSource); val != "" {
		p.Notifier = val
	}
	if val := os.Getenv(constants.EnvNATSURL); val != "" {
		p.NATS.URL = val
	}
	if val := os.Getenv(constants.EnvNATSCredentials); val != "" {
		p.NATS.Credentials = val
	}
}

// principal is the operator as seen by the workflow
func (p Profile) principal() *model.Principal {
	return &model.Principal{
		UserID:        p.User.ID,
		Email:         p.User.Email,
		Role:          model.ParseRole(p.User.Role),
		InstitutionID: p.User.InstitutionID,
		Token:         p.Token,
	}
}
