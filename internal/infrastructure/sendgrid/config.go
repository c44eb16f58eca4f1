// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package sendgrid delivers workflow notifications as email through SendGrid.
package sendgrid

import (
	"os"
	"time"

	"github.com/econsultation/econsultation-service/pkg/utils"
)

// Config holds the SendGrid settings
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string

	// Host overrides the SendGrid API host, e.g. for a sandbox relay
	Host string

	// PortalURL is linked from every email when set
	PortalURL string

	Retry utils.RetryConfig
}

// NewConfigFromEnv creates a Config from environment variables
func NewConfigFromEnv() Config {
	config := Config{
		APIKey:    os.Getenv("SENDGRID_API_KEY"),
		FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		FromName:  os.Getenv("SENDGRID_FROM_NAME"),
		Host:      os.Getenv("SENDGRID_HOST"),
		PortalURL: os.Getenv("ECONSULT_PORTAL_URL"),
		Retry:     utils.NewRetryConfig(3, 500*time.Millisecond, 5*time.Second),
	}
	if config.FromName == "" {
		config.FromName = "E-Consultation"
	}
	return config
}
