// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package econsult provides the client for the e-consultation REST backend.
package econsult

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/econsultation/econsultation-service/pkg/constants"
)

// Config holds the configuration for the backend client
type Config struct {
	// BaseURL is the backend API base URL; endpoint paths are joined to it
	BaseURL string

	// Timeout is the HTTP client timeout for requests
	Timeout time.Duration

	// MaxRetries applies to idempotent reads only. Zero, the default, disables retries.
	MaxRetries int

	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration

	// MockMode serves every call from the in-memory backend (for testing)
	MockMode bool

	// OAuth client-credentials settings. When TokenURL is empty the caller's
	// own bearer token is forwarded instead.
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthScopes       []string

	// StaticToken is used when neither a caller token nor OAuth is available (CLI use)
	StaticToken string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8000/api",
		Timeout:    30 * time.Second,
		MaxRetries: 0,
		RetryDelay: 1 * time.Second,
	}
}

// NewConfigFromEnv creates a Config from environment variables
func NewConfigFromEnv() Config {
	config := DefaultConfig()

	if baseURL := os.Getenv("ECONSULT_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	if timeoutStr := os.Getenv("ECONSULT_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			config.Timeout = timeout
		}
	}

	if retriesStr := os.Getenv("ECONSULT_MAX_RETRIES"); retriesStr != "" {
		if retries, err := strconv.Atoi(retriesStr); err == nil && retries >= 0 {
			config.MaxRetries = retries
		}
	}

	if delayStr := os.Getenv("ECONSULT_RETRY_DELAY"); delayStr != "" {
		if delay, err := time.ParseDuration(delayStr); err == nil {
			config.RetryDelay = delay
		}
	}

	config.OAuthTokenURL = os.Getenv("ECONSULT_OAUTH_TOKEN_URL")
	config.OAuthClientID = os.Getenv("ECONSULT_OAUTH_CLIENT_ID")
	config.OAuthClientSecret = os.Getenv("ECONSULT_OAUTH_CLIENT_SECRET")
	if scopes := os.Getenv("ECONSULT_OAUTH_SCOPES"); scopes != "" {
		config.OAuthScopes = strings.Fields(strings.ReplaceAll(scopes, ",", " "))
	}
	config.StaticToken = os.Getenv("ECONSULT_TOKEN")

	if os.Getenv(constants.EnvBackendSource) == constants.SourceMock {
		config.MockMode = true
	}

	return config
}
