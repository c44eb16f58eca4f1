// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines global constants used throughout the e-consultation service.
package constants

// Service constants
const (
	// ServiceName is the name of this service
	ServiceName = "econsultation-service"
)

// HTTP header constants
const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-Id"
)

// Environment variables
const (
	// EnvNATSURL is the environment variable for NATS server URL
	EnvNATSURL = "NATS_URL"
	// EnvNATSCredentials is the environment variable for NATS credentials
	EnvNATSCredentials = "NATS_CREDENTIALS"
	// EnvBackendSource selects the backend implementation (api or mock)
	EnvBackendSource = "ECONSULT_SOURCE"
	// EnvNotifierSource selects the notification implementation (nats, sendgrid or mock)
	EnvNotifierSource = "NOTIFIER_SOURCE"
	// EnvAuthSource selects the authenticator (jwt, jwks or mock)
	EnvAuthSource = "AUTH_SOURCE"
)

// Pagination defaults
const (
	// DefaultPage is used when a list request does not specify a page
	DefaultPage = 1
)
