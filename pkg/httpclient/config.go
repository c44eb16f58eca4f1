// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"net/http"
	"time"
)

// Config holds the configuration for the HTTP client
type Config struct {
	// Timeout is the per-attempt timeout of the underlying http.Client
	Timeout time.Duration

	// MaxRetries is the number of extra attempts for idempotent requests.
	// Zero disables retries entirely.
	MaxRetries int

	// RetryDelay is the base delay between attempts
	RetryDelay time.Duration

	// RetryBackoff doubles the delay on each attempt, capped at MaxDelay
	RetryBackoff bool

	// MaxDelay caps the backoff delay
	MaxDelay time.Duration

	// Transport overrides the base transport, e.g. with an otelhttp transport
	Transport http.RoundTripper
}

// DefaultConfig returns a Config with sensible defaults.
// Retries are off: the e-consultation workflow never repeats a call on its own.
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		MaxRetries:   0,
		RetryDelay:   1 * time.Second,
		RetryBackoff: true,
		MaxDelay:     30 * time.Second,
	}
}
