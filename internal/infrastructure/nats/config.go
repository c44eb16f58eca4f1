// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"os"
	"strconv"
	"time"

	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/utils"
)

// Config holds the NATS connection settings
type Config struct {
	// URL is the NATS server URL
	URL string

	// Timeout applies to connecting and to JetStream publish acknowledgements
	Timeout time.Duration

	// MaxReconnect is the maximum number of reconnection attempts
	MaxReconnect int

	// ReconnectWait is the time to wait between reconnection attempts
	ReconnectWait time.Duration

	// CredentialsFile is an optional NATS user credentials file
	CredentialsFile string

	// JetStream publishes through JetStream and waits for the stream ack
	JetStream bool

	// Retry controls redelivery of a single notification
	Retry utils.RetryConfig
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:           "nats://localhost:4222",
		Timeout:       10 * time.Second,
		MaxReconnect:  3,
		ReconnectWait: 2 * time.Second,
		Retry:         utils.NewRetryConfig(3, 200*time.Millisecond, 2*time.Second),
	}
}

// NewConfigFromEnv creates a Config from environment variables
func NewConfigFromEnv() Config {
	config := DefaultConfig()

	if natsURL := os.Getenv(constants.EnvNATSURL); natsURL != "" {
		config.URL = natsURL
	}
	config.CredentialsFile = os.Getenv(constants.EnvNATSCredentials)

	if timeoutStr := os.Getenv("NATS_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			config.Timeout = timeout
		}
	}

	if maxReconnectStr := os.Getenv("NATS_MAX_RECONNECT"); maxReconnectStr != "" {
		if maxReconnect, err := strconv.Atoi(maxReconnectStr); err == nil {
			config.MaxReconnect = maxReconnect
		}
	}

	if reconnectWaitStr := os.Getenv("NATS_RECONNECT_WAIT"); reconnectWaitStr != "" {
		if reconnectWait, err := time.ParseDuration(reconnectWaitStr); err == nil {
			config.ReconnectWait = reconnectWait
		}
	}

	if jetStream, err := strconv.ParseBool(os.Getenv("NATS_JETSTREAM")); err == nil {
		config.JetStream = jetStream
	}

	if attemptsStr := os.Getenv("NOTIFY_MAX_ATTEMPTS"); attemptsStr != "" {
		if attempts, err := strconv.Atoi(attemptsStr); err == nil && attempts > 0 {
			config.Retry.MaxAttempts = attempts
		}
	}

	return config
}
