// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package utils provides utility functions for the e-consultation service.
package utils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	errs "github.com/econsultation/econsultation-service/pkg/errors"
)

// RetryConfig holds retry configuration for notification delivery.
// Backend REST calls are never retried through this helper.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// NewRetryConfig creates a RetryConfig with specified parameters
func NewRetryConfig(maxAttempts int, baseDelay, maxDelay time.Duration) RetryConfig {
	return RetryConfig{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		MaxDelay:    maxDelay,
	}
}

// RetryWithExponentialBackoff runs fn until it succeeds, the attempts run out,
// the context ends, or fn returns a validation error (which no retry can fix).
// The n-th retry waits BaseDelay * 2^(n-1), capped at MaxDelay.
func RetryWithExponentialBackoff(ctx context.Context, config RetryConfig, fn func(context.Context) error) error {
	attempts := max(config.MaxAttempts, 1)
	var lastErr error

	for attempt := range attempts {
		if attempt > 0 {
			delay := min(time.Duration(1<<uint(attempt-1))*config.BaseDelay, config.MaxDelay)

			slog.WarnContext(ctx, "retrying operation",
				"attempt", attempt+1,
				"total_attempts", attempts,
				"retry_delay_ms", delay.Milliseconds(),
			)

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("retry cancelled: %w", ctx.Err())
			}
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				slog.InfoContext(ctx, "retry succeeded", "attempt", attempt+1)
			}
			return nil
		}

		lastErr = err
		var validation errs.Validation
		if errors.As(err, &validation) {
			return err
		}

		slog.ErrorContext(ctx, "operation attempt failed",
			"attempt", attempt+1,
			"total_attempts", attempts,
			"error", err,
		)
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
