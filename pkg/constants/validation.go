// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines validation constants and formats for the e-consultation service.
package constants

// DateFormat is the calendar date format used for comment opening and closing dates
const DateFormat = "2006-01-02"

// Validation error messages
const (
	ErrInvalidTimestampFormat = "invalid timestamp format, expected RFC3339 (2006-01-02T15:04:05Z07:00)"
	ErrEmptyTimestamp         = "timestamp cannot be empty"
	ErrInvalidDateFormat      = "invalid date format, expected YYYY-MM-DD"
	ErrEmptyDate              = "date cannot be empty"
)
