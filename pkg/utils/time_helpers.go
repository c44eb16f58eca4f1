// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"time"

	"github.com/econsultation/econsultation-service/pkg/constants"
	errs "github.com/econsultation/econsultation-service/pkg/errors"
)

// ValidateRFC3339 validates that a timestamp string is in RFC3339 format.
func ValidateRFC3339(timestamp string) (time.Time, error) {
	if timestamp == "" {
		return time.Time{}, errs.NewValidation(constants.ErrEmptyTimestamp)
	}

	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return time.Time{}, errs.NewValidation(constants.ErrInvalidTimestampFormat, err)
	}

	return t, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, errs.NewValidation(constants.ErrEmptyDate)
	}

	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, errs.NewValidation(constants.ErrInvalidDateFormat, err)
	}

	return t, nil
}

// ValidateDateRange checks both dates parse and that closing is not before opening.
func ValidateDateRange(opening, closing string) error {
	open, err := ParseDate(opening)
	if err != nil {
		return errs.NewValidation("invalid opening date", err)
	}
	closeAt, err := ParseDate(closing)
	if err != nil {
		return errs.NewValidation("invalid closing date", err)
	}
	if closeAt.Before(open) {
		return errs.NewValidation("closing date must not be before opening date")
	}
	return nil
}
