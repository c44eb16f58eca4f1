// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/econsultation/econsultation-service/pkg/errors"
)

func TestValidateRFC3339(t *testing.T) {
	tests := []struct {
		name        string
		timestamp   string
		expectError bool
	}{
		{name: "utc", timestamp: "2024-03-01T08:00:00Z"},
		{name: "with offset", timestamp: "2024-03-01T11:00:00+03:00"},
		{name: "fractional seconds", timestamp: "2024-03-01T08:00:00.123456Z"},
		{name: "empty", timestamp: "", expectError: true},
		{name: "missing zone", timestamp: "2024-03-01T08:00:00", expectError: true},
		{name: "date only", timestamp: "2024-03-01", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateRFC3339(tt.timestamp)
			if tt.expectError {
				require.Error(t, err)
				var validation errs.Validation
				assert.True(t, errors.As(err, &validation))
				assert.Zero(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotZero(t, result)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "01/03/2024", "2024-13-01", "2024-03-01T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		wantErr bool
	}{
		{name: "ordered", opening: "2024-03-01", closing: "2024-03-31"},
		{name: "same day", opening: "2024-03-01", closing: "2024-03-01"},
		{name: "reversed", opening: "2024-03-31", closing: "2024-03-01", wantErr: true},
		{name: "bad opening", opening: "March 1", closing: "2024-03-01", wantErr: true},
		{name: "missing closing", opening: "2024-03-01", closing: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.opening, tt.closing)
			if tt.wantErr {
				var validation errs.Validation
				assert.True(t, errors.As(err, &validation))
				return
			}
			assert.NoError(t, err)
		})
	}
}
