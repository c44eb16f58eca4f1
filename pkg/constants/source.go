// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import (
	"fmt"
	"strings"

	"github.com/econsultation/econsultation-service/pkg/errors"
)

// Source constants select where backend calls are served from
const (
	// SourceAPI talks to the remote e-consultation REST API
	SourceAPI = "api"

	// SourceMock serves every call from the in-memory backend (testing mode)
	SourceMock = "mock"
)

// ValidateSource validates that the source is one of the allowed values
func ValidateSource(source string) error {
	switch source {
	case SourceAPI, SourceMock:
		return nil
	case "":
		return errors.NewValidation("source is required")
	default:
		return errors.NewValidation(
			fmt.Sprintf("unsupported source: %s (must be one of %s)", source, strings.Join(ValidSources(), ", ")))
	}
}

// ValidSources returns list of all valid sources for documentation
func ValidSources() []string {
	return []string{SourceAPI, SourceMock}
}
