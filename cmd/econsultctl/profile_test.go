// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/pkg/constants"
)

func clearProfileEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		constants.EnvBackendSource, "ECONSULT_BASE_URL", "ECONSULT_TOKEN",
		constants.EnvNotifierSource, constants.EnvNATSURL, constants.EnvNATSCredentials,
	} {
		t.Setenv(key, "")
	}
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProfile(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		clearProfileEnv(t)

		profile, err := loadProfile("")
		require.NoError(t, err)
		assert.Equal(t, constants.SourceAPI, profile.Source)
		assert.Equal(t, 30*time.Second, profile.Timeout)
		assert.Equal(t, model.RoleGuest, profile.principal().Role)
	})

	t.Run("reads yaml", func(t *testing.T) {
		clearProfileEnv(t)
		path := writeProfile(t, `
source: mock
base_url: https://econsult.example.org/api
timeout: 5s
user:
  id: "11"
  email: dawit.bekele@mof.gov.et
  role: approver
  institution_id: "1"
`)

		profile, err := loadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, constants.SourceMock, profile.Source)
		assert.Equal(t, "https://econsult.example.org/api", profile.BaseURL)
		assert.Equal(t, 5*time.Second, profile.Timeout)

		principal := profile.principal()
		assert.Equal(t, "11", principal.UserID)
		assert.Equal(t, model.RoleApprover, principal.Role)
		assert.Equal(t, "1", principal.InstitutionID)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		clearProfileEnv(t)
		path := writeProfile(t, "source: api\ntoken: from-file\n")
		t.Setenv(constants.EnvBackendSource, constants.SourceMock)
		t.Setenv("ECONSULT_TOKEN", "from-env")
		t.Setenv(constants.EnvNATSURL, "nats://broker:4222")

		profile, err := loadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, constants.SourceMock, profile.Source)
		assert.Equal(t, "from-env", profile.Token)
		assert.Equal(t, "from-env", profile.principal().Token)
		assert.Equal(t, "nats://broker:4222", profile.NATS.URL)
	})

	t.Run("unknown source", func(t *testing.T) {
		clearProfileEnv(t)
		path := writeProfile(t, "source: ftp\n")

		_, err := loadProfile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		clearProfileEnv(t)

		_, err := loadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearProfileEnv(t)
		path := writeProfile(t, "user: [unterminated\n")

		_, err := loadProfile(path)
		assert.Error(t, err)
	})
}
