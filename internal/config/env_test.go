// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PHONE_REGION": "IT",

		"ADAPTER_ADDRESS":         "http://crm.local:5000/",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"SERVER_ADDRESS":         "localhost:5000",
		"SERVER_REQUEST_TIMEOUT": "20s",
		"SERVER_RATE_LIMIT":      "10",
		"SERVER_TOKEN_SIGN_KEY":  "secret",
		"SERVER_TOKEN_DURATION":  "1h",

		"STORAGE_DB_DATABASE_URI": "/tmp/console.db",

		"WORKERS_SUMMARY_INTERVAL": "2m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "IT", cfg.App.PhoneRegion)

	assert.Equal(t, "http://crm.local:5000/", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10, cfg.Server.RateLimit)
	assert.Equal(t, "secret", cfg.Server.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)

	assert.Equal(t, "/tmp/console.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SummaryInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "http://crm.local/"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://crm.local/", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── .env ─────────────────────────────────────────────────────────────────────

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_SeedsEnvironment(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=http://from-dotenv/\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ADAPTER_ADDRESS") })

	// Act
	require.NoError(t, loadDotEnv(p))
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	// Assert
	assert.Equal(t, "http://from-dotenv/", cfg.Adapter.HTTPAddress)
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "http://from-env/"})
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=http://from-dotenv/\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "http://from-env/", os.Getenv("ADAPTER_ADDRESS"))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_PHONE_REGION",
		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_RATE_LIMIT",
		"SERVER_TOKEN_SIGN_KEY",
		"SERVER_TOKEN_DURATION",
		"STORAGE_DB_DATABASE_URI",
		"WORKERS_SUMMARY_INTERVAL",
		dotEnvPathVar,
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
