// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":      "jwt_secret",
		"APP_TOKEN_ISSUER":        "test_issuer",
		"APP_TOKEN_DURATION":      "1h",
		"APP_ACTIVATION_SECRET":   "activation_secret",
		"APP_ACTIVATION_TIMEOUT":  "72h",
		"APP_PASSWORD_HASH_COST":  "12",
		"APP_BASE_URL":            "https://example.com",
		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:test.db",
		"STORAGE_CACHE_REDIS_URL": "redis://localhost:6379/0",
		"STORAGE_CACHE_GEO_TTL":   "12h",
		"ADAPTER_GEO_BASE_URL":    "http://geo.local/json/",
		"ADAPTER_GEO_TIMEOUT":     "2s",
		"ADAPTER_MAIL_HOST":       "smtp.local",
		"ADAPTER_MAIL_PORT":       "2525",
		"ADAPTER_MAIL_FROM":       "noreply@example.com",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "activation_secret", cfg.App.ActivationSecret)
	assert.Equal(t, 72*time.Hour, cfg.App.ActivationTimeout)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "https://example.com", cfg.App.BaseURL)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.Cache.RedisURL)
	assert.Equal(t, 12*time.Hour, cfg.Storage.Cache.GeoTTL)
	assert.Equal(t, "http://geo.local/json/", cfg.Adapter.Geo.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.Geo.Timeout)
	assert.Equal(t, "smtp.local", cfg.Adapter.Mail.Host)
	assert.Equal(t, 2525, cfg.Adapter.Mail.Port)
	assert.Equal(t, "noreply@example.com", cfg.Adapter.Mail.From)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_ACTIVATION_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
