package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	content := `{
		"app": {
			"secret_key": "json-secret",
			"audience": "patas-felizes",
			"environment": "local",
			"basic_token_ttl": "15m",
			"session_token_ttl": "999h"
		},
		"storage": {"db": {"dsn": "postgres://localhost/shelter"}},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "30s"},
		"rate_limit": {"rps": 2, "burst": 4}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.SecretKey)
	assert.Equal(t, "patas-felizes", cfg.App.Audience)
	assert.Equal(t, 15*time.Minute, cfg.App.BasicTokenTTL)
	assert.Equal(t, 999*time.Hour, cfg.App.SessionTokenTTL)
	assert.Equal(t, "postgres://localhost/shelter", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, float64(2), cfg.RateLimit.RPS)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading json config file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing json config file")
}
