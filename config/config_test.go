package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-relay/config"
	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HOST", "PORT", "APP_ENV", "LOG_LEVEL", "APP_VERSION", "APPWRITE_ENDPOINT",
		"APPWRITE_TIMEOUT_SECONDS", "APPWRITE_RATE_LIMIT", "APPWRITE_RATE_BURST", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, config.DefaultAppwriteEndpoint, cfg.Appwrite.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Appwrite.Timeout)
	assert.Zero(t, cfg.Appwrite.RateLimit)
	assert.Equal(t, 1, cfg.Appwrite.RateBurst)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("APPWRITE_ENDPOINT", "http://appwrite.local/v1/")
	t.Setenv("APPWRITE_TIMEOUT_SECONDS", "5")
	t.Setenv("APPWRITE_RATE_LIMIT", "2.5")
	t.Setenv("APPWRITE_RATE_BURST", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "http://appwrite.local/v1", cfg.Appwrite.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Appwrite.Timeout)
	assert.Equal(t, 2.5, cfg.Appwrite.RateLimit)
	assert.Equal(t, 4, cfg.Appwrite.RateBurst)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("APPWRITE_TIMEOUT_SECONDS", "soon")
	t.Setenv("APPWRITE_RATE_LIMIT", "fast")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Appwrite.Timeout)
	assert.Zero(t, cfg.Appwrite.RateLimit)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Appwrite: config.AppwriteConfig{Endpoint: config.DefaultAppwriteEndpoint},
	}
	require.NoError(t, cfg.Validate())

	cfg.Appwrite.RateLimit = -1
	assert.Error(t, cfg.Validate())

	cfg.Appwrite.RateLimit = 0
	cfg.Server.Port = ""
	assert.EqualError(t, cfg.Validate(), "PORT is required")
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("PROJECT_ID", "proj")
	t.Setenv("DATABASE_ID", "db")
	t.Setenv("COLLECTION_ID", "col")
	t.Setenv("API_KEY", "secret")
}

func TestLoadAppwrite(t *testing.T) {
	setCredentials(t)

	creds, err := config.LoadAppwrite()
	require.NoError(t, err)
	assert.Equal(t, config.AppwriteCredentials{
		ProjectID:    "proj",
		DatabaseID:   "db",
		CollectionID: "col",
		APIKey:       "secret",
	}, creds)
}

func TestLoadAppwrite_Missing(t *testing.T) {
	for _, key := range []string{"PROJECT_ID", "DATABASE_ID", "COLLECTION_ID", "API_KEY"} {
		t.Run(key, func(t *testing.T) {
			setCredentials(t)
			t.Setenv(key, "  ")

			_, err := config.LoadAppwrite()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMissingConfig))
			assert.Contains(t, err.Error(), key)
		})
	}
}
