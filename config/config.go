package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

const DefaultAppwriteEndpoint = "https://cloud.appwrite.io/v1"

type Config struct {
	Server   ServerConfig
	Appwrite AppwriteConfig
	App      AppConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

// AppwriteConfig holds the transport settings for the document store.
// Credentials are not part of it; they are read per call by LoadAppwrite.
type AppwriteConfig struct {
	Endpoint  string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// Addr returns the host:port pair the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		hclog.Default().Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("HOST", "localhost"),
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Appwrite: AppwriteConfig{
			Endpoint:  strings.TrimRight(getEnv("APPWRITE_ENDPOINT", DefaultAppwriteEndpoint), "/"),
			Timeout:   time.Duration(getEnvAsInt("APPWRITE_TIMEOUT_SECONDS", 30)) * time.Second,
			RateLimit: getEnvAsFloat("APPWRITE_RATE_LIMIT", 0),
			RateBurst: getEnvAsInt("APPWRITE_RATE_BURST", 1),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Appwrite.Endpoint == "" {
		return fmt.Errorf("APPWRITE_ENDPOINT is required")
	}

	if c.Appwrite.RateLimit < 0 {
		return fmt.Errorf("APPWRITE_RATE_LIMIT must not be negative")
	}

	return nil
}

// AppwriteCredentials identifies the project, database and collection the
// service proxies to, plus the server API key used to authenticate.
type AppwriteCredentials struct {
	ProjectID    string
	DatabaseID   string
	CollectionID string
	APIKey       string
}

// LoadAppwrite reads the document store credentials from the environment.
// It is read per call; a .env file only fills variables not already set.
func LoadAppwrite() (AppwriteCredentials, error) {
	_ = godotenv.Load()

	creds := AppwriteCredentials{}
	for _, v := range []struct {
		key string
		dst *string
	}{
		{"PROJECT_ID", &creds.ProjectID},
		{"DATABASE_ID", &creds.DatabaseID},
		{"COLLECTION_ID", &creds.CollectionID},
		{"API_KEY", &creds.APIKey},
	} {
		value := strings.TrimSpace(os.Getenv(v.key))
		if value == "" {
			return AppwriteCredentials{}, fmt.Errorf("%w: %s", domain.ErrMissingConfig, v.key)
		}
		*v.dst = value
	}

	return creds, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		hclog.Default().Warn("invalid integer, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		hclog.Default().Warn("invalid number, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
