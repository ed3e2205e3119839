package config

import (
	"os"
	"strconv"
	"time"

	"pdf-replace-engine/internal/domain"
)

// InsecureDefaultJWTSecret is the compiled-in fallback signing key. It
// exists so the service can boot without configuration, but it must not
// be used in production; main logs a warning when it is active.
const InsecureDefaultJWTSecret = "insecure-dev-secret-change-in-production"

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	StoragePath string
	MaxFileSize int64
	LogLevel    string
	JWTSecret   string
	TokenTTL    time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() *AppConfig {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		StoragePath: getEnvOrDefault("STORAGE_PATH", "./storage"),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		JWTSecret:   getEnvOrDefault("JWT_SECRET", InsecureDefaultJWTSecret),
		TokenTTL:    time.Duration(getEnvInt64OrDefault("TOKEN_TTL_MINUTES", 60)) * time.Minute,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetStoragePath returns the storage directory path
func (c *AppConfig) GetStoragePath() string {
	return c.StoragePath
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetJWTSecret returns the token signing secret
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

// GetTokenTTL returns the lifetime of issued tokens
func (c *AppConfig) GetTokenTTL() time.Duration {
	return c.TokenTTL
}

// UsingInsecureSecret reports whether the compiled-in fallback signing
// key is active.
func (c *AppConfig) UsingInsecureSecret() bool {
	return c.JWTSecret == InsecureDefaultJWTSecret
}

var _ domain.Config = (*AppConfig)(nil)

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
