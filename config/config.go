package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application settings read from the environment
type Config struct {
	Port            string
	DatabasePath    string
	UseHTTPS        bool
	SessionLifetime int64

	// CORSAllowedOrigins lists the origins allowed to call the JSON health probe; empty disables CORS
	CORSAllowedOrigins []string

	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
}

// Load reads a .env file if one exists, then builds the configuration from the environment
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load the env vars: %w", err)
		}
		log.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current environment
func FromEnv() (*Config, error) {
	lifetime := int64(3600)
	if v := os.Getenv("SESSION_LIFETIME"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SESSION_LIFETIME %q: must be a positive number of seconds", v)
		}
		lifetime = parsed
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "user_management.db"),
		UseHTTPS:           os.Getenv("USE_HTTPS") == "true",
		SessionLifetime:    lifetime,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		OIDCIssuerURL:      os.Getenv("OIDC_ISSUER_URL"),
		OIDCClientID:       os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret:   os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCCallbackURL:    os.Getenv("OIDC_CALLBACK_URL"),
	}, nil
}

// AuthEnabled reports whether operator login is configured
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuerURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
