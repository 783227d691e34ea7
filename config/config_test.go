package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_PATH", "USE_HTTPS", "SESSION_LIFETIME", "CORS_ALLOWED_ORIGINS",
		"OIDC_ISSUER_URL", "OIDC_CLIENT_ID", "OIDC_CLIENT_SECRET", "OIDC_CALLBACK_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "user_management.db", cfg.DatabasePath)
	assert.False(t, cfg.UseHTTPS)
	assert.Equal(t, int64(3600), cfg.SessionLifetime)
	assert.False(t, cfg.AuthEnabled())
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/users.db")
	t.Setenv("USE_HTTPS", "true")
	t.Setenv("SESSION_LIFETIME", "600")
	t.Setenv("OIDC_ISSUER_URL", "https://id.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://status.example.com, ,https://ops.example.com")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/users.db", cfg.DatabasePath)
	assert.True(t, cfg.UseHTTPS)
	assert.Equal(t, int64(600), cfg.SessionLifetime)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"https://status.example.com", "https://ops.example.com"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_InvalidSessionLifetime(t *testing.T) {
	clearEnv(t)

	for _, value := range []string{"soon", "0", "-5"} {
		t.Setenv("SESSION_LIFETIME", value)
		_, err := FromEnv()
		assert.Error(t, err, "expected %q to be rejected", value)
	}
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_ReadsFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	os.Unsetenv("DATABASE_PATH")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nDATABASE_PATH=from_file.db\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "from_file.db", cfg.DatabasePath)
}
