package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	// Clear anything the surrounding environment might carry.
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "DB_NAME", "TOKEN_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "flavorshare", cfg.DBName)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "48h")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	t.Setenv("TOKEN_TTL", "two weeks")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ServerPort: "8080",
			DBHost:     "localhost",
			DBPort:     "5432",
			DBUser:     "postgres",
			DBName:     "flavorshare",
			JWTSecret:  "a-secret-long-enough",
			TokenTTL:   time.Hour,
		}
	}

	assert.NoError(t, Validate(base()))

	cfg := base()
	cfg.JWTSecret = ""
	assert.ErrorContains(t, Validate(cfg), "JWT_SECRET is required")

	cfg = base()
	cfg.JWTSecret = "short"
	assert.ErrorContains(t, Validate(cfg), "at least 16 characters")

	cfg = base()
	cfg.ServerPort = "not-a-port"
	assert.ErrorContains(t, Validate(cfg), "invalid server port")

	cfg = base()
	cfg.TokenTTL = 0
	assert.ErrorContains(t, Validate(cfg), "token TTL")
}
