package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "GIN_MODE", "DB_DRIVER", "DB_DSN", "DB_SEED", "JWT_SECRET", "JWT_TTL", "AUTH_TRUST_USER_HEADER", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "ecommerce.db")
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.TrustUserHeader)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_DSN", "user:pass@tcp(127.0.0.1:3306)/javashop?parseTime=true")
	t.Setenv("DB_SEED", "false")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("AUTH_TRUST_USER_HEADER", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8501, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.TrustUserHeader)
	assert.Equal(t, []string{"http://localhost:8501", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestGetEnvAsInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "eight")
	assert.Equal(t, 8, getEnvAsInt("SOME_INT", 8))
}
