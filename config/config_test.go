package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/wework")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/wework", cfg.DBURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 30, cfg.LoginFailWindowMin)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 10, cfg.OTPTTLMin)
	assert.Equal(t, 10, cfg.ResetTokenTTLMin)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "no-reply@wework.local", cfg.SMTPFrom)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://db:5432/wework")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "5")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "1440")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "3")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5, cfg.AccessExpiryMin)
	assert.Equal(t, 1440, cfg.RefreshExpiryMin)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "unset uses default", value: "", expected: 7},
		{name: "valid integer", value: "42", expected: 42},
		{name: "garbage falls back to default", value: "not-a-number", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT_VAR", tt.value)
			}
			assert.Equal(t, tt.expected, getEnvAsInt("TEST_INT_VAR", 7))
		})
	}
}
