package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("MIDTRANS_IS_PRODUCTION", "1")
	t.Setenv("SMTP_HOST", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Midtrans.IsProduction)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestIsProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	assert.True(t, Load().IsProduction())
}
