package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "money")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "moneymanager")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "Asia/Kolkata", cfg.Schedule.Timezone)
	assert.Equal(t, "22:00", cfg.Schedule.ReminderTime)
	assert.Equal(t, "23:00", cfg.Schedule.DigestTime)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Lifetime)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SCHEDULE_TIMEZONE", "Europe/Berlin")
	t.Setenv("JWT_LIFETIME", "2h")
	t.Setenv("VERIFY_EMAIL_MX", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Europe/Berlin", cfg.Schedule.Timezone)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Lifetime)
	assert.True(t, cfg.VerifyEmailMX)
}

func TestValidate(t *testing.T) {
	setRequiredEnv(t)

	t.Run("Valid", func(t *testing.T) {
		cfg := Load()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingDatabaseUser", func(t *testing.T) {
		cfg := Load()
		cfg.Database.User = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadTimezone", func(t *testing.T) {
		cfg := Load()
		cfg.Schedule.Timezone = "Nowhere/Special"
		assert.Error(t, cfg.Validate())
	})
}

func TestConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "money", Password: "secret", Name: "moneymanager"}
	require.Equal(t, "host=db port=5432 user=money password=secret dbname=moneymanager sslmode=disable", d.ConnectionString())
}
