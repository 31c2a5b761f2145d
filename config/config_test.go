package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "healthcare-coordination", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, NotifyModeNoop, cfg.Notify.Mode)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HOSPITAL_NAME", "City General")
	t.Setenv("HOSPITAL_CONTACT", "+15559000")
	t.Setenv("NOTIFY_MODE", NotifyModeLog)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "City General", cfg.Hospital.Name)
	assert.Equal(t, "+15559000", cfg.Hospital.ContactInfo)
	assert.Equal(t, NotifyModeLog, cfg.Notify.Mode)
}
