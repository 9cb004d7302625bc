package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fitculator", cfg.DBName)
	assert.Equal(t, 9, cfg.EngineUTCOffsetHours)
	assert.Equal(t, 3, cfg.DefaultRequiredSessions)
}

func TestLoadConfig_RequiresDBPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("ENGINE_UTC_OFFSET_HOURS", "0")
	t.Setenv("DEFAULT_REQUIRED_SESSIONS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 0, cfg.EngineUTCOffsetHours)
	assert.Equal(t, 2, cfg.DefaultRequiredSessions)
}

func TestEngineLocation(t *testing.T) {
	cfg := &Config{EngineUTCOffsetHours: 9}
	loc := cfg.EngineLocation()

	// 15h UTC devient 0h le lendemain en UTC+9
	ts := time.Date(2024, time.January, 7, 15, 0, 0, 0, time.UTC).In(loc)
	assert.Equal(t, 8, ts.Day())
	assert.Equal(t, 0, ts.Hour())
}
