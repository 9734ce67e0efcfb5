package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/gadgetquiz/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		SeedData:           true,
		CORSAllowedOrigins: "*",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:               "",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		CORSAllowedOrigins: "*",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:               ":8080",
		DBPath:             "",
		LogLevel:           "INFO",
		CORSAllowedOrigins: "*",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "LOUD",
		CORSAllowedOrigins: "*",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidate_EmptyCORSOrigins(t *testing.T) {
	cfg := config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		CORSAllowedOrigins: "",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "SEED_DATA", "CORS_ALLOWED_ORIGINS"} {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:gadgetquiz.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}
