package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED_DEFAULT_LIBRARY", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "wordflash.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.SeedLibrary)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DB_PATH", "/tmp/study.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SEED_DEFAULT_LIBRARY", "false")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/study.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.False(t, cfg.SeedLibrary)
}

func TestLoadInvalidBoolFallsBack(t *testing.T) {
	t.Setenv("SEED_DEFAULT_LIBRARY", "maybe")

	cfg := Load()
	assert.True(t, cfg.SeedLibrary)
}

func TestValidate(t *testing.T) {
	valid := Config{Addr: ":8080", DBPath: "x.db", LogLevel: "INFO"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty addr", Config{DBPath: "x.db", LogLevel: "INFO"}},
		{"empty db path", Config{Addr: ":8080", LogLevel: "INFO"}},
		{"bad log level", Config{Addr: ":8080", DBPath: "x.db", LogLevel: "LOUD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
