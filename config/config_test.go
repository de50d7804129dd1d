package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/gosweep/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10000, cfg.MaxCells)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, "info", cfg.LogLevel)

	gameConfig, err := cfg.GameConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, game.Medium, gameConfig.Difficulty)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: hard\nseed: 12\nlog-level: debug\n"), 0o644))
	t.Setenv("GOSWEEP_ADDR", ":9999")
	t.Setenv("GOSWEEP_MAX_CELLS", "400")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 400, cfg.MaxCells)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, int64(12), cfg.Seed)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigRejectsBadValues(t *testing.T) {
	cfg := &Config{Difficulty: "nightmare", LogLevel: "info", LogFormat: "text"}
	_, err := cfg.GameConfig(nil)
	assert.Error(t, err)

	cfg.LogFormat = "xml"
	_, err = cfg.Logger()
	assert.Error(t, err)

	cfg.LogFormat, cfg.LogLevel = "json", "loud"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
