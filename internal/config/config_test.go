package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADVENT_DATA_DIR", "")
	t.Setenv("ADVENT_LOG_LEVEL", "")
	t.Setenv("ADVENT_ADDR", "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("ADVENT_DATA_DIR", "")
	t.Setenv("ADVENT_LOG_LEVEL", "")
	t.Setenv("ADVENT_ADDR", ":9000")
	// t.Setenv above registers cleanup; unset so godotenv may fill them
	require.NoError(t, os.Unsetenv("ADVENT_DATA_DIR"))
	require.NoError(t, os.Unsetenv("ADVENT_LOG_LEVEL"))

	env := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(env, []byte("ADVENT_DATA_DIR=/srv/advent\nADVENT_LOG_LEVEL=debug\nADVENT_ADDR=:1234\n"), 0o644))

	cfg := Load(env)
	assert.Equal(t, "/srv/advent", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.Addr, "environment wins over the file")
}

func TestLoadWarnsOnMalformedEnvFile(t *testing.T) {
	t.Setenv("ADVENT_ADDR", "")
	hook := test.NewGlobal()
	defer hook.Reset()

	Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Empty(t, hook.AllEntries(), "a missing file is not worth a warning")

	env := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(env, []byte("ADVENT-ADDR=:1234\n"), 0o644))
	cfg := Load(env)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, env, hook.LastEntry().Data["file"])
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("ADVENT_LOG_LEVEL", "loud")
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("nope").GetLevel())
}
