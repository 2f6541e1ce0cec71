package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no agetick.yaml is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DataFile)
	assert.False(t, cfg.ShowMillis)
	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, DefaultFont, cfg.Font)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir+"/agetick.yaml", `
data_file: /tmp/agetick-test/lastdob.txt
show_millis: true
tick_interval: 50ms
font: block
logs:
  level: debug
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/agetick-test/lastdob.txt", cfg.DataFile)
	assert.True(t, cfg.ShowMillis)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "block", cfg.Font)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AGETICK_SHOW_MILLIS", "true")
	t.Setenv("AGETICK_FONT", "standard")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.ShowMillis)
	assert.Equal(t, "standard", cfg.Font)
}

func TestLoadInvalidTickIntervalFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir+"/agetick.yaml", "tick_interval: 0s\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
