package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLaunchConfigMissingFile(t *testing.T) {
	cfg, err := LoadLaunchConfig(filepath.Join(t.TempDir(), DefaultLaunchFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultLaunchConfig(), cfg)
	assert.Nil(t, cfg.Launch.Seed)
}

func TestLoadLaunchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.hcl")
	content := `
launch {
  seed        = 99
  log_level   = "debug"
  start_car   = "Audi"
  fullscreen  = true
  tuning_file = "custom.yaml"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadLaunchConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Launch.Seed)
	assert.Equal(t, int64(99), *cfg.Launch.Seed)
	assert.Equal(t, "debug", cfg.Launch.LogLevel)
	assert.Equal(t, "Audi", cfg.Launch.StartCar)
	assert.True(t, cfg.Launch.Fullscreen)
	assert.Equal(t, "custom.yaml", cfg.Launch.TuningFile)
}

func TestLoadLaunchConfigDefaultsLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.hcl")
	require.NoError(t, os.WriteFile(path, []byte("launch {\n  start_car = \"Red Car\"\n}\n"), 0o644))

	cfg, err := LoadLaunchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Launch.LogLevel)
}

func TestLoadLaunchConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	badSyntax := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(badSyntax, []byte("launch {"), 0o644))
	_, err := LoadLaunchConfig(badSyntax)
	assert.ErrorContains(t, err, "failed to parse HCL")

	badLevel := filepath.Join(dir, "level.hcl")
	require.NoError(t, os.WriteFile(badLevel, []byte("launch {\n  log_level = \"loud\"\n}\n"), 0o644))
	_, err = LoadLaunchConfig(badLevel)
	assert.ErrorContains(t, err, "invalid log_level")
}
