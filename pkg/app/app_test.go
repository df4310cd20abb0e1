package app

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/embedded"
	"github.com/decker502/laneracer/pkg/game"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    log.Level
	}{
		{"default is warn", "", false, log.WarnLevel},
		{"explicit info", "info", false, log.InfoLevel},
		{"unknown falls back to warn", "chatty", false, log.WarnLevel},
		{"verbose wins", "error", true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(&bytes.Buffer{}, tt.level, tt.verbose)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", false)
	logger.WithPrefix("App").Info("hello", "cars", 3)

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "cars=3")
}

func TestLoadAssets(t *testing.T) {
	embedded.Init(os.DirFS("../.."))
	t.Cleanup(func() { embedded.Init(nil) })

	bundle, cues, err := loadAssets("")
	require.NoError(t, err)

	assert.NotEmpty(t, bundle.Catalog.Cars)
	for _, id := range config.AllSoundIDs() {
		assert.NotEmpty(t, cues[id], "cue %s synthesized", id)
	}
}

func TestLoadAssetsRequiresEmbeddedData(t *testing.T) {
	embedded.Init(nil)

	_, _, err := loadAssets("")
	assert.Error(t, err)
}

func newAudioTestApp() (*App, *game.SettingsManager) {
	quiet := log.NewWithOptions(io.Discard, log.Options{})
	settings := game.NewSettingsManager(nil, quiet)
	return &App{
		settings:     settings,
		audioManager: game.NewAudioManager(nil, settings, quiet),
		logger:       quiet,
	}, settings
}

func TestApplyAudioControlsMute(t *testing.T) {
	a, settings := newAudioTestApp()

	a.applyAudioControls(true, 0)
	assert.False(t, settings.GetSettings().SoundEnabled)

	a.applyAudioControls(true, 0)
	assert.True(t, settings.GetSettings().SoundEnabled)
}

func TestApplyAudioControlsVolume(t *testing.T) {
	a, settings := newAudioTestApp()

	a.applyAudioControls(false, -volumeKeyStep)
	assert.InDelta(t, 0.7, settings.GetSettings().SoundVolume, 1e-9)

	for range 5 {
		a.applyAudioControls(false, volumeKeyStep)
	}
	assert.Equal(t, 1.0, settings.GetSettings().SoundVolume, "clamped at full volume")
	assert.True(t, settings.GetSettings().SoundEnabled, "volume keys do not mute")
}

func TestApplyAudioControlsNoInput(t *testing.T) {
	a, settings := newAudioTestApp()

	a.applyAudioControls(false, 0)
	assert.Equal(t, game.DefaultSettings(), settings.GetSettings())
}
