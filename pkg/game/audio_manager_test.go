package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/systems"
)

var _ systems.SoundPlayer = (*AudioManager)(nil)

func TestPlaySoundDisabledBySettings(t *testing.T) {
	settings := NewSettingsManager(nil, quietLogger())
	settings.SetSoundEnabled(false)
	rm := NewResourceManager(nil, testCatalog())
	rm.RegisterCue(config.SoundCrash, []byte{0, 0, 0, 0})

	am := NewAudioManager(rm, settings, quietLogger())
	assert.False(t, am.PlaySound(config.SoundCrash))
}

func TestPlaySoundWithoutAudioContextFails(t *testing.T) {
	rm := NewResourceManager(nil, testCatalog())
	rm.RegisterCue(config.SoundCrash, []byte{0, 0, 0, 0})
	am := NewAudioManager(rm, nil, quietLogger())

	assert.False(t, am.PlaySound(config.SoundCrash))
	assert.True(t, am.missing[config.SoundCrash], "failure is remembered")
	assert.False(t, am.PlaySound(config.SoundCrash))
}

func TestSoundVolumeFollowsSettings(t *testing.T) {
	settings := NewSettingsManager(nil, quietLogger())
	am := NewAudioManager(NewResourceManager(nil, testCatalog()), settings, quietLogger())

	assert.Equal(t, 0.8, am.GetSoundVolume())
	am.SetSoundVolume(2)
	assert.Equal(t, 1.0, am.GetSoundVolume())

	assert.False(t, am.ToggleSound())
	assert.False(t, settings.GetSettings().SoundEnabled)
	assert.True(t, am.ToggleSound())
}
