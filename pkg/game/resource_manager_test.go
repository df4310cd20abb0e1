package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/laneracer/pkg/config"
)

func spriteCatalog() *config.Catalog {
	c := testCatalog()
	c.Sprites = map[string]config.SpriteStyle{
		"black_viper": {Shape: config.ShapeCar, Color: "#1c1c1c", Accent: "gold"},
		"taxi":        {Shape: config.ShapeBox, Color: "gold", Accent: "black"},
		"shield":      {Shape: config.ShapeDisc, Color: "deepskyblue"},
		"speed":       {Shape: config.ShapeBolt, Color: "yellow", Accent: "orange"},
		"heart":       {Shape: config.ShapeHeart, Color: "crimson"},
	}
	return c
}

func TestLoadSpritesFromCatalog(t *testing.T) {
	rm := NewResourceManager(nil, spriteCatalog())
	require.NoError(t, rm.LoadSprites())

	for id := range spriteCatalog().Sprites {
		img := rm.Sprite(id)
		require.NotNil(t, img, id)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		assert.Equal(t, spriteSize, w)
		assert.Equal(t, spriteSize, h)
	}
	assert.Nil(t, rm.Sprite("missing"))
}

func TestLoadSpriteCachesAndRejectsUnknown(t *testing.T) {
	rm := NewResourceManager(nil, spriteCatalog())

	first, err := rm.LoadSprite("taxi")
	require.NoError(t, err)
	second, err := rm.LoadSprite("taxi")
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = rm.LoadSprite("police")
	assert.Error(t, err)
}

func TestRenderSpriteRejectsBadStyle(t *testing.T) {
	_, err := renderSprite(config.SpriteStyle{Shape: "star", Color: "red"})
	assert.Error(t, err)

	_, err = renderSprite(config.SpriteStyle{Shape: config.ShapeCar, Color: "#12"})
	assert.Error(t, err)
}

func TestCueRegistry(t *testing.T) {
	rm := NewResourceManager(nil, testCatalog())
	assert.False(t, rm.HasCue(config.SoundScore))

	rm.RegisterCue(config.SoundScore, []byte{1, 2, 3, 4})
	assert.True(t, rm.HasCue(config.SoundScore))

	_, err := rm.LoadSoundEffect(config.SoundScore)
	assert.Error(t, err, "no audio context")
}
