package game

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	racaudio "github.com/decker502/laneracer/internal/audio"
	"github.com/decker502/laneracer/pkg/config"
)

// spriteSize is the edge length of every generated sprite texture.
// Render code scales sprites to the entity's collision box.
const spriteSize = 64

// ResourceManager is responsible for centralized management of game resources.
// Sprites are generated procedurally from catalog styles and sound cues are
// registered as raw PCM; both are created once and reused.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load everything on the main
// goroutine before the game loop starts.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // sprite id -> image
	cueCache     map[string][]byte        // sound id -> 16-bit stereo PCM
	audioContext *audio.Context           // may be nil (headless / muted)
	catalog      *config.Catalog
}

// NewResourceManager creates a ResourceManager for the given catalog.
//
// Parameters:
//   - audioContext: context used to create players, nil disables playback
//   - catalog: sprite styles to draw
func NewResourceManager(audioContext *audio.Context, catalog *config.Catalog) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		cueCache:     make(map[string][]byte),
		audioContext: audioContext,
		catalog:      catalog,
	}
}

// LoadSprites generates every sprite declared in the catalog.
func (rm *ResourceManager) LoadSprites() error {
	ids := make([]string, 0, len(rm.catalog.Sprites))
	for id := range rm.catalog.Sprites {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := rm.LoadSprite(id); err != nil {
			return err
		}
	}
	return nil
}

// LoadSprite generates (or returns the cached) sprite for id.
func (rm *ResourceManager) LoadSprite(id string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[id]; ok {
		return img, nil
	}

	style, ok := rm.catalog.Sprites[id]
	if !ok {
		return nil, fmt.Errorf("sprite %q is not defined in catalog", id)
	}
	img, err := renderSprite(style)
	if err != nil {
		return nil, fmt.Errorf("failed to render sprite %q: %w", id, err)
	}

	rm.imageCache[id] = img
	return img, nil
}

// Sprite returns a previously loaded sprite, or nil.
// Implements systems.SpriteSource.
func (rm *ResourceManager) Sprite(id string) *ebiten.Image {
	return rm.imageCache[id]
}

// RegisterCue stores rendered PCM for a sound id.
func (rm *ResourceManager) RegisterCue(id string, pcm []byte) {
	rm.cueCache[id] = pcm
}

// HasCue reports whether PCM was registered for id.
func (rm *ResourceManager) HasCue(id string) bool {
	_, ok := rm.cueCache[id]
	return ok
}

// LoadSoundEffect creates a new player for a registered cue.
//
// Returns an error when no audio context is available or the cue is unknown.
func (rm *ResourceManager) LoadSoundEffect(id string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}
	pcm, ok := rm.cueCache[id]
	if !ok {
		return nil, fmt.Errorf("sound %q not registered", id)
	}

	player, err := rm.audioContext.NewPlayer(racaudio.NewPCMStream(pcm))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %q: %w", id, err)
	}
	return player, nil
}

// AudioContext returns the audio context (may be nil).
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// ---- procedural sprites ---------------------------------------------------

func renderSprite(style config.SpriteStyle) (*ebiten.Image, error) {
	body, err := config.ParseColor(style.Color)
	if err != nil {
		return nil, err
	}
	accent := color.RGBA(colornames.White)
	if style.Accent != "" {
		if accent, err = config.ParseColor(style.Accent); err != nil {
			return nil, err
		}
	}

	img := ebiten.NewImage(spriteSize, spriteSize)
	switch style.Shape {
	case config.ShapeCar:
		drawCar(img, body, accent)
	case config.ShapeBox:
		drawVan(img, body, accent)
	case config.ShapeDisc:
		drawDisc(img, body, accent)
	case config.ShapeBolt:
		drawBolt(img, body, accent)
	case config.ShapeHeart:
		drawHeart(img, body)
	default:
		return nil, fmt.Errorf("unknown shape %q", style.Shape)
	}
	return img, nil
}

// drawWheels 四个车轮
func drawWheels(img *ebiten.Image, left, right float32) {
	for _, y := range []float32{10, 42} {
		vector.DrawFilledRect(img, left, y, 5, 12, colornames.Black, false)
		vector.DrawFilledRect(img, right, y, 5, 12, colornames.Black, false)
	}
}

// drawCar 俯视跑车：车身、前后挡风玻璃
func drawCar(img *ebiten.Image, body, accent color.RGBA) {
	drawWheels(img, 8, 51)
	vector.DrawFilledRect(img, 12, 4, 40, 56, body, false)
	vector.DrawFilledRect(img, 16, 14, 32, 10, accent, false)
	vector.DrawFilledRect(img, 16, 46, 32, 6, accent, false)
}

// drawVan 方头车辆（警车、出租车、救护车），车顶带灯条
func drawVan(img *ebiten.Image, body, accent color.RGBA) {
	drawWheels(img, 6, 53)
	vector.DrawFilledRect(img, 10, 2, 44, 60, body, false)
	vector.DrawFilledRect(img, 14, 8, 36, 8, colornames.Lightsteelblue, false)
	vector.DrawFilledRect(img, 14, 28, 36, 8, accent, false)
}

// drawDisc 护盾
func drawDisc(img *ebiten.Image, body, accent color.RGBA) {
	vector.DrawFilledCircle(img, spriteSize/2, spriteSize/2, 28, body, true)
	vector.StrokeCircle(img, spriteSize/2, spriteSize/2, 20, 4, accent, true)
}

// drawBolt 闪电（加速）
func drawBolt(img *ebiten.Image, body, accent color.RGBA) {
	points := [][2]float32{{40, 4}, {20, 34}, {44, 30}, {24, 60}}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(img, a[0], a[1], b[0], b[1], 10, accent, true)
		vector.StrokeLine(img, a[0], a[1], b[0], b[1], 6, body, true)
	}
}

// drawHeart 两个圆加一个倒三角，三角按行填充
func drawHeart(img *ebiten.Image, body color.RGBA) {
	vector.DrawFilledCircle(img, 20, 22, 13, body, true)
	vector.DrawFilledCircle(img, 44, 22, 13, body, true)
	const top, bottom, halfWidth = 24, 58, 25
	for y := top; y < bottom; y++ {
		hw := float32(halfWidth * (bottom - y) / (bottom - top))
		vector.DrawFilledRect(img, spriteSize/2-hw, float32(y), 2*hw, 1, body, false)
	}
}
