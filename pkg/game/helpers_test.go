package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/decker502/laneracer/internal/randutil"
	"github.com/decker502/laneracer/pkg/config"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func testCatalog() *config.Catalog {
	return &config.Catalog{
		Cars: []config.CarEntry{
			{Name: "Black Viper", Sprite: "black_viper", Speed: 6},
			{Name: "Red Car", Sprite: "red_car", Speed: 5},
			{Name: "Audi", Sprite: "audi", Speed: 7},
		},
		ObstacleSprites: []string{"police", "taxi", "ambulance"},
		PowerUpSprites:  map[string]string{"shield": "shield", "speed": "speed", "life": "heart"},
	}
}

type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

// newQuietGame 创建关闭随机生成的会话，碰撞由测试手动布置
func newQuietGame(t *testing.T) (*GameState, *recordingSound) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Obstacle.SpawnChance = 0
	tuning.PowerUp.SpawnChance = 0

	sound := &recordingSound{}
	gs, err := NewGameState(Context{
		Tuning:  tuning,
		Catalog: testCatalog(),
		Rand:    randutil.New(1),
		Sound:   sound,
		Logger:  quietLogger(),
	})
	require.NoError(t, err)
	return gs, sound
}
