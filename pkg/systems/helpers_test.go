package systems

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
	"github.com/decker502/laneracer/pkg/entities"
)

const dt = 1.0 / config.TicksPerSecond

// testCatalog 最小可用的资源目录
func testCatalog() *config.Catalog {
	return &config.Catalog{
		Cars: []config.CarEntry{
			{Name: "Black Viper", Sprite: "black_viper", Speed: 6},
			{Name: "Red Car", Sprite: "red_car", Speed: 5},
		},
		ObstacleSprites: []string{"police", "taxi", "ambulance"},
		PowerUpSprites:  map[string]string{"shield": "shield", "speed": "speed", "life": "heart"},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

// spawnTestCar 在默认位置创建车辆并返回其组件
func spawnTestCar(t *testing.T, em *ecs.EntityManager, tuning *config.Tuning) (ecs.EntityID, *components.CarComponent, *components.PositionComponent) {
	t.Helper()
	id, err := entities.NewCarEntity(em, tuning, testCatalog().Cars[0], 0)
	require.NoError(t, err)

	car, ok := ecs.GetComponent[*components.CarComponent](em, id)
	require.True(t, ok)
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	return id, car, pos
}
