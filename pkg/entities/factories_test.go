package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

func TestNewCarEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	id, err := NewCarEntity(em, tuning, config.CarEntry{Name: "Red Car", Sprite: "red_car", Speed: 5}, 1)
	require.NoError(t, err)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	require.True(t, ok)

	// 车辆中心位于 (400, 500)
	bounds := components.Bounds(pos, col)
	assert.Equal(t, 400.0, bounds.CenterX())
	assert.Equal(t, 500.0, bounds.CenterY())

	car, ok := ecs.GetComponent[*components.CarComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 3, car.Lives)
	assert.Equal(t, 5.0, car.Speed)
	assert.Equal(t, 1, car.CatalogIndex)
	assert.False(t, car.Spinning)
	assert.False(t, car.Invulnerable)

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, "red_car", sprite.ID)
}

func TestNewCarEntityNilArgs(t *testing.T) {
	_, err := NewCarEntity(nil, config.DefaultTuning(), config.CarEntry{}, 0)
	assert.Error(t, err)
	_, err = NewCarEntity(ecs.NewEntityManager(), nil, config.CarEntry{}, 0)
	assert.Error(t, err)
}

func TestNewObstacleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	id := NewObstacleEntity(em, tuning, 250, 6, "taxi")

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	assert.Equal(t, 250.0, pos.X)
	assert.Equal(t, -70.0, pos.Y, "obstacle starts fully above the screen")

	obs, ok := ecs.GetComponent[*components.ObstacleComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 6.0, obs.Speed)
}

func TestNewPowerUpEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	id := NewPowerUpEntity(em, tuning, 300, components.PowerUpExtraLife, "heart")

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	assert.Equal(t, -30.0, pos.Y)

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	assert.Equal(t, 30.0, col.Width)
	assert.Equal(t, 30.0, col.Height)

	pu, ok := ecs.GetComponent[*components.PowerUpComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, components.PowerUpExtraLife, pu.Kind)
	assert.Equal(t, 3.0, pu.Speed)
}

func TestNewRoadLines(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	ids := NewRoadLines(em, tuning)
	require.Len(t, ids, 10)

	for i, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		require.True(t, ok)
		assert.Equal(t, float64(i*100), pos.Y)
		assert.Equal(t, 395.0, pos.X)
	}
}
