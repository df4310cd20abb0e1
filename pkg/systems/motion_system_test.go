package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
	"github.com/decker502/laneracer/pkg/entities"
)

func TestMotionMovesDown(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewMotionSystem(em, tuning)

	obstacleID := entities.NewObstacleEntity(em, tuning, 200, 4, "taxi")
	powerUpID := entities.NewPowerUpEntity(em, tuning, 300, components.PowerUpExtraLife, "heart")

	sys.Update(dt)

	obstaclePos, _ := ecs.GetComponent[*components.PositionComponent](em, obstacleID)
	powerUpPos, _ := ecs.GetComponent[*components.PositionComponent](em, powerUpID)
	assert.Equal(t, -tuning.Obstacle.Height+4, obstaclePos.Y)
	assert.Equal(t, -tuning.PowerUp.Size+tuning.PowerUp.Speed, powerUpPos.Y)
	assert.Equal(t, 200.0, obstaclePos.X, "motion is vertical only")
}

func TestMotionRemovesOffscreen(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewMotionSystem(em, tuning)

	leaving := entities.NewObstacleEntity(em, tuning, 200, 5, "taxi")
	edge := entities.NewObstacleEntity(em, tuning, 400, 5, "police")
	leavingPos, _ := ecs.GetComponent[*components.PositionComponent](em, leaving)
	edgePos, _ := ecs.GetComponent[*components.PositionComponent](em, edge)
	leavingPos.Y = tuning.Window.Height - 4 // 本 tick 后 y = 601
	edgePos.Y = tuning.Window.Height - 5    // 本 tick 后 y = 600，仍保留

	sys.Update(dt)

	assert.False(t, em.IsAlive(leaving))
	assert.True(t, em.IsAlive(edge))
	assert.Equal(t, []ecs.EntityID{edge}, ecs.GetEntitiesWith1[*components.ObstacleComponent](em),
		"marked entities are excluded from queries before removal")

	em.RemoveMarkedEntities()
	assert.Zero(t, em.PendingDestroyCount())
	assert.False(t, ecs.HasComponent[*components.PositionComponent](em, leaving))
}

func TestRoadLinesWrap(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewRoadLineSystem(em, tuning)
	ids := entities.NewRoadLines(em, tuning)

	last, _ := ecs.GetComponent[*components.PositionComponent](em, ids[len(ids)-1])
	first, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	assert.Equal(t, 900.0, last.Y)

	sys.Update(dt)
	assert.Equal(t, tuning.Road.WrapY, last.Y)
	assert.Equal(t, tuning.Road.LineSpeed, first.Y)
	assert.Len(t, ecs.GetEntitiesWith1[*components.RoadLineComponent](em), tuning.Road.LineCount)
}
