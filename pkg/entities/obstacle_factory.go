package entities

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// NewObstacleEntity 在屏幕上方创建障碍物，x 为左边缘
func NewObstacleEntity(em *ecs.EntityManager, tuning *config.Tuning, x, speed float64, spriteID string) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: -tuning.Obstacle.Height})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  tuning.Obstacle.Width,
		Height: tuning.Obstacle.Height,
	})
	ecs.AddComponent(em, id, &components.ObstacleComponent{Speed: speed})
	ecs.AddComponent(em, id, &components.SpriteComponent{ID: spriteID})

	return id
}
