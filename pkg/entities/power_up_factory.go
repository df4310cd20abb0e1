package entities

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// NewPowerUpEntity 在屏幕上方创建道具，x 为左边缘
// spriteID 通常来自 Catalog.PowerUpSprites[kind.String()]
func NewPowerUpEntity(em *ecs.EntityManager, tuning *config.Tuning, x float64, kind components.PowerUpKind, spriteID string) ecs.EntityID {
	size := tuning.PowerUp.Size
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: -size})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size})
	ecs.AddComponent(em, id, &components.PowerUpComponent{Kind: kind, Speed: tuning.PowerUp.Speed})
	ecs.AddComponent(em, id, &components.SpriteComponent{ID: spriteID})

	return id
}
