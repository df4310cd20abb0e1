package systems

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// RoadLineSystem 滚动路面中线，越过底部后回到顶部
type RoadLineSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
}

// NewRoadLineSystem 创建路面中线系统
func NewRoadLineSystem(em *ecs.EntityManager, tuning *config.Tuning) *RoadLineSystem {
	return &RoadLineSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 推进一个 tick
func (s *RoadLineSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.RoadLineComponent, *components.PositionComponent](s.entityManager) {
		line, _ := ecs.GetComponent[*components.RoadLineComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.Y += line.Speed
		if pos.Y > s.tuning.Window.Height {
			pos.Y = line.WrapY
		}
	}
}
