package entities

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// NewRoadLines 创建赛道中线虚线段，从 y=0 起每隔 LineSpacing 一段
func NewRoadLines(em *ecs.EntityManager, tuning *config.Tuning) []ecs.EntityID {
	road := tuning.Road
	ids := make([]ecs.EntityID, 0, road.LineCount)

	for i := 0; i < road.LineCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: tuning.Window.Width/2 - road.LineWidth/2,
			Y: float64(i) * road.LineSpacing,
		})
		ecs.AddComponent(em, id, &components.RoadLineComponent{
			Speed: road.LineSpeed,
			WrapY: road.WrapY,
		})
		ids = append(ids, id)
	}

	return ids
}
