package systems

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// MotionSystem 让障碍物和道具向下滚动，并回收离开屏幕的实体
//
// 上边缘越过屏幕底部的实体会被标记删除，这是除拾取/撞击之外唯一的移除途径。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager, tuning *config.Tuning) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 推进一个 tick
func (s *MotionSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.PositionComponent](s.entityManager) {
		obstacle, _ := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.advance(id, pos, obstacle.Speed)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.PositionComponent](s.entityManager) {
		powerUp, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.advance(id, pos, powerUp.Speed)
	}
}

func (s *MotionSystem) advance(id ecs.EntityID, pos *components.PositionComponent, speed float64) {
	pos.Y += speed
	if pos.Y > s.tuning.Window.Height {
		s.entityManager.DestroyEntity(id)
	}
}
