package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// CollisionSystem 处理车辆与道具、障碍物的碰撞
//
// 道具：所有重叠的道具都会被拾取并生效。
// 障碍物：仅在车辆未旋转时检测；伤害生效时销毁该障碍物，生命耗尽时立即回调。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
	sound         SoundPlayer
	logger        *log.Logger

	onLivesDepleted func()
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - tuning: 调参配置（道具效果数值）
//   - sound: 音效输出，可为 nil
//   - logger: 日志，可为 nil
//   - onLivesDepleted: 车辆生命耗尽时调用（同一 tick 内）
func NewCollisionSystem(em *ecs.EntityManager, tuning *config.Tuning, sound SoundPlayer, logger *log.Logger, onLivesDepleted func()) *CollisionSystem {
	if sound == nil {
		sound = NopSoundPlayer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CollisionSystem{
		entityManager:   em,
		tuning:          tuning,
		sound:           sound,
		logger:          logger,
		onLivesDepleted: onLivesDepleted,
	}
}

// Update 检测一个 tick 的碰撞
func (s *CollisionSystem) Update(deltaTime float64) {
	carIDs := ecs.GetEntitiesWith3[*components.CarComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, carID := range carIDs {
		car, _ := ecs.GetComponent[*components.CarComponent](s.entityManager, carID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, carID)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, carID)
		carRect := components.Bounds(pos, col)

		s.collectPowerUps(car, carRect)

		if !car.Spinning {
			s.checkObstacles(car, carRect)
		}
	}
}

func (s *CollisionSystem) collectPowerUps(car *components.CarComponent, carRect components.Rect) {
	ids := ecs.GetEntitiesWith3[*components.PowerUpComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		rect, ok := s.bounds(id)
		if !ok || !carRect.Overlaps(rect) {
			continue
		}

		powerUp, _ := ecs.GetComponent[*components.PowerUpComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)

		if ApplyPowerUp(car, powerUp.Kind, s.tuning) {
			s.sound.PlaySound(config.SoundScore)
			s.logger.Debug("power-up collected", "kind", powerUp.Kind, "lives", car.Lives, "speed", car.Speed)
		}
	}
}

func (s *CollisionSystem) checkObstacles(car *components.CarComponent, carRect components.Rect) {
	ids := ecs.GetEntitiesWith3[*components.ObstacleComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		rect, ok := s.bounds(id)
		if !ok || !carRect.Overlaps(rect) {
			continue
		}
		if !car.Hit() {
			continue
		}

		s.sound.PlaySound(config.SoundCrash)
		s.entityManager.DestroyEntity(id)
		s.logger.Debug("car hit obstacle", "obstacle", id, "lives", car.Lives)

		if car.Destroyed() && s.onLivesDepleted != nil {
			s.onLivesDepleted()
		}
	}
}

func (s *CollisionSystem) bounds(id ecs.EntityID) (components.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return components.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return components.Rect{}, false
	}
	return components.Bounds(pos, col), true
}
