package systems

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
	"github.com/decker502/laneracer/pkg/entities"
)

// SpawnSystem 按概率生成障碍物和道具
//
// 概率按 tick 计算（60 TPS），不是按秒；
// 所有随机数都来自同一个共享随机源，给定种子即可复现。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
	catalog       *config.Catalog
	rng           *rand.Rand
	logger        *log.Logger
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, tuning *config.Tuning, catalog *config.Catalog, rng *rand.Rand, logger *log.Logger) *SpawnSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &SpawnSystem{
		entityManager: em,
		tuning:        tuning,
		catalog:       catalog,
		rng:           rng,
		logger:        logger,
	}
}

// Update 每 tick 独立地掷一次障碍物和一次道具
func (s *SpawnSystem) Update(deltaTime float64) {
	// 先掷骰再检查数量上限，每 tick 消耗的随机数个数固定
	if s.rng.Float64() < s.tuning.Obstacle.SpawnChance &&
		ecs.CountWith1[*components.ObstacleComponent](s.entityManager) < s.tuning.Obstacle.MaxActive {
		s.SpawnObstacle()
	}

	if s.rng.Float64() < s.tuning.PowerUp.SpawnChance {
		s.SpawnPowerUp()
	}
}

// SpawnObstacle 立即生成一个随机障碍物
func (s *SpawnSystem) SpawnObstacle() ecs.EntityID {
	sprites := s.catalog.ObstacleSprites
	sprite := sprites[s.rng.IntN(len(sprites))]
	x := s.randomX(s.tuning.Obstacle.Width)
	speed := float64(s.tuning.Obstacle.MinSpeed + s.rng.IntN(s.tuning.Obstacle.MaxSpeed-s.tuning.Obstacle.MinSpeed+1))

	id := entities.NewObstacleEntity(s.entityManager, s.tuning, x, speed, sprite)
	s.logger.Debug("spawned obstacle", "id", id, "sprite", sprite, "x", x, "speed", speed)
	return id
}

// SpawnPowerUp 立即生成一个随机道具，类型均匀分布
func (s *SpawnSystem) SpawnPowerUp() ecs.EntityID {
	kind := components.PowerUpKind(s.rng.IntN(int(components.PowerUpKindCount)))
	x := s.randomX(s.tuning.PowerUp.Size)

	id := entities.NewPowerUpEntity(s.entityManager, s.tuning, x, kind, s.catalog.PowerUpSprites[kind.String()])
	s.logger.Debug("spawned power-up", "id", id, "kind", kind, "x", x)
	return id
}

// randomX 在赛道内均匀选择左边缘的整数坐标，保证宽度为 width 的实体完全在赛道内
func (s *SpawnSystem) randomX(width float64) float64 {
	lo := int(s.tuning.TrackLeft())
	hi := int(s.tuning.TrackRight() - width)
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + s.rng.IntN(hi-lo+1))
}
