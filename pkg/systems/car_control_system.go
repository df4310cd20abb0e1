package systems

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// ControlInput 车辆操控输入（当前 tick 的按键保持状态）
type ControlInput struct {
	Left  bool
	Right bool
}

// CarControlSystem 车辆状态机：移动、受击旋转、无敌倒计时
type CarControlSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
}

// NewCarControlSystem 创建车辆控制系统
func NewCarControlSystem(em *ecs.EntityManager, tuning *config.Tuning) *CarControlSystem {
	return &CarControlSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 推进所有车辆一个 tick
//
// 顺序：
//  1. 无敌倒计时（先执行，保证本 tick 新获得的无敌窗口在 tick 结束时仍是满值）
//  2. 旋转中：角度递增，满一圈后转入无敌
//  3. 否则：按输入横向移动并限制在赛道内
func (s *CarControlSystem) Update(input ControlInput, deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.CarComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, id := range ids {
		car, _ := ecs.GetComponent[*components.CarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		tickInvulnerability(car)

		if car.Spinning {
			s.advanceSpin(car)
			continue
		}

		s.move(car, pos, col, input)
	}
}

func tickInvulnerability(car *components.CarComponent) {
	if !car.Invulnerable {
		return
	}
	car.InvulnerableTimer--
	if car.InvulnerableTimer <= 0 {
		car.InvulnerableTimer = 0
		car.Invulnerable = false
	}
}

func (s *CarControlSystem) advanceSpin(car *components.CarComponent) {
	car.SpinAngle += s.tuning.Car.SpinStep
	if car.SpinAngle < 360 {
		return
	}

	car.SpinAngle = 0
	car.Spinning = false

	ticks := s.tuning.Car.SpinInvTicks
	if car.PendingShield > ticks {
		ticks = car.PendingShield
	}
	car.PendingShield = 0
	if ticks > 0 {
		car.Invulnerable = true
		car.InvulnerableTimer = ticks
	}
}

func (s *CarControlSystem) move(car *components.CarComponent, pos *components.PositionComponent, col *components.CollisionComponent, input ControlInput) {
	if input.Left {
		pos.X -= car.Speed
	}
	if input.Right {
		pos.X += car.Speed
	}

	// 碰撞盒必须完全位于赛道内
	minX := s.tuning.TrackLeft() - col.OffsetX
	maxX := s.tuning.TrackRight() - col.Width - col.OffsetX
	if pos.X < minX {
		pos.X = minX
	}
	if pos.X > maxX {
		pos.X = maxX
	}
}
