package systems

import (
	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
)

type powerUpEffect func(car *components.CarComponent, tuning *config.Tuning)

// powerUpEffects 道具类型 -> 效果
// 数组长度由 PowerUpKindCount 决定，新增类型而漏配效果会被测试发现
var powerUpEffects = [components.PowerUpKindCount]powerUpEffect{
	components.PowerUpShield:     applyShield,
	components.PowerUpSpeedBoost: applySpeedBoost,
	components.PowerUpExtraLife:  applyExtraLife,
}

// ApplyPowerUp 对车辆施加道具效果，未知类型返回 false
func ApplyPowerUp(car *components.CarComponent, kind components.PowerUpKind, tuning *config.Tuning) bool {
	if !kind.Valid() {
		return false
	}
	effect := powerUpEffects[kind]
	if effect == nil {
		return false
	}
	effect(car, tuning)
	return true
}

func applyShield(car *components.CarComponent, tuning *config.Tuning) {
	car.GrantInvulnerability(tuning.PowerUp.ShieldTicks)
}

// applySpeedBoost 永久加速，可叠加；MaxSpeed > 0 时封顶，但不会把已超过上限的速度降下来
func applySpeedBoost(car *components.CarComponent, tuning *config.Tuning) {
	speed := car.Speed + tuning.PowerUp.SpeedBoost
	if limit := tuning.PowerUp.MaxSpeed; limit > 0 && speed > limit {
		speed = max(car.Speed, limit)
	}
	car.Speed = speed
}

func applyExtraLife(car *components.CarComponent, tuning *config.Tuning) {
	car.Lives++
}
