package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

func TestCarMovesBySpeed(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewCarControlSystem(em, tuning)
	_, car, pos := spawnTestCar(t, em, tuning)
	startX := pos.X

	sys.Update(ControlInput{Left: true}, dt)
	assert.Equal(t, startX-car.Speed, pos.X)

	sys.Update(ControlInput{Right: true}, dt)
	sys.Update(ControlInput{Right: true}, dt)
	assert.Equal(t, startX+car.Speed, pos.X)

	// 左右同时按下互相抵消
	sys.Update(ControlInput{Left: true, Right: true}, dt)
	assert.Equal(t, startX+car.Speed, pos.X)
}

func TestCarClampedToTrack(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewCarControlSystem(em, tuning)
	_, _, pos := spawnTestCar(t, em, tuning)

	for i := 0; i < 200; i++ {
		sys.Update(ControlInput{Left: true}, dt)
	}
	assert.Equal(t, tuning.TrackLeft(), pos.X)

	for i := 0; i < 200; i++ {
		sys.Update(ControlInput{Right: true}, dt)
	}
	assert.Equal(t, tuning.TrackRight()-tuning.Car.Width, pos.X)
}

func TestCarSpinCompletesIntoInvulnerability(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewCarControlSystem(em, tuning)
	_, car, pos := spawnTestCar(t, em, tuning)
	startX := pos.X

	assert.True(t, car.Hit())
	assert.Equal(t, tuning.Car.StartLives-1, car.Lives)

	// 360 / 10 = 36 tick 完成一圈，期间不能移动
	for i := 1; i < 36; i++ {
		sys.Update(ControlInput{Left: true}, dt)
		assert.True(t, car.Spinning, "tick %d", i)
		assert.Equal(t, float64(i*10), car.SpinAngle)
		assert.False(t, car.Invulnerable)
	}
	assert.Equal(t, startX, pos.X)

	sys.Update(ControlInput{}, dt)
	assert.False(t, car.Spinning)
	assert.Zero(t, car.SpinAngle)
	assert.True(t, car.Invulnerable)
	assert.Equal(t, 60, car.InvulnerableTimer)

	for i := 0; i < 59; i++ {
		sys.Update(ControlInput{}, dt)
	}
	assert.True(t, car.Invulnerable)
	assert.Equal(t, 1, car.InvulnerableTimer)

	sys.Update(ControlInput{}, dt)
	assert.False(t, car.Invulnerable)
	assert.Zero(t, car.InvulnerableTimer)
}

func TestCarHitIgnoredWhileProtected(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	_, car, _ := spawnTestCar(t, em, tuning)

	car.GrantInvulnerability(10)
	assert.False(t, car.Hit())
	assert.Equal(t, tuning.Car.StartLives, car.Lives)

	car.Invulnerable = false
	assert.True(t, car.Hit())
	assert.False(t, car.Hit(), "second hit during spin must be ignored")
	assert.Equal(t, tuning.Car.StartLives-1, car.Lives)
}

func TestShieldDuringSpinAppliedAfterSpin(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	sys := NewCarControlSystem(em, tuning)
	_, car, _ := spawnTestCar(t, em, tuning)

	car.Hit()
	sys.Update(ControlInput{}, dt)
	ApplyPowerUp(car, components.PowerUpShield, tuning)

	assert.True(t, car.Spinning)
	assert.False(t, car.Invulnerable, "spinning and invulnerable are exclusive")
	assert.Equal(t, tuning.PowerUp.ShieldTicks, car.PendingShield)

	for car.Spinning {
		sys.Update(ControlInput{}, dt)
	}
	assert.True(t, car.Invulnerable)
	assert.Equal(t, tuning.PowerUp.ShieldTicks, car.InvulnerableTimer)
	assert.Zero(t, car.PendingShield)
}
