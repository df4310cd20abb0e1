package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"partial", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"disjoint", Rect{X: 50, Y: 50, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestBoundsAppliesOffset(t *testing.T) {
	r := Bounds(&PositionComponent{X: 100, Y: 50}, &CollisionComponent{Width: 70, Height: 30, OffsetX: 5, OffsetY: -5})
	assert.Equal(t, Rect{X: 105, Y: 45, Width: 70, Height: 30}, r)
	assert.Equal(t, 175.0, r.Right())
	assert.Equal(t, 75.0, r.Bottom())
	assert.Equal(t, 140.0, r.CenterX())
}

func TestCarHit(t *testing.T) {
	car := &CarComponent{Lives: 3, Speed: 5}

	assert.True(t, car.Hit())
	assert.Equal(t, 2, car.Lives)
	assert.True(t, car.Spinning)
	assert.Zero(t, car.SpinAngle)

	// 旋转期间免疫
	assert.False(t, car.Hit())
	assert.Equal(t, 2, car.Lives)
}

func TestCarHitWhileInvulnerable(t *testing.T) {
	car := &CarComponent{Lives: 3, Invulnerable: true, InvulnerableTimer: 10}

	assert.False(t, car.Hit())
	assert.Equal(t, 3, car.Lives)
	assert.False(t, car.Spinning)
}

func TestCarDestroyed(t *testing.T) {
	car := &CarComponent{Lives: 1}
	assert.False(t, car.Destroyed())
	car.Hit()
	assert.True(t, car.Destroyed())
}

func TestGrantInvulnerability(t *testing.T) {
	car := &CarComponent{Lives: 3}
	car.GrantInvulnerability(300)
	assert.True(t, car.Invulnerable)
	assert.Equal(t, 300, car.InvulnerableTimer)

	// 更短的窗口不会缩短已有无敌
	car.GrantInvulnerability(60)
	assert.Equal(t, 300, car.InvulnerableTimer)
}

func TestGrantInvulnerabilityWhileSpinning(t *testing.T) {
	car := &CarComponent{Lives: 3, Spinning: true}
	car.GrantInvulnerability(300)

	assert.False(t, car.Invulnerable)
	assert.Equal(t, 300, car.PendingShield)
}

func TestPowerUpKindString(t *testing.T) {
	assert.Equal(t, "shield", PowerUpShield.String())
	assert.Equal(t, "speed", PowerUpSpeedBoost.String())
	assert.Equal(t, "life", PowerUpExtraLife.String())
	assert.Equal(t, "unknown", PowerUpKindCount.String())
	assert.False(t, PowerUpKindCount.Valid())
	assert.True(t, PowerUpExtraLife.Valid())
}
