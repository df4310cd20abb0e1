package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/laneracer/pkg/config"
)

func TestScoreOnePointPerSecond(t *testing.T) {
	sys := NewScoreSystem(config.DefaultTuning())

	for i := 0; i < 59; i++ {
		sys.Update(dt)
	}
	assert.Zero(t, sys.Score())

	sys.Update(dt)
	assert.Equal(t, 1, sys.Score())

	for i := 0; i < 120; i++ {
		sys.Update(dt)
	}
	assert.Equal(t, 3, sys.Score())
	assert.Equal(t, 180, sys.Ticks())

	sys.Reset()
	assert.Zero(t, sys.Score())
	assert.Zero(t, sys.Ticks())
}

func TestScoreCustomPolicy(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Score.TicksPerPoint = 1
	tuning.Score.Points = 10
	sys := NewScoreSystem(tuning)

	sys.Update(dt)
	sys.Update(dt)
	assert.Equal(t, 20, sys.Score())
}
