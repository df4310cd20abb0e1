package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/laneracer/pkg/game"
)

func TestMergeTouchMenu(t *testing.T) {
	assert.True(t, mergeTouch(game.Input{}, game.PhaseMenu, false, 0, true, 50).SelectPrev)
	assert.True(t, mergeTouch(game.Input{}, game.PhaseMenu, false, 0, true, 700).SelectNext)
	assert.True(t, mergeTouch(game.Input{}, game.PhaseMenu, false, 0, true, 400).Confirm)
	assert.Equal(t, game.Input{}, mergeTouch(game.Input{}, game.PhaseMenu, true, 400, false, 0))
}

func TestMergeTouchPlayingSteers(t *testing.T) {
	in := mergeTouch(game.Input{}, game.PhasePlaying, true, 100, false, 0)
	assert.True(t, in.Left)
	assert.False(t, in.Right)

	in = mergeTouch(game.Input{}, game.PhasePlaying, true, 600, true, 600)
	assert.True(t, in.Right)
	assert.False(t, in.Confirm, "taps do not confirm while racing")
}

func TestMergeTouchKeepsKeyboard(t *testing.T) {
	in := mergeTouch(game.Input{Left: true, Quit: true}, game.PhasePlaying, false, 0, false, 0)
	assert.True(t, in.Left)
	assert.True(t, in.Quit)
}

func TestMergeTouchPausedAndGameOver(t *testing.T) {
	assert.True(t, mergeTouch(game.Input{}, game.PhasePaused, false, 0, true, 10).PauseToggle)
	assert.True(t, mergeTouch(game.Input{}, game.PhaseGameOver, false, 0, true, 10).Restart)
}
