package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/game"
	"github.com/decker502/laneracer/pkg/systems"
	"github.com/decker502/laneracer/pkg/utils"
)

// RaceScene 比赛画面，覆盖 Playing、Paused 和 GameOver 三个阶段
// 重开回到 Menu 阶段时切换回 MenuScene
type RaceScene struct {
	gameState    *game.GameState
	sceneManager *game.SceneManager
	renderSystem *systems.RenderSystem
	bindings     utils.KeyBindings
}

// NewRaceScene 创建比赛场景
func NewRaceScene(gs *game.GameState, sm *game.SceneManager, rs *systems.RenderSystem, bindings utils.KeyBindings) *RaceScene {
	return &RaceScene{
		gameState:    gs,
		sceneManager: sm,
		renderSystem: rs,
		bindings:     bindings,
	}
}

// Update 推进一个 tick
func (s *RaceScene) Update(dt float64) {
	in := readInput(s.bindings, s.gameState.Phase())
	if in.Quit {
		s.sceneManager.RequestQuit()
		return
	}

	s.gameState.Update(in)

	if s.gameState.Phase() == game.PhaseMenu {
		s.sceneManager.LoadScene(game.SceneMenu)
	}
}

// Draw 绘制游戏画面和阶段提示
func (s *RaceScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.gameState.Score())

	centerX := float64(config.GameWindowWidth) / 2
	centerY := float64(config.GameWindowHeight) / 2

	switch s.gameState.Phase() {
	case game.PhasePaused:
		drawOverlay(screen)
		utils.DrawCenteredText(screen, "Paused", centerX, centerY-40, 4, color.White)
		utils.DrawCenteredText(screen, "Press P to resume", centerX, centerY+20, 2, colornames.Lightgray)
	case game.PhaseGameOver:
		drawOverlay(screen)
		utils.DrawCenteredText(screen, "Game Over! Press R to restart", centerX, centerY-40, 3, colornames.Crimson)
		utils.DrawCenteredText(screen, fmt.Sprintf("Final score: %d", s.gameState.Score()), centerX, centerY+20, 2, color.White)
	}
}
