package scenes

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/game"
	"github.com/decker502/laneracer/pkg/systems"
	"github.com/decker502/laneracer/pkg/utils"
)

// 菜单中车辆预览的尺寸
const previewSize = 140

// MenuScene 选车菜单
// 左右键切换车辆，空格开始；确认后切换到 RaceScene
type MenuScene struct {
	gameState    *game.GameState
	sceneManager *game.SceneManager
	renderSystem *systems.RenderSystem
	settings     *game.SettingsManager
	bindings     utils.KeyBindings
	logger       *log.Logger
}

// NewMenuScene 创建菜单场景
//
// 参数:
//   - gs: 游戏会话
//   - sm: 场景管理器（用于切换到比赛场景和请求退出）
//   - rs: 渲染系统（赛道背景和车辆预览）
//   - settings: 退出时保存当前选择，可为 nil
//   - bindings: 键位
func NewMenuScene(gs *game.GameState, sm *game.SceneManager, rs *systems.RenderSystem, settings *game.SettingsManager, bindings utils.KeyBindings, logger *log.Logger) *MenuScene {
	if logger == nil {
		logger = log.Default()
	}
	return &MenuScene{
		gameState:    gs,
		sceneManager: sm,
		renderSystem: rs,
		settings:     settings,
		bindings:     bindings,
		logger:       logger.WithPrefix("MenuScene"),
	}
}

// Update 处理选车输入
func (s *MenuScene) Update(dt float64) {
	in := readInput(s.bindings, s.gameState.Phase())
	if in.Quit {
		s.sceneManager.RequestQuit()
		return
	}

	s.gameState.Update(in)

	if s.gameState.Phase() == game.PhasePlaying {
		s.sceneManager.LoadScene(game.SceneRace)
	}
}

// Draw 绘制赛道背景、标题、车辆预览和操作说明
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.renderSystem.DrawTrack(screen)
	drawOverlay(screen)

	centerX := float64(config.GameWindowWidth) / 2
	utils.DrawCenteredText(screen, "LANE RACER", centerX, 90, 5, colornames.Gold)

	car := s.gameState.Selection().Current()
	s.renderSystem.DrawSprite(screen, car.Sprite, components.Rect{
		X:      centerX - previewSize/2,
		Y:      200,
		Width:  previewSize,
		Height: previewSize,
	})

	utils.DrawCenteredText(screen, fmt.Sprintf("<  %s  >", car.Name), centerX, 370, 3, color.White)
	utils.DrawCenteredText(screen, fmt.Sprintf("Speed %.0f   Car %d/%d", car.Speed, s.gameState.Selection().Index()+1, s.gameState.Selection().Len()),
		centerX, 415, 2, colornames.Lightgray)

	hint := "LEFT/RIGHT choose car   SPACE start   ESC quit"
	if utils.IsMobile() {
		hint = "Tap the sides to choose, tap the middle to start"
	}
	utils.DrawCenteredText(screen, hint, centerX, 500, 1.5, colornames.Lightgray)
}

// SaveOnExit 退出时记住当前选择
func (s *MenuScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	s.settings.SetLastCar(s.gameState.Selection().Index())
	if err := s.settings.Save(); err != nil {
		s.logger.Warn("failed to save settings on exit", "err", err)
		return false
	}
	return true
}
