// Package tui 终端前端：用 Bubble Tea 驱动同一个 GameState
//
// 每 1/60 秒一个 tickMsg 推进一次模拟，画面按字符网格缩放绘制。
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/game"
	"github.com/decker502/laneracer/pkg/systems"
)

// steerHoldTicks 一次方向键按下后保持转向的 tick 数
// 需覆盖终端按键重复的间隔，否则长按时车辆会一顿一顿地移动
const steerHoldTicks = 15

// tickMsg 驱动一次模拟步进
type tickMsg time.Time

// Options 终端前端配置
type Options struct {
	// Clock 无敌闪烁和 tick 计时使用的时钟，为空时使用真实时钟
	Clock quartz.Clock
	// Cols / Rows 网格尺寸，为 0 时使用默认值
	Cols, Rows int
	Logger     *log.Logger
}

// Model 终端前端的 Bubble Tea 模型
type Model struct {
	gameState *game.GameState
	clock     quartz.Clock
	logger    *log.Logger

	keys keyMap
	help help.Model

	// 下一个 tick 要消费的离散输入
	pending game.Input
	// 转向保持：方向 -1/+1 与剩余 tick
	steer      int
	steerTicks int

	cols, rows int
	quitting   bool
}

// New 创建终端前端模型
func New(gs *game.GameState, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}

	return &Model{
		gameState: gs,
		clock:     opts.Clock,
		logger:    opts.Logger.WithPrefix("tui"),
		keys:      defaultKeyMap(),
		help:      help.New(),
		cols:      opts.Cols,
		rows:      opts.Rows,
	}
}

// Init 启动 tick 循环
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/config.TicksPerSecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update 处理按键和 tick
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.Step()
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	phase := m.gameState.Phase()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit requested", "phase", phase, "score", m.gameState.Score())
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		if phase == game.PhaseMenu {
			m.pending.SelectPrev = true
		} else {
			m.holdSteer(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if phase == game.PhaseMenu {
			m.pending.SelectNext = true
		} else {
			m.holdSteer(1)
		}
	case key.Matches(msg, m.keys.Confirm):
		m.pending.Confirm = true
	case key.Matches(msg, m.keys.Pause):
		m.pending.PauseToggle = true
	case key.Matches(msg, m.keys.Restart):
		m.pending.Restart = true
	}
	return nil
}

func (m *Model) holdSteer(dir int) {
	m.steer = dir
	m.steerTicks = steerHoldTicks
}

// Step 把累积的输入交给 GameState 推进一个 tick
func (m *Model) Step() {
	in := m.pending
	m.pending = game.Input{}

	if m.steerTicks > 0 {
		in.Left = m.steer < 0
		in.Right = m.steer > 0
		m.steerTicks--
	}

	before := m.gameState.Phase()
	m.gameState.Update(in)

	if after := m.gameState.Phase(); after != before {
		m.logger.Debug("phase changed", "from", before, "to", after)
		if after != game.PhasePlaying {
			m.steerTicks = 0
		}
	}
}

// View 渲染标题、赛道、状态栏和帮助
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("LANE RACER"))
	b.WriteString(" ")
	b.WriteString(InfoStyle.Render(m.gameState.Phase().String()))
	b.WriteString("\n")

	b.WriteString(FrameStyle.Render(m.frame().Render()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if banner := m.banner(); banner != "" {
		b.WriteString(BannerStyle.Render(banner))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) frame() frame {
	showCar := true
	if car, ok := m.gameState.Car(); ok {
		showCar = systems.CarVisibleAt(car, m.clock.Now())
	}
	return rasterize(m.gameState.EntityManager(), m.gameState.Tuning(), m.cols, m.rows, showCar)
}

func (m *Model) statusLine() string {
	lives, speed := 0, 0.0
	if car, ok := m.gameState.Car(); ok {
		lives, speed = max(car.Lives, 0), car.Speed
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		LivesStyle.Render(fmt.Sprintf("Lives %s", strings.Repeat("♥", lives))),
		"   ",
		ScoreStyle.Render(fmt.Sprintf("Score: %d", m.gameState.Score())),
		"   ",
		InfoStyle.Render(fmt.Sprintf("Speed %.0f", speed)),
	)
}

// banner 当前阶段的提示文字
func (m *Model) banner() string {
	switch m.gameState.Phase() {
	case game.PhaseMenu:
		sel := m.gameState.Selection()
		return fmt.Sprintf("<  %s  >  (%d/%d)  press SPACE to start", sel.Current().Name, sel.Index()+1, sel.Len())
	case game.PhasePaused:
		return "Paused. Press P to resume"
	case game.PhaseGameOver:
		return fmt.Sprintf("Game Over! Press R to restart. Final score: %d", m.gameState.Score())
	}
	return ""
}
