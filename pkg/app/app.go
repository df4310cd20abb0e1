// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/sync/errgroup"

	racaudio "github.com/decker502/laneracer/internal/audio"
	"github.com/decker502/laneracer/internal/randutil"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/embedded"
	"github.com/decker502/laneracer/pkg/game"
	"github.com/decker502/laneracer/pkg/scenes"
	"github.com/decker502/laneracer/pkg/systems"
	"github.com/decker502/laneracer/pkg/utils"
)

// StorageAppName gdata 存储使用的应用名
const StorageAppName = "laneracer"

// Config 定义应用启动配置
// 由命令行参数和 racer.hcl 合并而来
type Config struct {
	// Verbose 启用 debug 级别日志
	Verbose bool
	// LogLevel debug | info | warn | error
	LogLevel string
	// LogOutput 日志输出，为空时使用 stderr
	LogOutput io.Writer
	// Seed 随机种子，为空时使用时间种子
	Seed *int64
	// StartCar 菜单初始选中的车辆名称，为空时使用上次的选择
	StartCar string
	// Fullscreen 启动时全屏（与设置中的 Fullscreen 取或）
	Fullscreen bool
	// TuningFile 覆盖内置调参文件
	TuningFile string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	audioManager             *game.AudioManager
	bindings                 utils.KeyBindings
	logger                   *log.Logger
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	logger := NewLogger(cfg.LogOutput, cfg.LogLevel, cfg.Verbose)
	appLog := logger.WithPrefix("App")

	bundle, cues, err := loadAssets(cfg.TuningFile)
	if err != nil {
		return nil, err
	}
	appLog.Info("data loaded", "cars", len(bundle.Catalog.Cars), "cues", len(cues))

	// 初始化音频上下文
	audioContext := audio.NewContext(racaudio.SampleRate)

	// 创建资源管理器并生成贴图
	resourceManager := game.NewResourceManager(audioContext, bundle.Catalog)
	if err := resourceManager.LoadSprites(); err != nil {
		return nil, fmt.Errorf("贴图生成失败: %w", err)
	}
	for _, id := range config.AllSoundIDs() {
		resourceManager.RegisterCue(id, cues[id])
	}

	// 本机设置，存储不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: StorageAppName})
	if err != nil {
		appLog.Warn("settings storage unavailable, using defaults", "err", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager, logger)

	audioManager := game.NewAudioManager(resourceManager, settings, logger)
	audioManager.PreloadSounds(config.AllSoundIDs())

	seed := randutil.Seed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	appLog.Debug("random seed", "seed", seed)

	gameState, err := game.NewGameState(game.Context{
		Tuning:   bundle.Tuning,
		Catalog:  bundle.Catalog,
		Rand:     randutil.New(seed),
		Sound:    audioManager,
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏会话创建失败: %w", err)
	}

	if cfg.StartCar != "" {
		idx := bundle.Catalog.CarIndex(cfg.StartCar)
		if idx < 0 {
			appLog.Warn("unknown start car, keeping last selection", "car", cfg.StartCar)
		} else {
			gameState.SelectCar(idx)
		}
	}

	renderSystem := systems.NewRenderSystem(gameState.EntityManager(), bundle.Tuning, resourceManager, quartz.NewReal())
	bindings := utils.DefaultKeyBindings()

	// 创建场景管理器
	sceneManager := game.NewSceneManager(logger)
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneMenu:
			return scenes.NewMenuScene(gameState, sceneManager, renderSystem, settings, bindings, logger)
		case game.SceneRace:
			return scenes.NewRaceScene(gameState, sceneManager, renderSystem, bindings)
		}
		return nil
	})
	sceneManager.LoadScene(game.SceneMenu)

	if cfg.Fullscreen || settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		audioManager: audioManager,
		bindings:     bindings,
		logger:       appLog,
	}, nil
}

// loadAssets 并行加载数据文件并合成全部音效
func loadAssets(tuningFile string) (*config.Bundle, map[string][]byte, error) {
	var (
		bundle *config.Bundle
		mu     sync.Mutex
		cues   = make(map[string][]byte)
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		bundle, err = config.LoadBundle(ctx, embedded.ReadFile, tuningFile)
		if err != nil {
			return fmt.Errorf("数据加载失败: %w", err)
		}
		return nil
	})

	for _, id := range config.AllSoundIDs() {
		g.Go(func() error {
			pcm, err := racaudio.Synthesize(id)
			if err != nil {
				return fmt.Errorf("音效合成失败: %w", err)
			}
			mu.Lock()
			cues[id] = pcm
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return bundle, cues, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出键或关闭窗口（main 中启用了 SetWindowClosingHandled）
	if a.sceneManager.QuitRequested() || ebiten.IsWindowBeingClosed() {
		a.saveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.logger.Debug("delayed window size reset", "width", config.GameWindowWidth, "height", config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// 音效开关与音量
	volumeStep := 0.0
	if utils.AnyJustPressed(a.bindings.VolumeDown) {
		volumeStep -= volumeKeyStep
	}
	if utils.AnyJustPressed(a.bindings.VolumeUp) {
		volumeStep += volumeKeyStep
	}
	a.applyAudioControls(utils.AnyJustPressed(a.bindings.Mute), volumeStep)

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save fullscreen setting", "err", err)
	}
}

// volumeKeyStep 每次按下音量键的调节幅度
const volumeKeyStep = 0.1

// applyAudioControls 处理静音切换和音量调节，有变化时立即持久化
//
// 参数：
//   - mute: 是否切换音效开关
//   - volumeStep: 音量增量，0 表示不调节
func (a *App) applyAudioControls(mute bool, volumeStep float64) {
	if !mute && volumeStep == 0 {
		return
	}
	if mute {
		enabled := a.audioManager.ToggleSound()
		a.logger.Debug("sound toggled", "enabled", enabled)
	}
	if volumeStep != 0 {
		a.audioManager.SetSoundVolume(a.audioManager.GetSoundVolume() + volumeStep)
		a.logger.Debug("sound volume changed", "volume", a.audioManager.GetSoundVolume())
	}
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save audio settings", "err", err)
	}
}

// saveOnExit 退出前让当前场景保存状态
func (a *App) saveOnExit() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		s.SaveOnExit()
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
