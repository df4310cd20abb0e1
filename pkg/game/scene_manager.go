package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneMenu = "menu"
	SceneRace = "race"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
	quit         bool
	logger       *log.Logger
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager(logger *log.Logger) *SceneManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SceneManager{
		logger: logger.WithPrefix("SceneManager"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// LoadScene 通过工厂按名称创建并切换场景
// 已处于同名场景时不重建
func (sm *SceneManager) LoadScene(name string) {
	if name == sm.currentName && sm.currentScene != nil {
		return
	}
	if sm.sceneFactory == nil {
		sm.logger.Error("scene factory not set", "scene", name)
		return
	}

	scene := sm.sceneFactory(name)
	if scene == nil {
		sm.logger.Error("unknown scene", "scene", name)
		return
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	sm.logger.Debug("switched scene", "scene", name)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 当前场景名称（通过 LoadScene 切换时有效）
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// RequestQuit 请求退出程序，由 App 在下一次 Update 时处理
func (sm *SceneManager) RequestQuit() {
	sm.quit = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quit
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
