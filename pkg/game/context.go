package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/decker502/laneracer/internal/randutil"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/systems"
)

// Context 一局游戏的外部依赖，显式传给 NewGameState
//
// 不使用任何进程级全局状态：屏幕、音效、随机源都从这里注入。
type Context struct {
	Tuning  *config.Tuning
	Catalog *config.Catalog
	// Rand 唯一的共享随机源，为空时使用时间种子
	Rand *rand.Rand
	// Sound 音效输出，为空时静音
	Sound systems.SoundPlayer
	// Settings 用于记住上次选择的车辆，可为空
	Settings *SettingsManager
	Logger   *log.Logger
}

// withDefaults 校验必填项并补全可选项
func (c Context) withDefaults() (Context, error) {
	if c.Tuning == nil {
		return c, fmt.Errorf("tuning cannot be nil")
	}
	if c.Catalog == nil || len(c.Catalog.Cars) == 0 {
		return c, fmt.Errorf("catalog must contain at least one car")
	}
	if len(c.Catalog.ObstacleSprites) == 0 {
		return c, fmt.Errorf("catalog must contain at least one obstacle sprite")
	}
	if c.Rand == nil {
		c.Rand = randutil.New(randutil.Seed())
	}
	if c.Sound == nil {
		c.Sound = systems.NopSoundPlayer{}
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c, nil
}
