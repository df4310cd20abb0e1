package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 逻辑屏幕尺寸（与 Layout 返回值一致）
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// TicksPerSecond 模拟频率
// 所有概率、速度和计时器都以"每 tick"为单位，改变 TPS 会改变游戏手感
const TicksPerSecond = 60

// Tuning 游戏玩法调参配置
//
// 所有数值以像素和 tick 为单位。
//
// 配置文件位置: data/tuning.yaml
type Tuning struct {
	Window   WindowTuning   `yaml:"window"`
	Track    TrackTuning    `yaml:"track"`
	Car      CarTuning      `yaml:"car"`
	Obstacle ObstacleTuning `yaml:"obstacle"`
	PowerUp  PowerUpTuning  `yaml:"powerUp"`
	Score    ScoreTuning    `yaml:"score"`
	Road     RoadTuning     `yaml:"road"`
}

// WindowTuning 屏幕尺寸
type WindowTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TrackTuning 赛道边界，左右各留 Margin 像素
type TrackTuning struct {
	Margin float64 `yaml:"margin"`
}

// CarTuning 玩家车辆参数
type CarTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottomOffset"` // 车辆中心距屏幕底部的距离
	StartLives   int     `yaml:"startLives"`
	SpinStep     float64 `yaml:"spinStep"`     // 每 tick 旋转角度
	SpinInvTicks int     `yaml:"spinInvTicks"` // 旋转结束后的无敌帧数
}

// ObstacleTuning 障碍物参数
type ObstacleTuning struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnChance float64 `yaml:"spawnChance"` // 每 tick 生成概率
	MaxActive   int     `yaml:"maxActive"`
	MinSpeed    int     `yaml:"minSpeed"`
	MaxSpeed    int     `yaml:"maxSpeed"` // 闭区间
}

// PowerUpTuning 道具参数
type PowerUpTuning struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawnChance"`
	Speed       float64 `yaml:"speed"`
	ShieldTicks int     `yaml:"shieldTicks"`
	SpeedBoost  float64 `yaml:"speedBoost"`
	MaxSpeed    float64 `yaml:"maxSpeed"` // 0 表示不设上限
}

// ScoreTuning 计分策略：每 TicksPerPoint 个游戏 tick 加 Points 分
type ScoreTuning struct {
	TicksPerPoint int `yaml:"ticksPerPoint"`
	Points        int `yaml:"points"`
}

// RoadTuning 路面中线（纯装饰）
type RoadTuning struct {
	LineCount   int     `yaml:"lineCount"`
	LineSpacing float64 `yaml:"lineSpacing"`
	LineSpeed   float64 `yaml:"lineSpeed"`
	LineWidth   float64 `yaml:"lineWidth"`
	LineHeight  float64 `yaml:"lineHeight"`
	WrapY       float64 `yaml:"wrapY"`
}

// DefaultTuning 返回与 data/tuning.yaml 一致的默认配置
func DefaultTuning() *Tuning {
	return &Tuning{
		Window: WindowTuning{Width: GameWindowWidth, Height: GameWindowHeight},
		Track:  TrackTuning{Margin: 100},
		Car: CarTuning{
			Width:        70,
			Height:       70,
			BottomOffset: 100,
			StartLives:   3,
			SpinStep:     10,
			SpinInvTicks: 60,
		},
		Obstacle: ObstacleTuning{
			Width:       70,
			Height:      70,
			SpawnChance: 0.02,
			MaxActive:   5,
			MinSpeed:    3,
			MaxSpeed:    7,
		},
		PowerUp: PowerUpTuning{
			Size:        30,
			SpawnChance: 0.01,
			Speed:       3,
			ShieldTicks: 300,
			SpeedBoost:  2,
			MaxSpeed:    15,
		},
		Score: ScoreTuning{TicksPerPoint: TicksPerSecond, Points: 1},
		Road: RoadTuning{
			LineCount:   10,
			LineSpacing: 100,
			LineSpeed:   5,
			LineWidth:   10,
			LineHeight:  30,
			WrapY:       -30,
		},
	}
}

// TrackLeft 赛道左边界 X
func (t *Tuning) TrackLeft() float64 {
	return t.Track.Margin
}

// TrackRight 赛道右边界 X
func (t *Tuning) TrackRight() float64 {
	return t.Window.Width - t.Track.Margin
}

// LoadTuning 从 YAML 文件加载调参配置
func LoadTuning(filePath string) (*Tuning, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning 解析 YAML 调参配置
// 文件中缺省的字段保留 DefaultTuning 的值
func ParseTuning(data []byte) (*Tuning, error) {
	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(tuning); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return tuning, nil
}

// validateTuning 验证配置的有效性
func validateTuning(t *Tuning) error {
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", t.Window.Width, t.Window.Height)
	}
	if t.Track.Margin < 0 {
		return fmt.Errorf("track.margin must be >= 0, got %v", t.Track.Margin)
	}

	trackWidth := t.TrackRight() - t.TrackLeft()
	if t.Car.Width <= 0 || t.Car.Height <= 0 {
		return fmt.Errorf("car size must be positive")
	}
	if t.Car.Width > trackWidth {
		return fmt.Errorf("car.width %v does not fit track width %v", t.Car.Width, trackWidth)
	}
	if t.Car.StartLives < 1 {
		return fmt.Errorf("car.startLives must be >= 1, got %d", t.Car.StartLives)
	}
	if t.Car.SpinStep <= 0 {
		return fmt.Errorf("car.spinStep must be > 0, got %v", t.Car.SpinStep)
	}
	if t.Car.SpinInvTicks < 0 {
		return fmt.Errorf("car.spinInvTicks must be >= 0, got %d", t.Car.SpinInvTicks)
	}

	if t.Obstacle.Width <= 0 || t.Obstacle.Width > trackWidth {
		return fmt.Errorf("obstacle.width must be in (0, %v], got %v", trackWidth, t.Obstacle.Width)
	}
	if t.Obstacle.Height <= 0 {
		return fmt.Errorf("obstacle.height must be > 0, got %v", t.Obstacle.Height)
	}
	if err := validateChance("obstacle.spawnChance", t.Obstacle.SpawnChance); err != nil {
		return err
	}
	if t.Obstacle.MaxActive < 0 {
		return fmt.Errorf("obstacle.maxActive must be >= 0, got %d", t.Obstacle.MaxActive)
	}
	if t.Obstacle.MinSpeed <= 0 || t.Obstacle.MaxSpeed < t.Obstacle.MinSpeed {
		return fmt.Errorf("obstacle speed range invalid: [%d, %d]", t.Obstacle.MinSpeed, t.Obstacle.MaxSpeed)
	}

	if t.PowerUp.Size <= 0 || t.PowerUp.Size > trackWidth {
		return fmt.Errorf("powerUp.size must be in (0, %v], got %v", trackWidth, t.PowerUp.Size)
	}
	if err := validateChance("powerUp.spawnChance", t.PowerUp.SpawnChance); err != nil {
		return err
	}
	if t.PowerUp.Speed <= 0 {
		return fmt.Errorf("powerUp.speed must be > 0, got %v", t.PowerUp.Speed)
	}
	if t.PowerUp.ShieldTicks < 0 {
		return fmt.Errorf("powerUp.shieldTicks must be >= 0, got %d", t.PowerUp.ShieldTicks)
	}
	if t.PowerUp.MaxSpeed < 0 {
		return fmt.Errorf("powerUp.maxSpeed must be >= 0, got %v", t.PowerUp.MaxSpeed)
	}

	if t.Score.TicksPerPoint < 1 {
		return fmt.Errorf("score.ticksPerPoint must be >= 1, got %d", t.Score.TicksPerPoint)
	}
	if t.Score.Points < 0 {
		return fmt.Errorf("score.points must be >= 0, got %d", t.Score.Points)
	}

	if t.Road.LineCount < 0 {
		return fmt.Errorf("road.lineCount must be >= 0, got %d", t.Road.LineCount)
	}

	return nil
}

func validateChance(field string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %v", field, p)
	}
	return nil
}
