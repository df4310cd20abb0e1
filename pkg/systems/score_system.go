package systems

import "github.com/decker502/laneracer/pkg/config"

// ScoreSystem 存活计分
// 每 TicksPerPoint 个游戏 tick 加 Points 分，暂停期间不调用 Update 即不计分
type ScoreSystem struct {
	tuning *config.Tuning
	ticks  int
	score  int
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(tuning *config.Tuning) *ScoreSystem {
	return &ScoreSystem{tuning: tuning}
}

// Update 推进一个 tick
func (s *ScoreSystem) Update(deltaTime float64) {
	s.ticks++
	if s.ticks%s.tuning.Score.TicksPerPoint == 0 {
		s.score += s.tuning.Score.Points
	}
}

// Score 当前分数
func (s *ScoreSystem) Score() int { return s.score }

// Ticks 本局已进行的游戏 tick 数
func (s *ScoreSystem) Ticks() int { return s.ticks }

// Reset 新一局清零
func (s *ScoreSystem) Reset() {
	s.ticks = 0
	s.score = 0
}
