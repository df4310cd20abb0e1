package game

// Phase 游戏阶段
type Phase int

const (
	// PhaseMenu 选车菜单
	PhaseMenu Phase = iota
	// PhasePlaying 游戏进行中，唯一执行模拟的阶段
	PhasePlaying
	// PhasePaused 暂停
	PhasePaused
	// PhaseGameOver 生命耗尽，等待重开
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
