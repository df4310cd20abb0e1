package game

import "github.com/decker502/laneracer/pkg/systems"

// Input 一个 tick 的输入快照
//
// Left/Right 是按住状态，其余都是本 tick 刚触发的离散事件。
// 前端（Ebitengine 场景或终端界面）负责填充，核心只读不写。
type Input struct {
	Left        bool
	Right       bool
	PauseToggle bool
	Confirm     bool
	Restart     bool
	Quit        bool
	SelectPrev  bool
	SelectNext  bool
}

// control 提取车辆控制部分
func (in Input) control() systems.ControlInput {
	return systems.ControlInput{Left: in.Left, Right: in.Right}
}
