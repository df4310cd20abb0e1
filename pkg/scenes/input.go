package scenes

import (
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/game"
	"github.com/decker502/laneracer/pkg/utils"
)

// readInput 把键盘（和触摸）状态转换成一个 tick 的输入快照
func readInput(bindings utils.KeyBindings, phase game.Phase) game.Input {
	in := game.Input{
		Left:        utils.AnyPressed(bindings.Left),
		Right:       utils.AnyPressed(bindings.Right),
		PauseToggle: utils.AnyJustPressed(bindings.Pause),
		Confirm:     utils.AnyJustPressed(bindings.Confirm),
		Restart:     utils.AnyJustPressed(bindings.Restart),
		Quit:        utils.AnyJustPressed(bindings.Quit),
		SelectPrev:  utils.AnyJustPressed(bindings.SelectPrev),
		SelectNext:  utils.AnyJustPressed(bindings.SelectNext),
	}

	pressed, x, _ := utils.GetPointerState()
	tapped, tapX, _ := utils.IsJustTouchedOrClicked()
	return mergeTouch(in, phase, pressed, x, tapped, tapX)
}

// mergeTouch 叠加触摸/鼠标操作
//
//   - 菜单：点击左三分之一选上一辆，右三分之一选下一辆，中间开始
//   - 比赛：按住左/右半屏转向
//   - 暂停：点击继续；结束：点击重开
func mergeTouch(in game.Input, phase game.Phase, pressed bool, x int, tapped bool, tapX int) game.Input {
	const width = config.GameWindowWidth

	switch phase {
	case game.PhaseMenu:
		if !tapped {
			break
		}
		switch {
		case tapX < width/3:
			in.SelectPrev = true
		case tapX >= width*2/3:
			in.SelectNext = true
		default:
			in.Confirm = true
		}
	case game.PhasePlaying:
		switch utils.SteerDirection(pressed, x, width) {
		case -1:
			in.Left = true
		case 1:
			in.Right = true
		}
	case game.PhasePaused:
		if tapped {
			in.PauseToggle = true
		}
	case game.PhaseGameOver:
		if tapped {
			in.Restart = true
		}
	}
	return in
}
