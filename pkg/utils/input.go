// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 键位表，每个动作可绑定多个按键
type KeyBindings struct {
	Left       []ebiten.Key
	Right      []ebiten.Key
	Pause      []ebiten.Key
	Confirm    []ebiten.Key
	Restart    []ebiten.Key
	Quit       []ebiten.Key
	SelectPrev []ebiten.Key
	SelectNext []ebiten.Key
	Mute       []ebiten.Key
	VolumeDown []ebiten.Key
	VolumeUp   []ebiten.Key
}

// DefaultKeyBindings 默认键位：方向键或 A/D 转向，空格确认，P 暂停，R 重开，Esc 退出
// M 静音，-/= 调节音量
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:       []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:      []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Pause:      []ebiten.Key{ebiten.KeyP},
		Confirm:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		Restart:    []ebiten.Key{ebiten.KeyR},
		Quit:       []ebiten.Key{ebiten.KeyEscape},
		SelectPrev: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		SelectNext: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Mute:       []ebiten.Key{ebiten.KeyM},
		VolumeDown: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		VolumeUp:   []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
	}
}

// AnyPressed 任一按键处于按下状态
func AnyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// AnyJustPressed 任一按键在本帧刚被按下
func AnyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针按下状态和位置（触摸优先）
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}
	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

// SteerDirection 触摸转向：按住屏幕左半边返回 -1，右半边返回 1，未按下返回 0
// x 为逻辑坐标，screenWidth 为逻辑屏幕宽度
func SteerDirection(pressed bool, x int, screenWidth float64) int {
	if !pressed {
		return 0
	}
	if float64(x) < screenWidth/2 {
		return -1
	}
	return 1
}
