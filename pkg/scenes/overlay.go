package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/laneracer/pkg/config"
)

// 半透明遮罩，用于菜单、暂停和结束画面
var overlayColor = color.RGBA{0, 0, 0, 160}

func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, overlayColor, false)
}
