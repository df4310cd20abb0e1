package utils

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// hudFace 内置位图字体（约 12px 行高），通过 GeoM 缩放得到大号文字
var hudFace = text.NewGoXFace(bitmapfont.Face)

// HUDFace 返回界面文字使用的字体
func HUDFace() text.Face {
	return hudFace
}

// MeasureText 返回文字按 scale 缩放后的宽度（像素）
func MeasureText(s string, scale float64) float64 {
	return text.Advance(s, hudFace) * scale
}

// DrawText 以 (x, y) 为左上角绘制文字
//
// 参数:
//   - screen: 绘制目标
//   - s: 文字内容
//   - x, y: 左上角坐标
//   - scale: 缩放倍数
//   - clr: 文字颜色
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// DrawCenteredText 以 centerX 水平居中绘制文字
func DrawCenteredText(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	DrawText(screen, s, centerX-MeasureText(s, scale)/2, y, scale, clr)
}
