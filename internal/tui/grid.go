package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// 默认网格：800x600 的逻辑屏幕按 20 像素一格缩放
const (
	DefaultCols = 40
	DefaultRows = 30
)

type cellKind int

const (
	cellOffroad cellKind = iota
	cellRoad
	cellEdge
	cellLine
	cellObstacle
	cellPowerUp
	cellCar
)

type cell struct {
	kind  cellKind
	glyph rune
}

// frame 一帧字符画，下标为 [row][col]
type frame struct {
	cols, rows int
	cells      [][]cell
}

// powerUpGlyphs 道具类型对应的字符
var powerUpGlyphs = [components.PowerUpKindCount]rune{
	components.PowerUpShield:     'S',
	components.PowerUpSpeedBoost: '>',
	components.PowerUpExtraLife:  '+',
}

// rasterize 把 ECS 世界缩放到 cols x rows 的字符网格
// 绘制顺序与 RenderSystem 一致：赛道 → 中线 → 障碍物 → 道具 → 车辆
func rasterize(em *ecs.EntityManager, tuning *config.Tuning, cols, rows int, showCar bool) frame {
	f := frame{cols: cols, rows: rows, cells: make([][]cell, rows)}
	sx := float64(cols) / tuning.Window.Width
	sy := float64(rows) / tuning.Window.Height

	leftEdge := int(tuning.TrackLeft() * sx)
	rightEdge := min(int(tuning.TrackRight()*sx), cols-1)
	for r := range f.cells {
		f.cells[r] = make([]cell, cols)
		for c := range f.cells[r] {
			switch {
			case c == leftEdge || c == rightEdge:
				f.cells[r][c] = cell{cellEdge, '|'}
			case c > leftEdge && c < rightEdge:
				f.cells[r][c] = cell{cellRoad, ' '}
			default:
				f.cells[r][c] = cell{cellOffroad, '.'}
			}
		}
	}

	fill := func(rect components.Rect, cl cell) {
		c0, c1 := span(rect.Left()*sx, rect.Right()*sx, cols)
		r0, r1 := span(rect.Top()*sy, rect.Bottom()*sy, rows)
		for r := r0; r < r1; r++ {
			for c := c0; c < c1; c++ {
				f.cells[r][c] = cl
			}
		}
	}

	// 中线没有碰撞盒，尺寸取自调参
	for _, id := range ecs.GetEntitiesWith2[*components.RoadLineComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		fill(components.Rect{X: pos.X, Y: pos.Y, Width: tuning.Road.LineWidth, Height: tuning.Road.LineHeight}, cell{cellLine, ':'})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](em) {
		if rect, ok := bounds(em, id); ok {
			fill(rect, cell{cellObstacle, '#'})
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		if !pu.Kind.Valid() {
			continue
		}
		if rect, ok := bounds(em, id); ok {
			fill(rect, cell{cellPowerUp, powerUpGlyphs[pu.Kind]})
		}
	}

	if showCar {
		for _, id := range ecs.GetEntitiesWith1[*components.CarComponent](em) {
			car, _ := ecs.GetComponent[*components.CarComponent](em, id)
			glyph := 'A'
			if car.Spinning {
				glyph = '*'
			}
			if rect, ok := bounds(em, id); ok {
				fill(rect, cell{cellCar, glyph})
			}
		}
	}

	return f
}

// span 把像素区间 [lo, hi) 映射为格子下标区间，并裁剪到 [0, n)
// 至少覆盖一格，细小的实体（道具、中线）不会消失
func span(lo, hi float64, n int) (int, int) {
	a := int(math.Floor(lo))
	b := int(math.Ceil(hi))
	if b <= a {
		b = a + 1
	}
	return max(a, 0), min(b, n)
}

func bounds(em *ecs.EntityManager, id ecs.EntityID) (components.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return components.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return components.Rect{}, false
	}
	return components.Bounds(pos, col), true
}

// String 不带样式的纯文本，用于测试和日志
func (f frame) String() string {
	var b strings.Builder
	for r, row := range f.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.glyph)
		}
	}
	return b.String()
}

// Render 按格子类型着色，相邻同类格子合并为一次渲染
func (f frame) Render() string {
	var b strings.Builder
	for r, row := range f.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && row[c].kind == row[start].kind {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:c] {
				run.WriteRune(cl.glyph)
			}
			b.WriteString(styleFor(row[start].kind).Render(run.String()))
			start = c
		}
	}
	return b.String()
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellRoad:
		return RoadStyle
	case cellEdge:
		return EdgeStyle
	case cellLine:
		return LineStyle
	case cellObstacle:
		return ObstacleStyle
	case cellPowerUp:
		return PowerUpStyle
	case cellCar:
		return CarStyle
	default:
		return OffroadStyle
	}
}
