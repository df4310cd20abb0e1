package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/coder/quartz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
	"github.com/decker502/laneracer/pkg/utils"
)

// SpriteSource 按贴图 ID 提供图片，找不到时返回 nil
type SpriteSource interface {
	Sprite(id string) *ebiten.Image
}

// 生命图标尺寸与间距
const (
	lifeIconWidth   = 25
	lifeIconHeight  = 40
	lifeIconSpacing = 30
	hudMargin       = 10
	trackBorder     = 20
)

// RenderSystem 绘制赛道、路面中线、障碍物、道具、车辆和 HUD
//
// 渲染顺序（从底到顶）：赛道 → 中线 → 障碍物 → 道具 → 车辆 → 生命/分数
// 只读 ECS 状态，不修改任何组件。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
	sprites       SpriteSource
	clock         quartz.Clock
}

// NewRenderSystem 创建渲染系统
// clock 用于无敌闪烁，测试中可注入 quartz.NewMock
func NewRenderSystem(em *ecs.EntityManager, tuning *config.Tuning, sprites SpriteSource, clock quartz.Clock) *RenderSystem {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &RenderSystem{
		entityManager: em,
		tuning:        tuning,
		sprites:       sprites,
		clock:         clock,
	}
}

// Draw 绘制整个游戏画面
func (s *RenderSystem) Draw(screen *ebiten.Image, score int) {
	s.drawTrack(screen)
	s.drawRoadLines(screen)
	s.drawFalling(screen)
	s.drawCars(screen)
	s.drawHUD(screen, score)
}

// DrawTrack 仅绘制赛道和中线（菜单背景使用）
func (s *RenderSystem) DrawTrack(screen *ebiten.Image) {
	s.drawTrack(screen)
	s.drawRoadLines(screen)
}

func (s *RenderSystem) drawTrack(screen *ebiten.Image) {
	screen.Fill(colornames.Darkgreen)

	left := float32(s.tuning.TrackLeft())
	width := float32(s.tuning.TrackRight() - s.tuning.TrackLeft())
	height := float32(s.tuning.Window.Height)

	// 白色路肩 + 黑色路面
	vector.DrawFilledRect(screen, left, 0, width, height, color.White, false)
	vector.DrawFilledRect(screen, left+trackBorder, 0, width-2*trackBorder, height, color.Black, false)
}

func (s *RenderSystem) drawRoadLines(screen *ebiten.Image) {
	road := s.tuning.Road
	for _, id := range ecs.GetEntitiesWith2[*components.RoadLineComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(road.LineWidth), float32(road.LineHeight), color.White, false)
	}
}

func (s *RenderSystem) drawFalling(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(screen, id, 0, colornames.Orange)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PowerUpComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(screen, id, 0, colornames.Gold)
	}
}

func (s *RenderSystem) drawCars(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CarComponent, *components.SpriteComponent](s.entityManager) {
		car, _ := ecs.GetComponent[*components.CarComponent](s.entityManager, id)
		if !s.CarVisible(car) {
			continue
		}
		s.drawEntity(screen, id, car.SpinAngle, colornames.Crimson)
	}
}

// CarVisible 按渲染时钟判断车辆本帧是否可见
func (s *RenderSystem) CarVisible(car *components.CarComponent) bool {
	return CarVisibleAt(car, s.clock.Now())
}

// drawEntity 把贴图缩放到碰撞盒大小并绕中心旋转 angle 度（逆时针）
// 贴图缺失时绘制纯色矩形占位
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, angle float64, fallback color.Color) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	rect := components.Bounds(pos, col)

	img := s.lookup(sprite)
	if img == nil {
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), fallback, false)
		return
	}

	drawImageInRect(screen, img, rect, angle)
}

func (s *RenderSystem) lookup(sprite *components.SpriteComponent) *ebiten.Image {
	if s.sprites == nil || sprite == nil {
		return nil
	}
	return s.sprites.Sprite(sprite.ID)
}

// drawHUD 左上角生命图标，右上角分数
func (s *RenderSystem) drawHUD(screen *ebiten.Image, score int) {
	for _, id := range ecs.GetEntitiesWith2[*components.CarComponent, *components.SpriteComponent](s.entityManager) {
		car, _ := ecs.GetComponent[*components.CarComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		img := s.lookup(sprite)

		for i := 0; i < car.Lives; i++ {
			rect := components.Rect{
				X:      float64(hudMargin + i*lifeIconSpacing),
				Y:      hudMargin,
				Width:  lifeIconWidth,
				Height: lifeIconHeight,
			}
			if img == nil {
				vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), lifeIconWidth, lifeIconHeight, colornames.Crimson, false)
				continue
			}
			drawImageInRect(screen, img, rect, 0)
		}
	}

	utils.DrawText(screen, fmt.Sprintf("Score: %d", score), s.tuning.Window.Width-150, hudMargin, 2, color.White)
}

// drawImageInRect 缩放图片填满 rect，并绕 rect 中心旋转
// Ebitengine 的正角度为顺时针，这里取负值使角度逆时针增长
func drawImageInRect(screen, img *ebiten.Image, rect components.Rect, angle float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(rect.Width/w, rect.Height/h)
	if angle != 0 {
		op.GeoM.Rotate(-angle * math.Pi / 180)
	}
	op.GeoM.Translate(rect.CenterX(), rect.CenterY())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawSprite 在 rect 内绘制指定贴图（菜单预览使用）
func (s *RenderSystem) DrawSprite(screen *ebiten.Image, id string, rect components.Rect) {
	img := s.lookup(&components.SpriteComponent{ID: id})
	if img == nil {
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), colornames.Crimson, false)
		return
	}
	drawImageInRect(screen, img, rect, 0)
}
