package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于碰撞系统检测车辆与障碍物、道具的重叠
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移
}

// Rect 轴对齐矩形（AABB）
type Rect struct {
	X, Y          float64 // 左上角
	Width, Height float64
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Top 上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 水平中心
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 垂直中心
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps 判断两个矩形是否重叠
// 矩形以左上角定位，仅边缘接触不算碰撞
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Bounds 由位置和碰撞盒计算世界坐标下的 AABB
func Bounds(pos *PositionComponent, col *CollisionComponent) Rect {
	return Rect{
		X:      pos.X + col.OffsetX,
		Y:      pos.Y + col.OffsetY,
		Width:  col.Width,
		Height: col.Height,
	}
}
