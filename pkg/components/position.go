package components

// PositionComponent 实体左上角的世界坐标（像素）
// 屏幕即世界，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}
