package components

// RoadLineComponent 路面中线虚线段，纯装饰，不参与碰撞
type RoadLineComponent struct {
	Speed float64 // 滚动速度（像素/tick）
	WrapY float64 // 越过屏幕底部后回到的 Y 坐标
}
