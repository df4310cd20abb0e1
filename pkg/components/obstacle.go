package components

// ObstacleComponent 迎面驶来的障碍车辆
type ObstacleComponent struct {
	Speed float64 // 下落速度（像素/tick），生成时随机决定后不再变化
}
