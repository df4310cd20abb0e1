package components

// SpriteComponent 存储实体的视觉表现
// ID 是资源目录中的贴图 ID，对模拟逻辑不透明，由渲染层解析为图像
type SpriteComponent struct {
	ID string
}
