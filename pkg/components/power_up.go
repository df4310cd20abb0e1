package components

// PowerUpKind 道具类型（封闭枚举）
type PowerUpKind int

const (
	// PowerUpShield 护盾：300 帧无敌
	PowerUpShield PowerUpKind = iota
	// PowerUpSpeedBoost 加速：永久提升横向速度
	PowerUpSpeedBoost
	// PowerUpExtraLife 额外生命
	PowerUpExtraLife

	// PowerUpKindCount 道具类型数量，用于定长效果表
	PowerUpKindCount
)

// String 返回道具类型在资源目录中的键名
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSpeedBoost:
		return "speed"
	case PowerUpExtraLife:
		return "life"
	default:
		return "unknown"
	}
}

// Valid 是否为已定义的道具类型
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < PowerUpKindCount
}

// PowerUpComponent 道具
type PowerUpComponent struct {
	Kind  PowerUpKind
	Speed float64 // 下落速度（像素/tick），固定值
}
