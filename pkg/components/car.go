package components

// CarComponent 玩家车辆状态
//
// 状态机：
//   - Normal: 可左右移动
//   - Spinning: 受击后强制旋转一整圈，期间不能移动也不会再次受击
//   - Invulnerable: 旋转结束或拾取护盾后的无敌窗口，可与 Normal 同时存在
//
// Spinning 与 Invulnerable 在旋转期间互斥。
type CarComponent struct {
	Lives             int     // 剩余生命，仅在 game over 前瞬间可能 <= 0
	Speed             float64 // 横向速度（像素/tick）
	Spinning          bool
	SpinAngle         float64 // [0, 360)
	Invulnerable      bool
	InvulnerableTimer int // 剩余无敌 tick 数
	// PendingShield 旋转期间拾取的护盾时长，旋转结束时与旋转无敌取较大值
	PendingShield int
	CatalogIndex  int // 所选车辆在资源目录中的下标
}

// Hit 车辆受到撞击
// 仅在既不无敌也不在旋转时生效：扣一条命并进入旋转
// 返回是否真正造成了伤害
func (c *CarComponent) Hit() bool {
	if c.Invulnerable || c.Spinning {
		return false
	}
	c.Lives--
	c.Spinning = true
	c.SpinAngle = 0
	return true
}

// GrantInvulnerability 给予 ticks 帧无敌
// 旋转期间只记录为待生效，保持旋转与无敌互斥；已有更长的无敌时不缩短
func (c *CarComponent) GrantInvulnerability(ticks int) {
	if c.Spinning {
		if ticks > c.PendingShield {
			c.PendingShield = ticks
		}
		return
	}
	c.Invulnerable = true
	if ticks > c.InvulnerableTimer {
		c.InvulnerableTimer = ticks
	}
}

// Destroyed 生命耗尽
func (c *CarComponent) Destroyed() bool {
	return c.Lives <= 0
}
