package systems

import (
	"time"

	"github.com/decker502/laneracer/pkg/components"
)

// blinkPeriodMs 无敌闪烁周期，前半周期可见
const blinkPeriodMs = 200

// CarVisibleAt 无敌期间按 200ms 周期闪烁，前 100ms 可见
// 纯展示规则，Ebitengine 和终端前端共用
func CarVisibleAt(car *components.CarComponent, now time.Time) bool {
	if !car.Invulnerable {
		return true
	}
	return now.UnixMilli()%blinkPeriodMs < blinkPeriodMs/2
}
