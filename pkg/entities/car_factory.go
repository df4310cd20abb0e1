package entities

import (
	"fmt"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
)

// NewCarEntity 创建玩家车辆实体
// 车辆水平居中，中心距屏幕底部 Car.BottomOffset 像素
//
// 参数:
//   - em: 实体管理器
//   - tuning: 调参配置
//   - car: 所选车辆目录条目（决定速度和贴图）
//   - catalogIndex: 条目在目录中的下标
//
// 返回:
//   - ecs.EntityID: 车辆实体ID
//   - error: 参数无效时返回错误
func NewCarEntity(em *ecs.EntityManager, tuning *config.Tuning, car config.CarEntry, catalogIndex int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tuning == nil {
		return 0, fmt.Errorf("tuning cannot be nil")
	}

	w, h := tuning.Car.Width, tuning.Car.Height
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: tuning.Window.Width/2 - w/2,
		Y: tuning.Window.Height - tuning.Car.BottomOffset - h/2,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.CarComponent{
		Lives:        tuning.Car.StartLives,
		Speed:        car.Speed,
		CatalogIndex: catalogIndex,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{ID: car.Sprite})

	return id, nil
}
