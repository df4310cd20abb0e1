package game

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/laneracer/pkg/components"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/ecs"
	"github.com/decker502/laneracer/pkg/entities"
	"github.com/decker502/laneracer/pkg/systems"
)

// tickDelta 固定步长（秒）
const tickDelta = 1.0 / config.TicksPerSecond

// GameState 一次游戏会话的全部状态
//
// 阶段转换：
//
//	Menu --选车--> Menu
//	Menu --确认--> Playing（引擎音效，记住所选车辆）
//	Playing <--暂停键--> Paused
//	Playing --生命耗尽--> GameOver
//	GameOver --重开--> Menu（清空本局全部状态）
//
// 只有 Playing 阶段执行每 tick 的模拟流水线。
// GameState 不依赖任何渲染或输入库，Ebitengine 场景和终端界面共用同一实现。
type GameState struct {
	ctx    Context
	logger *log.Logger

	phase     Phase
	selection *CarSelection

	entityManager *ecs.EntityManager
	carID         ecs.EntityID

	carControl *systems.CarControlSystem
	motion     *systems.MotionSystem
	roadLines  *systems.RoadLineSystem
	spawn      *systems.SpawnSystem
	collision  *systems.CollisionSystem
	score      *systems.ScoreSystem

	livesDepleted bool
}

// NewGameState 创建游戏会话，初始阶段为 Menu
//
// 参数:
//   - ctx: 外部依赖（调参、资源目录、随机源、音效、设置、日志）
//
// 返回:
//   - *GameState: 会话实例
//   - error: 必填依赖缺失时返回错误
func NewGameState(ctx Context) (*GameState, error) {
	ctx, err := ctx.withDefaults()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	gs := &GameState{
		ctx:           ctx,
		logger:        ctx.Logger.WithPrefix("GameState"),
		selection:     NewCarSelection(ctx.Catalog.Cars),
		entityManager: em,
	}

	gs.carControl = systems.NewCarControlSystem(em, ctx.Tuning)
	gs.motion = systems.NewMotionSystem(em, ctx.Tuning)
	gs.roadLines = systems.NewRoadLineSystem(em, ctx.Tuning)
	gs.spawn = systems.NewSpawnSystem(em, ctx.Tuning, ctx.Catalog, ctx.Rand, ctx.Logger.WithPrefix("SpawnSystem"))
	gs.collision = systems.NewCollisionSystem(em, ctx.Tuning, ctx.Sound, ctx.Logger.WithPrefix("CollisionSystem"), gs.onLivesDepleted)
	gs.score = systems.NewScoreSystem(ctx.Tuning)

	if ctx.Settings != nil {
		gs.selection.SetIndex(ctx.Settings.GetSettings().LastCar)
	}

	gs.resetRun()
	return gs, nil
}

// Update 消费一个 tick 的输入并推进状态
// Quit 由前端处理，这里忽略
func (gs *GameState) Update(in Input) {
	switch gs.phase {
	case PhaseMenu:
		gs.updateMenu(in)
	case PhasePlaying:
		if in.PauseToggle {
			gs.setPhase(PhasePaused)
			return
		}
		gs.step(in)
	case PhasePaused:
		if in.PauseToggle {
			gs.setPhase(PhasePlaying)
		}
	case PhaseGameOver:
		if in.Restart {
			gs.Restart()
		}
	}
}

func (gs *GameState) updateMenu(in Input) {
	switch {
	case in.Confirm:
		gs.Start()
	case in.SelectPrev && !in.SelectNext:
		gs.selection.Previous()
		gs.spawnCar()
	case in.SelectNext && !in.SelectPrev:
		gs.selection.Next()
		gs.spawnCar()
	}
}

// SelectCar 在菜单中直接选中第 index 辆车（越界时取模）
func (gs *GameState) SelectCar(index int) {
	if gs.phase != PhaseMenu {
		return
	}
	gs.selection.SetIndex(index)
	gs.spawnCar()
}

// Start 以当前选择开局（仅在 Menu 阶段有效）
func (gs *GameState) Start() {
	if gs.phase != PhaseMenu {
		return
	}

	gs.spawnCar()
	gs.ctx.Sound.PlaySound(config.SoundEngine)
	gs.rememberSelection()
	gs.setPhase(PhasePlaying)
	gs.logger.Info("race started", "car", gs.selection.Current().Name)
}

// step 一个 tick 的模拟流水线
// 顺序：车辆 → 运动/回收 → 中线 → 生成 → 碰撞（先道具后障碍物）→ 计分 → 删除已标记实体
func (gs *GameState) step(in Input) {
	gs.carControl.Update(in.control(), tickDelta)
	gs.motion.Update(tickDelta)
	gs.roadLines.Update(tickDelta)
	gs.spawn.Update(tickDelta)
	gs.collision.Update(tickDelta)

	if gs.livesDepleted {
		gs.entityManager.RemoveMarkedEntities()
		gs.setPhase(PhaseGameOver)
		gs.logger.Info("game over", "score", gs.score.Score(), "ticks", gs.score.Ticks())
		return
	}

	gs.score.Update(tickDelta)
	gs.entityManager.RemoveMarkedEntities()
}

func (gs *GameState) onLivesDepleted() {
	gs.livesDepleted = true
}

// Restart 回到菜单并清空本局状态（车辆、障碍物、道具、中线、分数）
func (gs *GameState) Restart() {
	gs.resetRun()
	gs.setPhase(PhaseMenu)
}

func (gs *GameState) resetRun() {
	gs.entityManager.Clear()
	gs.score.Reset()
	gs.livesDepleted = false
	gs.carID = 0

	entities.NewRoadLines(gs.entityManager, gs.ctx.Tuning)
	gs.spawnCar()
}

// spawnCar 按当前选择重新创建满血车辆，替换旧车辆
func (gs *GameState) spawnCar() {
	if gs.carID != 0 {
		gs.entityManager.DestroyEntity(gs.carID)
		gs.entityManager.RemoveMarkedEntities()
	}

	id, err := entities.NewCarEntity(gs.entityManager, gs.ctx.Tuning, gs.selection.Current(), gs.selection.Index())
	if err != nil {
		gs.logger.Error("failed to create car", "err", err)
		gs.carID = 0
		return
	}
	gs.carID = id
}

func (gs *GameState) rememberSelection() {
	if gs.ctx.Settings == nil {
		return
	}
	gs.ctx.Settings.SetLastCar(gs.selection.Index())
	if err := gs.ctx.Settings.Save(); err != nil {
		gs.logger.Warn("failed to save selected car", "err", err)
	}
}

func (gs *GameState) setPhase(p Phase) {
	if gs.phase == p {
		return
	}
	gs.logger.Debug("phase change", "from", gs.phase, "to", p)
	gs.phase = p
}

// Phase 当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// Score 本局分数
func (gs *GameState) Score() int {
	return gs.score.Score()
}

// Ticks 本局已进行的游戏 tick 数（不含暂停）
func (gs *GameState) Ticks() int {
	return gs.score.Ticks()
}

// Selection 选车状态
func (gs *GameState) Selection() *CarSelection {
	return gs.selection
}

// EntityManager 供渲染读取
func (gs *GameState) EntityManager() *ecs.EntityManager {
	return gs.entityManager
}

// Tuning 当前调参
func (gs *GameState) Tuning() *config.Tuning {
	return gs.ctx.Tuning
}

// Catalog 资源目录
func (gs *GameState) Catalog() *config.Catalog {
	return gs.ctx.Catalog
}

// Car 玩家车辆组件
func (gs *GameState) Car() (*components.CarComponent, bool) {
	if gs.carID == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.CarComponent](gs.entityManager, gs.carID)
}

// CarPosition 玩家车辆左上角位置
func (gs *GameState) CarPosition() (*components.PositionComponent, bool) {
	if gs.carID == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.PositionComponent](gs.entityManager, gs.carID)
}

// ObstacleCount 当前存活障碍物数
func (gs *GameState) ObstacleCount() int {
	return ecs.CountWith1[*components.ObstacleComponent](gs.entityManager)
}

// PowerUpCount 当前存活道具数
func (gs *GameState) PowerUpCount() int {
	return ecs.CountWith1[*components.PowerUpComponent](gs.entityManager)
}
