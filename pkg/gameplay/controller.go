// Package gameplay 实现弹弓游戏的核心逻辑：场景状态机、发射物理和碰撞计分
//
// GameController 由宿主的帧循环驱动：每帧先投递输入事件（HandleKey/HandlePointer），
// 再调用 Update(dt)，最后调用 Render(r)。所有方法都在同一个 goroutine 上调用，
// 因此不需要任何锁。
package gameplay

import (
	"log"

	"github.com/decker502/slingshot/pkg/config"
)

// GameController 持有全部游戏状态的逐帧状态机
type GameController struct {
	cfg    *config.GameplayConfig
	assets Assets

	state      SceneState
	projectile Projectile
	roster     *TargetRoster
	ammo       *AmmoPool
	score      int

	anchor     Vec2
	pointer    Vec2
	grabOffset Vec2
	hitTest    func(target, projectile Rect) bool

	reloads int // 累计装弹次数
}

// NewGameController 创建游戏控制器，初始状态为主菜单
//
// 参数：
//   - cfg: 已验证的玩法配置
//   - assets: 精灵句柄
func NewGameController(cfg *config.GameplayConfig, assets Assets) *GameController {
	gc := &GameController{
		cfg:    cfg,
		assets: assets,
		state:  SceneMenu,
		anchor: Vec2{X: cfg.Launch.Anchor.X, Y: cfg.Launch.Anchor.Y},
		roster: NewTargetRoster(cfg.Targets),
		ammo:   NewAmmoPool(cfg.Ammo),
	}
	gc.projectile.Size = cfg.Launch.ProjectileSize

	switch cfg.Scoring.HitTest {
	case config.HitTestOverlap:
		gc.hitTest = func(target, projectile Rect) bool { return target.Overlaps(projectile) }
	default:
		gc.hitTest = func(target, projectile Rect) bool { return target.Contains(projectile) }
	}

	gc.reset()
	return gc
}

// reset 把所有对局数据恢复到初始值
// 每次（重新）开始游戏都只经过这里
func (gc *GameController) reset() {
	gc.projectile.ResetTo(gc.anchor)
	gc.roster.ShowAll()
	gc.ammo.Refill()
	gc.score = 0
	gc.reloads = 0
	gc.grabOffset = Vec2{}
}

// startRound 开始新的一局
func (gc *GameController) startRound() {
	gc.reset()
	gc.setState(ScenePlaying)
}

func (gc *GameController) setState(s SceneState) {
	if gc.state == s {
		return
	}
	log.Printf("[GameController] %s -> %s (score=%d, ammo=%d, targets=%d)",
		gc.state, s, gc.score, gc.ammo.Remaining(), gc.roster.VisibleCount())
	gc.state = s
}

// HandleKey 处理按键事件
// 只有确认键的松开动作会推动状态机；退出和全屏由宿主处理
func (gc *GameController) HandleKey(ev KeyEvent) {
	if ev.Key != KeyConfirm || ev.Action != KeyReleased {
		return
	}

	switch gc.state {
	case SceneMenu:
		gc.setState(SceneTutorial)
	case SceneTutorial, SceneLost, SceneWon:
		gc.startRound()
	}
}

// HandlePointer 处理指针事件（仅在游戏进行中生效）
func (gc *GameController) HandlePointer(ev PointerEvent) {
	gc.pointer = Vec2{X: ev.X, Y: ev.Y}
	if gc.state != ScenePlaying {
		return
	}

	p := &gc.projectile
	switch ev.Action {
	case PointerPressed:
		if p.InFlight || p.Grabbed {
			return
		}
		if p.Box().Expand(gc.cfg.Launch.GrabTolerance).ContainsPoint(gc.pointer) {
			p.Grabbed = true
			gc.grabOffset = gc.pointer.Sub(p.Pos)
		}
	case PointerReleased:
		if !p.Grabbed {
			return
		}
		if !gc.followPointer() {
			return
		}
		p.Launch(gc.anchor)
		log.Printf("[GameController] Fire: velocity=(%.1f, %.1f)", p.Velocity.X, p.Velocity.Y)
	}
}

// followPointer 让被抓住的石块跟随指针
// 超出最大拉弓半径时松开并弹回发射点（不发射、不消耗弹药），返回 false
func (gc *GameController) followPointer() bool {
	p := &gc.projectile
	p.Pos = gc.pointer.Sub(gc.grabOffset)
	if p.Pos.Sub(gc.anchor).Len() > gc.cfg.Launch.MaxAimRadius {
		p.ResetTo(gc.anchor)
		return false
	}
	return true
}

// Update 推进一帧
//
// 参数：
//   - dt: 自上一帧以来经过的时间（秒）
func (gc *GameController) Update(dt float64) {
	if gc.state != ScenePlaying {
		return
	}

	p := &gc.projectile
	if p.Grabbed {
		gc.followPointer()
		return
	}
	if !p.InFlight {
		return
	}

	p.Integrate(dt, gc.cfg.Launch.Gravity, gc.cfg.Launch.SpeedMultiplier)
	if gc.resolveFlight() {
		gc.reload()
		gc.evaluateOutcome()
	}
}

// resolveFlight 检查出界和命中，返回本帧这一发是否结束
func (gc *GameController) resolveFlight() bool {
	box := gc.projectile.Box()

	if box.Bottom() > gc.cfg.Bounds.FloorY || box.Y < 0 || box.X < 0 ||
		box.X > float64(config.GameWindowWidth) {
		return true
	}

	idx := gc.roster.FirstHit(box, gc.hitTest)
	if idx < 0 {
		return false
	}
	if gc.roster.Hide(idx) {
		gc.score += gc.cfg.Scoring.HitScore
		log.Printf("[GameController] Hit target %d, score=%d", idx, gc.score)
	}
	return true
}

// reload 石块回到发射点并消耗一发弹药
func (gc *GameController) reload() {
	gc.projectile.ResetTo(gc.anchor)
	gc.ammo.Consume()
	gc.reloads++
}

// evaluateOutcome 先判胜再判负：最后一发同时清空目标时判定为胜利
func (gc *GameController) evaluateOutcome() {
	if gc.roster.VisibleCount() == 0 {
		gc.setState(SceneWon)
		return
	}
	if gc.ammo.Remaining() == 0 {
		gc.setState(SceneLost)
	}
}

// State 返回当前场景状态
func (gc *GameController) State() SceneState {
	return gc.state
}

// Score 返回当前得分
func (gc *GameController) Score() int {
	return gc.score
}

// Ammo 返回剩余弹药数
func (gc *GameController) Ammo() int {
	return gc.ammo.Remaining()
}

// VisibleTargets 返回仍可见的目标数
func (gc *GameController) VisibleTargets() int {
	return gc.roster.VisibleCount()
}

// TargetCount 返回目标总数（包括已隐藏的）
func (gc *GameController) TargetCount() int {
	return gc.roster.Len()
}

// Target 返回第 i 个目标的副本
func (gc *GameController) Target(i int) Target {
	return gc.roster.At(i)
}

// Projectile 返回石块状态的副本
func (gc *GameController) Projectile() Projectile {
	return gc.projectile
}

// Anchor 返回发射点
func (gc *GameController) Anchor() Vec2 {
	return gc.anchor
}

// Reloads 返回本局装弹次数
func (gc *GameController) Reloads() int {
	return gc.reloads
}
