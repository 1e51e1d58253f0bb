package gameplay

import "github.com/decker502/slingshot/pkg/config"

// Target 单个目标
// 被击中后只隐藏，不从名单中移除
type Target struct {
	Box     Rect
	Visible bool
}

// TargetRoster 固定长度、固定顺序的目标名单
type TargetRoster struct {
	targets []Target
	visible int
}

// NewTargetRoster 根据配置创建目标名单，所有目标初始可见
func NewTargetRoster(cfgs []config.TargetConfig) *TargetRoster {
	r := &TargetRoster{targets: make([]Target, len(cfgs))}
	for i, c := range cfgs {
		r.targets[i].Box = Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
	}
	r.ShowAll()
	return r
}

// ShowAll 让所有目标重新可见（新一局开始时调用）
func (r *TargetRoster) ShowAll() {
	for i := range r.targets {
		r.targets[i].Visible = true
	}
	r.visible = len(r.targets)
}

// Len 返回目标总数
func (r *TargetRoster) Len() int {
	return len(r.targets)
}

// VisibleCount 返回仍可见的目标数
func (r *TargetRoster) VisibleCount() int {
	return r.visible
}

// At 返回第 i 个目标的副本
func (r *TargetRoster) At(i int) Target {
	return r.targets[i]
}

// FirstHit 按名单顺序返回第一个满足 hit 判定的可见目标下标，没有则返回 -1
func (r *TargetRoster) FirstHit(box Rect, hit func(target, projectile Rect) bool) int {
	for i := range r.targets {
		if r.targets[i].Visible && hit(r.targets[i].Box, box) {
			return i
		}
	}
	return -1
}

// Hide 隐藏第 i 个目标；已隐藏的目标不会重复计数
// 返回该次调用是否真正改变了可见性
func (r *TargetRoster) Hide(i int) bool {
	if !r.targets[i].Visible {
		return false
	}
	r.targets[i].Visible = false
	r.visible--
	return true
}
