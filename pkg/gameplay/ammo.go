package gameplay

import "github.com/decker502/slingshot/pkg/config"

// AmmoPool 剩余弹药计数和备用石块的摆放位置
type AmmoPool struct {
	capacity  int
	remaining int
	standIns  []Rect
}

// NewAmmoPool 根据配置创建弹药池（满弹药）
func NewAmmoPool(cfg config.AmmoConfig) *AmmoPool {
	p := &AmmoPool{
		capacity: cfg.Count,
		standIns: make([]Rect, cfg.Count),
	}
	for i := range p.standIns {
		p.standIns[i] = Rect{
			X: cfg.StandIn.X + float64(i)*cfg.StandIn.Spacing,
			Y: cfg.StandIn.Y,
			W: cfg.StandIn.Size,
			H: cfg.StandIn.Size,
		}
	}
	p.Refill()
	return p
}

// Refill 装满弹药（仅在新一局开始时调用）
func (p *AmmoPool) Refill() {
	p.remaining = p.capacity
}

// Remaining 返回剩余弹药数
func (p *AmmoPool) Remaining() int {
	return p.remaining
}

// Consume 消耗一发弹药，弹药数不会小于 0
func (p *AmmoPool) Consume() {
	if p.remaining > 0 {
		p.remaining--
	}
}

// StandIns 返回剩余弹药对应的备用石块位置
func (p *AmmoPool) StandIns() []Rect {
	return p.standIns[:p.remaining]
}
