package gameplay

// Projectile 弹弓上唯一可发射的石块
type Projectile struct {
	Pos      Vec2    // 左上角位置
	Velocity Vec2    // 速度（发射时由拉弓向量确定）
	Size     float64 // 正方形碰撞盒边长
	Grabbed  bool    // 正在被指针拖拽
	InFlight bool    // 已发射，由速度和重力驱动
}

// Box 返回石块的碰撞盒
func (p Projectile) Box() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size}
}

// ResetTo 把石块放回发射点，速度清零并清除所有标志
func (p *Projectile) ResetTo(anchor Vec2) {
	p.Pos = anchor
	p.Velocity = Vec2{}
	p.Grabbed = false
	p.InFlight = false
}

// Launch 以 anchor - Pos 为初速度发射（弹弓回拉方向的反方向）
func (p *Projectile) Launch(anchor Vec2) {
	p.Velocity = anchor.Sub(p.Pos)
	p.Grabbed = false
	p.InFlight = true
}

// Integrate 半隐式欧拉积分：先施加重力再移动
//
// 参数：
//   - dt: 时间步长（秒）
//   - gravity: 向下的重力加速度（Y 轴向下为正）
//   - speed: 飞行速度倍率
func (p *Projectile) Integrate(dt, gravity, speed float64) {
	p.Velocity.Y += gravity * dt
	p.Pos = p.Pos.Add(p.Velocity.Scale(speed * dt))
}
