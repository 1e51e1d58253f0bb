package gameplay

import "math"

// Vec2 二维向量（逻辑画布坐标，Y 轴向下）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 返回向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center 返回中心点
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Expand 向四周扩展 d 像素
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ContainsPoint 检查点是否在矩形内（含边界）
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Contains 检查 inner 是否完全位于 r 内部（含边界）
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.Right() <= r.Right() &&
		inner.Bottom() <= r.Bottom()
}

// Overlaps 检查两个矩形是否重叠（仅接触边界不算重叠）
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}
