package gameplay

import "image/color"

// SpriteID 精灵句柄：资源管理器中的图片资源ID
// GameController 只引用句柄，不负责加载和释放图片
type SpriteID string

// Renderer 绘制接口，由宿主引擎实现
type Renderer interface {
	// DrawSprite 在 (x, y) 处按 w x h 尺寸绘制精灵
	DrawSprite(id SpriteID, x, y, w, h float64)
	// DrawText 在 (x, y) 处绘制文本
	DrawText(s string, x, y float64, c color.Color)
	// DrawLine 绘制线段
	DrawLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Assets 游戏使用的精灵句柄
type Assets struct {
	Menu       SpriteID // 主菜单全屏图
	Background SpriteID // 关卡背景
	Projectile SpriteID // 弹弓上的石块
	StandIn    SpriteID // 备用石块
	Target     SpriteID // 目标（外星人）
}
