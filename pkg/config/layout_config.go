package config

// 布局配置常量
// 本文件定义窗口尺寸和逻辑画布尺寸，所有游戏坐标均使用逻辑画布坐标系

const (
	// GameWindowWidth 是逻辑画布宽度（像素）
	// Ebitengine 会把逻辑画布缩放到实际窗口大小
	GameWindowWidth = 1920

	// GameWindowHeight 是逻辑画布高度（像素）
	GameWindowHeight = 1080

	// InitialWindowWidth 是启动时的窗口宽度（非全屏）
	InitialWindowWidth = 1280

	// InitialWindowHeight 是启动时的窗口高度（非全屏）
	InitialWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Angry Birds!"

	// TicksPerSecond 逻辑帧率，App 以 1/TicksPerSecond 作为固定 deltaTime
	TicksPerSecond = 60
)

// FixedDeltaTime 返回每个逻辑帧的固定时间步长（秒）
func FixedDeltaTime() float64 {
	return 1.0 / float64(TicksPerSecond)
}
