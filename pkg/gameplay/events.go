package gameplay

// Key 游戏关心的按键
type Key int

const (
	// KeyConfirm 确认键（空格）
	KeyConfirm Key = iota
	// KeyCancel 取消/退出键（Esc），由宿主处理
	KeyCancel
	// KeyFullscreen 全屏切换，由宿主处理
	KeyFullscreen
)

// KeyAction 按键动作
type KeyAction int

const (
	// KeyPressed 按下
	KeyPressed KeyAction = iota
	// KeyReleased 松开
	KeyReleased
)

// KeyEvent 一次离散按键事件
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// PointerAction 指针（鼠标左键或触摸）动作
type PointerAction int

const (
	// PointerPressed 按下
	PointerPressed PointerAction = iota
	// PointerMoved 位置变化
	PointerMoved
	// PointerReleased 松开
	PointerReleased
)

// PointerEvent 指针事件，X/Y 为逻辑画布坐标
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
}
