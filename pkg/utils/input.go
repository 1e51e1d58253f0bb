// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/slingshot/pkg/gameplay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 一帧内的指针原始状态
// 同时覆盖鼠标左键和第一个触摸点
type PointerSample struct {
	JustPressed  bool
	JustReleased bool
	X, Y         int
}

// 保存最后一次触摸位置（触摸释放时 TouchPosition 已不可用）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧读取输入之前调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// ReadPointer 读取当前帧的指针状态，优先检测触摸
func ReadPointer() PointerSample {
	var s PointerSample

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		s.JustPressed = true
		s.X, s.Y = ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = s.X, s.Y
		return s
	}
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		s.JustReleased = true
		s.X, s.Y = lastTouchX, lastTouchY
		return s
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		s.X, s.Y = ebiten.TouchPosition(ids[0])
		return s
	}

	s.X, s.Y = ebiten.CursorPosition()
	s.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return s
}

// PointerTranslator 把逐帧采样转换为按下/移动/松开事件
type PointerTranslator struct {
	lastX, lastY int
	seen         bool
}

// Translate 返回本帧应投递的指针事件（按发生顺序）
// 位置不变的帧不产生移动事件
func (pt *PointerTranslator) Translate(s PointerSample) []gameplay.PointerEvent {
	var events []gameplay.PointerEvent
	x, y := float64(s.X), float64(s.Y)

	if s.JustPressed {
		events = append(events, gameplay.PointerEvent{Action: gameplay.PointerPressed, X: x, Y: y})
	} else if !pt.seen || s.X != pt.lastX || s.Y != pt.lastY {
		events = append(events, gameplay.PointerEvent{Action: gameplay.PointerMoved, X: x, Y: y})
	}
	if s.JustReleased {
		events = append(events, gameplay.PointerEvent{Action: gameplay.PointerReleased, X: x, Y: y})
	}

	pt.lastX, pt.lastY = s.X, s.Y
	pt.seen = true
	return events
}

// KeySample 一帧内某个按键的原始状态
type KeySample struct {
	JustPressed  bool
	JustReleased bool
}

// ReadKey 读取按键的本帧状态
func ReadKey(key ebiten.Key) KeySample {
	return KeySample{
		JustPressed:  inpututil.IsKeyJustPressed(key),
		JustReleased: inpututil.IsKeyJustReleased(key),
	}
}

// KeyEvents 把按键采样转换为游戏按键事件
func KeyEvents(key gameplay.Key, s KeySample) []gameplay.KeyEvent {
	var events []gameplay.KeyEvent
	if s.JustPressed {
		events = append(events, gameplay.KeyEvent{Key: key, Action: gameplay.KeyPressed})
	}
	if s.JustReleased {
		events = append(events, gameplay.KeyEvent{Key: key, Action: gameplay.KeyReleased})
	}
	return events
}

// IsAltPressed 任一 Alt 键是否按住
func IsAltPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

// IsFullscreenToggleJustPressed F11 或 Alt+Enter 是否刚刚按下
func IsFullscreenToggleJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return true
	}
	return IsAltPressed() && inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
