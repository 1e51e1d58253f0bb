package config

import (
	"math"
	"testing"
)

func TestFixedDeltaTime(t *testing.T) {
	got := FixedDeltaTime()
	want := 1.0 / 60.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("FixedDeltaTime() = %v, want %v", got, want)
	}
}

func TestCanvasAspectRatio(t *testing.T) {
	// 逻辑画布与初始窗口保持 16:9
	canvas := float64(GameWindowWidth) / float64(GameWindowHeight)
	window := float64(InitialWindowWidth) / float64(InitialWindowHeight)
	if math.Abs(canvas-window) > 1e-9 {
		t.Errorf("canvas aspect %.4f != window aspect %.4f", canvas, window)
	}
}
