package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level screen driven by the App (e.g., the slingshot game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Named 是一个可选接口，场景实现后 SceneManager 会在切换日志中使用该名称
type Named interface {
	Name() string
}
