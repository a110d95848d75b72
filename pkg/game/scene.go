package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen scene driven by the ebiten game loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景需要感知窗口尺寸变化时实现
//
// SceneManager.Resize 只在尺寸真正变化时转发，实现方不需要自己去重。
type Resizable interface {
	Resize(width, height int)
}

// MotionAware 是一个可选接口，场景支持低功耗（减少动画）模式时实现
type MotionAware interface {
	SetReducedMotion(reduced bool)
}
