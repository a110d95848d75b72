package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	// 最近一次的窗口尺寸，切换场景时同步给新场景
	width, height int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 已知窗口尺寸时立即同步给新场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 记录窗口尺寸，变化时转发给当前场景
//
// ebiten 每帧都会调用 Layout，这里去重后只在尺寸变化时通知；
// 非正尺寸（窗口最小化）被忽略。
func (sm *SceneManager) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	log.Printf("[SceneManager] Window resized to %dx%d", width, height)

	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// SetReducedMotion 切换当前场景的低功耗模式
// 返回 false 表示当前场景不支持
func (sm *SceneManager) SetReducedMotion(reduced bool) bool {
	m, ok := sm.currentScene.(MotionAware)
	if !ok {
		return false
	}
	m.SetReducedMotion(reduced)
	return true
}

// Size 返回最近一次记录的窗口尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}
