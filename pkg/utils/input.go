// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerTracker 跟踪指针（鼠标或触摸）的移动
//
// 只有指针真正移动时才上报，这样在触摸设备上 CursorPosition 返回的 (0,0)
// 不会把消失点拉到左上角；初始位置视为屏幕中心，直到第一次移动。
type PointerTracker struct {
	lastX, lastY int
	seen         bool
}

// Poll 读取当前帧的指针位置
// 同时支持鼠标和触摸输入，优先检测触摸
//
// 返回：
//   - x, y: 指针位置（屏幕坐标）
//   - moved: 与上一次观测相比是否移动过
func (p *PointerTracker) Poll() (x, y int, moved bool) {
	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		// 触摸总是视为有效的移动
		p.seen = true
		p.lastX, p.lastY = x, y
		return x, y, true
	}

	// 其次检查鼠标（桌面设备）
	x, y = ebiten.CursorPosition()
	return x, y, p.Observe(x, y)
}

// Observe 记录一次鼠标位置，返回是否相对上一次发生了移动
// 第一次观测只建立基线，不算移动
func (p *PointerTracker) Observe(x, y int) bool {
	if !p.seen {
		p.seen = true
		p.lastX, p.lastY = x, y
		return false
	}
	if x == p.lastX && y == p.lastY {
		return false
	}
	p.lastX, p.lastY = x, y
	return true
}

// NormalizePointer 将屏幕坐标归一化到 [0,1]
// 视口尺寸无效时返回中心 (0.5, 0.5)
func NormalizePointer(x, y, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0.5, 0.5
	}
	nx := Clamp01(float64(x) / float64(width))
	ny := Clamp01(float64(y) / float64(height))
	return nx, ny
}
