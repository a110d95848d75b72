package systems

import (
	"log"

	"github.com/decker502/warpfield/pkg/render"
)

// FrameLayer 叠加在星空之上的装饰图层（流星、星云、尘埃）
//
// 图层不画进拖尾画布，每次呈现时重新绘制，所以不会被覆盖层"拖影"。
type FrameLayer interface {
	// Update 推进图层状态，dt 为距上次更新的秒数
	Update(dt float64)

	// Draw 绘制图层当前状态
	Draw(surface render.Surface)

	// Resize 视口尺寸变化
	Resize(width, height int)
}

// ReducedAware 可选接口：图层需要感知低功耗模式时实现
type ReducedAware interface {
	SetReduced(reduced bool)
}

// FrameLoop 显式的帧调度
//
// 实时运行时由 ebiten 的 Draw 回调每帧调用一次 Tick（与显示刷新同步，
// 不会忙等）；测试和出图工具用 Step 手动步进，结果完全可复现。
//
// 低功耗模式下隔帧呈现：被跳过的帧不推进模拟，图层的 dt 累计到下一次呈现。
type FrameLoop struct {
	starfield *StarfieldSystem
	layers    []FrameLayer

	reduced   bool
	ticks     int
	presented int
	pendingDt float64
}

// NewFrameLoop 创建帧调度，星空总是第一个被绘制
func NewFrameLoop(starfield *StarfieldSystem, layers ...FrameLayer) *FrameLoop {
	fl := &FrameLoop{
		starfield: starfield,
		reduced:   starfield.IsReduced(),
	}
	for _, layer := range layers {
		fl.AddLayer(layer)
	}
	return fl
}

// AddLayer 追加一个图层，绘制顺序与添加顺序一致
func (fl *FrameLoop) AddLayer(layer FrameLayer) {
	fl.layers = append(fl.layers, layer)
	if aware, ok := layer.(ReducedAware); ok {
		aware.SetReduced(fl.reduced)
	}
}

// Tick 呈现一帧
//
// 返回 false 表示该帧在低功耗模式下被跳过，canvas 没有变化。
func (fl *FrameLoop) Tick(dt float64, canvas render.Surface) bool {
	fl.ticks++
	fl.pendingDt += dt

	if fl.reduced && fl.ticks%2 == 0 {
		return false
	}

	fl.starfield.RenderFrame(canvas)
	for _, layer := range fl.layers {
		layer.Update(fl.pendingDt)
	}
	fl.pendingDt = 0
	fl.presented++
	return true
}

// Step 手动步进 n 帧，返回实际呈现的帧数
func (fl *FrameLoop) Step(n int, dt float64, canvas render.Surface) int {
	presented := 0
	for i := 0; i < n; i++ {
		if fl.Tick(dt, canvas) {
			presented++
		}
	}
	return presented
}

// DrawLayers 把所有装饰图层画到 surface 上（通常是屏幕，而不是拖尾画布）
func (fl *FrameLoop) DrawLayers(surface render.Surface) {
	if surface == nil {
		return
	}
	for _, layer := range fl.layers {
		layer.Draw(surface)
	}
}

// Resize 视口变化：同步星空与所有图层
func (fl *FrameLoop) Resize(width, height int) {
	fl.starfield.OnResize(width, height)
	for _, layer := range fl.layers {
		layer.Resize(width, height)
	}
}

// SetReduced 切换低功耗模式
//
// 星空按新模式重新分配恒星（保留 Initialize 时要求的数量），
// 实现了 ReducedAware 的图层同步切换。
func (fl *FrameLoop) SetReduced(reduced bool) {
	if fl.reduced == reduced && fl.starfield.IsReady() {
		return
	}
	fl.reduced = reduced
	fl.starfield.SetReduced(reduced)
	for _, layer := range fl.layers {
		if aware, ok := layer.(ReducedAware); ok {
			aware.SetReduced(reduced)
		}
	}
	log.Printf("[FrameLoop] Reduced mode: %v", reduced)
}

// IsReduced 是否处于低功耗模式
func (fl *FrameLoop) IsReduced() bool {
	return fl.reduced
}

// Starfield 返回星空模拟器
func (fl *FrameLoop) Starfield() *StarfieldSystem {
	return fl.starfield
}

// TickCount 已调用 Tick 的次数（包括被跳过的帧）
func (fl *FrameLoop) TickCount() int {
	return fl.ticks
}

// PresentedCount 实际呈现的帧数
func (fl *FrameLoop) PresentedCount() int {
	return fl.presented
}
