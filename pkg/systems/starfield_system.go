package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/utils"
)

// 中性（无色相）恒星的固定色调
var (
	neutralTrailRGB = [3]uint8{200, 210, 255}
	neutralDotRGB   = [3]uint8{220, 230, 255}
	neutralGlowRGB  = [3]uint8{180, 200, 255}
)

// Viewport 画布尺寸与中心
//
// 中心由尺寸推导，视口变化时只需要 OnResize 更新尺寸，
// 下一帧的消失点自然跟着变。
type Viewport struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// newViewport 根据尺寸计算中心
func newViewport(width, height int) Viewport {
	return Viewport{
		Width:   float64(width),
		Height:  float64(height),
		CenterX: float64(width) / 2,
		CenterY: float64(height) / 2,
	}
}

// StarfieldSystem 曲速星空模拟器
//
// 持有一组定长的恒星（arena），每帧：
//  1. 覆盖半透明底色形成拖尾
//  2. 根据指针计算消失点（视差）
//  3. 每颗恒星深度递减，越过阈值则原地重生到远处
//  4. 针孔投影到屏幕，剔除屏幕外的恒星
//  5. 按深度计算亮度与尺寸，绘制拖尾线、光晕和恒星本体
//
// 所有状态都在结构体内，没有包级全局变量；绘制目标通过 render.Surface 注入。
// 调度由 FrameLoop 负责，本系统从不自己循环。
type StarfieldSystem struct {
	tuning  config.StarfieldTuning
	overlay config.OverlayConfig
	mobile  bool

	rng *rand.Rand

	// stars 定长数组，重生时原地覆盖
	stars []components.Star

	// requested 调用方显式要求的数量，0 表示按配置
	requested int

	viewport Viewport

	// 归一化指针位置 [0,1]，默认屏幕中心
	pointerX float64
	pointerY float64

	reduced bool
	ready   bool

	frames          int
	respawns        int
	warnedNoSurface bool
}

// NewStarfieldSystem 创建星空模拟器
//
// 参数：
//   - cfg: 调参配置（nil 时使用默认配置）
//   - width, height: 初始视口尺寸
//   - rng: 随机源；传入固定种子可获得可复现的星空，nil 时使用全局随机源
//
// 创建后需要调用 Initialize 分配恒星。
func NewStarfieldSystem(cfg *config.StarfieldConfig, width, height int, rng *rand.Rand) *StarfieldSystem {
	if cfg == nil {
		cfg = config.DefaultStarfieldConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &StarfieldSystem{
		tuning:   cfg.Starfield,
		overlay:  cfg.Overlay,
		mobile:   utils.IsMobile(),
		rng:      rng,
		viewport: newViewport(width, height),
		pointerX: 0.5,
		pointerY: 0.5,
	}
}

// Initialize 分配恒星并随机化位置、深度、色相
//
// count <= 0 时按模式使用配置中的数量（Count / ReducedCount）；
// 显式数量在低功耗模式下不超过 ReducedCount。
// count 会被记住，之后 SetReduced 切换模式时沿用。
func (s *StarfieldSystem) Initialize(count int, reduced bool) {
	if count < 0 {
		count = 0
	}
	s.requested = count
	s.allocate(reduced)
}

// SetReduced 切换低功耗模式并按记住的数量重新分配恒星
func (s *StarfieldSystem) SetReduced(reduced bool) {
	s.allocate(reduced)
}

// countFor 指定模式下实际分配的恒星数量
func (s *StarfieldSystem) countFor(reduced bool) int {
	if s.requested <= 0 {
		return s.tuning.CountFor(reduced)
	}
	if reduced {
		return min(s.requested, s.tuning.ReducedCount)
	}
	return s.requested
}

func (s *StarfieldSystem) allocate(reduced bool) {
	count := s.countFor(reduced)

	s.reduced = reduced
	s.stars = make([]components.Star, count)
	for i := range s.stars {
		s.stars[i] = s.newStar(s.tuning.InitialDepth)
	}
	s.ready = true
	s.warnedNoSurface = false

	log.Printf("[StarfieldSystem] Initialized %d stars (reduced=%v, viewport %.0fx%.0f)",
		count, reduced, s.viewport.Width, s.viewport.Height)
}

// newStar 生成一颗随机恒星，深度在 depth 区间内均匀分布
func (s *StarfieldSystem) newStar(depth config.Range) components.Star {
	star := components.Star{
		X: (s.rng.Float64() - 0.5) * 2, // -1 ~ 1
		Y: (s.rng.Float64() - 0.5) * 2,
		Z: depth.Lerp(s.rng.Float64()),
	}
	if s.rng.Float64() < s.tuning.HueProbability {
		star.Hue = s.tuning.Hue.Lerp(s.rng.Float64())
	}
	return star
}

// OnPointerMove 更新归一化指针位置，超出 [0,1] 的值会被截断
func (s *StarfieldSystem) OnPointerMove(normalizedX, normalizedY float64) {
	s.pointerX = utils.Clamp01(normalizedX)
	s.pointerY = utils.Clamp01(normalizedY)
}

// OnResize 更新视口尺寸与中心
//
// 恒星的 x/y/z 不受影响；非正尺寸（窗口最小化）被忽略。
func (s *StarfieldSystem) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if float64(width) == s.viewport.Width && float64(height) == s.viewport.Height {
		return
	}
	s.viewport = newViewport(width, height)
	log.Printf("[StarfieldSystem] Viewport resized to %dx%d", width, height)
}

// SetMobile 覆盖设备类型（决定拖尾覆盖层透明度）
func (s *StarfieldSystem) SetMobile(mobile bool) {
	s.mobile = mobile
}

// RenderFrame 推进一步并绘制到 surface
//
// surface 为 nil 或尚未 Initialize 时静默跳过（只记录一次日志），
// 特效降级为不显示，不影响页面其他部分。
func (s *StarfieldSystem) RenderFrame(surface render.Surface) {
	if !s.ready || surface == nil {
		if !s.warnedNoSurface {
			log.Printf("[StarfieldSystem] Skipping frame: ready=%v surface=%v", s.ready, surface != nil)
			s.warnedNoSurface = true
		}
		return
	}

	s.frames++

	// 1. 半透明覆盖层，上一帧的内容逐渐变暗形成拖尾
	surface.FillRect(0, 0, s.viewport.Width, s.viewport.Height,
		s.overlay.Color.WithAlpha(s.overlay.AlphaFor(s.mobile)))

	// 2. 消失点跟随指针
	vpx, vpy := s.VanishingPoint()

	step := s.tuning.FrameStep()
	margin := s.tuning.CullMargin
	w, h := s.viewport.Width, s.viewport.Height

	for i := range s.stars {
		star := &s.stars[i]

		// 3. 向观察者移动
		star.Z -= step
		if star.Z <= s.tuning.MinDepth {
			*star = s.newStar(s.tuning.RespawnDepth)
			s.respawns++
			continue
		}

		// 4. 投影
		sx, sy := s.project(vpx, vpy, star.X, star.Y, star.Z)

		// 5. 屏幕外剔除
		if sx < -margin || sx > w+margin || sy < -margin || sy > h+margin {
			continue
		}

		// 6. 亮度与尺寸
		brightness := s.Brightness(star.Z)
		size := s.Size(star.Z)
		trailClr, dotClr, glowClr := s.starColors(star, brightness)

		if !s.reduced {
			// 7. 拖尾：上一帧的位置（移动前的深度）到当前位置
			px, py := s.project(vpx, vpy, star.X, star.Y, star.Z+step)
			surface.StrokeLine(px, py, sx, sy, size*s.tuning.TrailWidthScale, trailClr)

			// 8a. 近处的大恒星加一圈低透明度光晕（画在本体之下）
			if size > s.tuning.GlowThreshold {
				surface.FillCircle(sx, sy, size*s.tuning.GlowScale, glowClr)
			}
		}

		// 8b. 恒星本体
		surface.FillCircle(sx, sy, size, dotClr)
	}
}

// starColors 计算拖尾、本体、光晕三种颜色
func (s *StarfieldSystem) starColors(star *components.Star, brightness float64) (trail, dot, glow color.RGBA) {
	trailAlpha := brightness * s.tuning.TrailAlpha
	glowAlpha := brightness * s.tuning.GlowAlpha

	if star.IsTinted() {
		return utils.HSLA(star.Hue, 0.8, 0.75, trailAlpha),
			utils.HSLA(star.Hue, 0.8, 0.8, brightness),
			utils.HSLA(star.Hue, 0.7, 0.7, glowAlpha)
	}

	return utils.RGBA(neutralTrailRGB[0], neutralTrailRGB[1], neutralTrailRGB[2], trailAlpha),
		utils.RGBA(neutralDotRGB[0], neutralDotRGB[1], neutralDotRGB[2], brightness),
		utils.RGBA(neutralGlowRGB[0], neutralGlowRGB[1], neutralGlowRGB[2], glowAlpha)
}

// VanishingPoint 当前消失点：画布中心加上指针偏移的一部分
func (s *StarfieldSystem) VanishingPoint() (float64, float64) {
	vpx := s.viewport.CenterX + (s.pointerX-0.5)*s.viewport.Width*s.tuning.Parallax
	vpy := s.viewport.CenterY + (s.pointerY-0.5)*s.viewport.Height*s.tuning.Parallax
	return vpx, vpy
}

// Project 以当前消失点把恒星按深度 z 投影到屏幕坐标
func (s *StarfieldSystem) Project(star components.Star, z float64) (float64, float64) {
	vpx, vpy := s.VanishingPoint()
	return s.project(vpx, vpy, star.X, star.Y, z)
}

// project 针孔投影：screen = vp + (x,y) * (1/z) * 半视口
// z 越小位移越大，形成向外飞散的曲速效果
func (s *StarfieldSystem) project(vpx, vpy, x, y, z float64) (float64, float64) {
	scale := 1 / z
	return vpx + x*scale*s.viewport.Width*0.5,
		vpy + y*scale*s.viewport.Height*0.5
}

// Brightness 深度对应的亮度 [0,1]，越近越亮
// z >= FadeDepth 时为 0，新重生的恒星由此淡入
func (s *StarfieldSystem) Brightness(z float64) float64 {
	return utils.Clamp01((s.tuning.FadeDepth - z) / s.tuning.FadeRange)
}

// Size 深度对应的半径（像素），限制在 [MinSize, MaxSize]
func (s *StarfieldSystem) Size(z float64) float64 {
	size := (s.tuning.FadeDepth - z) * s.tuning.SizeScale
	if size < s.tuning.MinSize {
		return s.tuning.MinSize
	}
	if size > s.tuning.MaxSize {
		return s.tuning.MaxSize
	}
	return size
}

// Stars 返回恒星数组（只读视图，调用方不得修改）
func (s *StarfieldSystem) Stars() []components.Star {
	return s.stars
}

// Viewport 返回当前视口
func (s *StarfieldSystem) Viewport() Viewport {
	return s.viewport
}

// IsReduced 是否处于低功耗模式
func (s *StarfieldSystem) IsReduced() bool {
	return s.reduced
}

// IsReady 是否已经 Initialize
func (s *StarfieldSystem) IsReady() bool {
	return s.ready
}

// FrameCount 已绘制的帧数
func (s *StarfieldSystem) FrameCount() int {
	return s.frames
}

// RespawnCount 累计重生次数
func (s *StarfieldSystem) RespawnCount() int {
	return s.respawns
}
