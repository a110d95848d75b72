package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/ecs"
	"github.com/decker502/warpfield/pkg/game"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/systems"
	"github.com/decker502/warpfield/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpaceSceneOptions 创建星空场景的参数
type SpaceSceneOptions struct {
	// Width, Height 初始视口尺寸，窗口真正的尺寸由 Resize 同步
	Width, Height int
	// Count 恒星数量，<= 0 使用配置值
	Count int
	// Reduced 以低功耗模式启动
	Reduced bool
	// Seed 随机种子，0 表示按时间随机
	Seed int64
}

// SpaceScene 全屏曲速星空背景
//
// 星空画在一张常驻的离屏画布上（每帧只覆盖半透明底色，形成拖尾），
// 画布整体贴到屏幕后，再在屏幕上直接绘制流星、星云、尘埃等装饰图层。
type SpaceScene struct {
	entityManager *ecs.EntityManager
	starfield     *systems.StarfieldSystem
	loop          *systems.FrameLoop
	background    color.RGBA

	pointer utils.PointerTracker

	// canvas 拖尾画布，尺寸与窗口一致，首次 Draw 或尺寸变化时重建
	canvas        *ebiten.Image
	canvasSurface render.Surface

	width, height int
	pendingDt     float64
}

// NewSpaceScene 创建星空场景及其全部系统
func NewSpaceScene(cfg *config.StarfieldConfig, opts SpaceSceneOptions) *SpaceScene {
	if cfg == nil {
		cfg = config.DefaultStarfieldConfig()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	em := ecs.NewEntityManager()
	starfield := systems.NewStarfieldSystem(cfg, opts.Width, opts.Height, rng)
	starfield.Initialize(opts.Count, opts.Reduced)

	loop := systems.NewFrameLoop(starfield,
		systems.NewNebulaSystem(em, cfg, opts.Width, opts.Height, rng),
		systems.NewDustSystem(em, cfg, opts.Width, opts.Height, rng),
		systems.NewShootingStarSystem(em, cfg, opts.Width, opts.Height, rng),
	)

	log.Printf("[SpaceScene] Created (%dx%d, %d entities, seed=%d)",
		opts.Width, opts.Height, em.EntityCount(), seed)

	return &SpaceScene{
		entityManager: em,
		starfield:     starfield,
		loop:          loop,
		background:    cfg.Overlay.Color.WithAlpha(1),
		width:         opts.Width,
		height:        opts.Height,
	}
}

// Update 读取指针并累计时间，实际的模拟步进在 Draw 中随显示刷新进行
func (s *SpaceScene) Update(deltaTime float64) {
	s.pendingDt += deltaTime

	if x, y, moved := s.pointer.Poll(); moved {
		s.applyPointer(x, y)
	}
}

// applyPointer 屏幕坐标归一化后交给星空
func (s *SpaceScene) applyPointer(x, y int) {
	nx, ny := utils.NormalizePointer(x, y, s.width, s.height)
	s.starfield.OnPointerMove(nx, ny)
}

// Draw 推进一帧并呈现
func (s *SpaceScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	b := screen.Bounds()
	s.ensureCanvas(b.Dx(), b.Dy())

	s.loop.Tick(s.pendingDt, s.canvasSurface)
	s.pendingDt = 0

	screen.DrawImage(s.canvas, nil)
	s.loop.DrawLayers(render.NewEbitenSurface(screen))
}

// ensureCanvas 画布尺寸与屏幕不一致时重建
// 重建后先铺满不透明底色，旧的拖尾随之清空
func (s *SpaceScene) ensureCanvas(width, height int) {
	if s.canvas != nil {
		cb := s.canvas.Bounds()
		if cb.Dx() == width && cb.Dy() == height {
			return
		}
		s.canvas.Deallocate()
	}

	s.canvas = ebiten.NewImage(width, height)
	s.canvas.Fill(s.background)
	s.canvasSurface = render.NewEbitenSurface(s.canvas)
	s.Resize(width, height)
}

// Resize 实现 game.Resizable
func (s *SpaceScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.loop.Resize(width, height)
}

// SetReducedMotion 实现 game.MotionAware
func (s *SpaceScene) SetReducedMotion(reduced bool) {
	s.loop.SetReduced(reduced)
}

// IsReducedMotion 是否处于低功耗模式
func (s *SpaceScene) IsReducedMotion() bool {
	return s.loop.IsReduced()
}

// FrameLoop 返回帧调度器
func (s *SpaceScene) FrameLoop() *systems.FrameLoop {
	return s.loop
}

// Size 当前视口尺寸
func (s *SpaceScene) Size() (int, int) {
	return s.width, s.height
}

var (
	_ game.Scene       = (*SpaceScene)(nil)
	_ game.Resizable   = (*SpaceScene)(nil)
	_ game.MotionAware = (*SpaceScene)(nil)
)
