package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/ecs"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/utils"
)

// shootingStarTailSegments 拖尾分段数，段越多渐隐越平滑
const shootingStarTailSegments = 6

// ShootingStarSystem 管理划过屏幕的流星
//
// 每颗流星是一个常驻实体，循环经历 等待 → 飞行 → 淡出 三个阶段：
//   - 从屏幕左侧外以 [-20°, -5°] 的角度向右上方飞出屏幕
//   - 飞行使用二次缓入（先慢后快），不透明度同步从 0 升到 1
//   - 到达终点后快速淡出，再随机冷却一段时间
type ShootingStarSystem struct {
	EntityManager *ecs.EntityManager

	cfg    config.ShootingStarConfig
	rng    *rand.Rand
	width  float64
	height float64
}

// NewShootingStarSystem 创建流星系统并生成 cfg.ShootingStars.Count 个流星实体
func NewShootingStarSystem(em *ecs.EntityManager, cfg *config.StarfieldConfig, width, height int, rng *rand.Rand) *ShootingStarSystem {
	if cfg == nil {
		cfg = config.DefaultStarfieldConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	ss := &ShootingStarSystem{
		EntityManager: em,
		cfg:           cfg.ShootingStars,
		rng:           rng,
		width:         float64(width),
		height:        float64(height),
	}

	for i := 0; i < ss.cfg.Count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.ShootingStarComponent{
			Phase: components.ShootingStarWaiting,
			Wait:  ss.initialDelay(i),
		})
		em.AddComponent(id, &components.PositionComponent{X: ss.cfg.StartX, Y: 0})
	}

	log.Printf("[ShootingStarSystem] Created %d shooting stars", ss.cfg.Count)
	return ss
}

// initialDelay 第 i 颗流星的首次等待时间
// 配置不足时在最后一个值之后每颗再错开 3 秒
func (ss *ShootingStarSystem) initialDelay(i int) float64 {
	delays := ss.cfg.InitialDelays
	if i < len(delays) {
		return delays[i]
	}
	last := 0.0
	if len(delays) > 0 {
		last = delays[len(delays)-1]
	}
	return last + 3*float64(i-len(delays)+1)
}

// Update 推进所有流星的状态机
func (ss *ShootingStarSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.ShootingStarComponent,
		*components.PositionComponent,
	](ss.EntityManager)

	for _, id := range entities {
		star, _ := ecs.GetComponent[*components.ShootingStarComponent](ss.EntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ss.EntityManager, id)
		ss.advance(star, pos, dt)
	}
}

// advance 推进单颗流星
func (ss *ShootingStarSystem) advance(star *components.ShootingStarComponent, pos *components.PositionComponent, dt float64) {
	star.Timer += dt

	switch star.Phase {
	case components.ShootingStarWaiting:
		if star.Timer >= star.Wait {
			ss.launch(star, pos)
		}

	case components.ShootingStarFlying:
		t := utils.Clamp01(star.Timer / star.Duration)
		eased := utils.EaseInQuad(t)
		pos.X = utils.Lerp(star.StartX, star.EndX, eased)
		pos.Y = utils.Lerp(star.StartY, star.EndY, eased)
		star.Alpha = eased

		if t >= 1 {
			star.Phase = components.ShootingStarFading
			star.Timer = 0
		}

	case components.ShootingStarFading:
		fade := ss.cfg.FadeDuration
		if fade <= 0 || star.Timer >= fade {
			star.Alpha = 0
			star.Phase = components.ShootingStarWaiting
			star.Timer = 0
			star.Wait = ss.cfg.Cooldown.Lerp(ss.rng.Float64())
			return
		}
		star.Alpha = 1 - star.Timer/fade
	}
}

// launch 随机一条新的飞行轨迹
func (ss *ShootingStarSystem) launch(star *components.ShootingStarComponent, pos *components.PositionComponent) {
	angle := ss.cfg.Angle.Lerp(ss.rng.Float64())
	rad := angle * math.Pi / 180

	star.Phase = components.ShootingStarFlying
	star.Timer = 0
	star.Angle = angle
	star.StartX = ss.cfg.StartX
	star.StartY = ss.rng.Float64() * ss.height * ss.cfg.StartYFrac
	star.EndX = ss.width + ss.cfg.EndXPad
	star.EndY = star.StartY + math.Tan(rad)*(ss.width+ss.cfg.TravelPad)
	star.Duration = ss.cfg.Duration.Lerp(ss.rng.Float64())
	star.Alpha = 0
	star.Color = ss.cfg.Colors[ss.rng.Intn(len(ss.cfg.Colors))]
	star.Launches++

	pos.X, pos.Y = star.StartX, star.StartY
}

// Draw 绘制可见的流星：逐段变细变淡的拖尾加一个亮头
func (ss *ShootingStarSystem) Draw(surface render.Surface) {
	entities := ecs.GetEntitiesWith2[
		*components.ShootingStarComponent,
		*components.PositionComponent,
	](ss.EntityManager)

	for _, id := range entities {
		star, _ := ecs.GetComponent[*components.ShootingStarComponent](ss.EntityManager, id)
		if star.Phase == components.ShootingStarWaiting || star.Alpha <= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ss.EntityManager, id)

		rad := star.Angle * math.Pi / 180
		dirX, dirY := math.Cos(rad), math.Sin(rad)

		for k := 0; k < shootingStarTailSegments; k++ {
			t0 := float64(k) / shootingStarTailSegments
			t1 := float64(k+1) / shootingStarTailSegments
			x0 := pos.X - dirX*ss.cfg.TailLength*t0
			y0 := pos.Y - dirY*ss.cfg.TailLength*t0
			x1 := pos.X - dirX*ss.cfg.TailLength*t1
			y1 := pos.Y - dirY*ss.cfg.TailLength*t1

			fade := 1 - t0
			surface.StrokeLine(x0, y0, x1, y1, ss.cfg.Width*fade, star.Color.WithAlpha(star.Alpha*fade*fade))
		}

		surface.FillCircle(pos.X, pos.Y, ss.cfg.Width, star.Color.WithAlpha(star.Alpha))
	}
}

// Resize 更新视口，正在飞行的流星保持原轨迹
func (ss *ShootingStarSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ss.width = float64(width)
	ss.height = float64(height)
}
