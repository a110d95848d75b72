package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/ecs"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/utils"
)

// nebulaRingAlpha 单层同心圆的透明度系数，多层叠加形成中心亮、边缘暗的径向衰减
const nebulaRingAlpha = 0.06

// breathStagger 呼吸补间按序号错开的延迟（秒）
const breathStagger = 0.5

// NebulaSystem 星云光团：缓慢淡入、往返漂移、呼吸缩放
//
// 低功耗模式下整层不绘制（补间时间照常推进，恢复时不会跳变）。
type NebulaSystem struct {
	EntityManager *ecs.EntityManager

	cfg     config.NebulaConfig
	width   float64
	height  float64
	reduced bool
}

// NewNebulaSystem 创建星云系统，按配置生成光团实体
func NewNebulaSystem(em *ecs.EntityManager, cfg *config.StarfieldConfig, width, height int, rng *rand.Rand) *NebulaSystem {
	if cfg == nil {
		cfg = config.DefaultStarfieldConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	ns := &NebulaSystem{
		EntityManager: em,
		cfg:           cfg.Nebula,
		width:         float64(width),
		height:        float64(height),
	}

	for i, orb := range ns.cfg.Orbs {
		id := em.CreateEntity()
		em.AddComponent(id, &components.NebulaOrbComponent{
			Index:   i,
			AnchorX: orb.AnchorX,
			AnchorY: orb.AnchorY,
			Radius:  orb.Radius,
			Color:   orb.Color,
			FadeIn: components.TweenComponent{
				Duration: ns.cfg.FadeInDuration,
				Delay:    float64(i) * ns.cfg.FadeInStagger,
			},
			Drift: components.TweenComponent{
				Duration: ns.cfg.DriftDuration.Lerp(rng.Float64()),
				Delay:    float64(i) * ns.cfg.DriftStagger,
				Yoyo:     true,
			},
			DriftX: (rng.Float64() - 0.5) * 2 * ns.cfg.DriftX,
			DriftY: (rng.Float64() - 0.5) * 2 * ns.cfg.DriftY,
			Breath: components.TweenComponent{
				Duration: ns.cfg.BreathDuration.Lerp(rng.Float64()),
				Delay:    float64(i) * breathStagger,
				Yoyo:     true,
			},
			BreathScale: ns.cfg.BreathScale.Lerp(rng.Float64()),
		})
	}

	log.Printf("[NebulaSystem] Created %d nebula orbs", len(ns.cfg.Orbs))
	return ns
}

// Update 推进所有补间
func (ns *NebulaSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.NebulaOrbComponent](ns.EntityManager) {
		orb, _ := ecs.GetComponent[*components.NebulaOrbComponent](ns.EntityManager, id)
		advanceTween(&orb.FadeIn, dt)
		advanceTween(&orb.Drift, dt)
		advanceTween(&orb.Breath, dt)
	}
}

// OrbState 计算光团当前的中心、半径与透明度
func (ns *NebulaSystem) OrbState(orb *components.NebulaOrbComponent) (cx, cy, radius, alpha float64) {
	alpha = ns.cfg.PeakAlpha * utils.EaseOutQuad(tweenProgress(&orb.FadeIn))

	drift := utils.EaseInOutSine(tweenProgress(&orb.Drift))
	cx = orb.AnchorX*ns.width + orb.DriftX*drift
	cy = orb.AnchorY*ns.height + orb.DriftY*drift

	breath := utils.EaseInOutSine(tweenProgress(&orb.Breath))
	radius = orb.Radius * utils.Lerp(1, orb.BreathScale, breath)
	return cx, cy, radius, alpha
}

// Draw 以同心圆叠加的方式绘制柔和的光团
func (ns *NebulaSystem) Draw(surface render.Surface) {
	if ns.reduced {
		return
	}

	rings := ns.cfg.Rings
	for _, id := range ecs.GetEntitiesWith1[*components.NebulaOrbComponent](ns.EntityManager) {
		orb, _ := ecs.GetComponent[*components.NebulaOrbComponent](ns.EntityManager, id)
		cx, cy, radius, alpha := ns.OrbState(orb)
		if alpha <= 0 {
			continue
		}

		// 由外向内
		for k := 0; k < rings; k++ {
			r := radius * (1 - float64(k)/float64(rings))
			surface.FillCircle(cx, cy, r, orb.Color.WithAlpha(alpha*nebulaRingAlpha))
		}
	}
}

// Resize 更新视口
func (ns *NebulaSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ns.width = float64(width)
	ns.height = float64(height)
}

// SetReduced 实现 ReducedAware
func (ns *NebulaSystem) SetReduced(reduced bool) {
	ns.reduced = reduced
}
