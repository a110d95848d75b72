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

// DustSystem 漂浮的尘埃微粒
//
// 每颗尘埃淡入后在锚点附近缓慢上浮、左右摆动并往返。
// 低功耗模式下只绘制前一半。
type DustSystem struct {
	EntityManager *ecs.EntityManager

	count   int
	visible int
	width   float64
	height  float64
}

// NewDustSystem 创建尘埃系统并随机生成 cfg.Dust.Count 个尘埃实体
func NewDustSystem(em *ecs.EntityManager, cfg *config.StarfieldConfig, width, height int, rng *rand.Rand) *DustSystem {
	if cfg == nil {
		cfg = config.DefaultStarfieldConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	dc := cfg.Dust
	ds := &DustSystem{
		EntityManager: em,
		count:         dc.Count,
		visible:       dc.Count,
		width:         float64(width),
		height:        float64(height),
	}

	for i := 0; i < dc.Count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.DustMoteComponent{
			AnchorX:   rng.Float64(),
			AnchorY:   rng.Float64(),
			Radius:    dc.Radius.Lerp(rng.Float64()),
			Color:     dc.Colors[rng.Intn(len(dc.Colors))],
			PeakAlpha: dc.Alpha.Lerp(rng.Float64()),
			FadeIn: components.TweenComponent{
				Duration: dc.FadeIn.Lerp(rng.Float64()),
				Delay:    rng.Float64() * dc.MaxDelay,
			},
			Float: components.TweenComponent{
				Duration: dc.Duration.Lerp(rng.Float64()),
				Delay:    rng.Float64() * dc.MaxDelay,
				Yoyo:     true,
			},
			SwayX: (rng.Float64() - 0.5) * 2 * dc.Sway,
			RiseY: -dc.Rise.Lerp(rng.Float64()),
		})
	}

	log.Printf("[DustSystem] Created %d dust motes", dc.Count)
	return ds
}

// Update 推进所有尘埃的补间
func (ds *DustSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DustMoteComponent](ds.EntityManager) {
		mote, _ := ecs.GetComponent[*components.DustMoteComponent](ds.EntityManager, id)
		advanceTween(&mote.FadeIn, dt)
		advanceTween(&mote.Float, dt)
	}
}

// MoteState 计算尘埃当前位置与透明度
func (ds *DustSystem) MoteState(mote *components.DustMoteComponent) (x, y, alpha float64) {
	alpha = mote.PeakAlpha * utils.EaseOutQuad(tweenProgress(&mote.FadeIn))
	p := utils.EaseInOutSine(tweenProgress(&mote.Float))
	x = mote.AnchorX*ds.width + mote.SwayX*p
	y = mote.AnchorY*ds.height + mote.RiseY*p
	return x, y, alpha
}

// Draw 绘制可见的尘埃
func (ds *DustSystem) Draw(surface render.Surface) {
	entities := ecs.GetEntitiesWith1[*components.DustMoteComponent](ds.EntityManager)
	for i, id := range entities {
		if i >= ds.visible {
			break
		}
		mote, _ := ecs.GetComponent[*components.DustMoteComponent](ds.EntityManager, id)
		x, y, alpha := ds.MoteState(mote)
		if alpha <= 0 {
			continue
		}
		surface.FillCircle(x, y, mote.Radius, mote.Color.WithAlpha(alpha))
	}
}

// Resize 更新视口
func (ds *DustSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ds.width = float64(width)
	ds.height = float64(height)
}

// SetReduced 实现 ReducedAware：低功耗模式只保留一半尘埃
func (ds *DustSystem) SetReduced(reduced bool) {
	if reduced {
		ds.visible = ds.count / 2
	} else {
		ds.visible = ds.count
	}
}

// VisibleCount 当前会被绘制的尘埃数量
func (ds *DustSystem) VisibleCount() int {
	return ds.visible
}
