package components

import "github.com/decker502/warpfield/pkg/config"

// DustMoteComponent 缓慢上浮的尘埃粒子
type DustMoteComponent struct {
	AnchorX, AnchorY float64 // 视口比例
	Radius           float64
	Color            config.RGB

	// PeakAlpha 淡入后的目标透明度
	PeakAlpha float64
	FadeIn    TweenComponent

	// Float 往返漂移补间，RiseY 为负值（向上）
	Float        TweenComponent
	SwayX, RiseY float64
}
