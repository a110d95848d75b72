package components

import "github.com/decker502/warpfield/pkg/config"

// NebulaOrbComponent 呼吸、漂移的星云光团
//
// 锚点是视口比例，视口变化时不需要重新生成实体。
type NebulaOrbComponent struct {
	// Index 在配置中的序号，决定淡入的错峰延迟
	Index int

	AnchorX, AnchorY float64 // 视口比例
	Radius           float64 // 基础半径（像素）
	Color            config.RGB

	// FadeIn 淡入补间（不往返）
	FadeIn TweenComponent

	// Drift 漂移补间及目标偏移（像素）
	Drift          TweenComponent
	DriftX, DriftY float64

	// Breath 呼吸补间及最大缩放
	Breath      TweenComponent
	BreathScale float64
}
