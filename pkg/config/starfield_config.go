package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/warpfield/pkg/embedded"
)

// DefaultStarfieldConfigPath 内嵌调参文件路径
const DefaultStarfieldConfigPath = "data/starfield.yaml"

// StarfieldConfig 背景特效的全部调参
//
// 所有数值都是视觉调校常量，没有物理意义；改动后用
// cmd/starfield_snapshot 出图对比即可。
//
// 配置文件位置: data/starfield.yaml
type StarfieldConfig struct {
	// Starfield 曲速星空参数
	Starfield StarfieldTuning `yaml:"starfield"`

	// Overlay 每帧覆盖的半透明底色（产生拖尾）
	Overlay OverlayConfig `yaml:"overlay"`

	// ShootingStars 流星参数
	ShootingStars ShootingStarConfig `yaml:"shootingStars"`

	// Nebula 星云光团参数
	Nebula NebulaConfig `yaml:"nebula"`

	// Dust 漂浮尘埃参数
	Dust DustConfig `yaml:"dust"`
}

// Range 闭区间 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// unitRange 概率与透明度的合法区间
var unitRange = Range{Min: 0, Max: 1}

// Contains 判断 v 是否落在区间内（含端点）
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Lerp 按 t ∈ [0,1] 在区间内插值，配合 rand.Float64() 做均匀采样
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min(%.3f) > max(%.3f)", name, r.Min, r.Max)
	}
	return nil
}

// RGB 8 位颜色，透明度由各图层单独计算
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// WithAlpha 转成预乘 alpha 的 color.RGBA
func (c RGB) WithAlpha(alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}

// StarfieldTuning 曲速星空调参
type StarfieldTuning struct {
	Count        int     `yaml:"count"`        // 桌面端恒星数量
	ReducedCount int     `yaml:"reducedCount"` // 低功耗模式恒星数量
	Speed        float64 `yaml:"speed"`        // 基础曲速
	DepthStep    float64 `yaml:"depthStep"`    // 每帧深度减少量 = Speed * DepthStep

	InitialDepth Range   `yaml:"initialDepth"` // 初始化时的深度分布
	RespawnDepth Range   `yaml:"respawnDepth"` // 重生时的深度分布（远处）
	MinDepth     float64 `yaml:"minDepth"`     // 深度 <= MinDepth 时重生

	HueProbability float64 `yaml:"hueProbability"` // 带色相（蓝/青）恒星的概率
	Hue            Range   `yaml:"hue"`            // 色相范围（度）

	Parallax   float64 `yaml:"parallax"`   // 消失点跟随指针的比例
	CullMargin float64 `yaml:"cullMargin"` // 屏幕外剔除边距（像素）

	// 亮度 = (FadeDepth - z) / FadeRange，尺寸 = (FadeDepth - z) * SizeScale
	FadeDepth float64 `yaml:"fadeDepth"`
	FadeRange float64 `yaml:"fadeRange"`
	SizeScale float64 `yaml:"sizeScale"`
	MinSize   float64 `yaml:"minSize"`
	MaxSize   float64 `yaml:"maxSize"`

	TrailWidthScale float64 `yaml:"trailWidthScale"`
	TrailAlpha      float64 `yaml:"trailAlpha"`

	GlowThreshold float64 `yaml:"glowThreshold"` // 尺寸超过该值才绘制光晕
	GlowScale     float64 `yaml:"glowScale"`
	GlowAlpha     float64 `yaml:"glowAlpha"`
}

// OverlayConfig 拖尾覆盖层
type OverlayConfig struct {
	Color        RGB     `yaml:"color"`
	DesktopAlpha float64 `yaml:"desktopAlpha"`
	MobileAlpha  float64 `yaml:"mobileAlpha"`
}

// ShootingStarConfig 流星参数
type ShootingStarConfig struct {
	Count         int       `yaml:"count"`
	InitialDelays []float64 `yaml:"initialDelays"` // 每颗流星首次出现前的延迟（秒）
	StartX        float64   `yaml:"startX"`        // 起点 X（屏幕左侧外）
	StartYFrac    float64   `yaml:"startYFrac"`    // 起点 Y 在 [0, H*StartYFrac] 内随机
	EndXPad       float64   `yaml:"endXPad"`       // 终点 X = W + EndXPad
	TravelPad     float64   `yaml:"travelPad"`     // 终点 Y = startY + tan(angle) * (W + TravelPad)
	Angle         Range     `yaml:"angle"`         // 飞行角度（度，负值向上）
	Duration      Range     `yaml:"duration"`      // 飞行时间（秒）
	FadeDuration  float64   `yaml:"fadeDuration"`  // 到达终点后的淡出时间（秒）
	Cooldown      Range     `yaml:"cooldown"`      // 下一次出现前的间隔（秒）
	TailLength    float64   `yaml:"tailLength"`    // 拖尾长度（像素）
	Width         float64   `yaml:"width"`         // 头部线宽（像素）
	Colors        []RGB     `yaml:"colors"`
}

// NebulaOrbConfig 单个星云光团
type NebulaOrbConfig struct {
	AnchorX float64 `yaml:"anchorX"` // 视口宽度比例
	AnchorY float64 `yaml:"anchorY"` // 视口高度比例
	Radius  float64 `yaml:"radius"`  // 像素
	Color   RGB     `yaml:"color"`
}

// NebulaConfig 星云参数
type NebulaConfig struct {
	Orbs           []NebulaOrbConfig `yaml:"orbs"`
	PeakAlpha      float64           `yaml:"peakAlpha"`
	FadeInDuration float64           `yaml:"fadeInDuration"`
	FadeInStagger  float64           `yaml:"fadeInStagger"`
	DriftX         float64           `yaml:"driftX"`
	DriftY         float64           `yaml:"driftY"`
	DriftDuration  Range             `yaml:"driftDuration"`
	DriftStagger   float64           `yaml:"driftStagger"`
	BreathScale    Range             `yaml:"breathScale"`
	BreathDuration Range             `yaml:"breathDuration"`
	Rings          int               `yaml:"rings"` // 径向衰减的同心圆层数
}

// DustConfig 漂浮尘埃参数
type DustConfig struct {
	Count    int     `yaml:"count"`
	Radius   Range   `yaml:"radius"`
	Alpha    Range   `yaml:"alpha"`
	FadeIn   Range   `yaml:"fadeIn"`
	Rise     Range   `yaml:"rise"`
	Sway     float64 `yaml:"sway"`
	Duration Range   `yaml:"duration"`
	MaxDelay float64 `yaml:"maxDelay"`
	Colors   []RGB   `yaml:"colors"`
}

// DefaultStarfieldConfig 返回与 data/starfield.yaml 一致的默认配置
//
// 配置文件缺失或损坏时使用，保证特效总能启动。
func DefaultStarfieldConfig() *StarfieldConfig {
	return &StarfieldConfig{
		Starfield: StarfieldTuning{
			Count:           300,
			ReducedCount:    150,
			Speed:           0.5,
			DepthStep:       0.008,
			InitialDepth:    Range{Min: 0.5, Max: 2.0},
			RespawnDepth:    Range{Min: 1.5, Max: 2.0},
			MinDepth:        0.01,
			HueProbability:  0.35,
			Hue:             Range{Min: 190, Max: 260},
			Parallax:        0.3,
			CullMargin:      50,
			FadeDepth:       1.5,
			FadeRange:       1.2,
			SizeScale:       1.8,
			MinSize:         0.5,
			MaxSize:         3.0,
			TrailWidthScale: 0.7,
			TrailAlpha:      0.4,
			GlowThreshold:   2,
			GlowScale:       3,
			GlowAlpha:       0.06,
		},
		Overlay: OverlayConfig{
			Color:        RGB{R: 5, G: 7, B: 20},
			DesktopAlpha: 0.25,
			MobileAlpha:  0.35,
		},
		ShootingStars: ShootingStarConfig{
			Count:         3,
			InitialDelays: []float64{1.5, 4.5, 7.5},
			StartX:        -150,
			StartYFrac:    0.5,
			EndXPad:       200,
			TravelPad:     350,
			Angle:         Range{Min: -20, Max: -5},
			Duration:      Range{Min: 0.6, Max: 1.0},
			FadeDuration:  0.15,
			Cooldown:      Range{Min: 2.5, Max: 8.5},
			TailLength:    120,
			Width:         2,
			Colors: []RGB{
				{R: 255, G: 255, B: 255},
				{R: 0, G: 240, B: 255},
				{R: 240, G: 147, B: 251},
			},
		},
		Nebula: NebulaConfig{
			Orbs: []NebulaOrbConfig{
				{AnchorX: 0.2, AnchorY: 0.25, Radius: 220, Color: RGB{R: 124, G: 92, B: 252}},
				{AnchorX: 0.8, AnchorY: 0.7, Radius: 260, Color: RGB{R: 56, G: 189, B: 248}},
				{AnchorX: 0.55, AnchorY: 0.15, Radius: 180, Color: RGB{R: 240, G: 147, B: 251}},
			},
			PeakAlpha:      0.8,
			FadeInDuration: 2.5,
			FadeInStagger:  0.4,
			DriftX:         40,
			DriftY:         30,
			DriftDuration:  Range{Min: 8, Max: 14},
			DriftStagger:   0.8,
			BreathScale:    Range{Min: 1.15, Max: 1.25},
			BreathDuration: Range{Min: 4, Max: 7},
			Rings:          6,
		},
		Dust: DustConfig{
			Count:    15,
			Radius:   Range{Min: 1, Max: 2.5},
			Alpha:    Range{Min: 0.3, Max: 0.7},
			FadeIn:   Range{Min: 1, Max: 2},
			Rise:     Range{Min: 60, Max: 160},
			Sway:     40,
			Duration: Range{Min: 10, Max: 22},
			MaxDelay: 3,
			Colors: []RGB{
				{R: 124, G: 92, B: 252},
				{R: 0, G: 240, B: 255},
				{R: 240, G: 147, B: 251},
				{R: 56, G: 189, B: 248},
				{R: 255, G: 255, B: 255},
			},
		},
	}
}

// ParseStarfieldConfig 解析 YAML 配置
//
// 先填充默认值再反序列化，所以配置文件只需要写出要覆盖的字段。
//
// 返回:
//   - *StarfieldConfig: 解析并验证通过的配置
//   - error: 解析或验证失败时返回错误
func ParseStarfieldConfig(data []byte) (*StarfieldConfig, error) {
	cfg := DefaultStarfieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse starfield config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid starfield config: %w", err)
	}

	return cfg, nil
}

// LoadStarfieldConfig 从磁盘加载配置文件
//
// 参数:
//   - path: 配置文件路径（如 "data/starfield.yaml"）
func LoadStarfieldConfig(path string) (*StarfieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read starfield config: %w", err)
	}
	return ParseStarfieldConfig(data)
}

// LoadEmbeddedStarfieldConfig 从内嵌资源加载配置
//
// 调用前必须先调用 embedded.Init()。
func LoadEmbeddedStarfieldConfig() (*StarfieldConfig, error) {
	data, err := embedded.ReadFile(DefaultStarfieldConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded starfield config: %w", err)
	}
	return ParseStarfieldConfig(data)
}

// Validate 验证配置有效性
//
// 关键约束：RespawnDepth.Min >= FadeDepth，保证重生的恒星亮度从 0 开始淡入，
// 不会在屏幕上突然"蹦"出来。
func (c *StarfieldConfig) Validate() error {
	s := &c.Starfield

	if s.Count <= 0 || s.ReducedCount <= 0 {
		return fmt.Errorf("star count must be positive: count=%d reducedCount=%d", s.Count, s.ReducedCount)
	}
	if s.Speed <= 0 || s.DepthStep <= 0 {
		return fmt.Errorf("speed and depthStep must be positive: speed=%.3f depthStep=%.4f", s.Speed, s.DepthStep)
	}
	if s.MinDepth <= 0 {
		return fmt.Errorf("minDepth must be positive, got %.4f", s.MinDepth)
	}
	if err := s.InitialDepth.validate("initialDepth"); err != nil {
		return err
	}
	if s.InitialDepth.Min <= s.MinDepth {
		return fmt.Errorf("initialDepth.min(%.3f) must be greater than minDepth(%.3f)", s.InitialDepth.Min, s.MinDepth)
	}
	if err := s.RespawnDepth.validate("respawnDepth"); err != nil {
		return err
	}
	if s.RespawnDepth.Min < s.FadeDepth {
		return fmt.Errorf("respawnDepth.min(%.3f) must be >= fadeDepth(%.3f)", s.RespawnDepth.Min, s.FadeDepth)
	}
	if !unitRange.Contains(s.HueProbability) {
		return fmt.Errorf("hueProbability must be within [0,1], got %.3f", s.HueProbability)
	}
	if err := s.Hue.validate("hue"); err != nil {
		return err
	}
	if s.Hue.Min <= 0 {
		// 色相 0 表示中性白色
		return fmt.Errorf("hue.min must be positive, got %.1f", s.Hue.Min)
	}
	if s.FadeRange <= 0 || s.SizeScale <= 0 {
		return fmt.Errorf("fadeRange and sizeScale must be positive")
	}
	if s.MinSize <= 0 || s.MinSize > s.MaxSize {
		return fmt.Errorf("size clamp invalid: minSize(%.2f) maxSize(%.2f)", s.MinSize, s.MaxSize)
	}
	for name, alpha := range map[string]float64{
		"trailAlpha":           s.TrailAlpha,
		"glowAlpha":            s.GlowAlpha,
		"overlay.desktopAlpha": c.Overlay.DesktopAlpha,
		"overlay.mobileAlpha":  c.Overlay.MobileAlpha,
		"nebula.peakAlpha":     c.Nebula.PeakAlpha,
	} {
		if !unitRange.Contains(alpha) {
			return fmt.Errorf("%s must be within [0,1], got %.3f", name, alpha)
		}
	}

	ss := &c.ShootingStars
	if ss.Count < 0 {
		return fmt.Errorf("shootingStars.count must not be negative, got %d", ss.Count)
	}
	for name, r := range map[string]Range{
		"shootingStars.angle":    ss.Angle,
		"shootingStars.duration": ss.Duration,
		"shootingStars.cooldown": ss.Cooldown,
		"nebula.driftDuration":   c.Nebula.DriftDuration,
		"nebula.breathScale":     c.Nebula.BreathScale,
		"nebula.breathDuration":  c.Nebula.BreathDuration,
		"dust.radius":            c.Dust.Radius,
		"dust.alpha":             c.Dust.Alpha,
		"dust.fadeIn":            c.Dust.FadeIn,
		"dust.rise":              c.Dust.Rise,
		"dust.duration":          c.Dust.Duration,
	} {
		if err := r.validate(name); err != nil {
			return err
		}
	}
	if ss.Count > 0 && (ss.Duration.Min <= 0 || len(ss.Colors) == 0) {
		return fmt.Errorf("shootingStars need a positive duration and at least one color")
	}

	for i, orb := range c.Nebula.Orbs {
		if orb.Radius <= 0 {
			return fmt.Errorf("nebula.orbs[%d].radius must be positive, got %.1f", i, orb.Radius)
		}
	}
	if len(c.Nebula.Orbs) > 0 && (c.Nebula.Rings <= 0 || c.Nebula.DriftDuration.Min <= 0 || c.Nebula.BreathDuration.Min <= 0) {
		return fmt.Errorf("nebula rings and tween durations must be positive")
	}

	if c.Dust.Count < 0 {
		return fmt.Errorf("dust.count must not be negative, got %d", c.Dust.Count)
	}
	if c.Dust.Count > 0 && (len(c.Dust.Colors) == 0 || c.Dust.Duration.Min <= 0 || c.Dust.FadeIn.Min <= 0) {
		return fmt.Errorf("dust needs colors and positive durations")
	}

	return nil
}

// FrameStep 每帧深度减少量
func (s *StarfieldTuning) FrameStep() float64 {
	return s.Speed * s.DepthStep
}

// CountFor 根据是否为低功耗模式返回恒星数量
func (s *StarfieldTuning) CountFor(reduced bool) int {
	if reduced {
		return s.ReducedCount
	}
	return s.Count
}

// AlphaFor 按设备类型返回拖尾覆盖层透明度
func (o *OverlayConfig) AlphaFor(mobile bool) float64 {
	if mobile {
		return o.MobileAlpha
	}
	return o.DesktopAlpha
}
