package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA 将 CSS 风格的 hsla(h, s, l, a) 转成预乘 alpha 的 color.RGBA
//
// 参数:
//   - h: 色相（度，0-360）
//   - s, l: 饱和度与亮度（0-1）
//   - a: 不透明度（0-1），超出范围会被截断
func HSLA(h, s, l, a float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGBA(r, g, b, a)
}

// RGBA 将 8 位颜色与浮点不透明度组合成预乘 alpha 的 color.RGBA
// ebiten 与 gg 都按预乘 alpha 解释 color.RGBA
func RGBA(r, g, b uint8, a float64) color.RGBA {
	a = Clamp01(a)
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}
