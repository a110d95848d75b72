package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 把 *ebiten.Image 包装成 Surface
//
// 使用 ebiten/v2/vector 绘制，统一开启抗锯齿。
type EbitenSurface struct {
	Image *ebiten.Image
}

// NewEbitenSurface 包装一张 ebiten 图像
// img 为 nil 时返回值为 nil 的接口，RenderFrame 等据此跳过绘制
func NewEbitenSurface(img *ebiten.Image) Surface {
	if img == nil {
		return nil
	}
	return &EbitenSurface{Image: img}
}

// Bounds 实现 Surface
func (s *EbitenSurface) Bounds() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect 实现 Surface
func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// FillCircle 实现 Surface
func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine 实现 Surface
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.Image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
