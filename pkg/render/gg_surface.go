package render

import (
	"image"
	"image/color"
	"log"

	"github.com/gogpu/gg"
)

// GGSurface 把 gogpu/gg 的软件光栅上下文包装成 Surface
//
// 不需要窗口或 GPU，用于 cmd/starfield_snapshot 出图和视觉回归对比。
type GGSurface struct {
	ctx *gg.Context
}

// NewGGSurface 创建指定尺寸的画布，初始为不透明的 background 颜色
func NewGGSurface(width, height int, background color.Color) *GGSurface {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(background)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	if err := ctx.Fill(); err != nil {
		log.Printf("[GGSurface] Warning: background fill failed: %v", err)
	}
	return &GGSurface{ctx: ctx}
}

// Bounds 实现 Surface
func (s *GGSurface) Bounds() (int, int) {
	return s.ctx.Width(), s.ctx.Height()
}

// FillRect 实现 Surface
func (s *GGSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.ctx.SetColor(clr)
	s.ctx.DrawRectangle(x, y, w, h)
	if err := s.ctx.Fill(); err != nil {
		log.Printf("[GGSurface] FillRect failed: %v", err)
	}
}

// FillCircle 实现 Surface
func (s *GGSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.ctx.SetColor(clr)
	s.ctx.DrawCircle(cx, cy, r)
	if err := s.ctx.Fill(); err != nil {
		log.Printf("[GGSurface] FillCircle failed: %v", err)
	}
}

// StrokeLine 实现 Surface
func (s *GGSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.ctx.SetColor(clr)
	s.ctx.SetLineWidth(width)
	s.ctx.DrawLine(x0, y0, x1, y1)
	if err := s.ctx.Stroke(); err != nil {
		log.Printf("[GGSurface] StrokeLine failed: %v", err)
	}
}

// SavePNG 将画布写入 PNG 文件
func (s *GGSurface) SavePNG(path string) error {
	return s.ctx.SavePNG(path)
}

// Image 返回当前画布内容
func (s *GGSurface) Image() image.Image {
	return s.ctx.Image()
}

// Close 释放上下文资源
func (s *GGSurface) Close() error {
	return s.ctx.Close()
}
