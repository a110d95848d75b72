// Package render 定义背景特效的绘制目标
//
// 模拟逻辑只依赖 Surface 接口：实时运行时是 ebiten 的离屏画布，
// 出图工具使用 gogpu/gg 软件光栅化，测试使用 Recorder。
package render

import "image/color"

// Surface 是一块可绘制的 2D 画布
//
// 所有坐标都是像素，颜色按预乘 alpha 解释。实现不需要支持撤销或读回。
type Surface interface {
	// Bounds 返回画布尺寸
	Bounds() (width, height int)

	// FillRect 填充矩形
	FillRect(x, y, w, h float64, clr color.Color)

	// FillCircle 填充圆
	FillCircle(cx, cy, r float64, clr color.Color)

	// StrokeLine 描边线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}
