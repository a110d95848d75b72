package render

import "image/color"

// OpKind 绘制指令类型
type OpKind int

const (
	OpFillRect OpKind = iota
	OpFillCircle
	OpStrokeLine
)

// String 返回指令名
func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "FillRect"
	case OpFillCircle:
		return "FillCircle"
	case OpStrokeLine:
		return "StrokeLine"
	default:
		return "Unknown"
	}
}

// Op 一条被记录的绘制指令
//
// FillRect: (X0,Y0) 左上角，W/H 尺寸
// FillCircle: (X0,Y0) 圆心，Radius 半径
// StrokeLine: (X0,Y0)→(X1,Y1)，Width 线宽
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	W, H   float64
	Radius float64
	Width  float64
	Color  color.RGBA
}

// Recorder 记录所有绘制指令而不真正光栅化
//
// 用于单元测试和性能统计，不依赖 GPU 或窗口。
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder 创建指定尺寸的记录画布
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Bounds 实现 Surface
func (r *Recorder) Bounds() (int, int) {
	return r.Width, r.Height
}

// FillRect 实现 Surface
func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X0: x, Y0: y, W: w, H: h, Color: toRGBA(clr)})
}

// FillCircle 实现 Surface
func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X0: cx, Y0: cy, Radius: radius, Color: toRGBA(clr)})
}

// StrokeLine 实现 Surface
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: toRGBA(clr)})
}

// Count 统计某类指令的数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset 清空已记录的指令，保留尺寸
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func toRGBA(clr color.Color) color.RGBA {
	if c, ok := clr.(color.RGBA); ok {
		return c
	}
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
