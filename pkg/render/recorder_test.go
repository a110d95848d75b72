package render

import (
	"image/color"
	"testing"
)

// 编译期检查各实现满足 Surface
var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*EbitenSurface)(nil)
	_ Surface = (*GGSurface)(nil)
)

func TestNewEbitenSurface_NilImage(t *testing.T) {
	if s := NewEbitenSurface(nil); s != nil {
		t.Errorf("NewEbitenSurface(nil) = %#v, want a nil Surface", s)
	}
}

func TestRecorder_RecordsOpsInOrder(t *testing.T) {
	r := NewRecorder(800, 600)

	r.FillRect(0, 0, 800, 600, color.RGBA{R: 5, G: 7, B: 20, A: 64})
	r.StrokeLine(1, 2, 3, 4, 0.7, color.White)
	r.FillCircle(10, 20, 2.5, color.RGBA{R: 220, G: 230, B: 255, A: 255})

	if len(r.Ops) != 3 {
		t.Fatalf("len(Ops) = %d, want 3", len(r.Ops))
	}

	wantKinds := []OpKind{OpFillRect, OpStrokeLine, OpFillCircle}
	for i, want := range wantKinds {
		if r.Ops[i].Kind != want {
			t.Errorf("Ops[%d].Kind = %v, want %v", i, r.Ops[i].Kind, want)
		}
	}

	line := r.Ops[1]
	if line.X1 != 3 || line.Y1 != 4 || line.Width != 0.7 {
		t.Errorf("StrokeLine recorded as %+v", line)
	}
	// color.White 转换成 RGBA
	if line.Color != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("StrokeLine color = %+v, want opaque white", line.Color)
	}

	if r.Count(OpFillCircle) != 1 || r.Count(OpFillRect) != 1 {
		t.Errorf("Count mismatch: rect=%d circle=%d", r.Count(OpFillRect), r.Count(OpFillCircle))
	}
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder(320, 240)
	r.FillCircle(1, 1, 1, color.White)
	r.Reset()

	if len(r.Ops) != 0 {
		t.Errorf("len(Ops) after Reset = %d, want 0", len(r.Ops))
	}
	if w, h := r.Bounds(); w != 320 || h != 240 {
		t.Errorf("Bounds() after Reset = (%d,%d), want (320,240)", w, h)
	}
}

func TestOpKindString(t *testing.T) {
	if OpStrokeLine.String() != "StrokeLine" {
		t.Errorf("OpStrokeLine.String() = %q", OpStrokeLine.String())
	}
	if OpKind(99).String() != "Unknown" {
		t.Errorf("OpKind(99).String() = %q", OpKind(99).String())
	}
}
