package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestGGSurface_DrawsAndSaves(t *testing.T) {
	s := NewGGSurface(64, 64, color.Black)
	defer s.Close()

	if w, h := s.Bounds(); w != 64 || h != 64 {
		t.Fatalf("Bounds() = (%d,%d), want (64,64)", w, h)
	}

	s.FillCircle(32, 32, 10, color.White)
	s.StrokeLine(0, 60, 63, 60, 2, color.RGBA{R: 0, G: 240, B: 255, A: 255})

	img := s.Image()
	r, _, _, _ := img.At(32, 32).RGBA()
	if r>>8 < 200 {
		t.Errorf("circle center red = %d, want bright", r>>8)
	}
	r, _, _, _ = img.At(2, 2).RGBA()
	if r>>8 > 20 {
		t.Errorf("background red = %d, want dark", r>>8)
	}

	out := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(out); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat PNG: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}
}
