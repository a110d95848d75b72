package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/warpfield/pkg/embedded"
)

func TestDefaultStarfieldConfig_Valid(t *testing.T) {
	cfg := DefaultStarfieldConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultStarfieldConfig().Validate() = %v", err)
	}

	if got := cfg.Starfield.FrameStep(); got != 0.004 {
		t.Errorf("FrameStep() = %v, want 0.004", got)
	}
	if got := cfg.Starfield.CountFor(true); got != 150 {
		t.Errorf("CountFor(reduced) = %d, want 150", got)
	}
	if got := cfg.Overlay.AlphaFor(false); got != 0.25 {
		t.Errorf("AlphaFor(desktop) = %v, want 0.25", got)
	}
}

// TestLoadStarfieldConfig_RepoFile 仓库里的 data/starfield.yaml 必须与默认值一致
func TestLoadStarfieldConfig_RepoFile(t *testing.T) {
	cfg, err := LoadStarfieldConfig(filepath.Join("..", "..", "data", "starfield.yaml"))
	if err != nil {
		t.Fatalf("LoadStarfieldConfig() error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultStarfieldConfig()) {
		t.Errorf("data/starfield.yaml drifted from DefaultStarfieldConfig()\n got: %+v\nwant: %+v", cfg, DefaultStarfieldConfig())
	}
}

func TestLoadStarfieldConfig_MissingFile(t *testing.T) {
	_, err := LoadStarfieldConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read starfield config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseStarfieldConfig_PartialOverride(t *testing.T) {
	data := []byte(`
starfield:
  count: 500
  speed: 1.25
shootingStars:
  count: 0
`)
	cfg, err := ParseStarfieldConfig(data)
	if err != nil {
		t.Fatalf("ParseStarfieldConfig() error: %v", err)
	}

	if cfg.Starfield.Count != 500 {
		t.Errorf("Count = %d, want 500", cfg.Starfield.Count)
	}
	if cfg.Starfield.Speed != 1.25 {
		t.Errorf("Speed = %v, want 1.25", cfg.Starfield.Speed)
	}
	// 未覆盖的字段保持默认值
	if cfg.Starfield.ReducedCount != 150 {
		t.Errorf("ReducedCount = %d, want default 150", cfg.Starfield.ReducedCount)
	}
	if cfg.ShootingStars.Count != 0 {
		t.Errorf("ShootingStars.Count = %d, want 0", cfg.ShootingStars.Count)
	}
	if len(cfg.Nebula.Orbs) != 3 {
		t.Errorf("Nebula.Orbs = %d, want default 3", len(cfg.Nebula.Orbs))
	}
}

func TestParseStarfieldConfig_BadYAML(t *testing.T) {
	_, err := ParseStarfieldConfig([]byte("starfield: [not a map"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse starfield config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStarfieldConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StarfieldConfig)
		wantErr string
	}{
		{"恒星数量为零", func(c *StarfieldConfig) { c.Starfield.Count = 0 }, "star count"},
		{"速度为负", func(c *StarfieldConfig) { c.Starfield.Speed = -1 }, "speed"},
		{"最小深度为零", func(c *StarfieldConfig) { c.Starfield.MinDepth = 0 }, "minDepth"},
		{"初始深度区间颠倒", func(c *StarfieldConfig) { c.Starfield.InitialDepth = Range{Min: 2, Max: 1} }, "initialDepth"},
		{"初始深度低于阈值", func(c *StarfieldConfig) { c.Starfield.InitialDepth.Min = 0.005 }, "initialDepth.min"},
		{"重生深度会突然出现", func(c *StarfieldConfig) { c.Starfield.RespawnDepth.Min = 1.0 }, "respawnDepth.min"},
		{"色相概率越界", func(c *StarfieldConfig) { c.Starfield.HueProbability = 1.5 }, "hueProbability"},
		{"色相最小值为零", func(c *StarfieldConfig) { c.Starfield.Hue.Min = 0 }, "hue.min"},
		{"尺寸区间颠倒", func(c *StarfieldConfig) { c.Starfield.MinSize = 5 }, "size clamp"},
		{"拖尾透明度越界", func(c *StarfieldConfig) { c.Starfield.TrailAlpha = 2 }, "trailAlpha"},
		{"流星数量为负", func(c *StarfieldConfig) { c.ShootingStars.Count = -1 }, "shootingStars.count"},
		{"流星无颜色", func(c *StarfieldConfig) { c.ShootingStars.Colors = nil }, "shootingStars need"},
		{"星云半径为零", func(c *StarfieldConfig) { c.Nebula.Orbs[1].Radius = 0 }, "nebula.orbs[1]"},
		{"尘埃区间颠倒", func(c *StarfieldConfig) { c.Dust.Rise = Range{Min: 10, Max: 1} }, "dust.rise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStarfieldConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEmbeddedStarfieldConfig(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "starfield.yaml"))
	if err != nil {
		t.Fatalf("read repo config: %v", err)
	}

	embedded.Init(fstest.MapFS{
		DefaultStarfieldConfigPath: &fstest.MapFile{Data: data},
	})
	defer embedded.Init(nil)

	cfg, err := LoadEmbeddedStarfieldConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedStarfieldConfig() error: %v", err)
	}
	if cfg.Starfield.Count != 300 {
		t.Errorf("Count = %d, want 300", cfg.Starfield.Count)
	}
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Min: 1.5, Max: 2.0}

	if got := r.Lerp(0); got != 1.5 {
		t.Errorf("Lerp(0) = %v, want 1.5", got)
	}
	if got := r.Lerp(1); got != 2.0 {
		t.Errorf("Lerp(1) = %v, want 2.0", got)
	}
	if !r.Contains(1.75) || r.Contains(2.01) {
		t.Error("Contains boundaries wrong")
	}
}

func TestRGBWithAlpha(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}

	got := c.WithAlpha(0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 || got.A != 127 {
		t.Errorf("WithAlpha(0.5) = %+v, want premultiplied {100 50 25 127}", got)
	}

	if got := c.WithAlpha(-1); got.A != 0 {
		t.Errorf("WithAlpha(-1).A = %d, want 0", got.A)
	}
	if got := c.WithAlpha(3); got.A != 255 || got.R != 200 {
		t.Errorf("WithAlpha(3) = %+v, want clamped to opaque", got)
	}
}
