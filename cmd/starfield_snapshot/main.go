// Package main renders the warp starfield offscreen and writes a PNG snapshot.
// No window or GPU is needed, which makes it handy for tuning data/starfield.yaml
// and for visual regression checks.
//
// Usage:
//
//	go run cmd/starfield_snapshot/main.go [flags]
//
// Flags:
//
//	--width, --height <px>   Canvas size (default: 1280x720)
//	--frames <n>             Frames to simulate before saving (default: 240)
//	--count <n>              Number of stars (default: from config)
//	--seed <n>               Random seed (default: 1)
//	--pointer-x, --pointer-y Normalized pointer position (default: 0.5, 0.5)
//	--reduced                Render in reduced-motion mode
//	--config <path>          Tuning file (default: data/starfield.yaml)
//	--o <path>               Output PNG (default: starfield.png)
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/ecs"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/systems"
)

var (
	widthFlag    = flag.Int("width", config.DefaultWindowWidth, "Canvas width in pixels")
	heightFlag   = flag.Int("height", config.DefaultWindowHeight, "Canvas height in pixels")
	framesFlag   = flag.Int("frames", 240, "Frames to simulate before saving")
	countFlag    = flag.Int("count", 0, "Number of stars (0 = config value)")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	pointerXFlag = flag.Float64("pointer-x", 0.5, "Normalized pointer X [0,1]")
	pointerYFlag = flag.Float64("pointer-y", 0.5, "Normalized pointer Y [0,1]")
	reducedFlag  = flag.Bool("reduced", false, "Render in reduced-motion mode")
	configFlag   = flag.String("config", config.DefaultStarfieldConfigPath, "Path to starfield.yaml")
	outFlag      = flag.String("o", "starfield.png", "Output PNG path")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadStarfieldConfig(*configFlag)
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
		cfg = config.DefaultStarfieldConfig()
	}

	w, h := *widthFlag, *heightFlag
	if w <= 0 || h <= 0 {
		log.Fatalf("invalid canvas size %dx%d", w, h)
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	em := ecs.NewEntityManager()

	starfield := systems.NewStarfieldSystem(cfg, w, h, rng)
	starfield.Initialize(*countFlag, *reducedFlag)
	starfield.OnPointerMove(*pointerXFlag, *pointerYFlag)

	loop := systems.NewFrameLoop(starfield,
		systems.NewNebulaSystem(em, cfg, w, h, rng),
		systems.NewDustSystem(em, cfg, w, h, rng),
		systems.NewShootingStarSystem(em, cfg, w, h, rng),
	)

	surface := render.NewGGSurface(w, h, cfg.Overlay.Color.WithAlpha(1))
	defer surface.Close()

	presented := loop.Step(*framesFlag, 1.0/60, surface)
	loop.DrawLayers(surface)

	if err := surface.SavePNG(*outFlag); err != nil {
		log.Fatalf("failed to save %s: %v", *outFlag, err)
	}

	log.Printf("Saved %s (%dx%d, %d/%d frames presented, %d respawns)",
		*outFlag, w, h, presented, *framesFlag, starfield.RespawnCount())
}
