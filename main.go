// Command warpfield 全屏曲速星空背景
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose           Enable verbose logging
//	--reduced           Start in reduced-motion mode
//	--count <n>         Number of stars (default: from settings or config)
//	--config <path>     External tuning file (default: embedded data/starfield.yaml)
//	--fullscreen        Start fullscreen
//	--seed <n>          Random seed (default: time based)
//
// Controls:
//
//	F11  - Toggle fullscreen
//	M    - Toggle reduced-motion mode
package main

import (
	"flag"
	"log"

	"github.com/decker502/warpfield/pkg/app"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging")
	reducedFlag    = flag.Bool("reduced", false, "Start in reduced-motion mode")
	countFlag      = flag.Int("count", 0, "Number of stars (0 = settings/config value)")
	configFlag     = flag.String("config", "", "Path to an external starfield.yaml")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start fullscreen")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// 初始化内嵌数据，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Reduced:    *reducedFlag,
		Count:      *countFlag,
		ConfigPath: *configFlag,
		Fullscreen: *fullscreenFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
