// Package app 提供特效应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/game"
	"github.com/decker502/warpfield/pkg/scenes"
	"github.com/decker502/warpfield/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Reduced 强制低功耗模式（否则取用户设置或系统偏好）
	Reduced bool
	// Count 恒星数量，0 取用户设置，再取配置文件
	Count int
	// ConfigPath 外部调参文件，为空则使用内嵌的 data/starfield.yaml
	ConfigPath string
	// Fullscreen 以全屏启动
	Fullscreen bool
	// Seed 随机种子，0 表示按时间随机
	Seed int64
}

// App 是特效应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	scene        *scenes.SpaceScene
	verbose      bool
	fullscreen   bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化内嵌数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	starCfg, err := loadStarfieldConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("星空配置加载失败: %w", err)
	}

	// 设置存储不可用时降级为仅内存设置
	if err := utils.EnsureStorageDir(config.AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings won't persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	return newApp(cfg, starCfg, settings), nil
}

// loadStarfieldConfig 外部文件优先；内嵌配置读取失败时回退到默认值
func loadStarfieldConfig(path string) (*config.StarfieldConfig, error) {
	if path != "" {
		cfg, err := config.LoadStarfieldConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded starfield config from %s", path)
		return cfg, nil
	}

	cfg, err := config.LoadEmbeddedStarfieldConfig()
	if err != nil {
		log.Printf("[Config] Warning: embedded starfield config unavailable: %v (using defaults)", err)
		return config.DefaultStarfieldConfig(), nil
	}
	return cfg, nil
}

// newApp 按命令行参数与用户设置组装场景
func newApp(cfg Config, starCfg *config.StarfieldConfig, settings *game.SettingsManager) *App {
	saved := settings.GetSettings()

	reduced := cfg.Reduced || saved.ReducedMotion || utils.PrefersReducedMotion()
	count := cfg.Count
	if count <= 0 {
		count = saved.StarCount
	} else if count != saved.StarCount {
		// 命令行指定的数量记为新的用户设置
		settings.SetStarCount(count)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	sceneManager := game.NewSceneManager()
	scene := scenes.NewSpaceScene(starCfg, scenes.SpaceSceneOptions{
		Width:   config.DefaultWindowWidth,
		Height:  config.DefaultWindowHeight,
		Count:   count,
		Reduced: reduced,
		Seed:    cfg.Seed,
	})
	sceneManager.SwitchTo(scene)

	log.Printf("[App] Started (reduced=%v count=%d persistent=%v)", reduced, count, settings.IsPersistent())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		scene:        scene,
		verbose:      cfg.Verbose,
		fullscreen:   cfg.Fullscreen || saved.Fullscreen,
	}
}

// Update 处理快捷键并更新场景
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		a.saveSettings()
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	// M 切换低功耗模式
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleReducedMotion()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// toggleReducedMotion 切换低功耗模式并保存用户偏好
func (a *App) toggleReducedMotion() {
	reduced := !a.scene.IsReducedMotion()
	if !a.sceneManager.SetReducedMotion(reduced) {
		return
	}
	a.settings.SetReducedMotion(reduced)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸与窗口尺寸一致，星空铺满整个窗口
// 尺寸变化会同步给场景（重新计算画布中心）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		if w, h := a.sceneManager.Size(); w > 0 && h > 0 {
			return w, h
		}
		return config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// StartFullscreen 是否应以全屏启动
func (a *App) StartFullscreen() bool {
	return a.fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
