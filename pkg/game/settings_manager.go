package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxStarCount 用户可设置的恒星数量上限
const MaxStarCount = 5000

// EffectSettings 背景特效的用户偏好
// 与调参配置（data/starfield.yaml）分开保存，只记录用户主动切换过的开关
type EffectSettings struct {
	// ReducedMotion 低功耗模式：恒星减半、隔帧渲染、不画拖尾和光晕
	ReducedMotion bool `yaml:"reducedMotion"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`

	// StarCount 覆盖配置中的恒星数量，0 表示使用配置值
	StarCount int `yaml:"starCount"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *EffectSettings {
	return &EffectSettings{}
}

// SettingsManager 设置管理器
// 负责特效设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *EffectSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "effects"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理，加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.StarCount = clampStarCount(loaded.StarCount)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (reduced=%v fullscreen=%v stars=%d)",
		loaded.ReducedMotion, loaded.Fullscreen, loaded.StarCount)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *EffectSettings {
	return sm.settings
}

// IsPersistent 设置能否落盘
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// SetReducedMotion 设置低功耗模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetStarCount 设置恒星数量，限制在 [0, MaxStarCount]
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetStarCount(count int) {
	sm.settings.StarCount = clampStarCount(count)
}

func clampStarCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > MaxStarCount {
		return MaxStarCount
	}
	return count
}
