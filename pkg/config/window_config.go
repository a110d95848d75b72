package config

// 窗口配置常量
// 背景特效铺满整个窗口，逻辑尺寸与窗口尺寸一致，这里只定义启动时的初始值

const (
	// DefaultWindowWidth 启动时的窗口宽度（像素）
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 启动时的窗口高度（像素）
	DefaultWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Warpfield"

	// AppName gdata 存储使用的应用名（决定设置文件所在目录）
	AppName = "warpfield"
)
