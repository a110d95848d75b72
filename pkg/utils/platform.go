//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端和浏览器编译时返回 false
// 可以通过设置环境变量 WARPFIELD_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("WARPFIELD_MOBILE_EMULATE") == "1"
}

// PrefersReducedMotion 系统是否要求减少动画
// 桌面端没有统一的系统接口，使用环境变量 WARPFIELD_REDUCED_MOTION=1 代替
func PrefersReducedMotion() bool {
	return os.Getenv("WARPFIELD_REDUCED_MOTION") == "1"
}
